package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/types"
)

func newTestSchema(t *testing.T) *graphql.Schema {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormDB.AutoMigrate(&types.Customer{}, &types.Product{}, &types.Order{}))

	log := logger.NewNop()
	customerRepo := repos.NewCustomerRepo(gormDB, log)
	productRepo := repos.NewProductRepo(gormDB, log)
	orderRepo := repos.NewOrderRepo(gormDB, log)
	resolver := NewResolver(
		log,
		services.NewCustomerService(gormDB, log, customerRepo),
		services.NewProductService(gormDB, log, productRepo),
		services.NewOrderService(gormDB, log, customerRepo, productRepo, orderRepo),
	)
	schema, err := NewSchema(resolver)
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema *graphql.Schema, query string, out interface{}) *graphql.Response {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", nil)
	if out != nil && len(resp.Errors) == 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp
}

func TestCreateProductMutation(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		CreateProduct struct {
			Product struct {
				Price string
				Stock int32
			}
			Message string
		}
	}
	resp := exec(t, schema, `mutation {
		createProduct(input: {name: "Widget", price: 9.99, stock: 5}) {
			product { price stock }
			message
		}
	}`, &data)
	require.Empty(t, resp.Errors)
	require.Equal(t, "9.99", data.CreateProduct.Product.Price)
	require.EqualValues(t, 5, data.CreateProduct.Product.Stock)
	require.Equal(t, "Product created successfully", data.CreateProduct.Message)
}

func TestCreateCustomerMutationInvalidPhone(t *testing.T) {
	schema := newTestSchema(t)

	resp := exec(t, schema, `mutation {
		createCustomer(input: {name: "Alice", email: "alice@example.com", phone: "nope"}) {
			customer { id }
			message
		}
	}`, nil)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, "Invalid phone number format", resp.Errors[0].Message)
}

func TestCustomerLookupMissingReturnsNull(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Customer *struct{ ID string }
	}
	resp := exec(t, schema, `query {
		customer(id: "00000000-0000-0000-0000-000000000000") { id }
	}`, &data)
	require.Empty(t, resp.Errors)
	require.Nil(t, data.Customer)
}

func TestCreateOrderEndToEnd(t *testing.T) {
	schema := newTestSchema(t)

	var customerData struct {
		CreateCustomer struct {
			Customer struct{ ID string }
			Message  string
		}
	}
	resp := exec(t, schema, `mutation {
		createCustomer(input: {name: "Alice", email: "alice@example.com"}) {
			customer { id }
			message
		}
	}`, &customerData)
	require.Empty(t, resp.Errors)
	require.Equal(t, "Customer created successfully", customerData.CreateCustomer.Message)

	productIDs := make([]string, 0, 2)
	for _, productInput := range []string{
		`{name: "Widget", price: 10.00}`,
		`{name: "Gadget", price: 5.50}`,
	} {
		var productData struct {
			CreateProduct struct {
				Product struct{ ID string }
			}
		}
		resp := exec(t, schema, fmt.Sprintf(`mutation {
			createProduct(input: %s) { product { id } }
		}`, productInput), &productData)
		require.Empty(t, resp.Errors)
		productIDs = append(productIDs, productData.CreateProduct.Product.ID)
	}

	var orderData struct {
		CreateOrder struct {
			Order struct {
				TotalAmount string
				Products    []struct{ ID string }
				Customer    struct{ Email string }
			}
			Message string
		}
	}
	resp = exec(t, schema, fmt.Sprintf(`mutation {
		createOrder(input: {customerId: %q, productIds: [%q, %q]}) {
			order {
				totalAmount
				products { id }
				customer { email }
			}
			message
		}
	}`, customerData.CreateCustomer.Customer.ID, productIDs[0], productIDs[1]), &orderData)
	require.Empty(t, resp.Errors)
	require.Equal(t, "15.50", orderData.CreateOrder.Order.TotalAmount)
	require.Len(t, orderData.CreateOrder.Order.Products, 2)
	require.Equal(t, "alice@example.com", orderData.CreateOrder.Order.Customer.Email)
	require.Equal(t, "Order created successfully", orderData.CreateOrder.Message)
}

func TestBulkCreateCustomersMutation(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		BulkCreateCustomers struct {
			Customers []struct{ Name string }
			Errors    []string
		}
	}
	resp := exec(t, schema, `mutation {
		bulkCreateCustomers(input: [
			{name: "Alice", email: "alice@example.com", phone: "123-456-7890"},
			{name: "Bob", email: "bob@example.com", phone: "bad"},
			{name: "Carol", email: "carol@example.com"}
		]) {
			customers { name }
			errors
		}
	}`, &data)
	require.Empty(t, resp.Errors)
	require.Len(t, data.BulkCreateCustomers.Customers, 2)
	require.Equal(t, []string{"Invalid phone number for Bob"}, data.BulkCreateCustomers.Errors)
}

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/crm-backend/internal/apierr"
	"github.com/yungbote/crm-backend/internal/types"
)

func seedOrderFixtures(t *testing.T, env testEnv) (*types.Customer, []*types.Product) {
	t.Helper()
	ctx := context.Background()
	customer, err := env.customers.Create(ctx, CustomerInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	p1, err := env.products.Create(ctx, ProductInput{Name: "Widget", Price: 10.00, Stock: 3})
	require.NoError(t, err)
	p2, err := env.products.Create(ctx, ProductInput{Name: "Gadget", Price: 5.50, Stock: 7})
	require.NoError(t, err)
	return customer, []*types.Product{p1, p2}
}

func TestCreateOrderEmptyProducts(t *testing.T) {
	env := newTestEnv(t)
	customer, _ := seedOrderFixtures(t, env)

	_, err := env.orders.Create(context.Background(), OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{},
	})
	require.Error(t, err)
	require.True(t, apierr.IsValidation(err))
	require.Equal(t, "At least one product is required", err.Error())
	require.EqualValues(t, 0, countRows(t, env.db, &types.Order{}))
}

func TestCreateOrderMissingCustomer(t *testing.T) {
	env := newTestEnv(t)
	_, products := seedOrderFixtures(t, env)

	_, err := env.orders.Create(context.Background(), OrderInput{
		CustomerID: uuid.New(),
		ProductIDs: []uuid.UUID{products[0].ID},
	})
	require.Error(t, err)
	require.True(t, apierr.IsNotFound(err))
	require.Equal(t, "Customer not found", err.Error())
}

func TestCreateOrderComputesTotal(t *testing.T) {
	env := newTestEnv(t)
	customer, products := seedOrderFixtures(t, env)

	order, err := env.orders.Create(context.Background(), OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{products[0].ID, products[1].ID},
	})
	require.NoError(t, err)
	require.Equal(t, "15.50", order.TotalAmount.StringFixed(2))
	require.Len(t, order.Products, 2)

	// Reload: the committed row and its associations must agree.
	reloaded, err := env.orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	require.Equal(t, "15.50", reloaded.TotalAmount.StringFixed(2))
	require.Len(t, reloaded.Products, 2)
	require.NotNil(t, reloaded.Customer)
	require.Equal(t, customer.ID, reloaded.Customer.ID)
}

func TestCreateOrderMissingProductNamed(t *testing.T) {
	env := newTestEnv(t)
	customer, products := seedOrderFixtures(t, env)
	missingID := uuid.New()

	_, err := env.orders.Create(context.Background(), OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{products[0].ID, missingID},
	})
	require.Error(t, err)
	require.True(t, apierr.IsNotFound(err))
	require.Equal(t, fmt.Sprintf("Products not found: %s", missingID), err.Error())
}

func TestCreateOrderFailureWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	customer, _ := seedOrderFixtures(t, env)

	// Repeating a failing create must leave stored state untouched.
	for i := 0; i < 2; i++ {
		_, err := env.orders.Create(context.Background(), OrderInput{
			CustomerID: customer.ID,
			ProductIDs: []uuid.UUID{uuid.New()},
		})
		require.Error(t, err)
	}
	require.EqualValues(t, 0, countRows(t, env.db, &types.Order{}))
}

func TestCreateOrderDefaultsOrderDate(t *testing.T) {
	env := newTestEnv(t)
	customer, products := seedOrderFixtures(t, env)

	before := time.Now().UTC().Add(-time.Minute)
	order, err := env.orders.Create(context.Background(), OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{products[0].ID},
	})
	require.NoError(t, err)
	require.True(t, order.OrderDate.After(before))
}

func TestCreateOrderExplicitOrderDate(t *testing.T) {
	env := newTestEnv(t)
	customer, products := seedOrderFixtures(t, env)

	orderDate := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	order, err := env.orders.Create(context.Background(), OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{products[0].ID},
		OrderDate:  &orderDate,
	})
	require.NoError(t, err)
	require.True(t, order.OrderDate.Equal(orderDate))
}

func TestCreateOrderDuplicateProductIDsCollapse(t *testing.T) {
	env := newTestEnv(t)
	customer, products := seedOrderFixtures(t, env)

	order, err := env.orders.Create(context.Background(), OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{products[0].ID, products[0].ID},
	})
	require.NoError(t, err)
	require.Len(t, order.Products, 1)
	require.Equal(t, "10.00", order.TotalAmount.StringFixed(2))
}

func TestOrderGetByIDMissingReturnsNil(t *testing.T) {
	env := newTestEnv(t)

	order, err := env.orders.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, order)
}

func TestListOrdersByCustomerAndProduct(t *testing.T) {
	env := newTestEnv(t)
	customer, products := seedOrderFixtures(t, env)
	ctx := context.Background()

	_, err := env.orders.Create(ctx, OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{products[0].ID},
	})
	require.NoError(t, err)
	_, err = env.orders.Create(ctx, OrderInput{
		CustomerID: customer.ID,
		ProductIDs: []uuid.UUID{products[0].ID, products[1].ID},
	})
	require.NoError(t, err)

	byCustomer, err := env.orders.ListByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 2)

	byProduct, err := env.orders.ListByProduct(ctx, products[1].ID)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
}

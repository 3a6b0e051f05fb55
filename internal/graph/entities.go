package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/yungbote/crm-backend/internal/apierr"
	"github.com/yungbote/crm-backend/internal/types"
)

func errInvalidID(field, value string) error {
	return apierr.Validation("Invalid id for %s: %s", field, value)
}

type CustomerResolver struct {
	r        *Resolver
	customer *types.Customer
}

func (cr *CustomerResolver) ID() graphql.ID {
	return graphql.ID(cr.customer.ID.String())
}

func (cr *CustomerResolver) Name() string {
	return cr.customer.Name
}

func (cr *CustomerResolver) Email() string {
	return cr.customer.Email
}

func (cr *CustomerResolver) Phone() *string {
	if cr.customer.Phone == "" {
		return nil
	}
	phone := cr.customer.Phone
	return &phone
}

func (cr *CustomerResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: cr.customer.CreatedAt}
}

func (cr *CustomerResolver) Orders(ctx context.Context) ([]*OrderResolver, error) {
	orders, err := cr.r.orderService.ListByCustomer(ctx, cr.customer.ID)
	if err != nil {
		return nil, err
	}
	return cr.r.orderResolvers(orders), nil
}

type ProductResolver struct {
	r       *Resolver
	product *types.Product
}

func (pr *ProductResolver) ID() graphql.ID {
	return graphql.ID(pr.product.ID.String())
}

func (pr *ProductResolver) Name() string {
	return pr.product.Name
}

// Price serializes as a fixed two-decimal string.
func (pr *ProductResolver) Price() string {
	return pr.product.Price.StringFixed(2)
}

func (pr *ProductResolver) Stock() int32 {
	return int32(pr.product.Stock)
}

func (pr *ProductResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: pr.product.CreatedAt}
}

func (pr *ProductResolver) Orders(ctx context.Context) ([]*OrderResolver, error) {
	orders, err := pr.r.orderService.ListByProduct(ctx, pr.product.ID)
	if err != nil {
		return nil, err
	}
	return pr.r.orderResolvers(orders), nil
}

type OrderResolver struct {
	r     *Resolver
	order *types.Order
}

func (or *OrderResolver) ID() graphql.ID {
	return graphql.ID(or.order.ID.String())
}

func (or *OrderResolver) Customer(ctx context.Context) (*CustomerResolver, error) {
	if or.order.Customer != nil {
		return &CustomerResolver{r: or.r, customer: or.order.Customer}, nil
	}
	customer, err := or.r.customerService.GetByID(ctx, or.order.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apierr.NotFound("Customer not found")
	}
	return &CustomerResolver{r: or.r, customer: customer}, nil
}

func (or *OrderResolver) Products(ctx context.Context) ([]*ProductResolver, error) {
	return or.r.productResolvers(or.order.Products), nil
}

func (or *OrderResolver) TotalAmount() string {
	return or.order.TotalAmount.StringFixed(2)
}

func (or *OrderResolver) OrderDate() graphql.Time {
	return graphql.Time{Time: or.order.OrderDate}
}

func (or *OrderResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: or.order.CreatedAt}
}

type CreateCustomerPayloadResolver struct {
	customer *CustomerResolver
	message  string
}

func (p *CreateCustomerPayloadResolver) Customer() *CustomerResolver { return p.customer }
func (p *CreateCustomerPayloadResolver) Message() string             { return p.message }

type BulkCreateCustomersPayloadResolver struct {
	customers  []*CustomerResolver
	itemErrors []string
}

func (p *BulkCreateCustomersPayloadResolver) Customers() []*CustomerResolver { return p.customers }
func (p *BulkCreateCustomersPayloadResolver) Errors() []string               { return p.itemErrors }

type CreateProductPayloadResolver struct {
	product *ProductResolver
	message string
}

func (p *CreateProductPayloadResolver) Product() *ProductResolver { return p.product }
func (p *CreateProductPayloadResolver) Message() string           { return p.message }

type CreateOrderPayloadResolver struct {
	order   *OrderResolver
	message string
}

func (p *CreateOrderPayloadResolver) Order() *OrderResolver { return p.order }
func (p *CreateOrderPayloadResolver) Message() string       { return p.message }

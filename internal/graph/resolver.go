package graph

import (
	"context"
	"time"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/types"
)

type Resolver struct {
	log             *logger.Logger
	customerService services.CustomerService
	productService  services.ProductService
	orderService    services.OrderService
}

func NewResolver(log *logger.Logger, customerService services.CustomerService, productService services.ProductService, orderService services.OrderService) *Resolver {
	resolverLog := log.With("component", "Resolver")
	return &Resolver{
		log:             resolverLog,
		customerService: customerService,
		productService:  productService,
		orderService:    orderService,
	}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

type ProductInput struct {
	Name  string
	Price float64
	Stock *int32
}

type OrderInput struct {
	CustomerID graphql.ID
	ProductIds []graphql.ID
	OrderDate  *graphql.Time
}

// ---- Query ----

func (r *Resolver) Customers(ctx context.Context) ([]*CustomerResolver, error) {
	customers, err := r.customerService.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.customerResolvers(customers), nil
}

func (r *Resolver) Products(ctx context.Context) ([]*ProductResolver, error) {
	products, err := r.productService.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.productResolvers(products), nil
}

func (r *Resolver) Orders(ctx context.Context) ([]*OrderResolver, error) {
	orders, err := r.orderService.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.orderResolvers(orders), nil
}

// Single lookups are nullable and never error on a missing or malformed id.

func (r *Resolver) Customer(ctx context.Context, args struct{ ID graphql.ID }) (*CustomerResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}
	customer, err := r.customerService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return &CustomerResolver{r: r, customer: customer}, nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) (*ProductResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}
	product, err := r.productService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return &ProductResolver{r: r, product: product}, nil
}

func (r *Resolver) Order(ctx context.Context, args struct{ ID graphql.ID }) (*OrderResolver, error) {
	id, err := uuid.Parse(string(args.ID))
	if err != nil {
		return nil, nil
	}
	order, err := r.orderService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return &OrderResolver{r: r, order: order}, nil
}

// ---- Mutation ----

func (r *Resolver) CreateCustomer(ctx context.Context, args struct{ Input CustomerInput }) (*CreateCustomerPayloadResolver, error) {
	customer, err := r.customerService.Create(ctx, customerServiceInput(args.Input))
	if err != nil {
		return nil, err
	}
	return &CreateCustomerPayloadResolver{
		customer: &CustomerResolver{r: r, customer: customer},
		message:  "Customer created successfully",
	}, nil
}

func (r *Resolver) BulkCreateCustomers(ctx context.Context, args struct{ Input []CustomerInput }) (*BulkCreateCustomersPayloadResolver, error) {
	inputs := make([]services.CustomerInput, 0, len(args.Input))
	for _, input := range args.Input {
		inputs = append(inputs, customerServiceInput(input))
	}
	customers, itemErrors, err := r.customerService.BulkCreate(ctx, inputs)
	if err != nil {
		return nil, err
	}
	return &BulkCreateCustomersPayloadResolver{
		customers:  r.customerResolvers(customers),
		itemErrors: itemErrors,
	}, nil
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Input ProductInput }) (*CreateProductPayloadResolver, error) {
	stock := 0
	if args.Input.Stock != nil {
		stock = int(*args.Input.Stock)
	}
	product, err := r.productService.Create(ctx, services.ProductInput{
		Name:  args.Input.Name,
		Price: args.Input.Price,
		Stock: stock,
	})
	if err != nil {
		return nil, err
	}
	return &CreateProductPayloadResolver{
		product: &ProductResolver{r: r, product: product},
		message: "Product created successfully",
	}, nil
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input OrderInput }) (*CreateOrderPayloadResolver, error) {
	customerID, err := uuid.Parse(string(args.Input.CustomerID))
	if err != nil {
		return nil, errInvalidID("customerId", string(args.Input.CustomerID))
	}
	productIDs := make([]uuid.UUID, 0, len(args.Input.ProductIds))
	for _, raw := range args.Input.ProductIds {
		id, parseErr := uuid.Parse(string(raw))
		if parseErr != nil {
			return nil, errInvalidID("productIds", string(raw))
		}
		productIDs = append(productIDs, id)
	}
	var orderDate *time.Time
	if args.Input.OrderDate != nil {
		t := args.Input.OrderDate.Time
		orderDate = &t
	}

	order, err := r.orderService.Create(ctx, services.OrderInput{
		CustomerID: customerID,
		ProductIDs: productIDs,
		OrderDate:  orderDate,
	})
	if err != nil {
		return nil, err
	}
	return &CreateOrderPayloadResolver{
		order:   &OrderResolver{r: r, order: order},
		message: "Order created successfully",
	}, nil
}

func customerServiceInput(input CustomerInput) services.CustomerInput {
	phone := ""
	if input.Phone != nil {
		phone = *input.Phone
	}
	return services.CustomerInput{Name: input.Name, Email: input.Email, Phone: phone}
}

func (r *Resolver) customerResolvers(customers []*types.Customer) []*CustomerResolver {
	out := make([]*CustomerResolver, 0, len(customers))
	for _, customer := range customers {
		out = append(out, &CustomerResolver{r: r, customer: customer})
	}
	return out
}

func (r *Resolver) productResolvers(products []*types.Product) []*ProductResolver {
	out := make([]*ProductResolver, 0, len(products))
	for _, product := range products {
		out = append(out, &ProductResolver{r: r, product: product})
	}
	return out
}

func (r *Resolver) orderResolvers(orders []*types.Order) []*OrderResolver {
	out := make([]*OrderResolver, 0, len(orders))
	for _, order := range orders {
		out = append(out, &OrderResolver{r: r, order: order})
	}
	return out
}

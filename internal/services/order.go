package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/apierr"
	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
)

type OrderInput struct {
	CustomerID uuid.UUID
	ProductIDs []uuid.UUID
	OrderDate  *time.Time
}

type OrderService interface {
	Create(ctx context.Context, input OrderInput) (*types.Order, error)
	List(ctx context.Context) ([]*types.Order, error)
	GetByID(ctx context.Context, orderID uuid.UUID) (*types.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*types.Order, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*types.Order, error)
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	orderRepo    repos.OrderRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo, productRepo repos.ProductRepo, orderRepo repos.OrderRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

// Create validates the customer and product references up front, then writes
// the order row, its product associations and the computed total in a single
// transaction. Nothing is committed when any step fails.
func (osv *orderService) Create(ctx context.Context, input OrderInput) (*types.Order, error) {
	foundCustomers, err := osv.customerRepo.GetByIDs(ctx, nil, []uuid.UUID{input.CustomerID})
	if err != nil {
		osv.log.Error("Customer lookup failed", "error", err)
		return nil, apierr.Internal("Error creating order: %v", err)
	}
	if len(foundCustomers) == 0 {
		return nil, apierr.NotFound("Customer not found")
	}
	customer := foundCustomers[0]

	if len(input.ProductIDs) == 0 {
		return nil, apierr.Validation("At least one product is required")
	}

	productIDs := dedupeIDs(input.ProductIDs)
	products, err := osv.productRepo.GetByIDs(ctx, nil, productIDs)
	if err != nil {
		osv.log.Error("Product lookup failed", "error", err)
		return nil, apierr.Internal("Error creating order: %v", err)
	}
	if len(products) != len(productIDs) {
		return nil, apierr.NotFound("Products not found: %s", strings.Join(missingIDs(productIDs, products), ", "))
	}

	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = input.OrderDate.UTC()
	}

	order := &types.Order{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		TotalAmount: decimal.Zero,
		OrderDate:   orderDate,
	}
	if err := osv.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := osv.orderRepo.Create(ctx, tx, order); err != nil {
			return err
		}
		if err := osv.orderRepo.AppendProducts(ctx, tx, order, products); err != nil {
			return err
		}
		total := decimal.Zero
		for _, product := range products {
			total = total.Add(product.Price)
		}
		if err := osv.orderRepo.UpdateTotalAmount(ctx, tx, order.ID, total); err != nil {
			return err
		}
		order.TotalAmount = total
		return nil
	}); err != nil {
		osv.log.Error("Order transaction failed", "error", err)
		return nil, apierr.Internal("Error creating order: %v", err)
	}

	order.Customer = customer
	order.Products = products
	return order, nil
}

func (osv *orderService) List(ctx context.Context) ([]*types.Order, error) {
	return osv.orderRepo.List(ctx, nil)
}

func (osv *orderService) GetByID(ctx context.Context, orderID uuid.UUID) (*types.Order, error) {
	found, err := osv.orderRepo.GetByIDs(ctx, nil, []uuid.UUID{orderID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

func (osv *orderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*types.Order, error) {
	return osv.orderRepo.ListByCustomerID(ctx, nil, customerID)
}

func (osv *orderService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*types.Order, error) {
	return osv.orderRepo.ListByProductID(ctx, nil, productID)
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(requested []uuid.UUID, found []*types.Product) []string {
	foundSet := make(map[uuid.UUID]struct{}, len(found))
	for _, product := range found {
		foundSet[product.ID] = struct{}{}
	}
	missing := []string{}
	for _, id := range requested {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	sort.Strings(missing)
	return missing
}

package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *types.Order) error
	AppendProducts(ctx context.Context, tx *gorm.DB, order *types.Order, products []*types.Product) error
	UpdateTotalAmount(ctx context.Context, tx *gorm.DB, orderID uuid.UUID, total decimal.Decimal) error
	GetByIDs(ctx context.Context, tx *gorm.DB, orderIDs []uuid.UUID) ([]*types.Order, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Order, error)
	ListByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.Order, error)
	ListByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Order, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	// Associations are appended separately so the write order stays explicit.
	return transaction.WithContext(ctx).
		Omit("Customer", "Products").
		Create(order).Error
}

func (or *orderRepo) AppendProducts(ctx context.Context, tx *gorm.DB, order *types.Order, products []*types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if len(products) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(order).
		Omit("Products.*").
		Association("Products").
		Append(products)
}

func (or *orderRepo) UpdateTotalAmount(ctx context.Context, tx *gorm.DB, orderID uuid.UUID, total decimal.Decimal) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total).Error
}

func (or *orderRepo) GetByIDs(ctx context.Context, tx *gorm.DB, orderIDs []uuid.UUID) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Order
	if len(orderIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Where("id IN ?", orderIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	results := []*types.Order{}
	if err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) ListByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	results := []*types.Order{}
	if err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Where("customer_id = ?", customerID).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) ListByProductID(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	sub := transaction.WithContext(ctx).
		Table("order_product").
		Select("order_id").
		Where("product_id = ?", productID)

	results := []*types.Order{}
	if err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Where("id IN (?)", sub).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

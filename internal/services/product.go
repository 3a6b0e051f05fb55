package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/apierr"
	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
)

type ProductInput struct {
	Name  string
	Price float64
	Stock int
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*types.Product, error)
	List(ctx context.Context) ([]*types.Product, error)
	GetByID(ctx context.Context, productID uuid.UUID) (*types.Product, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func (ps *productService) Create(ctx context.Context, input ProductInput) (*types.Product, error) {
	if input.Price <= 0 {
		return nil, apierr.Validation("Price must be positive")
	}
	if input.Stock < 0 {
		return nil, apierr.Validation("Stock cannot be negative")
	}

	// NewFromFloat goes through the shortest decimal representation, so a
	// 9.99 input is stored as exactly 9.99 rather than its binary float.
	product := &types.Product{
		ID:    uuid.New(),
		Name:  input.Name,
		Price: decimal.NewFromFloat(input.Price),
		Stock: input.Stock,
	}
	created, err := ps.productRepo.Create(ctx, nil, []*types.Product{product})
	if err != nil {
		ps.log.Error("Product insert failed", "error", err)
		return nil, apierr.Internal("Error creating product: %v", err)
	}
	return created[0], nil
}

func (ps *productService) List(ctx context.Context) ([]*types.Product, error) {
	return ps.productRepo.List(ctx, nil)
}

func (ps *productService) GetByID(ctx context.Context, productID uuid.UUID) (*types.Product, error) {
	found, err := ps.productRepo.GetByIDs(ctx, nil, []uuid.UUID{productID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

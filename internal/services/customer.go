package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/apierr"
	"github.com/yungbote/crm-backend/internal/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

type CustomerService interface {
	Create(ctx context.Context, input CustomerInput) (*types.Customer, error)
	BulkCreate(ctx context.Context, inputs []CustomerInput) ([]*types.Customer, []string, error)
	List(ctx context.Context) ([]*types.Customer, error)
	GetByID(ctx context.Context, customerID uuid.UUID) (*types.Customer, error)
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{db: db, log: serviceLog, customerRepo: customerRepo}
}

func (cs *customerService) Create(ctx context.Context, input CustomerInput) (*types.Customer, error) {
	if !ValidPhone(input.Phone) {
		return nil, apierr.Validation("Invalid phone number format")
	}

	exists, err := cs.customerRepo.EmailExists(ctx, nil, input.Email)
	if err != nil {
		cs.log.Error("Email lookup failed", "error", err)
		return nil, apierr.Internal("Error creating customer: %v", err)
	}
	if exists {
		return nil, apierr.Validation("Email already exists")
	}

	customer := &types.Customer{
		ID:    uuid.New(),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	created, err := cs.customerRepo.Create(ctx, nil, []*types.Customer{customer})
	if err != nil {
		cs.log.Error("Customer insert failed", "error", err)
		return nil, apierr.Internal("Error creating customer: %v", err)
	}
	return created[0], nil
}

// BulkCreate applies the whole batch in one transaction but isolates each
// item in a savepoint, so a failed item is reported and skipped while the
// rest of the batch still commits. Phone format is the only validation run
// here; email uniqueness is not checked per item.
func (cs *customerService) BulkCreate(ctx context.Context, inputs []CustomerInput) ([]*types.Customer, []string, error) {
	customers := []*types.Customer{}
	itemErrors := []string{}

	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			if !ValidPhone(input.Phone) {
				itemErrors = append(itemErrors, fmt.Sprintf("Invalid phone number for %s", input.Name))
				continue
			}
			customer := &types.Customer{
				ID:    uuid.New(),
				Name:  input.Name,
				Email: input.Email,
				Phone: input.Phone,
			}
			if err := tx.Transaction(func(itemTx *gorm.DB) error {
				_, createErr := cs.customerRepo.Create(ctx, itemTx, []*types.Customer{customer})
				return createErr
			}); err != nil {
				itemErrors = append(itemErrors, fmt.Sprintf("Error creating customer %s: %v", input.Name, err))
				continue
			}
			customers = append(customers, customer)
		}
		return nil
	}); err != nil {
		cs.log.Error("Bulk customer create failed", "error", err)
		return nil, nil, apierr.Internal("Error creating customers: %v", err)
	}

	return customers, itemErrors, nil
}

func (cs *customerService) List(ctx context.Context) ([]*types.Customer, error) {
	return cs.customerRepo.List(ctx, nil)
}

// GetByID returns (nil, nil) for a missing customer. Lookups never error on
// absence; only mutations do.
func (cs *customerService) GetByID(ctx context.Context, customerID uuid.UUID) (*types.Customer, error) {
	found, err := cs.customerRepo.GetByIDs(ctx, nil, []uuid.UUID{customerID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

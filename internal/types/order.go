package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TotalAmount is a snapshot of the associated product prices at creation
// time. It is never recomputed when prices change later.
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;index;not null;column:customer_id" json:"customer_id"`
	Customer    *Customer       `json:"customer,omitempty"`
	Products    []*Product      `gorm:"many2many:order_product" json:"products,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;column:total_amount" json:"total_amount"`
	OrderDate   time.Time       `gorm:"not null;column:order_date" json:"order_date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

func (Order) TableName() string {
	return "order"
}

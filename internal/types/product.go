package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string          `gorm:"not null;column:name" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null;column:price" json:"price"`
	Stock     int             `gorm:"not null;default:0;column:stock" json:"stock"`
	Orders    []*Order        `gorm:"many2many:order_product" json:"orders,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

func (Product) TableName() string {
	return "product"
}

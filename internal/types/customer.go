package types

import (
	"time"

	"github.com/google/uuid"
)

// Customer email uniqueness is enforced by the service layer, not the
// database, so the column is indexed but not unique.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"index;not null;column:email" json:"email"`
	Phone     string    `gorm:"column:phone" json:"phone,omitempty"`
	Orders    []*Order  `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Customer) TableName() string {
	return "customer"
}

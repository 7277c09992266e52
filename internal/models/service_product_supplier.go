package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceProductSupplier is a priced offer for a product. A product may
// carry several offers, but read/update paths only ever use the one
// created first (lowest id).
type ServiceProductSupplier struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProductID uint           `gorm:"not null" json:"product_id"`
	Product   ServiceProduct `gorm:"foreignKey:ProductID" json:"product"`

	SupplierName string          `gorm:"size:100" json:"supplier_name"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MedspaID uint   `gorm:"not null" json:"medspa_id"`
	Medspa   Medspa `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"medspa"`

	StartTime time.Time `gorm:"not null" json:"start_time"`

	// Snapshots computed at creation time, never recomputed.
	TotalDuration int             `json:"total_duration"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`

	Status string `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	Services []AppointmentServiceSupplier `gorm:"foreignKey:AppointmentID" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

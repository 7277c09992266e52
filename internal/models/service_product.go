package models

import "time"

type ServiceProduct struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Duration in minutes. Price lives on the supplier offers.
	Duration int `gorm:"not null" json:"duration"`

	ServiceTypeID *uint        `json:"service_type_id"`
	ServiceType   *ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service_type"`

	MedspaID uint   `gorm:"not null" json:"medspa_id"`
	Medspa   Medspa `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"medspa"`

	Suppliers []ServiceProductSupplier `gorm:"foreignKey:ProductID" json:"suppliers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

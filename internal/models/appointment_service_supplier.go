package models

import "time"

// AppointmentServiceSupplier links an appointment to one priced offer.
// Insertion order (id) preserves the order the offers were booked in.
type AppointmentServiceSupplier struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"not null" json:"appointment_id"`

	ServiceProductSupplierID uint                   `gorm:"not null" json:"service_product_supplier_id"`
	Service                  ServiceProductSupplier `gorm:"foreignKey:ServiceProductSupplierID" json:"service"`

	CreatedAt time.Time `json:"created_at"`
}

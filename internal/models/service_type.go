package models

import "time"

type ServiceType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	CategoryID uint            `gorm:"not null" json:"category_id"`
	Category   ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

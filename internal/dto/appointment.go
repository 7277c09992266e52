package dto

// AppointmentDTO is the list/status-update shape.
type AppointmentDTO struct {
	ID            uint   `json:"id"`
	Status        string `json:"status"`
	StartTime     string `json:"start_time"`
	TotalDuration int    `json:"total_duration"`
	TotalPrice    string `json:"total_price"`
	MedspaID      uint   `json:"medspa_id"`
}

// AppointmentCreatedDTO echoes the offer ids actually associated, which
// may be a strict subset of the request's service_ids.
type AppointmentCreatedDTO struct {
	ID            uint   `json:"id"`
	StartTime     string `json:"start_time"`
	TotalDuration int    `json:"total_duration"`
	TotalPrice    string `json:"total_price"`
	Status        string `json:"status"`
	MedspaID      uint   `json:"medspa_id"`
	Services      []uint `json:"services"`
}

// AppointmentServiceLineDTO expands one booked offer. ID is the parent
// product's id, matching the service read shape.
type AppointmentServiceLineDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Duration     int    `json:"duration"`
	Price        string `json:"price"`
	SupplierName string `json:"supplier_name"`
}

type AppointmentDetailDTO struct {
	ID            uint                        `json:"id"`
	StartTime     string                      `json:"start_time"`
	TotalDuration int                         `json:"total_duration"`
	TotalPrice    string                      `json:"total_price"`
	Status        string                      `json:"status"`
	MedspaID      uint                        `json:"medspa_id"`
	Services      []AppointmentServiceLineDTO `json:"services"`
}

package dto

// ServiceDetailDTO is the create/read shape: product fields joined with
// the first supplier offer. Price and supplier name are null when the
// product has no offer yet.
type ServiceDetailDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Duration     int     `json:"duration"`
	MedspaID     uint    `json:"medspa_id"`
	Price        *string `json:"price"`
	SupplierName *string `json:"supplier_name"`
}

type ServiceUpdatedDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Price       *string `json:"price"`
}

type ServiceListItemDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Duration     int     `json:"duration"`
	Price        *string `json:"price"`
	SupplierName *string `json:"supplier_name"`
}

package dto

type ServiceCategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ServiceTypeDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

type ServiceTypeWithCategoryDTO struct {
	ID       uint               `json:"id"`
	Name     string             `json:"name"`
	Category ServiceCategoryDTO `json:"category"`
}

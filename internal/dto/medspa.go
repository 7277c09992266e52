package dto

type MedspaSummaryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

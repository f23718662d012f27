package dto

// TaxonomyRequest - создание/переименование справочной записи
type TaxonomyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
}

package dto

import "jobboard_backend/internal/models"

type CreateCompanyRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=200"`
	Description     string   `json:"description" validate:"max=8000"`
	City            string   `json:"city" validate:"max=100"`
	LegalFormID     string   `json:"legal_form_id"`
	Industries      []string `json:"industries"`
	Specializations []string `json:"specializations"`
}

type UpdateCompanyRequest struct {
	Name            *string   `json:"name" validate:"omitempty,min=2,max=200"`
	Description     *string   `json:"description" validate:"omitempty,max=8000"`
	City            *string   `json:"city" validate:"omitempty,max=100"`
	LegalFormID     *string   `json:"legal_form_id"`
	Industries      *[]string `json:"industries"`
	Specializations *[]string `json:"specializations"`
}

type TeamMemberRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Position string `json:"position" validate:"max=200"`
	About    string `json:"about" validate:"max=2000"`
}

// CompanyFilterQuery - allow-list фильтров публичной выборки компаний
type CompanyFilterQuery struct {
	City       string   `form:"city"`
	Industries []string `form:"industry"`
}

// CompanyView - компания с раскрытыми ссылками
type CompanyView struct {
	*models.Company
	Owner           *UserView     `json:"owner,omitempty"`
	LegalForm       *TaxonomyRef  `json:"legal_form,omitempty"`
	Industries      []TaxonomyRef `json:"industries"`
	Specializations []TaxonomyRef `json:"specializations"`
}

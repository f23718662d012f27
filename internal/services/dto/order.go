package dto

import "jobboard_backend/internal/models"

type CreateOrderRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=200"`
	Description     string   `json:"description" validate:"max=8000"`
	BudgetMin       float64  `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax       float64  `json:"budget_max" validate:"omitempty,min=0"`
	Specializations []string `json:"specializations"`
}

type UpdateOrderRequest struct {
	Title           *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string   `json:"description" validate:"omitempty,max=8000"`
	BudgetMin       *float64  `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax       *float64  `json:"budget_max" validate:"omitempty,min=0"`
	Specializations *[]string `json:"specializations"`
}

type ProjectInfoRequest struct {
	Deadline    string   `json:"deadline" validate:"max=100"`
	Stack       []string `json:"stack"`
	Description string   `json:"description" validate:"max=4000"`
}

// OrderFilterQuery - allow-list фильтров публичной выборки заказов
type OrderFilterQuery struct {
	Specializations []string `form:"specialization"`
}

// OrderView - заказ с раскрытыми ссылками
type OrderView struct {
	*models.Order
	Owner           *UserView     `json:"owner,omitempty"`
	Specializations []TaxonomyRef `json:"specializations"`
}

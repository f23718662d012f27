package dto

import "jobboard_backend/internal/models"

type CreateJobRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=200"`
	Description     string   `json:"description" validate:"max=8000"`
	City            string   `json:"city" validate:"max=100"`
	SalaryMin       float64  `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       float64  `json:"salary_max" validate:"omitempty,min=0"`
	Specializations []string `json:"specializations"`
	Industries      []string `json:"industries"`
	EmploymentTypes []string `json:"employment_types"`
	WorkStyles      []string `json:"work_styles"`
	RequiredSkills  []string `json:"required_skills"`
}

// UpdateJobRequest - частичное обновление: только переданные поля
type UpdateJobRequest struct {
	Title           *string   `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string   `json:"description" validate:"omitempty,max=8000"`
	City            *string   `json:"city" validate:"omitempty,max=100"`
	SalaryMin       *float64  `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *float64  `json:"salary_max" validate:"omitempty,min=0"`
	Specializations *[]string `json:"specializations"`
	Industries      *[]string `json:"industries"`
	EmploymentTypes *[]string `json:"employment_types"`
	WorkStyles      *[]string `json:"work_styles"`
	RequiredSkills  *[]string `json:"required_skills"`
}

type JobRequirementsRequest struct {
	Experience string   `json:"experience" validate:"max=200"`
	Education  string   `json:"education" validate:"max=200"`
	Skills     []string `json:"skills"`
	Languages  []string `json:"languages"`
}

type EmployerInfoRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=2,max=200"`
	ContactName string `json:"contact_name" validate:"max=200"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=30"`
}

// JobFilterQuery - allow-list фильтров публичной выборки вакансий
type JobFilterQuery struct {
	City            string   `form:"city"`
	Specializations []string `form:"specialization"`
	Industries      []string `form:"industry"`
	EmploymentTypes []string `form:"employment_type"`
}

// JobView - вакансия с раскрытыми ссылками на справочники
// и владельцем. Поля-ссылки затеняют id-массивы модели.
type JobView struct {
	*models.Job
	Owner           *UserView     `json:"owner,omitempty"`
	Specializations []TaxonomyRef `json:"specializations"`
	Industries      []TaxonomyRef `json:"industries"`
	EmploymentTypes []TaxonomyRef `json:"employment_types"`
	WorkStyles      []TaxonomyRef `json:"work_styles"`
	RequiredSkills  []TaxonomyRef `json:"required_skills"`
}

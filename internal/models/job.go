package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	OwnerID string       `gorm:"not null;index" json:"owner_id"`
	Owner   *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	State   PublishState `gorm:"type:varchar(10);not null;default:'private'" json:"state"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	City        string  `gorm:"index" json:"city"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`

	// Массивы ссылок на справочники (id), раскрываются в ответах на один уровень
	Specializations datatypes.JSONSlice[string] `json:"specializations"`
	Industries      datatypes.JSONSlice[string] `json:"industries"`
	EmploymentTypes datatypes.JSONSlice[string] `json:"employment_types"`
	WorkStyles      datatypes.JSONSlice[string] `json:"work_styles"`
	RequiredSkills  datatypes.JSONSlice[string] `json:"required_skills"`

	Requirements datatypes.JSONType[JobRequirements] `json:"requirements"`
	EmployerInfo datatypes.JSONType[EmployerInfo]    `json:"employer_info"`
}

// JobRequirements - требования к кандидату (вложенный документ)
type JobRequirements struct {
	ID         string   `json:"id"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	Skills     []string `json:"skills"`
	Languages  []string `json:"languages"`
}

func (r JobRequirements) ItemID() string { return r.ID }

// EmployerInfo - сведения о работодателе (вложенный документ)
type EmployerInfo struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

func (e EmployerInfo) ItemID() string { return e.ID }

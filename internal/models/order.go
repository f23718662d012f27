package models

import (
	"gorm.io/datatypes"
)

type Order struct {
	BaseModel
	OwnerID string       `gorm:"not null;index" json:"owner_id"`
	Owner   *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	State   PublishState `gorm:"type:varchar(10);not null;default:'private'" json:"state"`

	Title       string  `gorm:"not null" json:"title"`
	Description string  `json:"description"`
	BudgetMin   float64 `json:"budget_min"`
	BudgetMax   float64 `json:"budget_max"`

	Specializations datatypes.JSONSlice[string] `json:"specializations"`

	ProjectInfo datatypes.JSONType[ProjectInfo] `json:"project_info"`
	Contacts    datatypes.JSONType[ContactInfo] `json:"contacts"`
}

// ProjectInfo - сведения о проекте заказа (вложенный документ)
type ProjectInfo struct {
	ID          string   `json:"id"`
	Deadline    string   `json:"deadline"`
	Stack       []string `json:"stack"`
	Description string   `json:"description"`
}

func (p ProjectInfo) ItemID() string { return p.ID }

package models

import (
	"gorm.io/datatypes"
)

type Company struct {
	BaseModel
	OwnerID string       `gorm:"not null;index" json:"owner_id"`
	Owner   *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	State   PublishState `gorm:"type:varchar(10);not null;default:'private'" json:"state"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	City        string `gorm:"index" json:"city"`
	LegalFormID string `json:"legal_form_id"` // ссылка на LegalForm

	Industries      datatypes.JSONSlice[string] `json:"industries"`
	Specializations datatypes.JSONSlice[string] `json:"specializations"`

	Contacts   datatypes.JSONType[ContactInfo]    `json:"contacts"`
	Team       datatypes.JSONSlice[TeamMember]    `json:"team"`
	Portfolios datatypes.JSONSlice[PortfolioItem] `json:"portfolios"`
}

// TeamMember - участник команды компании
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	About    string `json:"about"`
}

func (m TeamMember) ItemID() string { return m.ID }

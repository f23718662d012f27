package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email             string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string       `gorm:"not null" json:"-"`
	Role              UserRole     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	State             PublishState `gorm:"type:varchar(10);not null;default:'private'" json:"state"`
	IsVerified        bool         `gorm:"default:false" json:"is_verified"`
	VerificationToken string       `json:"-"`
	ResetToken        string       `json:"-"`
	ResetTokenExp     *time.Time   `json:"-"`
	RefreshTokenHash  string       `json:"-"`

	Profile  datatypes.JSONType[UserProfile] `json:"profile"`
	Contacts datatypes.JSONType[ContactInfo] `json:"contacts"`

	WorkExperiences datatypes.JSONSlice[WorkExperienceItem] `json:"work_experiences"`
	Educations      datatypes.JSONSlice[EducationItem]      `json:"educations"`
	Achievements    datatypes.JSONSlice[AchievementItem]    `json:"achievements"`
	Portfolios      datatypes.JSONSlice[PortfolioItem]      `json:"portfolios"`
}

// UserProfile - анкета пользователя (вложенный документ)
type UserProfile struct {
	FirstName                string   `json:"first_name"`
	LastName                 string   `json:"last_name"`
	About                    string   `json:"about"`
	Phone                    string   `json:"phone"`
	Skills                   []string `json:"skills"`                    // ссылки на Skill
	SpecializationCategories []string `json:"specialization_categories"` // ссылки на SpecializationCategory
	RegionID                 string   `json:"region_id"`                 // ссылка на Region
}

// ContactInfo - контактный вложенный документ (общий для профиля,
// компании и заказа)
type ContactInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Address  string `json:"address"`
	Telegram string `json:"telegram"`
}

func (c ContactInfo) ItemID() string { return c.ID }

// WorkExperienceItem - запись опыта работы
type WorkExperienceItem struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
}

func (w WorkExperienceItem) ItemID() string { return w.ID }

// EducationItem - запись об образовании
type EducationItem struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year"`
}

func (e EducationItem) ItemID() string { return e.ID }

// AchievementItem - достижение
type AchievementItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

func (a AchievementItem) ItemID() string { return a.ID }

// PortfolioItem - работа в портфолио (профиль или компания)
type PortfolioItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (p PortfolioItem) ItemID() string { return p.ID }

package dto

import "jobboard_backend/internal/models"

// UpdateProfileRequest - частичное обновление анкеты.
// Поля-указатели: применяются только явно переданные значения,
// без слепого наложения произвольного патча.
type UpdateProfileRequest struct {
	FirstName                *string   `json:"first_name" validate:"omitempty,max=100"`
	LastName                 *string   `json:"last_name" validate:"omitempty,max=100"`
	About                    *string   `json:"about" validate:"omitempty,max=4000"`
	Phone                    *string   `json:"phone" validate:"omitempty,max=30"`
	Skills                   *[]string `json:"skills"`
	SpecializationCategories *[]string `json:"specialization_categories"`
	RegionID                 *string   `json:"region_id"`
}

type WorkExperienceRequest struct {
	Company     string `json:"company" validate:"required,min=2,max=200"`
	Position    string `json:"position" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"max=2000"`
	StartYear   int    `json:"start_year" validate:"omitempty,min=1950,max=2100"`
	EndYear     int    `json:"end_year" validate:"omitempty,min=1950,max=2100"`
}

type EducationRequest struct {
	Institution string `json:"institution" validate:"required,min=2,max=200"`
	Degree      string `json:"degree" validate:"max=100"`
	Field       string `json:"field" validate:"max=200"`
	StartYear   int    `json:"start_year" validate:"omitempty,min=1950,max=2100"`
	EndYear     int    `json:"end_year" validate:"omitempty,min=1950,max=2100"`
}

type AchievementRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Year        int    `json:"year" validate:"omitempty,min=1950,max=2100"`
}

// ProfileView - анкета с раскрытыми ссылками на справочники
type ProfileView struct {
	FirstName                string        `json:"first_name"`
	LastName                 string        `json:"last_name"`
	About                    string        `json:"about"`
	Phone                    string        `json:"phone"`
	Skills                   []TaxonomyRef `json:"skills"`
	SpecializationCategories []TaxonomyRef `json:"specialization_categories"`
	Region                   *TaxonomyRef  `json:"region,omitempty"`
}

// UserView - публичное представление пользователя.
// Раскрытый профиль затеняет jsonb-поле модели.
type UserView struct {
	*models.User
	Profile ProfileView `json:"profile"`
}

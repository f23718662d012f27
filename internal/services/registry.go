package services

import (
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	UserService        UserService
	AuthService        AuthService
	JobService         JobService
	CompanyService     CompanyService
	OrderService       OrderService
	ApplicationService ApplicationService
	TaxonomyServices   *TaxonomyServices
	EmailService       email.Provider
	Storage            storage.Storage
}

package app

import (
	"errors"
	"fmt"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/database"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init("production")
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	tokens, err := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTTL,
		cfg.JWT.RefreshSecret,
		cfg.JWT.RefreshTTL,
	)
	if err != nil {
		logger.Fatal("Failed to initialize token manager", "error", err)
	}

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	orderRepo := repositories.NewOrderRepository(gormDB)

	serviceContainer := initializeServices(cfg, gormDB, tokens, storageInstance)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter()

	routes.RegisterRoutes(ginRouter, appHandlers, &routes.Deps{
		Tokens:      tokens,
		UserRepo:    userRepo,
		JobRepo:     jobRepo,
		CompanyRepo: companyRepo,
		OrderRepo:   orderRepo,
	})

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tokens *auth.TokenManager, storageInstance storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPSender(email.Config{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUsername: cfg.Email.SMTPUsername,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromEmail:    cfg.Email.FromEmail,
			FromName:     cfg.Email.FromName,
			BaseURL:      cfg.Email.BaseURL,
		})
	} else {
		logger.Warn("SMTP is not configured, emails will be dropped")
		emailService = &NoopEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	orderRepo := repositories.NewOrderRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	taxRepos := repositories.NewTaxonomyRepos(gormDB)

	userService := services.NewUserService(userRepo, taxRepos)
	authService := services.NewAuthService(userRepo, userService, tokens, emailService)
	jobService := services.NewJobService(jobRepo, userService, taxRepos)
	companyService := services.NewCompanyService(companyRepo, userService, taxRepos)
	orderService := services.NewOrderService(orderRepo, userService, taxRepos)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, storageInstance)
	taxonomyServices := services.NewTaxonomyServices(taxRepos)

	return &services.ServiceContainer{
		UserService:        userService,
		AuthService:        authService,
		JobService:         jobService,
		CompanyService:     companyService,
		OrderService:       orderService,
		ApplicationService: applicationService,
		TaxonomyServices:   taxonomyServices,
		EmailService:       emailService,
		Storage:            storageInstance,
	}
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, svc.AuthService),
		UserHandler:    handlers.NewUserHandler(baseHandler, svc.UserService),
		JobHandler:     handlers.NewJobHandler(baseHandler, svc.JobService),
		CompanyHandler: handlers.NewCompanyHandler(baseHandler, svc.CompanyService),
		OrderHandler:   handlers.NewOrderHandler(baseHandler, svc.OrderService),
		ApplicationHandler: handlers.NewApplicationHandler(
			baseHandler,
			svc.ApplicationService,
			cfg.Upload.MaxSize,
			cfg.Upload.AllowedTypes,
		),
		FileHandler:      handlers.NewFileHandler(baseHandler, svc.Storage),
		TaxonomyHandlers: handlers.NewTaxonomyHandlers(baseHandler, svc.TaxonomyServices),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого администратора, если задан в конфиге.
// Повторный запуск ничего не меняет.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
		State:        models.StatePrivate,
		IsVerified:   true,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}

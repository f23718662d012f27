package routes

import (
	"net/http"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Deps - зависимости, нужные middleware маршрутов
type Deps struct {
	Tokens      *auth.TokenManager
	UserRepo    repositories.UserRepository
	JobRepo     repositories.JobRepository
	CompanyRepo repositories.CompanyRepository
	OrderRepo   repositories.OrderRepository
}

// RegisterRoutes регистрирует все HTTP-маршруты под /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, h *handlers.AppHandlers, deps *Deps) {
	ginRouter.NoRoute(apperrors.NoRouteHandler())

	authRequired := middleware.AuthMiddleware(deps.Tokens, deps.UserRepo)
	adminOnly := middleware.AdminMiddleware()
	jobOwner := middleware.JobOwnerMiddleware(deps.JobRepo)
	companyOwner := middleware.CompanyOwnerMiddleware(deps.CompanyRepo)
	orderOwner := middleware.OrderOwnerMiddleware(deps.OrderRepo)

	api := ginRouter.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Аутентификация
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.AuthHandler.Register)
		authGroup.POST("/login", h.AuthHandler.Login)
		authGroup.POST("/refresh", h.AuthHandler.Refresh)
		authGroup.POST("/logout", authRequired, h.AuthHandler.Logout)
		authGroup.GET("/activate/:token", h.AuthHandler.Activate)
		authGroup.POST("/password-reset", h.AuthHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", h.AuthHandler.ResetPassword)
	}

	// Публичные чтения: видны только документы в состоянии public
	api.GET("/profiles", h.UserHandler.ListPublicProfiles)
	api.GET("/profiles/:id", h.UserHandler.GetPublicProfile)
	api.GET("/jobs", h.JobHandler.ListPublic)
	api.GET("/jobs/:id", h.JobHandler.GetPublic)
	api.GET("/companies", h.CompanyHandler.ListPublic)
	api.GET("/companies/:id", h.CompanyHandler.GetPublic)
	api.GET("/orders", h.OrderHandler.ListPublic)
	api.GET("/orders/:id", h.OrderHandler.GetPublic)

	// Публичный отклик на опубликованную вакансию
	api.POST("/jobs/:id/apply", h.ApplicationHandler.Apply)

	// Сохраненные файлы (резюме)
	api.GET("/files/*filepath", h.FileHandler.Serve)

	// Собственный профиль
	me := api.Group("/me", authRequired)
	{
		me.GET("", h.UserHandler.GetOwnProfile)
		me.PUT("/profile", h.UserHandler.UpdateProfile)
		me.PUT("/contacts", h.UserHandler.UpdateContacts)
		me.PUT("/state", h.UserHandler.SetPublishState)

		me.POST("/work-experiences", h.UserHandler.AddWorkExperience)
		me.PUT("/work-experiences/:itemId", h.UserHandler.UpdateWorkExperience)
		me.DELETE("/work-experiences/:itemId", h.UserHandler.DeleteWorkExperience)

		me.POST("/educations", h.UserHandler.AddEducation)
		me.PUT("/educations/:itemId", h.UserHandler.UpdateEducation)
		me.DELETE("/educations/:itemId", h.UserHandler.DeleteEducation)

		me.POST("/achievements", h.UserHandler.AddAchievement)
		me.PUT("/achievements/:itemId", h.UserHandler.UpdateAchievement)
		me.DELETE("/achievements/:itemId", h.UserHandler.DeleteAchievement)

		me.POST("/portfolios", h.UserHandler.AddPortfolioItem)
		me.PUT("/portfolios/:itemId", h.UserHandler.UpdatePortfolioItem)
		me.DELETE("/portfolios/:itemId", h.UserHandler.DeletePortfolioItem)

		me.GET("/jobs", h.JobHandler.ListMine)
		me.GET("/companies", h.CompanyHandler.ListMine)
		me.GET("/orders", h.OrderHandler.ListMine)
	}

	// Вакансии: создание - любой авторизованный, изменение - владелец
	api.POST("/jobs", authRequired, h.JobHandler.Create)
	jobs := api.Group("/jobs/:id", authRequired, jobOwner)
	{
		jobs.PUT("", h.JobHandler.Update)
		jobs.DELETE("", h.JobHandler.Delete)
		jobs.PUT("/state", h.JobHandler.SetPublishState)
		jobs.PUT("/requirements", h.JobHandler.UpdateRequirements)
		jobs.PUT("/employer-info", h.JobHandler.UpdateEmployerInfo)
		jobs.GET("/applications", h.ApplicationHandler.ListForJob)
	}

	// Компании
	api.POST("/companies", authRequired, h.CompanyHandler.Create)
	companies := api.Group("/companies/:id", authRequired, companyOwner)
	{
		companies.PUT("", h.CompanyHandler.Update)
		companies.DELETE("", h.CompanyHandler.Delete)
		companies.PUT("/state", h.CompanyHandler.SetPublishState)
		companies.PUT("/contacts", h.CompanyHandler.UpdateContacts)

		companies.POST("/team", h.CompanyHandler.AddTeamMember)
		companies.PUT("/team/:itemId", h.CompanyHandler.UpdateTeamMember)
		companies.DELETE("/team/:itemId", h.CompanyHandler.DeleteTeamMember)

		companies.POST("/portfolios", h.CompanyHandler.AddPortfolioItem)
		companies.PUT("/portfolios/:itemId", h.CompanyHandler.UpdatePortfolioItem)
		companies.DELETE("/portfolios/:itemId", h.CompanyHandler.DeletePortfolioItem)
	}

	// Заказы
	api.POST("/orders", authRequired, h.OrderHandler.Create)
	orders := api.Group("/orders/:id", authRequired, orderOwner)
	{
		orders.PUT("", h.OrderHandler.Update)
		orders.DELETE("", h.OrderHandler.Delete)
		orders.PUT("/state", h.OrderHandler.SetPublishState)
		orders.PUT("/project-info", h.OrderHandler.UpdateProjectInfo)
		orders.PUT("/contacts", h.OrderHandler.UpdateContacts)
	}

	// Справочники: чтение публично, запись - только администратор
	admin := api.Group("/admin", authRequired, adminOnly)
	h.TaxonomyHandlers.RegisterRoutes(api, admin)
}

package middleware

import (
	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware - проверка access-токена из cookie.
// Кладет userID и роль в контекст запроса.
func AuthMiddleware(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(auth.AccessCookieName)
		if err != nil || tokenStr == "" {
			apperrors.HandleError(c, apperrors.ErrAuthTokenMissing)
			return
		}

		claims, err := tokens.ParseAccessToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrWrongAuthToken)
			return
		}

		// Пользователь мог быть удален после выпуска токена
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrWrongAuthToken)
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, user.Role)
		c.Next()
	}
}

// AdminMiddleware пускает дальше только администраторов
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != models.UserRoleAdmin {
			apperrors.HandleError(c, apperrors.ErrPermissionDenied)
			return
		}
		c.Next()
	}
}

// JobOwnerMiddleware проверяет, что вакансия из :id принадлежит
// текущему пользователю. Администратору разрешено все.
func JobOwnerMiddleware(jobRepo repositories.JobRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) == models.UserRoleAdmin {
			c.Next()
			return
		}

		id := c.Param("id")
		job, err := jobRepo.FindByID(id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrJobNotFound) {
				apperrors.HandleError(c, apperrors.NotFound("Job", id))
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		if job.OwnerID != GetUserID(c) {
			apperrors.HandleError(c, apperrors.ErrNotAllowed)
			return
		}
		c.Next()
	}
}

// CompanyOwnerMiddleware - аналогично для компаний
func CompanyOwnerMiddleware(companyRepo repositories.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) == models.UserRoleAdmin {
			c.Next()
			return
		}

		id := c.Param("id")
		company, err := companyRepo.FindByID(id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrCompanyNotFound) {
				apperrors.HandleError(c, apperrors.NotFound("Company", id))
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		if company.OwnerID != GetUserID(c) {
			apperrors.HandleError(c, apperrors.ErrNotAllowed)
			return
		}
		c.Next()
	}
}

// OrderOwnerMiddleware - аналогично для заказов
func OrderOwnerMiddleware(orderRepo repositories.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) == models.UserRoleAdmin {
			c.Next()
			return
		}

		id := c.Param("id")
		order, err := orderRepo.FindByID(id)
		if err != nil {
			if apperrors.Is(err, repositories.ErrOrderNotFound) {
				apperrors.HandleError(c, apperrors.NotFound("Order", id))
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		if order.OwnerID != GetUserID(c) {
			apperrors.HandleError(c, apperrors.ErrNotAllowed)
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetUserRole извлекает роль пользователя из контекста
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(ContextRoleKey)
	if !exists {
		return ""
	}

	role, ok := roleVal.(models.UserRole)
	if !ok {
		roleStr, isString := roleVal.(string)
		if !isString {
			return ""
		}
		role = models.UserRole(roleStr)
	}

	return role
}

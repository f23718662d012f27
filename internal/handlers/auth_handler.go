package handlers

import (
	"net/http"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email to activate your account.",
	})
}

// Login выпускает пару токенов и кладет их в HttpOnly cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	pair, user, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAccessCookie(c, pair.AccessToken, pair.AccessTTL)
	auth.SetRefreshCookie(c, pair.RefreshToken, pair.RefreshTTL)

	c.JSON(http.StatusOK, dto.LoginResponse{User: user})
}

// Refresh ротирует сессию по refresh-cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(auth.RefreshCookieName)
	if err != nil || refreshToken == "" {
		apperrors.HandleError(c, apperrors.ErrAuthTokenMissing)
		return
	}

	pair, user, err := h.authService.Refresh(refreshToken)
	if err != nil {
		auth.ClearAuthCookies(c)
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAccessCookie(c, pair.AccessToken, pair.AccessTTL)
	auth.SetRefreshCookie(c, pair.RefreshToken, pair.RefreshTTL)

	c.JSON(http.StatusOK, dto.LoginResponse{User: user})
}

// Logout сбрасывает сессию на сервере и чистит cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.ClearAuthCookies(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged out",
	})
}

// Activate подтверждает email по токену из письма
func (h *AuthHandler) Activate(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing activation token"))
		return
	}

	if err := h.authService.Activate(token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email successfully verified",
	})
}

// RequestPasswordReset всегда отвечает одинаково, чтобы не
// раскрывать существование аккаунта
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		logger.CtxWarn(c.Request.Context(), "Password reset request failed (hiding from user)",
			"error", err.Error(),
			"email", req.Email,
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If the email exists, a password reset link has been sent",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.PasswordResetConfirm
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password successfully reset",
	})
}

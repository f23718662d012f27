package services

import (
	"time"

	"jobboard_backend/internal/apperrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

// TokenPair - выпущенные токены с их TTL; хендлер кладет их в cookie
type TokenPair struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken string
	RefreshTTL   time.Duration
}

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*TokenPair, *dto.UserView, error)
	Refresh(refreshToken string) (*TokenPair, *dto.UserView, error)
	Logout(userID string) error
	Activate(token string) error
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	userService UserService
	tokens      *auth.TokenManager
	emails      email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	userService UserService,
	tokens *auth.TokenManager,
	emails email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		userService: userService,
		tokens:      tokens,
		emails:      emails,
	}
}

// Register - регистрация нового пользователя.
// Аккаунт остается неактивным до подтверждения email.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verificationToken := uuid.NewString()

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hashed,
		Role:              models.UserRoleUser,
		State:             models.StatePrivate,
		IsVerified:        false,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	// Почта - побочный канал: сбой отправки не откатывает регистрацию
	if err := s.emails.SendActivation(user.Email, verificationToken); err != nil {
		logger.Warn("Failed to send activation email", "error", err, "email", user.Email)
	}

	return nil
}

// Login - аутентификация. До активации аккаунта вход невозможен.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*TokenPair, *dto.UserView, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.ErrWrongCredentials
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, nil, apperrors.ErrWrongCredentials
	}

	if !user.IsVerified {
		return nil, nil, apperrors.ErrWrongCredentials
	}

	pair, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	view, err := s.userService.GetOwnProfile(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return pair, view, nil
}

// Refresh - обновление сессии по refresh token с ротацией
func (s *AuthServiceImpl) Refresh(refreshToken string) (*TokenPair, *dto.UserView, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, apperrors.ErrWrongAuthToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, nil, apperrors.ErrWrongAuthToken
	}

	// Сверяем предъявленный токен с сохраненным хешем:
	// после logout или ротации старый токен недействителен
	if !auth.CheckTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, nil, apperrors.ErrWrongAuthToken
	}

	pair, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	view, err := s.userService.GetOwnProfile(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return pair, view, nil
}

// Logout сбрасывает сохраненный refresh-хеш; cookie чистит хендлер
func (s *AuthServiceImpl) Logout(userID string) error {
	if err := s.userRepo.UpdateRefreshTokenHash(userID, ""); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("User", userID)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Activate подтверждает email по токену из письма
func (s *AuthServiceImpl) Activate(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrWrongAuthToken
		}
		return apperrors.InternalError(err)
	}

	user.IsVerified = true
	user.VerificationToken = ""

	if err := s.userRepo.Save(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset выдает токен сброса и шлет письмо.
// Наличие/отсутствие аккаунта наружу не раскрывается.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token := uuid.NewString()
	exp := time.Now().Add(time.Hour)
	user.ResetToken = token
	user.ResetTokenExp = &exp

	if err := s.userRepo.Save(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emails.SendPasswordReset(user.Email, token); err != nil {
		logger.Warn("Failed to send password reset email", "error", err, "email", user.Email)
	}

	return nil
}

// ResetPassword устанавливает новый пароль по действующему токену сброса
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrWrongAuthToken
		}
		return apperrors.InternalError(err)
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrWrongAuthToken
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashed
	user.ResetToken = ""
	user.ResetTokenExp = nil
	user.RefreshTokenHash = "" // все сессии инвалидируются

	if err := s.userRepo.Save(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// issueTokens выпускает пару токенов и сохраняет хеш refresh
func (s *AuthServiceImpl) issueTokens(userID string) (*TokenPair, error) {
	accessToken, accessTTL, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, refreshTTL, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateRefreshTokenHash(userID, auth.HashToken(refreshToken)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		AccessTTL:    accessTTL,
		RefreshToken: refreshToken,
		RefreshTTL:   refreshTTL,
	}, nil
}

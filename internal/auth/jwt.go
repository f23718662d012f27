package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims - полезная нагрузка access/refresh токенов
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager подписывает и проверяет JWT. Секреты и TTL задаются один раз
// при старте; их отсутствие - фатальная ошибка конфигурации.
type TokenManager struct {
	accessSecret  []byte
	accessTTL     time.Duration
	refreshSecret []byte
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret string, accessTTLSeconds int, refreshSecret string, refreshTTLSeconds int) (*TokenManager, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("jwt secrets are not configured")
	}
	if accessTTLSeconds <= 0 || refreshTTLSeconds <= 0 {
		return nil, errors.New("jwt ttl is not configured")
	}
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		accessTTL:     time.Duration(accessTTLSeconds) * time.Second,
		refreshSecret: []byte(refreshSecret),
		refreshTTL:    time.Duration(refreshTTLSeconds) * time.Second,
	}, nil
}

// GenerateAccessToken выпускает короткоживущий access token
func (m *TokenManager) GenerateAccessToken(userID string) (string, time.Duration, error) {
	token, err := m.generate(userID, m.accessSecret, m.accessTTL)
	return token, m.accessTTL, err
}

// GenerateRefreshToken выпускает долгоживущий refresh token.
// Хеш токена сохраняет вызывающая сторона.
func (m *TokenManager) GenerateRefreshToken(userID string) (string, time.Duration, error) {
	token, err := m.generate(userID, m.refreshSecret, m.refreshTTL)
	return token, m.refreshTTL, err
}

func (m *TokenManager) generate(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAccessToken проверяет подпись и срок действия access token
func (m *TokenManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, m.accessSecret)
}

// ParseRefreshToken проверяет подпись и срок действия refresh token
func (m *TokenManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parse(tokenStr, m.refreshSecret)
}

func parse(tokenStr string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

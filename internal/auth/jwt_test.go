package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *TokenManager {
	m, err := NewTokenManager("access-secret", 900, "refresh-secret", 3600)
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_MissingConfig(t *testing.T) {
	_, err := NewTokenManager("", 900, "refresh-secret", 3600)
	assert.Error(t, err)

	_, err = NewTokenManager("access-secret", 900, "", 3600)
	assert.Error(t, err)

	_, err = NewTokenManager("access-secret", 0, "refresh-secret", 3600)
	assert.Error(t, err)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	token, ttl, err := m.GenerateAccessToken("user-42")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, ttl)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	token, ttl, err := m.GenerateRefreshToken("user-42")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}

// Access и refresh подписываются разными секретами:
// токены не взаимозаменяемы
func TestTokens_NotInterchangeable(t *testing.T) {
	m := newTestManager(t)

	access, _, err := m.GenerateAccessToken("user-42")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	refresh, _, err := m.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	m, err := NewTokenManager("access-secret", 1, "refresh-secret", 1)
	require.NoError(t, err)

	// Выпускаем токен, живший одну секунду в прошлом
	token, err := m.generate("user-42", m.accessSecret, -time.Second)
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	m := newTestManager(t)

	_, err := m.ParseAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewTokenManager("another-secret", 900, "refresh-secret", 3600)
	require.NoError(t, err)

	token, _, err := other.GenerateAccessToken("user-42")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

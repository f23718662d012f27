package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("super_password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestCheckPasswordHash_EmptyHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", ""))
}

func TestHashToken(t *testing.T) {
	// JWT длиннее лимита bcrypt, хеш должен работать на любой длине
	longToken := strings.Repeat("a.b.c", 100)

	h1 := HashToken(longToken)
	h2 := HashToken(longToken)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64) // sha256 hex

	assert.NotEqual(t, h1, HashToken(longToken+"x"))
}

func TestCheckTokenHash(t *testing.T) {
	token := "some.refresh.token"
	hash := HashToken(token)

	assert.True(t, CheckTokenHash(token, hash))
	assert.False(t, CheckTokenHash("other.token", hash))
	// Пустой сохраненный хеш (после logout) никогда не совпадает
	assert.False(t, CheckTokenHash(token, ""))
	assert.False(t, CheckTokenHash("", ""))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

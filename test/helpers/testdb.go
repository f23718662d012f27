package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser создает пользователя напрямую в БД с хешированием пароля.
// По умолчанию аккаунт верифицирован, чтобы тесты могли сразу логиниться.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := auth.HashPassword(user.PasswordHash)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = hashed
	}

	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	if user.State == "" {
		user.State = models.StatePrivate
	}
	user.IsVerified = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ERROR: failed to create user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API.
// Возвращает сессионные cookie и самого пользователя.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) ([]*http.Cookie, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, ts.DB, user)
	require.NoError(t, err, "Creating test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", nil, loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Login must succeed. Response: "+bodyStr)

	cookies := res.Cookies()
	var hasAccess bool
	for _, ck := range cookies {
		if ck.Name == auth.AccessCookieName && ck.Value != "" {
			hasAccess = true
		}
	}
	assert.True(t, hasAccess, "Login response must set the access cookie")

	user.PasswordHash = password
	return cookies, user
}

// NewRegularUser создает обычного пользователя с уникальным email
func NewRegularUser(t *testing.T, ts *TestServer) ([]*http.Cookie, *models.User) {
	email := fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, email, "password123", models.UserRoleUser)
}

// NewAdminUser создает администратора с уникальным email
func NewAdminUser(t *testing.T, ts *TestServer) ([]*http.Cookie, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, email, "password123", models.UserRoleAdmin)
}

// CreateSkill создает запись справочника навыков напрямую в БД
func CreateSkill(t *testing.T, db *gorm.DB, name string) *models.Skill {
	skill := &models.Skill{}
	skill.Name = name
	require.NoError(t, db.Create(skill).Error, "Failed to create skill")
	return skill
}

// CreateRegion создает запись справочника регионов напрямую в БД
func CreateRegion(t *testing.T, db *gorm.DB, name string) *models.Region {
	region := &models.Region{}
	region.Name = name
	require.NoError(t, db.Create(region).Error, "Failed to create region")
	return region
}

// CreateSpecialization создает запись справочника специализаций напрямую в БД
func CreateSpecialization(t *testing.T, db *gorm.DB, name string) *models.Specialization {
	spec := &models.Specialization{}
	spec.Name = name
	require.NoError(t, db.Create(spec).Error, "Failed to create specialization")
	return spec
}

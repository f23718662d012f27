package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Регистрация успешна, но до активации email вход невозможен
func TestAuthFlow_LoginBeforeActivation(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	email := fmt.Sprintf("pending_%d@test.com", time.Now().UnixNano())

	registerBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", nil, registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", nil, loginBody)

	// Неактивированный аккаунт неотличим от неверных учетных данных
	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Wrong credentials")
}

// Полный путь: регистрация -> активация по токену -> логин
func TestAuthFlow_ActivateThenLogin(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	email := fmt.Sprintf("activate_%d@test.com", time.Now().UnixNano())

	regRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", nil, map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusCreated, regRes.StatusCode)

	// Токен активации достаем из БД (письма в тестах не отправляются)
	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)
	require.NotEmpty(t, user.VerificationToken)
	require.False(t, user.IsVerified)

	actRes, _ := ts.SendRequest(t, "GET", "/api/v1/auth/activate/"+user.VerificationToken, nil, nil)
	assert.Equal(t, http.StatusOK, actRes.StatusCode)

	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", nil, map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, email)

	// Токены приходят в HttpOnly cookie, а не в теле
	assert.NotContains(t, logBodyStr, "access_token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "pass123",
	})
	require.NoError(t, err)

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", nil, map[string]interface{}{
		"email":    email,
		"password": "password_is_long_enough_123",
	})

	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Email already exists")
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	email := fmt.Sprintf("badpass_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "correct-password",
	})
	require.NoError(t, err)

	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", nil, map[string]interface{}{
		"email":    email,
		"password": "WRONG-password",
	})

	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Wrong credentials")
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	regRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", nil, map[string]interface{}{
		"email":    fmt.Sprintf("weak_%d@test.com", time.Now().UnixNano()),
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, regRes.StatusCode)
}

// После logout старые cookie больше не дают доступа
func TestLogout_InvalidatesSession(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)

	meRes, _ := ts.SendRequest(t, "GET", "/api/v1/me", cookies, nil)
	require.Equal(t, http.StatusOK, meRes.StatusCode)

	outRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/logout", cookies, nil)
	require.Equal(t, http.StatusOK, outRes.StatusCode)

	// Refresh по отозванному токену невозможен
	refRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", cookies, nil)
	assert.Equal(t, http.StatusUnauthorized, refRes.StatusCode)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, user := helpers.NewRegularUser(t, ts)

	refRes, refBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", cookies, nil)
	require.Equal(t, http.StatusOK, refRes.StatusCode)
	assert.Contains(t, refBodyStr, user.Email)
	assert.NotEmpty(t, refRes.Cookies())
}

func TestProtectedRoute_NoCookie(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/v1/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, meRes.StatusCode)
	assert.Contains(t, meBodyStr, "AUTHENTICATION_TOKEN_MISSING")
}

func TestUnknownPath_Returns404Shape(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/definitely/not/here", nil, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "PATH_NOT_FOUND")
}

package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Запись справочника создает только администратор
func TestTaxonomyCreate_AdminOnly(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	name := fmt.Sprintf("Go %d", time.Now().UnixNano())

	// Без авторизации
	res, _ := ts.SendRequest(t, "POST", "/api/v1/admin/skills", nil, map[string]interface{}{
		"name": name,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Обычный пользователь
	userCookies, _ := helpers.NewRegularUser(t, ts)
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/admin/skills", userCookies, map[string]interface{}{
		"name": name,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "PERMISSION_DENIED")

	// Администратор
	adminCookies, _ := helpers.NewAdminUser(t, ts)
	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/admin/skills", adminCookies, map[string]interface{}{
		"name": name,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, name)
}

// Повторное имя в справочнике - ошибка валидации, не конфликт
func TestTaxonomyCreate_DuplicateName(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	adminCookies, _ := helpers.NewAdminUser(t, ts)
	name := fmt.Sprintf("Python %d", time.Now().UnixNano())

	res, _ := ts.SendRequest(t, "POST", "/api/v1/admin/skills", adminCookies, map[string]interface{}{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/admin/skills", adminCookies, map[string]interface{}{
		"name": name,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "VALIDATION_FAILED")
}

// Чтение справочника публично
func TestTaxonomyRead_Public(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	name := fmt.Sprintf("Region %d", time.Now().UnixNano())
	region := helpers.CreateRegion(t, ts.DB, name)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/regions/"+region.ID, nil, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, name)

	listRes, _ := ts.SendRequest(t, "GET", "/api/v1/regions", nil, nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
}

func TestTaxonomyRename(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	adminCookies, _ := helpers.NewAdminUser(t, ts)
	skill := helpers.CreateSkill(t, ts.DB, fmt.Sprintf("Rust %d", time.Now().UnixNano()))

	newName := fmt.Sprintf("Rust Renamed %d", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/admin/skills/"+skill.ID, adminCookies, map[string]interface{}{
		"name": newName,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, newName)
}

// Удаление записи не ломает документы, которые на нее ссылались:
// висячая ссылка молча опускается при раскрытии
func TestTaxonomyDelete_DanglingRefDropped(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	adminCookies, _ := helpers.NewAdminUser(t, ts)
	skill := helpers.CreateSkill(t, ts.DB, fmt.Sprintf("Doomed %d", time.Now().UnixNano()))

	userCookies, _ := helpers.NewRegularUser(t, ts)
	updRes, updBodyStr := ts.SendRequest(t, "PUT", "/api/v1/me/profile", userCookies, map[string]interface{}{
		"skills": []string{skill.ID},
	})
	require.Equal(t, http.StatusOK, updRes.StatusCode)
	assert.Contains(t, updBodyStr, skill.Name)

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/admin/skills/"+skill.ID, adminCookies, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/v1/me", userCookies, nil)
	require.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.NotContains(t, meBodyStr, skill.Name)
}

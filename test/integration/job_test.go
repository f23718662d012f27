package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createJob(t *testing.T, ts *helpers.TestServer, cookies []*http.Cookie, title string) string {
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", cookies, map[string]interface{}{
		"title":       title,
		"description": "Test description",
		"city":        "Almaty",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Job creation must succeed. Response: "+bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

// Созданная вакансия сразу содержит раскрытого владельца
func TestJobCreate_OwnerExpanded(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, user := helpers.NewRegularUser(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", cookies, map[string]interface{}{
		"title": "Backend Developer",
		"city":  "Almaty",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created struct {
		State string `json:"state"`
		Owner struct {
			Email string `json:"email"`
		} `json:"owner"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, "private", created.State)
	assert.Equal(t, user.Email, created.Owner.Email)
}

// Вакансия видна публично только после публикации
func TestJobPublishVisibility(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createJob(t, ts, cookies, "Hidden Job")

	// До публикации: публичное чтение - 404
	getRes, _ := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID, nil, nil)
	assert.Equal(t, http.StatusNotFound, getRes.StatusCode)

	// Публикуем
	pubRes, _ := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID+"/state", cookies, map[string]interface{}{
		"state": "public",
	})
	require.Equal(t, http.StatusOK, pubRes.StatusCode)

	getRes, getBodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID, nil, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBodyStr, "Hidden Job")

	// Снимаем с публикации - снова 404
	unpubRes, _ := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID+"/state", cookies, map[string]interface{}{
		"state": "private",
	})
	require.Equal(t, http.StatusOK, unpubRes.StatusCode)

	getRes, _ = ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID, nil, nil)
	assert.Equal(t, http.StatusNotFound, getRes.StatusCode)
}

// Чужую вакансию изменять нельзя
func TestJobUpdate_NotOwner(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createJob(t, ts, ownerCookies, "Owned Job")

	strangerCookies, _ := helpers.NewRegularUser(t, ts)
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID, strangerCookies, map[string]interface{}{
		"title": "Hijacked",
	})

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_ALLOWED")
}

// Администратор может изменять чужие вакансии
func TestJobUpdate_AdminOverride(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createJob(t, ts, ownerCookies, "Moderated Job")

	adminCookies, _ := helpers.NewAdminUser(t, ts)
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID, adminCookies, map[string]interface{}{
		"title": "Moderated Title",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Moderated Title")
}

func TestJobUpdate_Missing(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	missingID := "00000000-0000-0000-0000-000000000000"

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+missingID, cookies, map[string]interface{}{
		"title": "Ghost",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_FOUND")
}

// Частичное обновление не трогает непереданные поля
func TestJobUpdate_Partial(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", cookies, map[string]interface{}{
		"title":       "Original Title",
		"description": "Original description",
		"city":        "Astana",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	updRes, updBodyStr := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+created.ID, cookies, map[string]interface{}{
		"title": "New Title",
	})
	require.Equal(t, http.StatusOK, updRes.StatusCode)
	assert.Contains(t, updBodyStr, "New Title")
	assert.Contains(t, updBodyStr, "Original description")
	assert.Contains(t, updBodyStr, "Astana")
}

// Вложенный документ требований заменяется целиком
func TestJobRequirements_Replace(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createJob(t, ts, cookies, "Job With Requirements")

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID+"/requirements", cookies, map[string]interface{}{
		"experience": "3+ years",
		"skills":     []string{"Go", "PostgreSQL"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "3+ years")

	// Повторная замена вытесняет прежние значения
	res2, bodyStr2 := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID+"/requirements", cookies, map[string]interface{}{
		"education": "Bachelor",
	})
	require.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Contains(t, bodyStr2, "Bachelor")
	assert.NotContains(t, bodyStr2, "3+ years")
}

// Публичный список отдает только опубликованные вакансии
func TestJobList_PublicOnly(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	publicTitle := fmt.Sprintf("Visible Job %d", time.Now().UnixNano())
	jobID := createJob(t, ts, cookies, publicTitle)
	createJob(t, ts, cookies, "Draft Job Stays Hidden")

	pubRes, _ := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID+"/state", cookies, map[string]interface{}{
		"state": "public",
	})
	require.Equal(t, http.StatusOK, pubRes.StatusCode)

	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs?page_size=100", nil, nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, publicTitle)

	// Свои черновики видны в личном списке
	mineRes, mineBodyStr := ts.SendRequest(t, "GET", "/api/v1/me/jobs", cookies, nil)
	require.Equal(t, http.StatusOK, mineRes.StatusCode)
	assert.Contains(t, mineBodyStr, "Draft Job Stays Hidden")
}

func TestJobDelete(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createJob(t, ts, cookies, "Doomed Job")

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+jobID, cookies, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	mineRes, mineBodyStr := ts.SendRequest(t, "GET", "/api/v1/me/jobs", cookies, nil)
	require.Equal(t, http.StatusOK, mineRes.StatusCode)
	assert.NotContains(t, mineBodyStr, "Doomed Job")
}

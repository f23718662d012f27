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

func createOrder(t *testing.T, ts *helpers.TestServer, cookies []*http.Cookie, title string) string {
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/orders", cookies, map[string]interface{}{
		"title":       title,
		"description": "Need a backend",
		"budget_min":  1000,
		"budget_max":  5000,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Order creation must succeed. Response: "+bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

// Сведения о проекте заменяются целиком и получают новый id
func TestOrderProjectInfo_Replace(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	orderID := createOrder(t, ts, cookies, "API Development")

	type projectResp struct {
		ProjectInfo struct {
			ID       string   `json:"id"`
			Deadline string   `json:"deadline"`
			Stack    []string `json:"stack"`
		} `json:"project_info"`
	}

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/orders/"+orderID+"/project-info", cookies, map[string]interface{}{
		"deadline": "2 months",
		"stack":    []string{"Go", "PostgreSQL"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var first projectResp
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &first))
	require.NotEmpty(t, first.ProjectInfo.ID)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, first.ProjectInfo.Stack)

	res2, bodyStr2 := ts.SendRequest(t, "PUT", "/api/v1/orders/"+orderID+"/project-info", cookies, map[string]interface{}{
		"deadline": "3 months",
	})
	require.Equal(t, http.StatusOK, res2.StatusCode)
	var second projectResp
	require.NoError(t, json.Unmarshal([]byte(bodyStr2), &second))

	// Замена целиком: прежний стек не сохраняется, id новый
	assert.Equal(t, "3 months", second.ProjectInfo.Deadline)
	assert.Empty(t, second.ProjectInfo.Stack)
	assert.NotEqual(t, first.ProjectInfo.ID, second.ProjectInfo.ID)
}

func TestOrderUpdate_NotOwner(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	orderID := createOrder(t, ts, ownerCookies, "Owned Order")

	strangerCookies, _ := helpers.NewRegularUser(t, ts)
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/orders/"+orderID, strangerCookies, map[string]interface{}{
		"title": "Hijacked Order",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_ALLOWED")
}

// Публичный список заказов фильтруется по специализации
func TestOrderList_FilterBySpecialization(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	spec := helpers.CreateSpecialization(t, ts.DB, fmt.Sprintf("Backend %d", time.Now().UnixNano()))

	cookies, _ := helpers.NewRegularUser(t, ts)
	title := fmt.Sprintf("Specialized Order %d", time.Now().UnixNano())

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/orders", cookies, map[string]interface{}{
		"title":           title,
		"specializations": []string{spec.ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	pubRes, _ := ts.SendRequest(t, "PUT", "/api/v1/orders/"+created.ID+"/state", cookies, map[string]interface{}{
		"state": "public",
	})
	require.Equal(t, http.StatusOK, pubRes.StatusCode)

	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/orders?specialization="+spec.ID, nil, nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, title)
}

func TestOrderDelete(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	orderID := createOrder(t, ts, cookies, "Doomed Order")

	delRes, _ := ts.SendRequest(t, "DELETE", "/api/v1/orders/"+orderID, cookies, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	mineRes, mineBodyStr := ts.SendRequest(t, "GET", "/api/v1/me/orders", cookies, nil)
	require.Equal(t, http.StatusOK, mineRes.StatusCode)
	assert.NotContains(t, mineBodyStr, "Doomed Order")
}

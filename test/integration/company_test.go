package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCompany(t *testing.T, ts *helpers.TestServer, cookies []*http.Cookie, name string) string {
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/companies", cookies, map[string]interface{}{
		"name":        name,
		"description": "Software studio",
		"city":        "Almaty",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Company creation must succeed. Response: "+bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

// Чужую компанию изменять нельзя, администратору - можно
func TestCompanyOwnership(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	companyID := createCompany(t, ts, ownerCookies, "Owned Studio")

	strangerCookies, _ := helpers.NewRegularUser(t, ts)
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/companies/"+companyID, strangerCookies, map[string]interface{}{
		"name": "Hijacked Studio",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_ALLOWED")

	adminCookies, _ := helpers.NewAdminUser(t, ts)
	res2, bodyStr2 := ts.SendRequest(t, "PUT", "/api/v1/companies/"+companyID, adminCookies, map[string]interface{}{
		"name": "Moderated Studio",
	})
	assert.Equal(t, http.StatusOK, res2.StatusCode)
	assert.Contains(t, bodyStr2, "Moderated Studio")
}

type teamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type teamResp struct {
	Team []teamMember `json:"team"`
}

// Команда компании: добавление, точечное обновление, удаление
func TestCompanyTeam_ItemCRUD(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	companyID := createCompany(t, ts, cookies, "Team Studio")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/companies/"+companyID+"/team", cookies, map[string]interface{}{
		"name":     "Dana",
		"position": "Designer",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "POST", "/api/v1/companies/"+companyID+"/team", cookies, map[string]interface{}{
		"name":     "Erlan",
		"position": "Developer",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var view teamResp
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &view))
	require.Len(t, view.Team, 2)
	firstID := view.Team[0].ID

	// Обновление сохраняет позицию и id элемента
	updRes, updBodyStr := ts.SendRequest(t, "PUT", "/api/v1/companies/"+companyID+"/team/"+firstID, cookies, map[string]interface{}{
		"name":     "Dana",
		"position": "Lead Designer",
	})
	require.Equal(t, http.StatusOK, updRes.StatusCode)

	var updated teamResp
	require.NoError(t, json.Unmarshal([]byte(updBodyStr), &updated))
	require.Len(t, updated.Team, 2)
	assert.Equal(t, firstID, updated.Team[0].ID)
	assert.Equal(t, "Lead Designer", updated.Team[0].Position)
	assert.Equal(t, "Erlan", updated.Team[1].Name)

	// Удаление убирает ровно одного
	delRes, delBodyStr := ts.SendRequest(t, "DELETE", "/api/v1/companies/"+companyID+"/team/"+firstID, cookies, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	var remaining teamResp
	require.NoError(t, json.Unmarshal([]byte(delBodyStr), &remaining))
	require.Len(t, remaining.Team, 1)
	assert.Equal(t, "Erlan", remaining.Team[0].Name)
}

func TestCompanyTeam_MissingItem(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	companyID := createCompany(t, ts, cookies, "Lonely Studio")

	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/v1/companies/"+companyID+"/team/00000000-0000-0000-0000-000000000000", cookies, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_FOUND")
}

// Компания публична только после публикации
func TestCompanyPublishVisibility(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	cookies, _ := helpers.NewRegularUser(t, ts)
	companyID := createCompany(t, ts, cookies, "Invisible Studio")

	getRes, _ := ts.SendRequest(t, "GET", "/api/v1/companies/"+companyID, nil, nil)
	assert.Equal(t, http.StatusNotFound, getRes.StatusCode)

	pubRes, _ := ts.SendRequest(t, "PUT", "/api/v1/companies/"+companyID+"/state", cookies, map[string]interface{}{
		"state": "public",
	})
	require.Equal(t, http.StatusOK, pubRes.StatusCode)

	getRes, getBodyStr := ts.SendRequest(t, "GET", "/api/v1/companies/"+companyID, nil, nil)
	assert.Equal(t, http.StatusOK, getRes.StatusCode)
	assert.Contains(t, getBodyStr, "Invisible Studio")
}

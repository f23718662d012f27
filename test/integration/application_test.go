package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPublicJob(t *testing.T, ts *helpers.TestServer, cookies []*http.Cookie, title string) string {
	jobID := createJob(t, ts, cookies, title)
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/jobs/"+jobID+"/state", cookies, map[string]interface{}{
		"state": "public",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	return jobID
}

// Отклик без файла принимается обычным JSON-телом
func TestApply_WithoutResume(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createPublicJob(t, ts, ownerCookies, "Open Position")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/"+jobID+"/apply", nil, map[string]interface{}{
		"name":         "Aizhan Candidate",
		"email":        "aizhan@test.com",
		"cover_letter": "I would love to join",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "Aizhan Candidate")
}

// Отклик с PDF-резюме: файл сохраняется и доступен владельцу по ссылке
func TestApply_WithResume(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createPublicJob(t, ts, ownerCookies, "Position With Resume")

	pdfContent := []byte("%PDF-1.4 fake resume content")
	res, bodyStr := ts.SendMultipart(t, "POST", "/api/v1/jobs/"+jobID+"/apply", nil,
		map[string]string{
			"name":  "Bekzat Candidate",
			"email": "bekzat@test.com",
		},
		"resume", "resume.pdf", "application/pdf", pdfContent,
	)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ResumeURL string `json:"resume_url"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.ResumeURL)

	// Отклики видит владелец вакансии
	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/applications", ownerCookies, nil)
	require.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, "Bekzat Candidate")
}

// Отклик на неопубликованную вакансию невозможен
func TestApply_PrivateJob(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createJob(t, ts, ownerCookies, "Draft Position")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs/"+jobID+"/apply", nil, map[string]interface{}{
		"name":  "Eager Candidate",
		"email": "eager@test.com",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_FOUND")
}

func TestApply_UnsupportedFileType(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createPublicJob(t, ts, ownerCookies, "Picky Position")

	res, bodyStr := ts.SendMultipart(t, "POST", "/api/v1/jobs/"+jobID+"/apply", nil,
		map[string]string{
			"name":  "Exe Candidate",
			"email": "exe@test.com",
		},
		"resume", "resume.exe", "application/octet-stream", []byte{0x4d, 0x5a},
	)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Unsupported resume file type")
}

// Список откликов недоступен не-владельцу
func TestApplicationsList_NotOwner(t *testing.T) {
	t.Parallel()
	ts := GetTestServer(t)

	ownerCookies, _ := helpers.NewRegularUser(t, ts)
	jobID := createPublicJob(t, ts, ownerCookies, "Guarded Position")

	strangerCookies, _ := helpers.NewRegularUser(t, ts)
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+jobID+"/applications", strangerCookies, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "NOT_ALLOWED")
}

package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WithDetails не должен мутировать предопределенные ошибки
func TestWithDetails_DoesNotMutateSingleton(t *testing.T) {
	withDetails := ErrValidationFailed.WithDetails(map[string]string{"name": "bad"})

	assert.NotNil(t, withDetails.Details)
	assert.Nil(t, ErrValidationFailed.Details)
	assert.Equal(t, ErrValidationFailed.Code, withDetails.Code)
}

func TestWithError_DoesNotMutateSingleton(t *testing.T) {
	cause := errors.New("boom")
	wrapped := ErrWrongAuthToken.WithError(cause)

	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, ErrWrongAuthToken.Err)
}

func TestNotFound_Message(t *testing.T) {
	err := NotFound("Job", "abc-123")
	assert.Equal(t, CodeNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Contains(t, err.Message, "Job with id abc-123 not found")

	noID := NotFound("File", "")
	assert.Equal(t, "File not found", noID.Message)
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("db down"), CodeInternalError, "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "db down")
	assert.Contains(t, string(data), string(CodeInternalError))
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrAuthTokenMissing.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrWrongCredentials.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrPermissionDenied.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotAllowed.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrValidationFailed.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrPathNotFound.HTTPCode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/test", handler)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandleError_AppError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		HandleError(c, NotFound("Job", "nope"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeNotFound, resp.Error.Code)
}

// Неизвестная ошибка оборачивается в 500 без утечки деталей
func TestHandleError_UnknownError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		HandleError(c, errors.New("secret internals"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret internals")
}

func TestNoRouteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(NoRouteHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/definitely/not/here", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodePathNotFound, resp.Error.Code)
}

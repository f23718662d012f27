package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordCookies(fn func(c *gin.Context)) []*http.Cookie {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w.Result().Cookies()
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestSetAccessCookie(t *testing.T) {
	cookies := recordCookies(func(c *gin.Context) {
		SetAccessCookie(c, "the-token", 15*time.Minute)
	})

	ck := findCookie(cookies, AccessCookieName)
	require.NotNil(t, ck)
	assert.Equal(t, "the-token", ck.Value)
	assert.Equal(t, 900, ck.MaxAge)
	assert.Equal(t, "/", ck.Path)
	assert.True(t, ck.HttpOnly)
}

func TestSetRefreshCookie(t *testing.T) {
	cookies := recordCookies(func(c *gin.Context) {
		SetRefreshCookie(c, "the-refresh", time.Hour)
	})

	ck := findCookie(cookies, RefreshCookieName)
	require.NotNil(t, ck)
	assert.Equal(t, "the-refresh", ck.Value)
	assert.Equal(t, 3600, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
}

func TestClearAuthCookies(t *testing.T) {
	cookies := recordCookies(ClearAuthCookies)

	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		ck := findCookie(cookies, name)
		require.NotNil(t, ck, name)
		assert.Empty(t, ck.Value)
		assert.Negative(t, ck.MaxAge)
	}
}

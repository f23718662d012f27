package auth

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Имена сессионных cookie
const (
	AccessCookieName  = "Authentication"
	RefreshCookieName = "Refresh"
)

// SetAccessCookie ставит HttpOnly cookie с access token.
// Max-Age в секундах равен TTL токена.
func SetAccessCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetCookie(AccessCookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

// SetRefreshCookie ставит HttpOnly cookie с refresh token
func SetRefreshCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetCookie(RefreshCookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

// ClearAuthCookies сбрасывает обе cookie (Max-Age < 0 => удаление)
func ClearAuthCookies(c *gin.Context) {
	c.SetCookie(AccessCookieName, "", -1, "/", "", false, true)
	c.SetCookie(RefreshCookieName, "", -1, "/", "", false, true)
}

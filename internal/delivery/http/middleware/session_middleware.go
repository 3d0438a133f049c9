package middleware

import (
	"net/http"
	"strings"

	"go-landing-backend/internal/delivery/http/response"
	"go-landing-backend/internal/domain"
	"go-landing-backend/pkg/logger"
	"go-landing-backend/pkg/session"

	"github.com/gin-gonic/gin"
)

const (
	// SessionHeaderName carries the inquiry session token for JSON API calls
	SessionHeaderName = "X-Inquiry-Session"
	// SessionCookieName carries the token for the server-rendered page
	SessionCookieName = "inquiry_session"
)

// SessionMiddleware resolves the inquiry session id from the X-Inquiry-Session header.
// The API deliberately ignores the page cookie so cross-site requests cannot ride on it.
func SessionMiddleware(signer *session.Signer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader(SessionHeaderName), "Bearer "))
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, SessionHeaderName+" header required", nil)
			c.Abort()
			return
		}

		sessionID, err := signer.Parse(tokenString)
		if err != nil {
			logger.Log.Debug("session token rejected", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid or expired session token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeySessionID), sessionID)
		c.Next()
	}
}

// SessionID returns the id stored by SessionMiddleware
func SessionID(c *gin.Context) string {
	return c.GetString(string(domain.KeySessionID))
}

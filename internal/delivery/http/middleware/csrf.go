package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"go-landing-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is accepted in place of the form field
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden input rendered into the page's forms
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour

	csrfContextKey = "csrf_token"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern for the
// server-rendered landing page.
//
// How it works:
//  1. On any request without a csrf_token cookie, generate a token and set it
//  2. The token is exposed to templates through CSRFToken
//  3. For POST requests, validate that:
//     - the csrf_token form field (or X-CSRF-Token header) is present
//     - its value matches the csrf_token cookie
//
// The page must:
//  1. Render CSRFToken into a hidden csrf_token input in every form
//  2. Send the same value as X-CSRF-Token from static/inquiry.js
//
// This works because:
//   - The browser attaches the inquiry_session cookie to a cross-site post
//   - But the attacker's page cannot read our cookies to copy the token
//
// EXEMPTIONS:
//   - GET, HEAD and OPTIONS are never validated; they must not change state
//   - The /v1 JSON API is not behind this middleware. Its session travels in
//     the X-Inquiry-Session header, which browsers never attach on their own.
func CSRFMiddleware(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Issue the token before any check so the first page view can post
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}

			// SameSite=Lax keeps the cookie on top-level navigations only
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",
				secureCookie,
				true,
			)
			csrfCookie = newToken
		}
		c.Set(csrfContextKey, csrfCookie)

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		// Header first for script posts, then the hidden form field
		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}
		if submitted == "" {
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}
		// Constant-time comparison
		if subtle.ConstantTimeCompare([]byte(submitted), []byte(csrfCookie)) != 1 {
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token for the current request, for embedding in forms
func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SwaggerPathPrefix is served with a relaxed script policy
const SwaggerPathPrefix = "/v1/swagger/"

const (
	pageCSP = "default-src 'self'; " +
		"script-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"connect-src 'self'; " +
		"frame-ancestors 'none'; " +
		"base-uri 'self'; " +
		"form-action 'self'"

	// The swagger UI bootstraps itself from an inline <script> in its index page
	swaggerCSP = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"img-src 'self' data:; " +
		"connect-src 'self'; " +
		"frame-ancestors 'none'; " +
		"base-uri 'self'; " +
		"form-action 'self'"
)

// SecurityHeadersMiddleware adds baseline security headers to all responses:
// - HTTPS only (HSTS)
// - MIME sniffing and legacy XSS filters (X-Content-Type-Options, X-XSS-Protection)
// - Framing (X-Frame-Options, frame-ancestors)
// - Feature access (Permissions-Policy)
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Browsers remember to use HTTPS for two years, subdomains included.
		// Ignored over plain HTTP, so local development is unaffected.
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")

		c.Header("X-Content-Type-Options", "nosniff")

		// Only older browsers honour this; CSP covers the rest
		c.Header("X-XSS-Protection", "1; mode=block")

		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Geolocation stays enabled for this origin because the inquiry
		// form offers location auto-detection
		c.Header("Permissions-Policy", "camera=(), microphone=(), payment=(), geolocation=(self)")

		// The landing page ships its script as /static/inquiry.js, so inline
		// scripts are refused everywhere except the API docs
		if strings.HasPrefix(c.Request.URL.Path, SwaggerPathPrefix) {
			c.Header("Content-Security-Policy", swaggerCSP)
		} else {
			c.Header("Content-Security-Policy", pageCSP)
		}

		// Session-bound responses must not be cached by shared caches
		if c.GetHeader(SessionHeaderName) != "" {
			c.Header("Cache-Control", "no-store, private")
		}

		c.Next()
	}
}

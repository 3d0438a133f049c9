package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured origins to call the JSON API.
//
// SECURITY: This middleware is strict about allowed origins:
//   - Origins are matched exactly against ALLOWED_ORIGINS, never by suffix or wildcard
//   - Same-origin requests carry no Origin header and always pass
//   - Unknown origins get no CORS headers, so the browser hides the response
//   - Preflights from unknown origins are refused with 403
//
// The allowed headers include X-Inquiry-Session. It is the only credential
// the API reads, so a cross-origin caller can act on a session only if it
// already holds the token.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		isAllowed := origin == "" || allowed[origin]

		// === SECURITY: echo the origin only after an exact match ===
		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Origin, X-Requested-With, X-Request-ID, "+SessionHeaderName)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			c.Header("Access-Control-Expose-Headers", "X-Request-ID, X-RateLimit-Remaining, Retry-After")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// === SECURITY: preflights end here, allowed or not ===
		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}

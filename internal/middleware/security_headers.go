package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/stylelab/internal/config"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Content Security Policy (CSP)
		// The preview page only loads its own stylesheet and inline styles
		csp := "default-src 'self'; " +
			"script-src 'none'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"font-src 'self' data:; " +
			"connect-src 'self'"
		c.Header("Content-Security-Policy", csp)

		c.Header("Referrer-Policy", "same-origin")

		// HTTP Strict Transport Security (HSTS) - only when served behind TLS
		if config.GetBool("server.hsts") {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

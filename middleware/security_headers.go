package middleware

import (
	"github.com/NomadCrew/tripboard/config"
	"github.com/gin-gonic/gin"
)

var apiSecurityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	// Board responses reflect the collection at request time.
	{"Cache-Control", "no-store"},
}

// SecurityHeadersMiddleware sets the response headers every JSON endpoint
// carries. HSTS is only sent in production.
func SecurityHeadersMiddleware(cfg *config.Config) gin.HandlerFunc {
	production := cfg.IsProduction()
	return func(c *gin.Context) {
		for _, h := range apiSecurityHeaders {
			c.Header(h[0], h[1])
		}
		if production {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		c.Next()
	}
}

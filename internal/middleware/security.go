package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// CorsConfig allows the listed origins, or every origin when the list is
// empty or contains "*".
func CorsConfig(allowedOrigins []string) cors.Config {
	corsConf := cors.DefaultConfig()
	corsConf.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConf.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	corsConf.ExposeHeaders = []string{RequestIDHeader}
	corsConf.MaxAge = 12 * 3600

	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 || containsWildcard(origins) {
		corsConf.AllowAllOrigins = true
	} else {
		corsConf.AllowOrigins = origins
	}
	return corsConf
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Cors returns the CORS middleware for the given origins.
func Cors(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(CorsConfig(allowedOrigins))
}

// Compression gzips responses. Swagger assets are already compressed upstream.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{"^/swagger/"}))
}

// SecurityHeaders sets the usual hardening headers. HSTS is only sent in production.
func SecurityHeaders(isProduction bool) gin.HandlerFunc {
	conf := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if isProduction {
		conf.STSSeconds = 31536000
		conf.STSIncludeSubdomains = true
	}
	return secure.New(conf)
}

package middleware

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// CORS allows the configured browser origins, falling back to local dev hosts.
// "*" opens every origin but disables credentialed requests.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", "Accept", "Origin", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader, "Content-Disposition"},
		MaxAge:        24 * time.Hour,
	}

	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}

	origins = usableOrigins(origins)
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}

// usableOrigins drops entries cors.New would reject at startup.
func usableOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			out = append(out, o)
			continue
		}
		slog.Warn("ignoring cors origin", "origin", o)
	}
	return out
}

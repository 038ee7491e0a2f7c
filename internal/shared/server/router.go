package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/mealplans"
	"tailor-backend/internal/resumes"
	"tailor-backend/internal/sessions"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/server/middleware"
	"tailor-backend/internal/shared/server/respond"
)

// RouterDeps carries the constructed handlers the router mounts.
type RouterDeps struct {
	Config    config.Config
	Sessions  *sessions.Handler
	Resumes   *resumes.Handler
	MealPlans *mealplans.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimits()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.Sessions.RegisterRoutes(api)
	deps.Resumes.RegisterRoutes(api)
	deps.MealPlans.RegisterRoutes(api)

	if deps.Config.Env == "dev" {
		r.GET("/metrics", metrics.Handler())
	}

	return r
}

// rateLimits throttles model-backed endpoints separately from the rest of
// the API. Buckets are keyed per client IP since sessions are anonymous.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT":  {Rate: 20, Burst: 40},
			"GENERATE": {Rate: 0.5, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method != http.MethodPost {
				return ""
			}
			path := c.Request.URL.Path
			if strings.HasSuffix(path, "/analyze") || strings.HasSuffix(path, "/generate") || strings.HasSuffix(path, "/plan") {
				return "GENERATE"
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

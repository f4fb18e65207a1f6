package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/shared/config"
	"roadmap-backend/internal/shared/metrics"
	"roadmap-backend/internal/shared/server/middleware"
	"roadmap-backend/internal/shared/server/respond"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers mounted under /api/v1.
type RouterDeps struct {
	Config config.Config
	// SubmitPath is rate limited by the SUBMIT group on POST.
	SubmitPath string
	Handlers   []RouteRegistrar
}

const submitGroup = "SUBMIT"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSAllowOrigin)),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				submitGroup: middleware.PerMinute(cfg.SubmitPerMinute),
			},
			GroupFor: func(c *gin.Context) string {
				if deps.SubmitPath != "" && c.Request.Method == http.MethodPost && c.FullPath() == deps.SubmitPath {
					return submitGroup
				}
				return ""
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())
	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	api := r.Group("/api/v1")
	for _, h := range deps.Handlers {
		if h != nil {
			h.RegisterRoutes(api)
		}
	}

	return r
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

package server

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "ats-backend/internal/auth"
	"ats-backend/internal/resumes"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/metrics"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/shared/storage/db"
	"ats-backend/internal/usage"
	"ats-backend/internal/users"
)

// RouterDeps bundles the handlers the router wires up.
type RouterDeps struct {
	Config        config.Config
	DB            *sql.DB
	ResumeHandler *resumes.Handler
	UsageHandler  *usage.Handler
	UserHandler   *users.Handler
	GoogleAuth    *googleauth.GoogleService
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
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 5, Burst: 30},
				"ANALYZE": {Rate: 1, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				path := c.FullPath()
				if strings.HasSuffix(path, "/analyze") || strings.HasSuffix(path, "/match-job") {
					return "ANALYZE"
				}
				return "DEFAULT"
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		status := http.StatusOK
		if err := db.Health(c.Request.Context(), deps.DB); err != nil {
			dbStatus = "unavailable"
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": status == http.StatusOK, "db": dbStatus})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.UsageHandler != nil {
		deps.UsageHandler.RegisterRoutes(api)
		if deps.Config.Env == "dev" {
			dev := api.Group("/dev")
			deps.UsageHandler.RegisterDevRoutes(dev)
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

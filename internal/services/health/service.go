package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"roadmap-backend/internal/shared/server/respond"
)

const (
	StatusUp       = "up"
	StatusDown     = "down"
	StatusDisabled = "disabled"
)

const pingTimeout = 2 * time.Second

// Service encapsulates health-related checks. Nil dependencies are reported
// as disabled.
type Service struct {
	DB    *sql.DB
	Redis *redis.Client
}

// NewService constructs a new health service.
func NewService(db *sql.DB, rdb *redis.Client) *Service {
	return &Service{DB: db, Redis: rdb}
}

type Report struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Check pings each configured dependency. The database is required for ok;
// the cache only degrades reads.
func (s *Service) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	report := Report{OK: true, Database: StatusDisabled, Cache: StatusDisabled}
	if s.DB != nil {
		if err := s.DB.PingContext(ctx); err != nil {
			report.Database = StatusDown
			report.OK = false
		} else {
			report.Database = StatusUp
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			report.Cache = StatusDown
		} else {
			report.Cache = StatusUp
		}
	}
	return report
}

// RegisterRoutes attaches GET /health.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		report := s.Check(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
}

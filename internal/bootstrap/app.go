package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"roadmap-backend/internal/account"
	"roadmap-backend/internal/assessments"
	googleauth "roadmap-backend/internal/auth"
	"roadmap-backend/internal/catalog"
	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/roadmaps"
	"roadmap-backend/internal/services/health"
	"roadmap-backend/internal/shared/config"
	"roadmap-backend/internal/shared/server"
	"roadmap-backend/internal/shared/storage/db"
	"roadmap-backend/internal/shared/telemetry"
	"roadmap-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	DB      *sql.DB
	Redis   *redis.Client
	Catalog roadmap.Catalog

	AssessmentsRepo assessments.Repo
	RoadmapsRepo    roadmaps.Repo
	UsersRepo       users.Repo

	AssessmentsService *assessments.Service
	RoadmapsService    *roadmaps.Service
	UsersService       *users.Service
	AccountService     *account.Service
	HealthService      *health.Service
	GoogleAuth         *googleauth.GoogleService
}

// Build prepares every dependency and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	telemetry.Info("bootstrap.catalog_loaded", map[string]any{
		"version":   cat.Version,
		"resources": catalog.Count(cat),
		"path":      cfg.CatalogPath,
	})

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Redis:   buildRedis(ctx, cfg),
		Catalog: cat,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:     cfg,
		SubmitPath: assessments.SubmitPath,
		Handlers: []server.RouteRegistrar{
			app.HealthService,
			app.GoogleAuth,
			catalog.NewHandler(cat),
			assessments.NewHandler(app.AssessmentsService),
			roadmaps.NewHandler(app.RoadmapsService),
			users.NewHandler(app.UsersService),
			account.NewHandler(app.AccountService),
		},
	})
	return app, nil
}

// Close releases the database and cache connections.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// buildRedis returns nil when the cache is not configured or unreachable;
// roadmap reads then go straight to the repository.
func buildRedis(ctx context.Context, cfg config.Config) *redis.Client {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		telemetry.Warn("bootstrap.redis_invalid_url", map[string]any{"error": err.Error()})
		return nil
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"error": err.Error()})
		_ = client.Close()
		return nil
	}
	return client
}

func buildServices(app *App) {
	if app.DB != nil {
		app.AssessmentsRepo = &assessments.PGRepo{DB: app.DB}
		app.RoadmapsRepo = &roadmaps.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.AssessmentsRepo = assessments.NewMemoryRepo()
		app.RoadmapsRepo = roadmaps.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}
	if app.Redis != nil {
		app.RoadmapsRepo = roadmaps.NewCachedRepo(app.RoadmapsRepo, app.Redis, app.Config.RoadmapCacheTTL)
	}

	app.RoadmapsService = roadmaps.NewService(app.RoadmapsRepo, app.Catalog)
	app.AssessmentsService = assessments.NewService(app.AssessmentsRepo, app.RoadmapsService, app.DB)
	app.UsersService = users.NewService(app.UsersRepo)
	app.AccountService = account.NewService(app.AssessmentsRepo, app.RoadmapsRepo, app.DB)
	app.HealthService = health.NewService(app.DB, app.Redis)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

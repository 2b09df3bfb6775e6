package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/secposture/console-api/internal/app"
	"github.com/secposture/console-api/internal/config"
	"github.com/secposture/console-api/internal/infra/http"
	"github.com/secposture/console-api/internal/infra/http/handler"
	"github.com/secposture/console-api/internal/infra/http/routes"
	"github.com/secposture/console-api/internal/infra/jobs"
	"github.com/secposture/console-api/internal/infra/postgres"
	"github.com/secposture/console-api/internal/infra/redis"
	"github.com/secposture/console-api/pkg/domain/module"
	"github.com/secposture/console-api/pkg/domain/navigation"
	"github.com/secposture/console-api/pkg/jwt"
	"github.com/secposture/console-api/pkg/logger"
	"github.com/secposture/console-api/pkg/validator"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log := logger.NewDefault()
		log.Error("failed to load configuration", "error", err)
		return 1
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	log.Info("starting application", "app", cfg.App.Name, "env", cfg.App.Env)

	// Infrastructure
	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		return 1
	}
	defer closeWithLog(db, "database", log)
	log.Info("database connected")

	redisClient, err := redis.New(&cfg.Redis, log)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		return 1
	}
	defer closeWithLog(redisClient, "redis", log)

	// Sidebar catalog
	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Error("failed to load sidebar catalog", "path", cfg.Sidebar.Path, "error", err)
		return 1
	}

	// Services
	moduleRepo := postgres.NewModuleRepository(db)
	snapshotCache := app.NewRedisSnapshotCache(
		redis.MustNewCache[[]module.Entitlement](redisClient, "entitlements", cfg.Worker.SnapshotTTL),
	)
	entitlementSvc := app.NewEntitlementService(moduleRepo, snapshotCache, log)
	navigationSvc := app.NewNavigationService(entitlementSvc, catalog, log)
	log.Info("services initialized")

	// Job queue
	jobClient := jobs.NewClient(jobs.ClientConfig{
		RedisAddr:     cfg.Redis.Addr(),
		RedisPassword: cfg.Redis.Password,
		RedisDB:       cfg.Redis.DB,
	}, log)
	defer closeWithLog(jobClient, "job client", log)

	var worker *jobs.Worker
	var scheduler *jobs.Scheduler
	if cfg.Worker.Enabled {
		worker = jobs.NewWorker(jobs.WorkerConfig{
			RedisAddr:     cfg.Redis.Addr(),
			RedisPassword: cfg.Redis.Password,
			RedisDB:       cfg.Redis.DB,
			Concurrency:   cfg.Worker.Concurrency,
		}, entitlementSvc, log)
		if err := worker.Start(); err != nil {
			log.Error("failed to start worker", "error", err)
			return 1
		}

		scheduler, err = jobs.NewScheduler(jobClient, cfg.Worker.RefreshSchedule, log)
		if err != nil {
			log.Error("failed to create scheduler", "error", err)
			return 1
		}
		scheduler.Start()
		log.Info("worker started", "schedule", cfg.Worker.RefreshSchedule)
	}

	// HTTP server
	jwtManager := jwt.NewManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.AccessTokenDuration,
		cfg.Auth.RefreshTokenDuration,
	)

	server := http.NewServer(cfg, log)
	routes.Register(server.Router(), routes.Handlers{
		Health:     handler.NewHealthHandler(handler.WithDatabase(db), handler.WithRedis(redisClient)),
		Bootstrap:  handler.NewBootstrapHandler(navigationSvc, log),
		Navigation: handler.NewNavigationHandler(navigationSvc, validator.New(), log),
		Module:     handler.NewModuleHandler(navigationSvc, log),
	}, jwtManager, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", "error", err)
		}
	}()
	log.Info("application started", "http_addr", cfg.Server.Addr())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop()
	}
	if worker != nil {
		worker.Stop()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
		return 1
	}

	log.Info("application stopped")
	return 0
}

// loadCatalog loads the sidebar tree from the configured path, falling
// back to the compiled-in default.
func loadCatalog(cfg *config.Config) (navigation.Tree, error) {
	if cfg.Sidebar.Path == "" {
		return navigation.DefaultTree(), nil
	}
	return navigation.LoadFile(cfg.Sidebar.Path)
}

type closer interface {
	Close() error
}

func closeWithLog(c closer, name string, log *logger.Logger) {
	if err := c.Close(); err != nil {
		log.Error("failed to close "+name, "error", err)
	}
}

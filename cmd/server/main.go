package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/content/registry"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/logging"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/Princeaman007/interships/internal/routes"
	"github.com/Princeaman007/interships/internal/services"
	"github.com/Princeaman007/interships/internal/storage"
	"github.com/Princeaman007/interships/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logging.Setup(false)
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	stdout := logging.Setup(cfg.IsProduction())

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint, cfg.Env)
	if err != nil {
		slog.Error("tracing init failed", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Notifications
	sender, err := notify.NewSender(cfg)
	if err != nil {
		slog.Error("mail sender init failed", "error", err)
		os.Exit(1)
	}
	renderer, err := notify.NewRenderer()
	if err != nil {
		slog.Error("email templates failed to parse", "error", err)
		os.Exit(1)
	}
	dispatcher := notify.NewDispatcher(sender, renderer, cfg.NotifyQueueSize, cfg.NotifyWorkers)

	modules := registry.Modules(dispatcher)
	if err := database.Migrate(db, registry.Models(modules)...); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := registry.Seed(ctx, db, modules); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	// Database log sink (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, dbLogHandler)))

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	logging.StartCleanup(cleanupCtx, db, cfg.LogRetentionDays)

	files, err := storage.New(ctx, cfg)
	if err != nil {
		slog.Error("file storage init failed", "error", err)
		os.Exit(1)
	}

	// Services
	tokens := services.NewTokenIssuer(cfg)
	users := services.NewUserService(db, files)
	svc := routes.Services{
		Auth:         services.NewAuthService(db, cfg, tokens, dispatcher),
		Users:        users,
		Internships:  services.NewInternshipService(db, files),
		Applications: services.NewApplicationService(db, dispatcher),
		Dashboard:    services.NewDashboardService(db),
	}

	app := routes.NewApp(cfg)
	routes.Setup(app, routes.Deps{
		Config:   cfg,
		DB:       db,
		Tokens:   tokens,
		Services: svc,
		Files:    files,
		Modules:  modules,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	drainCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := dispatcher.Close(drainCtx); err != nil {
		slog.Warn("notification queue not drained", "error", err)
	}
	if err := shutdownTracing(drainCtx); err != nil {
		slog.Warn("tracing shutdown error", "error", err)
	}

	stopCleanup()
	dbLogHandler.Stop()
	slog.SetDefault(slog.New(stdout))

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"newsguard/internal/config"
	"newsguard/internal/detector"
	"newsguard/internal/infrastructure/scheduler"
	"newsguard/internal/infrastructure/scraper"
	"newsguard/internal/infrastructure/telegram"
	"newsguard/internal/logging"
	"newsguard/internal/ports"
	"newsguard/internal/scanner"
	"newsguard/internal/server"
	"newsguard/internal/storage"
	"newsguard/internal/trust"
	"newsguard/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	engine    http.Handler
	scheduler *usecase.Scheduler
}

// New builds a runnable application instance: trust table, detector,
// repository, scrape source, service, HTTP engine and the optional
// background scheduler.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	table := trust.Default()
	if len(cfg.Trust.Sources) > 0 {
		overrides := make(map[string]int, len(cfg.Trust.Sources))
		for _, entry := range cfg.Trust.Sources {
			overrides[entry.Name] = entry.Weight
		}
		table = table.Merge(overrides)
	}

	repository, err := buildRepository(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	registry := scanner.NewRegistry()
	registry.Register(scraper.NewHeadlineScanner(nil))
	source := scraper.NewConfigSource(registry, cfg.Sites, baseLogger.With("component", "source"))

	service := usecase.NewService(usecase.ServiceDeps{
		Detector:   detector.New(cfg.Scoring, table),
		Repository: repository,
		Source:     source,
		Logger:     baseLogger.With("component", "service"),
	})

	application := &Application{
		cfg:    cfg,
		logger: baseLogger,
		engine: server.New(cfg.Server, service, baseLogger.With("component", "http")),
	}

	if cfg.Scheduler.Enabled {
		var notifier ports.Notifier
		if cfg.Notifications.Telegram.BotToken != "" {
			notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
		}
		driver := scheduler.NewIntervalScheduler(cfg.Scheduler.Interval())
		application.scheduler = usecase.NewScheduler(driver, service, notifier, baseLogger.With("component", "scheduler"))
	}

	return application, nil
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (a *Application) Run(ctx context.Context) error {
	if a.scheduler != nil {
		if err := a.scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer func() { _ = a.scheduler.Stop(context.Background()) }()
	}

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}

	return nil
}

func buildRepository(ctx context.Context, cfg config.DatabaseConfig) (ports.ArticleRepository, error) {
	switch cfg.Driver {
	case "", "memory":
		return storage.NewMemoryRepository(), nil
	case "postgres":
		db, err := storage.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		repository := storage.NewPostgresRepository(db)
		if err := repository.Init(ctx); err != nil {
			return nil, err
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jmoiron/sqlx"

	"m365_collector/internal/config"
	"m365_collector/internal/publisher"
	"m365_collector/internal/retry"
	"m365_collector/internal/service"
	"m365_collector/internal/source/graph"
	"m365_collector/internal/storage/sqlstore"
)

// app holds what every command needs: config, logger and a migrated store.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	runs        *sqlstore.RunStore
	checkpoints *sqlstore.CheckpointStore
	progress    *sqlstore.ProgressStore
	retries     *sqlstore.RetryStore
	users       *sqlstore.UserActivityStore
	licenses    *sqlstore.LicenseStore
	prices      *sqlstore.PriceStore
	txManager   *sqlstore.TransactionManager
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger = setupLogger(cfg.LogLevel)

	if cfg.Database.Driver == sqlstore.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database", "driver", cfg.Database.Driver, "dsn", cfg.Database.RedactedDSN())

	version, err := sqlstore.Migrate(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("schema up to date", "version", version)

	return &app{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		runs:        sqlstore.NewRunStore(db),
		checkpoints: sqlstore.NewCheckpointStore(db),
		progress:    sqlstore.NewProgressStore(db),
		retries:     sqlstore.NewRetryStore(db),
		users:       sqlstore.NewUserActivityStore(db),
		licenses:    sqlstore.NewLicenseStore(db),
		prices:      sqlstore.NewPriceStore(db),
		txManager:   sqlstore.NewTransactionManager(db),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}

// newCollector wires the Graph client, retry policy and optional publisher.
// The returned cleanup closes the publisher.
func (a *app) newCollector(ctx context.Context) (*service.Collector, func(), error) {
	source := graph.New(ctx, graph.Config{
		TenantID:          a.cfg.Graph.TenantID,
		ClientID:          a.cfg.Graph.ClientID,
		ClientSecret:      a.cfg.Graph.ClientSecret,
		BaseURL:           a.cfg.Graph.BaseURL,
		AuthorityURL:      a.cfg.Graph.AuthorityURL,
		PageSize:          a.cfg.Graph.PageSize,
		Timeout:           a.cfg.Graph.Timeout,
		RequestsPerSecond: a.cfg.Graph.RequestsPerSecond,
		Burst:             a.cfg.Graph.Burst,
		UserAgent:         a.cfg.Graph.UserAgent,
	}, a.logger)

	var pub service.Publisher
	cleanup := func() {}
	if a.cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(ctx, publisher.Config{
			URL:            a.cfg.RabbitMQ.URL,
			Exchange:       a.cfg.RabbitMQ.Exchange,
			RoutingKey:     a.cfg.RabbitMQ.RoutingKey,
			QueueName:      a.cfg.RabbitMQ.QueueName,
			ConnectTimeout: a.cfg.RabbitMQ.ConnectTimeout,
		}, a.logger)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		pub = rabbitMQ
		cleanup = func() {
			if err := rabbitMQ.Close(); err != nil {
				a.logger.Warn("failed to close rabbitmq", "error", err)
			}
		}
	}

	fetcher := service.NewFetcher(retryPolicy(a.cfg.Retry), a.retries, a.logger)
	writer := service.NewPageWriter(a.txManager, a.checkpoints, a.progress, a.users, a.licenses, a.logger)

	collector := service.NewCollector(
		source,
		a.runs,
		a.checkpoints,
		a.users,
		a.licenses,
		a.retries,
		fetcher,
		writer,
		pub,
		a.logger,
		a.cfg.Collection,
	)
	return collector, cleanup, nil
}

func (a *app) newStatusService() *service.StatusService {
	return service.NewStatusService(a.runs, a.progress, a.checkpoints, a.retries)
}

func retryPolicy(cfg config.RetryConfig) retry.Policy {
	return retry.Policy{
		MaxRetries: cfg.MaxRetries,
		Base:       cfg.Multiplier,
		Unit:       cfg.BaseDelay,
		MaxDelay:   cfg.MaxDelay,
	}
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			logger.Info("received shutdown signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"sportsync/internal/config"
	"sportsync/internal/domain"
	"sportsync/internal/outbox"
	"sportsync/internal/processor"
	"sportsync/internal/storage/postgres"
	"sportsync/internal/transport"
	"sportsync/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	broker, err := transport.NewBroker(transport.Config{
		URL:               cfg.RabbitMQ.URL,
		Exchange:          cfg.RabbitMQ.Exchange,
		CommandQueue:      cfg.RabbitMQ.CommandQueue,
		CommandRoutingKey: cfg.RabbitMQ.CommandRoutingKey,
		Prefetch:          cfg.RabbitMQ.Prefetch,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer broker.Close()

	txManager := postgres.NewTransactionManager(db)
	refStore := postgres.NewRefStore(db)
	outboxStore := postgres.NewOutboxStore(db)

	sports := make([]domain.Sport, 0, len(cfg.Ingest.Sports))
	for _, s := range cfg.Ingest.Sports {
		sports = append(sports, domain.Sport(s))
	}

	registry, err := processor.BuildRegistry(processor.Deps{
		Logger:           logger,
		Tx:               txManager,
		Refs:             refStore,
		Outbox:           outboxStore,
		Franchises:       postgres.NewFranchiseStore(db),
		FranchiseSeasons: postgres.NewFranchiseSeasonStore(db),
		GroupSeasons:     postgres.NewGroupSeasonStore(db),
		SeasonWeeks:      postgres.NewSeasonWeekStore(db),
		Contests:         postgres.NewContestStore(db),
		Competitions:     postgres.NewCompetitionStore(db),
		Competitors:      postgres.NewCompetitorStore(db),
		Athletes:         postgres.NewAthleteStore(db),
		AthleteSeasons:   postgres.NewAthleteSeasonStore(db),
		Odds:             postgres.NewOddsStore(db),
		Statistics:       postgres.NewStatisticsStore(db),
	}, sports)
	if err != nil {
		logger.Error("failed to build processor registry", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	relay := outbox.NewRelay(outboxStore, broker, cfg.Outbox.PollInterval, cfg.Outbox.BatchSize, logger)
	go func() {
		if err := relay.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("outbox relay error", "error", err)
			cancel()
		}
	}()

	deliveries, err := broker.Consume(ctx)
	if err != nil {
		logger.Error("failed to start consuming", "error", err)
		os.Exit(1)
	}

	logger.Info("starting document ingestor",
		"sports", cfg.Ingest.Sports,
		"workers", cfg.Ingest.Workers,
		"max_attempts", cfg.Ingest.MaxAttempts,
	)

	w := worker.New(registry, broker, outboxStore, txManager, logger, worker.Config{
		MaxAttempts: cfg.Ingest.MaxAttempts,
	})
	w.Run(ctx, deliveries, cfg.Ingest.Workers)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/wevote/internal/adapters/ai/gemini"
	"github.com/vncsmyrnk/wevote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/wevote/internal/config"
	"github.com/vncsmyrnk/wevote/internal/core/services"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Postgres.Host, "db-host", cfg.Postgres.Host, "Database host")
	flag.StringVar(&cfg.Postgres.Port, "db-port", cfg.Postgres.Port, "Database port")
	flag.StringVar(&cfg.Postgres.User, "db-user", cfg.Postgres.User, "Database user")
	flag.StringVar(&cfg.Postgres.Password, "db-pass", cfg.Postgres.Password, "Database password")
	flag.StringVar(&cfg.Postgres.DB, "db-name", cfg.Postgres.DB, "Database name")
	timeout := flag.Duration("timeout", 5*time.Minute, "Job timeout")
	flag.Parse()

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:    cfg.GeminiAPIKey,
		TextModel: cfg.GeminiTextModel,
	}, logger)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}

	summaryService := services.NewSummaryService(
		postgres.NewElectionRepository(db),
		postgres.NewForumRepository(db),
		postgres.NewSummaryRepository(db),
		client,
		services.WithLogger(logger),
		services.WithAITimeout(cfg.AITimeout),
	)

	logger.Info("Starting discussion summarization job...")

	if err := summaryService.SummarizeAll(ctx); err != nil {
		logger.Error("error summarizing discussions", "error", err)
		os.Exit(1)
	}

	logger.Info("Discussion summarization completed successfully.")
}

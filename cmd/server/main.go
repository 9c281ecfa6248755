package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/wevote/internal/adapters/ai/gemini"
	"github.com/vncsmyrnk/wevote/internal/adapters/cache/viewcache"
	"github.com/vncsmyrnk/wevote/internal/adapters/handler/http"
	"github.com/vncsmyrnk/wevote/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/wevote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/wevote/internal/config"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
	"github.com/vncsmyrnk/wevote/internal/core/services"
)

type repositories struct {
	elections ports.ElectionRepository
	votes     ports.VoteRepository
	forum     ports.ForumRepository
	summaries ports.SummaryRepository
	users     ports.UserRepository
	close     func() error
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		logger.Error("failed to open storage", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer repos.close()

	opts := []services.Option{
		services.WithLogger(logger),
		services.WithAITimeout(cfg.AITimeout),
	}

	var (
		moderator  ports.Moderator
		summarizer ports.Summarizer
		badges     ports.BadgeGenerator
	)
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:     cfg.GeminiAPIKey,
			TextModel:  cfg.GeminiTextModel,
			ImageModel: cfg.GeminiImageModel,
		}, logger)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		moderator, summarizer, badges = client, client, client
	} else {
		logger.Warn("GEMINI_API_KEY not set, posting and summaries are unavailable and badges fall back to placeholders")
	}

	views := viewcache.New(cfg.ViewCacheTTL)

	authService := services.NewAuthService(repos.users, cfg.JWTSecret, cfg.SessionTTL, opts...)
	userService := services.NewUserService(repos.users)

	handler := http.NewHandler(http.Handlers{
		Elections: http.NewElectionHandler(services.NewElectionService(repos.elections, views, opts...), userService),
		Votes:     http.NewVoteHandler(services.NewVoteService(repos.users, repos.elections, repos.votes, views, opts...)),
		Forum:     http.NewForumHandler(services.NewForumService(repos.elections, repos.forum, moderator, views, opts...)),
		Summaries: http.NewSummaryHandler(services.NewSummaryService(repos.elections, repos.forum, repos.summaries, summarizer, opts...)),
		Badges:    http.NewBadgeHandler(services.NewBadgeService(repos.elections, badges, opts...), userService),
		Auth:      http.NewAuthHandler(authService, authService.SessionTTL(), cfg.CookieDomain, cfg.CookieSecure),
		Users:     http.NewUserHandler(userService),
	}, authService, cfg.CORSAllowedOrigins)

	server := &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", cfg.HTTPAddr, "storage", cfg.Storage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Storage == config.StorageMemory {
		store := memory.NewStore()
		return &repositories{
			elections: memory.NewElectionRepository(store),
			votes:     memory.NewVoteRepository(store),
			forum:     memory.NewForumRepository(store),
			summaries: memory.NewSummaryRepository(store),
			users:     memory.NewUserRepository(store),
			close:     func() error { return nil },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := postgres.ApplyMigrations(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &repositories{
		elections: postgres.NewElectionRepository(db),
		votes:     postgres.NewVoteRepository(db),
		forum:     postgres.NewForumRepository(db),
		summaries: postgres.NewSummaryRepository(db),
		users:     postgres.NewUserRepository(db),
		close:     db.Close,
	}, nil
}

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

const defaultAITimeout = 20 * time.Second

type options struct {
	clock     ports.Clock
	logger    *slog.Logger
	aiTimeout time.Duration
}

type Option func(*options)

func WithClock(clock ports.Clock) Option {
	return func(o *options) { o.clock = clock }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithAITimeout bounds every call to an external AI capability.
func WithAITimeout(d time.Duration) Option {
	return func(o *options) { o.aiTimeout = d }
}

func buildOptions(opts []Option) options {
	o := options{
		clock:     systemClock{},
		logger:    slog.Default(),
		aiTimeout: defaultAITimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = systemClock{}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.aiTimeout <= 0 {
		o.aiTimeout = defaultAITimeout
	}
	return o
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// View keys shared by every service that reads or invalidates cached views.
const electionsViewKey = "elections"

func electionViewKey(id uuid.UUID) string { return "election:" + id.String() }

func postsViewKey(id uuid.UUID) string { return "posts:" + id.String() }

type uncachedViews struct{}

func (uncachedViews) Fetch(ctx context.Context, _ string, load func(context.Context) (any, error)) (any, error) {
	return load(ctx)
}

func (uncachedViews) Invalidate(...string) {}

func resolveViews(views ports.ViewCache) ports.ViewCache {
	if views == nil {
		return uncachedViews{}
	}
	return views
}

package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

type SummaryRepository interface {
	SaveSummary(ctx context.Context, summary *domain.DiscussionSummary) error
	GetSummary(ctx context.Context, electionID uuid.UUID) (*domain.DiscussionSummary, error)
}

type SummaryService interface {
	Summarize(ctx context.Context, electionID string, wordLimit int) (*domain.DiscussionSummary, error)
	Latest(ctx context.Context, electionID string) (*domain.DiscussionSummary, error)
	SummarizeAll(ctx context.Context) error
}

package ports

import (
	"context"

	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

type Moderator interface {
	Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, thread string, wordLimit int) (string, error)
}

type BadgeRequest struct {
	ElectionTitle string
	UserName      string
}

// GeneratedBadge is the raw capability output. ImageURL is empty when the
// model produced no image.
type GeneratedBadge struct {
	ImageURL string
	Message  string
}

type BadgeGenerator interface {
	GenerateBadge(ctx context.Context, req BadgeRequest) (GeneratedBadge, error)
}

type BadgeService interface {
	Generate(ctx context.Context, electionID string, userName string) (*domain.Badge, error)
}

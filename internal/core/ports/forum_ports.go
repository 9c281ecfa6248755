package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

type ForumRepository interface {
	SavePost(ctx context.Context, post *domain.ForumPost) error
	// ListByElection returns posts newest first.
	ListByElection(ctx context.Context, electionID uuid.UUID) ([]*domain.ForumPost, error)
}

type CreatePostInput struct {
	ElectionID string
	Content    string
}

type ForumService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*domain.ForumPost, error)
	ListPosts(ctx context.Context, electionID string) ([]*domain.ForumPost, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

const (
	minPostLength = 10
	maxPostLength = 1000
)

type forumService struct {
	electionRepo ports.ElectionRepository
	forumRepo    ports.ForumRepository
	moderator    ports.Moderator
	views        ports.ViewCache
	clock        ports.Clock
	logger       *slog.Logger
	aiTimeout    time.Duration
}

func NewForumService(electionRepo ports.ElectionRepository, forumRepo ports.ForumRepository, moderator ports.Moderator, views ports.ViewCache, opts ...Option) ports.ForumService {
	o := buildOptions(opts)
	return &forumService{
		electionRepo: electionRepo,
		forumRepo:    forumRepo,
		moderator:    moderator,
		views:        resolveViews(views),
		clock:        o.clock,
		logger:       o.logger,
		aiTimeout:    o.aiTimeout,
	}
}

func (s *forumService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*domain.ForumPost, error) {
	rawID := strings.TrimSpace(input.ElectionID)
	if rawID == "" {
		return nil, domain.ErrElectionIDRequired
	}
	electionID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domain.ErrInvalidElectionID
	}

	length := utf8.RuneCountInString(strings.TrimSpace(input.Content))
	if length < minPostLength {
		return nil, domain.ErrPostTooShort
	}
	if length > maxPostLength {
		return nil, domain.ErrPostTooLong
	}

	if _, err := s.electionRepo.GetByID(ctx, electionID); err != nil {
		return nil, err
	}

	verdict, err := s.moderate(ctx, input.Content)
	if err != nil {
		s.logger.Error("post moderation failed", "election_id", electionID, "error", err)
		return nil, domain.ErrModeration
	}

	post := &domain.ForumPost{
		ID:         uuid.New(),
		ElectionID: electionID,
		Author:     domain.AnonymousAuthor,
		Content:    input.Content,
		CreatedAt:  s.clock.Now(),
		IsFlagged:  verdict.Flagged,
	}
	if verdict.Flagged {
		post.FlagReason = verdict.Reason
	}

	if err := s.forumRepo.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}
	s.views.Invalidate(postsViewKey(electionID))

	s.logger.Info("forum post created", "election_id", electionID, "post_id", post.ID, "flagged", post.IsFlagged)
	return post, nil
}

func (s *forumService) ListPosts(ctx context.Context, electionID string) ([]*domain.ForumPost, error) {
	id, err := uuid.Parse(strings.TrimSpace(electionID))
	if err != nil {
		return nil, domain.ErrInvalidElectionID
	}

	cached, err := s.views.Fetch(ctx, postsViewKey(id), func(ctx context.Context) (any, error) {
		return s.forumRepo.ListByElection(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return cached.([]*domain.ForumPost), nil
}

func (s *forumService) moderate(ctx context.Context, text string) (domain.ModerationVerdict, error) {
	if s.moderator == nil {
		return domain.ModerationVerdict{}, domain.ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()
	return s.moderator.Moderate(ctx, text)
}

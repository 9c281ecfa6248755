package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

const (
	badgeThanksMessage = "Thank you for your participation!"

	badgeMissingImageURL = "https://placehold.co/300x200.png?text=Participation+Acknowledged"
	badgeMissingMessage  = "Your participation is acknowledged, but the custom badge could not be generated."

	badgeErrorImageURL = "https://placehold.co/300x200.png?text=Error+Generating+Badge"
	badgeErrorMessage  = "An error occurred while generating your participation badge."
)

type badgeService struct {
	electionRepo ports.ElectionRepository
	generator    ports.BadgeGenerator
	logger       *slog.Logger
	aiTimeout    time.Duration
}

func NewBadgeService(electionRepo ports.ElectionRepository, generator ports.BadgeGenerator, opts ...Option) ports.BadgeService {
	o := buildOptions(opts)
	return &badgeService{
		electionRepo: electionRepo,
		generator:    generator,
		logger:       o.logger,
		aiTimeout:    o.aiTimeout,
	}
}

// Generate never fails because of the generator: errors and empty output are
// replaced with placeholder badges. Only an unknown election is an error.
func (s *badgeService) Generate(ctx context.Context, electionID string, userName string) (*domain.Badge, error) {
	id, err := uuid.Parse(strings.TrimSpace(electionID))
	if err != nil {
		return nil, domain.ErrInvalidElectionID
	}
	election, err := s.electionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	generated, err := s.generate(ctx, ports.BadgeRequest{
		ElectionTitle: election.Title,
		UserName:      strings.TrimSpace(userName),
	})
	if err != nil {
		s.logger.Warn("badge generation failed", "election_id", id, "error", err)
		return &domain.Badge{ImageURL: badgeErrorImageURL, Message: badgeErrorMessage, Fallback: true}, nil
	}

	if generated.ImageURL == "" {
		s.logger.Warn("badge generation returned no image", "election_id", id)
		return &domain.Badge{
			ImageURL: badgeMissingImageURL,
			Message:  firstNonEmpty(generated.Message, badgeMissingMessage),
			Fallback: true,
		}, nil
	}

	return &domain.Badge{
		ImageURL: generated.ImageURL,
		Message:  firstNonEmpty(generated.Message, badgeThanksMessage),
	}, nil
}

func (s *badgeService) generate(ctx context.Context, req ports.BadgeRequest) (ports.GeneratedBadge, error) {
	if s.generator == nil {
		return ports.GeneratedBadge{}, domain.ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()
	return s.generator.GenerateBadge(ctx, req)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

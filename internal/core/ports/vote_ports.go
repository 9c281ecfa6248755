package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

type VoteRepository interface {
	// RecordVote inserts the vote unless one already exists for the
	// (user, election) pair, in which case it returns domain.ErrAlreadyVoted.
	// The user's voted elections are updated in the same step.
	RecordVote(ctx context.Context, vote *domain.VoteRecord) error
	HasVoted(ctx context.Context, userID, electionID uuid.UUID) (bool, error)
}

type VoteInput struct {
	ActorID     uuid.UUID
	UserID      uuid.UUID
	ElectionID  uuid.UUID
	CandidateID uuid.UUID
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.VoteRecord, error)
	HasVoted(ctx context.Context, userID, electionID uuid.UUID) (bool, error)
}

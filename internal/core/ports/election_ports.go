package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

type ElectionRepository interface {
	Save(ctx context.Context, election *domain.Election) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Election, error)
	GetAll(ctx context.Context) ([]*domain.Election, error)
}

// CreateElectionInput carries the raw form text; splitting and filtering is
// done by the service.
type CreateElectionInput struct {
	Title                 string
	Description           string
	CandidateNames        string
	CandidateDescriptions string
	VoterEmails           string
	StartDate             time.Time
	EndDate               time.Time
}

type ElectionService interface {
	Create(ctx context.Context, input CreateElectionInput) (*domain.Election, error)
	GetElection(ctx context.Context, id string) (*domain.Election, error)
	ListElections(ctx context.Context) ([]*domain.Election, error)
}

type Clock interface {
	Now() time.Time
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// RecordVote relies on the (user_id, election_id) unique constraint: the
// insert is a no-op when a vote already exists, so concurrent submissions
// cannot both succeed.
func (r *voteRepository) RecordVote(ctx context.Context, vote *domain.VoteRecord) error {
	query := `
		INSERT INTO votes (id, user_id, election_id, candidate_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT votes_user_election_key DO NOTHING
		RETURNING id
	`
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query, vote.ID, vote.UserID, vote.ElectionID, vote.CandidateID, vote.CreatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isPQError(err, uniqueViolation) {
			return domain.ErrAlreadyVoted
		}
		if isPQError(err, foreignKeyViolation) {
			return domain.ErrInvalidCandidate
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, userID, electionID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM votes WHERE user_id = $1 AND election_id = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, userID, electionID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func isPQError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type summaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) ports.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

func (r *summaryRepository) SaveSummary(ctx context.Context, summary *domain.DiscussionSummary) error {
	query := `
		INSERT INTO discussion_summaries (election_id, summary, word_limit, post_count, generated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (election_id) DO UPDATE
		SET summary = EXCLUDED.summary,
		    word_limit = EXCLUDED.word_limit,
		    post_count = EXCLUDED.post_count,
		    generated_at = EXCLUDED.generated_at;
	`
	_, err := r.db.ExecContext(ctx, query, summary.ElectionID, summary.Summary, summary.WordLimit, summary.PostCount, summary.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to save summary for election %s: %w", summary.ElectionID, err)
	}
	return nil
}

func (r *summaryRepository) GetSummary(ctx context.Context, electionID uuid.UUID) (*domain.DiscussionSummary, error) {
	query := `
		SELECT election_id, summary, word_limit, post_count, generated_at
		FROM discussion_summaries
		WHERE election_id = $1
	`
	var s domain.DiscussionSummary
	err := r.db.QueryRowContext(ctx, query, electionID).Scan(&s.ElectionID, &s.Summary, &s.WordLimit, &s.PostCount, &s.GeneratedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return &s, nil
}

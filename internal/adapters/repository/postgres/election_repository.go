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

type electionRepository struct {
	db *sql.DB
}

func NewElectionRepository(db *sql.DB) ports.ElectionRepository {
	return &electionRepository{
		db: db,
	}
}

func (r *electionRepository) Save(ctx context.Context, election *domain.Election) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryElection := `
		INSERT INTO elections (id, title, description, start_date, end_date, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, queryElection,
		election.ID, election.Title, election.Description,
		election.StartDate, election.EndDate, election.ImageURL, election.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert election: %w", err)
	}

	queryCandidate := `
		INSERT INTO candidates (id, election_id, name, description, image_url, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	stmt, err := tx.PrepareContext(ctx, queryCandidate)
	if err != nil {
		return fmt.Errorf("failed to prepare candidate statement: %w", err)
	}
	defer stmt.Close()

	for i, c := range election.Candidates {
		_, err = stmt.ExecContext(ctx, c.ID, election.ID, c.Name, c.Description, c.ImageURL, i)
		if err != nil {
			return fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	for _, email := range election.AllowedVoters {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO election_voters (election_id, email) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			election.ID, email,
		)
		if err != nil {
			return fmt.Errorf("failed to insert allowed voter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *electionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Election, error) {
	queryElection := `
		SELECT id, title, description, start_date, end_date, image_url, created_at
		FROM elections
		WHERE id = $1
	`

	var election domain.Election
	err := r.db.QueryRowContext(ctx, queryElection, id).Scan(
		&election.ID, &election.Title, &election.Description,
		&election.StartDate, &election.EndDate, &election.ImageURL, &election.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	if err := r.fetchDetails(ctx, &election); err != nil {
		return nil, err
	}
	return &election, nil
}

func (r *electionRepository) GetAll(ctx context.Context) ([]*domain.Election, error) {
	query := `
		SELECT id, title, description, start_date, end_date, image_url, created_at
		FROM elections
		ORDER BY created_at DESC, title ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all elections: %w", err)
	}
	defer rows.Close()

	var elections []*domain.Election
	for rows.Next() {
		var e domain.Election
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating elections: %w", err)
	}
	rows.Close()

	for _, e := range elections {
		if err := r.fetchDetails(ctx, e); err != nil {
			return nil, err
		}
	}
	return elections, nil
}

func (r *electionRepository) fetchDetails(ctx context.Context, election *domain.Election) error {
	candidates, err := r.fetchCandidates(ctx, election.ID)
	if err != nil {
		return err
	}
	election.Candidates = candidates

	voters, err := r.fetchAllowedVoters(ctx, election.ID)
	if err != nil {
		return err
	}
	election.AllowedVoters = voters
	return nil
}

func (r *electionRepository) fetchCandidates(ctx context.Context, electionID uuid.UUID) ([]domain.Candidate, error) {
	query := `
		SELECT id, election_id, name, description, image_url
		FROM candidates
		WHERE election_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Description, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidates: %w", err)
	}
	return candidates, nil
}

func (r *electionRepository) fetchAllowedVoters(ctx context.Context, electionID uuid.UUID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT email FROM election_voters WHERE election_id = $1 ORDER BY email`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get allowed voters: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan allowed voter: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allowed voters: %w", err)
	}
	return emails, nil
}

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

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, created_at FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, name, created_at FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// Create inserts the user, or loads the existing row when the email is
// already registered.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	query := `
		INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, name, created_at
	`
	err := r.db.QueryRowContext(ctx, query, user.ID, user.Email, user.Name, user.CreatedAt).Scan(&user.ID, &user.Name, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return r.loadVotedElections(ctx, user)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadVotedElections(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// loadVotedElections derives the voted list from the votes table, so it can
// never drift from the recorded votes.
func (r *UserRepository) loadVotedElections(ctx context.Context, user *domain.User) error {
	rows, err := r.db.QueryContext(ctx, `SELECT election_id FROM votes WHERE user_id = $1 ORDER BY created_at`, user.ID)
	if err != nil {
		return fmt.Errorf("failed to get voted elections: %w", err)
	}
	defer rows.Close()

	user.VotedElections = []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan voted election: %w", err)
		}
		user.VotedElections = append(user.VotedElections, id)
	}
	return rows.Err()
}

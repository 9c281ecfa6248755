package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type forumRepository struct {
	db *sql.DB
}

func NewForumRepository(db *sql.DB) ports.ForumRepository {
	return &forumRepository{
		db: db,
	}
}

func (r *forumRepository) SavePost(ctx context.Context, post *domain.ForumPost) error {
	query := `
		INSERT INTO forum_posts (id, election_id, author, content, is_flagged, flag_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	reason := sql.NullString{String: post.FlagReason, Valid: post.FlagReason != ""}
	_, err := r.db.ExecContext(ctx, query, post.ID, post.ElectionID, post.Author, post.Content, post.IsFlagged, reason, post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *forumRepository) ListByElection(ctx context.Context, electionID uuid.UUID) ([]*domain.ForumPost, error) {
	query := `
		SELECT id, election_id, author, content, is_flagged, flag_reason, created_at
		FROM forum_posts
		WHERE election_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*domain.ForumPost
	for rows.Next() {
		var post domain.ForumPost
		var reason sql.NullString
		if err := rows.Scan(&post.ID, &post.ElectionID, &post.Author, &post.Content, &post.IsFlagged, &reason, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		post.FlagReason = reason.String
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}

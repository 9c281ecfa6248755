package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousAuthor is the only author name a forum post ever carries.
const AnonymousAuthor = "Anonymous"

type ForumPost struct {
	ID         uuid.UUID `json:"id"`
	ElectionID uuid.UUID `json:"election_id"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"timestamp"`
	IsFlagged  bool      `json:"is_flagged"`
	FlagReason string    `json:"flag_reason,omitempty"`
}

type ModerationVerdict struct {
	Flagged bool
	Reason  string
}

type DiscussionSummary struct {
	ElectionID  uuid.UUID `json:"election_id"`
	Summary     string    `json:"summary"`
	WordLimit   int       `json:"word_limit"`
	PostCount   int       `json:"post_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

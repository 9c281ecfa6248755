package domain

import (
	"time"

	"github.com/google/uuid"
)

type VoteRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ElectionID  uuid.UUID `json:"election_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name,omitempty"`
	VotedElections []uuid.UUID `json:"voted_elections"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (u User) HasVotedIn(electionID uuid.UUID) bool {
	return slices.Contains(u.VotedElections, electionID)
}

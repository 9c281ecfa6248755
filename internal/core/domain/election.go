package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ElectionStatus string

const (
	StatusUpcoming  ElectionStatus = "upcoming"
	StatusOngoing   ElectionStatus = "ongoing"
	StatusCompleted ElectionStatus = "completed"
)

type Election struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Candidates    []Candidate    `json:"candidates"`
	StartDate     time.Time      `json:"start_date"`
	EndDate       time.Time      `json:"end_date"`
	Status        ElectionStatus `json:"status"`
	AllowedVoters []string       `json:"-"`
	ImageURL      string         `json:"image_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

type Candidate struct {
	ID          uuid.UUID `json:"id"`
	ElectionID  uuid.UUID `json:"election_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// StatusAt derives the election status from its schedule. Status is never
// persisted, so every read reflects the current time.
func (e Election) StatusAt(now time.Time) ElectionStatus {
	switch {
	case now.Before(e.StartDate):
		return StatusUpcoming
	case now.Before(e.EndDate):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}

// At returns a copy of the election with Status derived for now.
func (e Election) At(now time.Time) Election {
	e.Status = e.StatusAt(now)
	return e
}

func (e Election) HasCandidate(id uuid.UUID) bool {
	return slices.ContainsFunc(e.Candidates, func(c Candidate) bool {
		return c.ID == id
	})
}

// Restricted reports whether voting is limited to AllowedVoters.
func (e Election) Restricted() bool {
	return len(e.AllowedVoters) > 0
}

func (e Election) AllowsVoter(email string) bool {
	if !e.Restricted() {
		return true
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	return slices.Contains(e.AllowedVoters, email)
}

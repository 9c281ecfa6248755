package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatusAt(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	e := Election{StartDate: start, EndDate: start.Add(8 * time.Hour)}

	assert.Equal(t, StatusUpcoming, e.StatusAt(start.Add(-time.Second)))
	assert.Equal(t, StatusOngoing, e.StatusAt(start))
	assert.Equal(t, StatusOngoing, e.StatusAt(start.Add(8*time.Hour-time.Second)))
	assert.Equal(t, StatusCompleted, e.StatusAt(start.Add(8*time.Hour)))

	copied := e.At(start)
	assert.Equal(t, StatusOngoing, copied.Status)
	assert.Empty(t, e.Status)
}

func TestAllowsVoter(t *testing.T) {
	open := Election{}
	assert.False(t, open.Restricted())
	assert.True(t, open.AllowsVoter("anyone@x.io"))

	restricted := Election{AllowedVoters: []string{"a@x.io"}}
	assert.True(t, restricted.Restricted())
	assert.True(t, restricted.AllowsVoter(" A@X.io "))
	assert.False(t, restricted.AllowsVoter("b@x.io"))
	assert.False(t, restricted.AllowsVoter(""))
}

func TestHasCandidate(t *testing.T) {
	id := uuid.New()
	e := Election{Candidates: []Candidate{{ID: id, Name: "Ann"}}}
	assert.True(t, e.HasCandidate(id))
	assert.False(t, e.HasCandidate(uuid.New()))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrTitleTooShort))
	assert.True(t, IsValidation(ErrPostTooLong))
	assert.False(t, IsValidation(ErrAlreadyVoted))
	assert.False(t, IsValidation(nil))
}

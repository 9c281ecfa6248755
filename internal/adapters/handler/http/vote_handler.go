package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	CandidateID string `json:"candidate_id"`
	UserID      string `json:"user_id,omitempty"`
}

type voteResponse struct {
	Success bool               `json:"success"`
	Vote    *domain.VoteRecord `json:"vote"`
}

type myVoteResponse struct {
	HasVoted bool `json:"has_voted"`
}

// Vote godoc
// @Summary      Casts a vote
// @Description  Records the authenticated user's vote. A second vote in the same election is rejected with already_voted set.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Election ID"
// @Param        vote  body      voteRequest  true  "Candidate"
// @Success      201   {object}  voteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/elections/{id}/votes [post]
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	electionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, domain.ErrInvalidElectionID)
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		writeError(w, r, domain.ErrInvalidCandidate)
		return
	}

	var claimed uuid.UUID
	if req.UserID != "" {
		claimed, err = uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, r, domain.ErrAuthentication)
			return
		}
	}

	actorID, _ := userIDFrom(r)
	vote, err := h.service.Vote(r.Context(), ports.VoteInput{
		ActorID:     actorID,
		UserID:      claimed,
		ElectionID:  electionID,
		CandidateID: candidateID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, voteResponse{Success: true, Vote: vote})
}

// GetMyVote godoc
// @Summary      Reports whether the authenticated user voted
// @Tags         votes
// @Produce      json
// @Param        id   path      string  true  "Election ID"
// @Success      200  {object}  myVoteResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/elections/{id}/my-vote [get]
func (h *VoteHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	electionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, domain.ErrInvalidElectionID)
		return
	}

	userID, _ := userIDFrom(r)
	voted, err := h.service.HasVoted(r.Context(), userID, electionID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, myVoteResponse{HasVoted: voted})
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

type ElectionHandler struct {
	service ports.ElectionService
	users   ports.UserService
}

func NewElectionHandler(service ports.ElectionService, users ports.UserService) *ElectionHandler {
	return &ElectionHandler{
		service: service,
		users:   users,
	}
}

// electionView hides the allow-list. CanVote is only set for a signed-in
// caller.
type electionView struct {
	*domain.Election
	IsRestricted bool  `json:"restricted"`
	CanVote      *bool `json:"can_vote,omitempty"`
}

func newElectionView(election *domain.Election, user *domain.User) electionView {
	view := electionView{Election: election, IsRestricted: election.Restricted()}
	if user != nil {
		canVote := election.Status == domain.StatusOngoing &&
			election.AllowsVoter(user.Email) &&
			!user.HasVotedIn(election.ID)
		view.CanVote = &canVote
	}
	return view
}

// caller resolves the signed-in user, if any. Lookup failures degrade to an
// anonymous view.
func (h *ElectionHandler) caller(r *http.Request) *domain.User {
	userID, ok := userIDFrom(r)
	if !ok || h.users == nil {
		return nil
	}
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		slog.WarnContext(r.Context(), "failed to resolve caller", "user_id", userID, "error", err)
		return nil
	}
	return user
}

type createElectionRequest struct {
	Title                 string `json:"title"`
	Description           string `json:"description"`
	CandidateNames        string `json:"candidate_names"`
	CandidateDescriptions string `json:"candidate_descriptions"`
	VoterEmails           string `json:"voter_emails"`
	StartDate             string `json:"start_date"`
	EndDate               string `json:"end_date"`
}

type createElectionResponse struct {
	Success  bool         `json:"success"`
	Election electionView `json:"election"`
}

// CreateElection godoc
// @Summary      Creates an election
// @Description  Validates the form fields, splits candidate names on commas or newlines and stores the election.
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        election  body      createElectionRequest  true  "Election form"
// @Success      201       {object}  createElectionResponse
// @Failure      400       {object}  errorResponse
// @Router       /api/elections [post]
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req createElectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	election, err := h.service.Create(r.Context(), ports.CreateElectionInput{
		Title:                 req.Title,
		Description:           req.Description,
		CandidateNames:        req.CandidateNames,
		CandidateDescriptions: req.CandidateDescriptions,
		VoterEmails:           req.VoterEmails,
		StartDate:             parseDate(req.StartDate),
		EndDate:               parseDate(req.EndDate),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createElectionResponse{Success: true, Election: newElectionView(election, nil)})
}

// ListElections godoc
// @Summary      Lists elections
// @Description  Newest first, with status derived at request time.
// @Tags         elections
// @Produce      json
// @Success      200  {array}   electionView
// @Router       /api/elections [get]
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	elections, err := h.service.ListElections(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	user := h.caller(r)
	views := make([]electionView, 0, len(elections))
	for _, election := range elections {
		views = append(views, newElectionView(election, user))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetElection godoc
// @Summary      Gets an election
// @Tags         elections
// @Produce      json
// @Param        id   path      string  true  "Election ID"
// @Success      200  {object}  electionView
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/elections/{id} [get]
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	election, err := h.service.GetElection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newElectionView(election, h.caller(r)))
}

// parseDate accepts RFC 3339, datetime-local and plain dates. Blank or
// unparseable input yields the zero time, so the date rule is reported in
// its place among the other field checks.
func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

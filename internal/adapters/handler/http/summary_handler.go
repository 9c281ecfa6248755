package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type SummaryHandler struct {
	service ports.SummaryService
}

func NewSummaryHandler(service ports.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		service: service,
	}
}

type summarizeRequest struct {
	WordLimit int `json:"word_limit"`
}

type summaryResponse struct {
	Success bool                      `json:"success"`
	Summary *domain.DiscussionSummary `json:"summary"`
}

// Summarize godoc
// @Summary      Summarizes an election discussion
// @Description  Summarizes the unflagged posts and stores the result. word_limit defaults to 100.
// @Tags         discussions
// @Accept       json
// @Produce      json
// @Param        id       path      string            true   "Election ID"
// @Param        request  body      summarizeRequest  false  "Options"
// @Success      200      {object}  summaryResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      502      {object}  errorResponse
// @Router       /api/elections/{id}/discussion-summary [post]
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, "invalid request body")
		return
	}

	summary, err := h.service.Summarize(r.Context(), chi.URLParam(r, "id"), req.WordLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Success: true, Summary: summary})
}

// GetSummary godoc
// @Summary      Gets the latest discussion summary
// @Tags         discussions
// @Produce      json
// @Param        id   path      string  true  "Election ID"
// @Success      200  {object}  domain.DiscussionSummary
// @Failure      404  {object}  errorResponse
// @Router       /api/elections/{id}/discussion-summary [get]
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Latest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

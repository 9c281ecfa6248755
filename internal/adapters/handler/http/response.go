package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

const unexpectedErrorMessage = "An unexpected error occurred"

type errorResponse struct {
	Success      bool   `json:"success"`
	Error        string `json:"error"`
	AlreadyVoted bool   `json:"already_voted,omitempty"`
}

type errorMapping struct {
	target error
	status int
}

var errorStatuses = []errorMapping{
	{domain.ErrAuthentication, http.StatusUnauthorized},
	{domain.ErrElectionNotOngoing, http.StatusForbidden},
	{domain.ErrNotAllowedToVote, http.StatusForbidden},
	{domain.ErrElectionNotFound, http.StatusNotFound},
	{domain.ErrSummaryNotFound, http.StatusNotFound},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrAlreadyVoted, http.StatusConflict},
	{domain.ErrInvalidCandidate, http.StatusBadRequest},
	{domain.ErrNoDiscussion, http.StatusBadRequest},
	{domain.ErrModeration, http.StatusBadGateway},
	{domain.ErrSummarization, http.StatusBadGateway},
	{domain.ErrAIUnavailable, http.StatusBadGateway},
}

// statusFor maps a service error to an HTTP status and the message shown to
// the caller. Unknown errors are reported generically.
func statusFor(err error) (int, string) {
	if domain.IsValidation(err) {
		return http.StatusBadRequest, err.Error()
	}
	for _, m := range errorStatuses {
		if errors.Is(err, m.target) {
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, unexpectedErrorMessage
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{
		Success:      false,
		Error:        message,
		AlreadyVoted: errors.Is(err, domain.ErrAlreadyVoted),
	})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Success: false, Error: message})
}

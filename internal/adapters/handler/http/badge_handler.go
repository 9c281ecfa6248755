package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type BadgeHandler struct {
	badges ports.BadgeService
	users  ports.UserService
}

func NewBadgeHandler(badges ports.BadgeService, users ports.UserService) *BadgeHandler {
	return &BadgeHandler{
		badges: badges,
		users:  users,
	}
}

type badgeResponse struct {
	Success bool          `json:"success"`
	Badge   *domain.Badge `json:"badge"`
}

// GenerateBadge godoc
// @Summary      Generates a participation badge
// @Description  Falls back to a placeholder image when generation fails.
// @Tags         votes
// @Produce      json
// @Param        id   path      string  true  "Election ID"
// @Success      200  {object}  badgeResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/elections/{id}/badge [post]
func (h *BadgeHandler) GenerateBadge(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		writeError(w, r, domain.ErrAuthentication)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if user == nil {
		writeError(w, r, domain.ErrAuthentication)
		return
	}

	badge, err := h.badges.Generate(r.Context(), chi.URLParam(r, "id"), user.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, badgeResponse{Success: true, Badge: badge})
}

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type AuthHandler struct {
	authService    ports.AuthService
	sessionTTL     time.Duration
	cookieDomain   string
	cookieSecure   bool
	cookieSameSite http.SameSite
}

func NewAuthHandler(authService ports.AuthService, sessionTTL time.Duration, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionTTL:     sessionTTL,
		cookieDomain:   cookieDomain,
		cookieSecure:   cookieSecure,
		cookieSameSite: http.SameSiteLaxMode,
	}
}

type sessionRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type sessionResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
}

// StartSession godoc
// @Summary      Starts a session
// @Description  Finds or creates the user for the email and sets the access_token cookie used by `/api` calls. No credentials are checked.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        session  body      sessionRequest  true  "Identity"
// @Success      200      {object}  sessionResponse
// @Failure      400      {object}  errorResponse
// @Router       /auth/session [post]
func (h *AuthHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	token, err := h.authService.StartSession(r.Context(), req.Email, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setAccessTokenCookie(w, token)
	writeJSON(w, http.StatusOK, sessionResponse{Success: true, AccessToken: token})
}

// Logout godoc
// @Summary      Logs the autheticated user out
// @Description  Clears the access token cookie
// @Tags         auth
// @Success      200
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.expireCookies(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.cookieSameSite,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})
}

func (h *AuthHandler) expireCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, MaxAge: -1, Path: "/", Domain: h.cookieDomain})
}

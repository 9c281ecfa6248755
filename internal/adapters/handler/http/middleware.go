package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

type contextKey string

const UserIDKey contextKey = "user_id"

const accessTokenCookie = "access_token"

type TokenParser interface {
	ParseAccessToken(token string) (uuid.UUID, error)
}

func accessToken(r *http.Request) string {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

// AuthMiddleware rejects requests without a valid access token and stores the
// user id under UserIDKey.
func AuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := accessToken(r)
			if token == "" || parser == nil {
				writeError(w, r, domain.ErrAuthentication)
				return
			}
			userID, err := parser.ParseAccessToken(token)
			if err != nil {
				writeError(w, r, domain.ErrAuthentication)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userIDFrom(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// OptionalAuthMiddleware stores the user id when a valid access token is
// present and lets anonymous requests through untouched.
func OptionalAuthMiddleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := accessToken(r)
			if token == "" || parser == nil {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := parser.ParseAccessToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

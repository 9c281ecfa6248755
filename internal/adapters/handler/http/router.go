package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vncsmyrnk/wevote/internal/adapters/handler/http/docs"
)

type Handlers struct {
	Elections *ElectionHandler
	Votes     *VoteHandler
	Forum     *ForumHandler
	Summaries *SummaryHandler
	Badges    *BadgeHandler
	Auth      *AuthHandler
	Users     *UserHandler
}

// NewHandler wires the routes. Nil handlers leave their routes unregistered.
func NewHandler(h Handlers, tokens TokenParser, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAuth := AuthMiddleware(tokens)
	optionalAuth := OptionalAuthMiddleware(tokens)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if h.Auth != nil {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/session", h.Auth.StartSession)
			r.Post("/logout", h.Auth.Logout)
		})
	}

	r.Route("/api", func(r chi.Router) {
		if h.Users != nil {
			r.With(requireAuth).Get("/users/me", h.Users.GetMe)
		}

		r.Route("/elections", func(r chi.Router) {
			if h.Elections != nil {
				r.With(optionalAuth).Get("/", h.Elections.ListElections)
				r.Post("/", h.Elections.CreateElection)
				r.With(optionalAuth).Get("/{id}", h.Elections.GetElection)
			}
			if h.Votes != nil {
				r.With(requireAuth).Post("/{id}/votes", h.Votes.Vote)
				r.With(requireAuth).Get("/{id}/my-vote", h.Votes.GetMyVote)
			}
			if h.Forum != nil {
				r.Get("/{id}/posts", h.Forum.ListPosts)
				r.Post("/{id}/posts", h.Forum.CreatePost)
			}
			if h.Summaries != nil {
				r.Get("/{id}/discussion-summary", h.Summaries.GetSummary)
				r.Post("/{id}/discussion-summary", h.Summaries.Summarize)
			}
			if h.Badges != nil {
				r.With(requireAuth).Post("/{id}/badge", h.Badges.GenerateBadge)
			}
		})
	})

	return r
}

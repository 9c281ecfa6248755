package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
	"github.com/vncsmyrnk/wevote/internal/core/ports"
)

type ForumHandler struct {
	service ports.ForumService
}

func NewForumHandler(service ports.ForumService) *ForumHandler {
	return &ForumHandler{
		service: service,
	}
}

type createPostRequest struct {
	Content string `json:"content"`
}

type createPostResponse struct {
	Success bool              `json:"success"`
	Post    *domain.ForumPost `json:"post"`
	Flagged bool              `json:"flagged"`
	Reason  string            `json:"reason,omitempty"`
}

// CreatePost godoc
// @Summary      Posts to an election discussion
// @Description  The post is moderated before it is stored. Flagged posts are kept with their reason.
// @Tags         discussions
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Election ID"
// @Param        post  body      createPostRequest  true  "Post"
// @Success      201   {object}  createPostResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/elections/{id}/posts [post]
func (h *ForumHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), ports.CreatePostInput{
		ElectionID: chi.URLParam(r, "id"),
		Content:    req.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPostResponse{
		Success: true,
		Post:    post,
		Flagged: post.IsFlagged,
		Reason:  post.FlagReason,
	})
}

// ListPosts godoc
// @Summary      Lists an election's discussion posts
// @Description  Newest first.
// @Tags         discussions
// @Produce      json
// @Param        id   path      string  true  "Election ID"
// @Success      200  {array}   domain.ForumPost
// @Failure      400  {object}  errorResponse
// @Router       /api/elections/{id}/posts [get]
func (h *ForumHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if posts == nil {
		posts = []*domain.ForumPost{}
	}
	writeJSON(w, http.StatusOK, posts)
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/admin-dashboard/internal/domain"
	"github.com/msomdec/admin-dashboard/internal/service"
)

// PostHandler handles post moderation requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleList returns all posts as a bare JSON array.
// GET /api/posts
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts", "error", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toPostDTOs(posts))
}

// HandleDelete removes a post.
// DELETE /api/posts/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	if err := h.posts.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}
		slog.Error("delete post", "id", id, "error", err)
		writeInternalError(w)
		return
	}

	slog.Info("post deleted", "id", id)
	writeSuccess(w, "Post deleted successfully")
}

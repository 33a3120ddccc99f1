package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/admin-dashboard/internal/domain"
	"github.com/msomdec/admin-dashboard/internal/service"
)

// UserHandler handles user administration requests.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleList returns all users as a bare JSON array.
// GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeInternalError(w)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// HandleDelete removes a user.
// DELETE /api/users/{id}
// Response: {"success":true,"message":"User deleted successfully"} or 404.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("delete user", "id", id, "error", err)
		writeInternalError(w)
		return
	}

	slog.Info("user deleted", "id", id)
	writeSuccess(w, "User deleted successfully")
}

// pathID reads the leading integer of the {id} path segment, after any
// leading whitespace, so "3abc" is 3 and "1.5" is 1. A segment with no leading
// digits yields 0, which no record carries, so the lookup reports not found.
func pathID(r *http.Request) int64 {
	s := strings.TrimLeft(r.PathValue("id"), " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

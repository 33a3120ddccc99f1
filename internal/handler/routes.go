package handler

import (
	"net/http"
	"time"

	"github.com/msomdec/admin-dashboard/internal/service"
)

// Options tunes optional routes.
type Options struct {
	// StreamInterval is the refresh period of /api/statistics/stream.
	StreamInterval time.Duration
	// StaticDir, when set, is served at / for the dashboard front end.
	StaticDir string
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, posts *service.PostService, stats *service.StatisticsService, opts Options) {
	userHandler := NewUserHandler(users)
	postHandler := NewPostHandler(posts)
	statsHandler := NewStatisticsHandler(stats, opts.StreamInterval)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /api/users", userHandler.HandleList)
	mux.HandleFunc("DELETE /api/users/{id}", userHandler.HandleDelete)

	mux.HandleFunc("GET /api/posts", postHandler.HandleList)
	mux.HandleFunc("DELETE /api/posts/{id}", postHandler.HandleDelete)

	mux.HandleFunc("GET /api/statistics", statsHandler.HandleGet)
	mux.HandleFunc("GET /api/statistics/stream", statsHandler.HandleStream)

	if opts.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(opts.StaticDir)))
	}
}

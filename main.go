package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/msomdec/admin-dashboard/internal/domain"
	"github.com/msomdec/admin-dashboard/internal/handler"
	"github.com/msomdec/admin-dashboard/internal/repository/memory"
	"github.com/msomdec/admin-dashboard/internal/repository/sqlite"
	"github.com/msomdec/admin-dashboard/internal/seed"
	"github.com/msomdec/admin-dashboard/internal/service"
)

func main() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "3000")
	backend := envOrDefault("STORE_BACKEND", "memory")
	production := strings.EqualFold(os.Getenv("APP_ENV"), "production")

	streamInterval := handler.DefaultStreamInterval
	if v := os.Getenv("STATS_STREAM_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			slog.Error("invalid STATS_STREAM_INTERVAL", "value", v, "error", err)
			os.Exit(1)
		}
		streamInterval = parsed
	}

	rateLimitEnabled := true
	switch strings.ToLower(os.Getenv("RATE_LIMIT_ENABLED")) {
	case "0", "false", "no":
		rateLimitEnabled = false
	}
	rps, err := strconv.ParseFloat(envOrDefault("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps < 0 {
		slog.Error("invalid RATE_LIMIT_RPS", "error", err)
		os.Exit(1)
	}
	burst, err := strconv.Atoi(envOrDefault("RATE_LIMIT_BURST", "40"))
	if err != nil || burst < 1 {
		slog.Error("invalid RATE_LIMIT_BURST", "error", err)
		os.Exit(1)
	}

	db, err := openDatabase(backend)
	if err != nil {
		slog.Error("failed to open database", "backend", backend, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	fixtures, err := loadFixtures(os.Getenv("SEED_FILE"))
	if err != nil {
		slog.Error("failed to load seed data", "error", err)
		os.Exit(1)
	}
	if err := seed.Apply(context.Background(), db, fixtures); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}
	slog.Info("seed data loaded", "backend", backend, "users", len(fixtures.Users), "posts", len(fixtures.Posts))

	userService := service.NewUserService(db.Users())
	postService := service.NewPostService(db.Posts())
	statsService := service.NewStatisticsService(db.Users(), db.Posts())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, userService, postService, statsService, handler.Options{
		StreamInterval: streamInterval,
		StaticDir:      os.Getenv("STATIC_DIR"),
	})

	// Innermost first; RequestID ends up outermost.
	var h http.Handler = handler.SecurityHeaders(mux)
	h = handler.ForwardedToken(h)
	if rateLimitEnabled {
		limiter := service.NewTokenBucket(rps, burst)
		defer limiter.Close()
		h = handler.RateLimit(limiter, h)
	}
	h = handler.CORS(handler.CORSConfig{
		Production:     production,
		AllowedOrigins: strings.Split(os.Getenv("ALLOWED_ORIGINS"), ","),
	}, h)
	h = handler.Recover(h)
	h = handler.Logger(h)
	h = handler.RequestID(h)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("admin server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openDatabase returns the storage backend named by STORE_BACKEND. Both
// backends keep their data in process memory only.
func openDatabase(backend string) (domain.Database, error) {
	switch backend {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		db, err := sqlite.New(sqlite.MemoryPath)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (want memory or sqlite)", backend)
	}
}

func loadFixtures(path string) (*seed.Fixtures, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

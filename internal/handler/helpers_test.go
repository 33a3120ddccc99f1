package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msomdec/admin-dashboard/internal/domain"
	"github.com/msomdec/admin-dashboard/internal/handler"
	"github.com/msomdec/admin-dashboard/internal/repository/memory"
	"github.com/msomdec/admin-dashboard/internal/repository/sqlite"
	"github.com/msomdec/admin-dashboard/internal/seed"
	"github.com/msomdec/admin-dashboard/internal/service"
)

func newSeededDB(t *testing.T, backend string) domain.Database {
	t.Helper()
	ctx := context.Background()

	var db domain.Database
	switch backend {
	case "sqlite":
		sdb, err := sqlite.New(sqlite.MemoryPath)
		if err != nil {
			t.Fatalf("New DB: %v", err)
		}
		t.Cleanup(func() { sdb.Close() })
		db = sdb
	default:
		db = memory.New()
	}
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	f, err := seed.Default()
	if err != nil {
		t.Fatalf("seed.Default: %v", err)
	}
	if err := seed.Apply(ctx, db, f); err != nil {
		t.Fatalf("seed.Apply: %v", err)
	}
	return db
}

func newTestMux(t *testing.T, db domain.Database) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux,
		service.NewUserService(db.Users()),
		service.NewPostService(db.Posts()),
		service.NewStatisticsService(db.Users(), db.Posts()),
		handler.Options{StreamInterval: 20 * time.Millisecond},
	)
	return mux
}

func newTestServer(t *testing.T, backend string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newTestMux(t, newSeededDB(t, backend)))
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var backends = []string{"memory", "sqlite"}

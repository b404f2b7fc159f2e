package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSQL_Migration(t *testing.T) {
	b, err := os.ReadFile("../../migrations/0001_places.sql")
	require.NoError(t, err)

	stmts := splitSQL(string(b))
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS places")
	assert.Contains(t, stmts[2], "ON CONFLICT (id) DO NOTHING")
	assert.Equal(t, []string{"places"}, extractTables(string(b)))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusPass, statusFor(422, []int{422}))
	assert.Equal(t, StatusPending, statusFor(501, []int{200}))
	assert.Equal(t, StatusFail, statusFor(500, []int{200}))
}

func TestHTTPCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewRunner(Config{BaseURL: srv.URL})
	res := httpCase("post", http.MethodPost, srv.URL, map[string]any{"places": []string{"a"}}, []int{422}).Run(context.Background(), r)
	assert.Equal(t, StatusPass, res.Status)

	res = httpCase("get", http.MethodGet, srv.URL, nil, []int{404}).Run(context.Background(), r)
	assert.Equal(t, StatusFail, res.Status)
}

func TestLiveCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"routes":[{"mode":"walk","fare":{"amount":0,"currency":"MOP"}},{"mode":"drive","fare":null}]}`))
	}))
	defer srv.Close()

	tc := liveCase("live", srv.URL, map[string]any{}, 2)

	res := tc.Run(context.Background(), NewRunner(Config{}))
	assert.Equal(t, StatusSkip, res.Status)

	res = tc.Run(context.Background(), NewRunner(Config{LiveRoutes: true}))
	assert.Equal(t, StatusPass, res.Status)
	assert.Equal(t, "legs=2 priced=1", res.Note)
}

func TestPerfLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	r := NewRunner(Config{Concurrency: 2, Duration: 50 * time.Millisecond})
	res := perfLoad(context.Background(), r, srv.URL, nil)
	assert.Equal(t, StatusPass, res.Status)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("EXPLORE_BENCH_BASE_URL", "http://api:8080/")
	cfg := loadConfig([]string{"--live-routes", "--concurrency=4", "--date=2026-10-20"})

	assert.Equal(t, "http://api:8080", cfg.BaseURL)
	assert.True(t, cfg.LiveRoutes)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, "2026-10-20", cfg.Date)
}

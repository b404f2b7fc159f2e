// README: Runner cases: environment, schema, routes API behaviour, cache and throughput checks.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	StatusPass    = "PASS"
	StatusFail    = "FAIL"
	StatusPending = "PENDING"
	StatusSkip    = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	db    *pgxpool.Pool
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.DSN != "" {
		if db, err := pgxpool.New(ctx, r.cfg.DSN); err == nil {
			r.db = db
			defer db.Close()
		}
	}
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
		defer r.redis.Close()
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))
	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	routesURL := r.cfg.BaseURL + "/api/v1/routes"
	date := r.cfg.Date
	return []TestCase{
		{Name: "Env: Postgres connect", Run: checkDB},
		{Name: "Env: Redis connect", Run: checkRedis},
		{Name: "Migration: apply (optional)", Run: applyMigration},
		{Name: "Migration: tables exist", Run: checkTables},
		httpCase("API: health", http.MethodGet, r.cfg.BaseURL+"/health", nil, []int{200}),

		httpCase("Routes: single place -> 422", http.MethodPost, routesURL, map[string]any{
			"date": date, "places": []string{"mo-senado"},
		}, []int{422}),
		httpCase("Routes: bad date format -> 422", http.MethodPost, routesURL, map[string]any{
			"date": "16/10/2026", "places": []string{"mo-senado", "mo-um"},
		}, []int{422}),
		httpCase("Routes: date beyond window -> 422", http.MethodPost, routesURL, map[string]any{
			"date": time.Now().AddDate(0, 0, 120).Format(time.DateOnly), "places": []string{"mo-senado", "mo-um"},
		}, []int{422}),
		httpCase("Routes: unknown mode -> 422", http.MethodPost, routesURL, map[string]any{
			"date": date, "mode": "ferry", "places": []string{"mo-senado", "mo-um"},
		}, []int{422}),
		httpCase("Routes: unknown place -> 404", http.MethodPost, routesURL, map[string]any{
			"date": date, "places": []string{"mo-senado", "nowhere"},
		}, []int{404}),
		httpCase("Routes: mixed regions -> 422", http.MethodPost, routesURL, map[string]any{
			"date": date, "places": []string{"mo-senado", "hk-peak"},
		}, []int{422}),

		liveCase("Routes: Macau transit day", routesURL, map[string]any{
			"date": date, "mode": "transit", "places": []string{"mo-senado", "mo-ama-temple", "mo-taipa-village"},
		}, 2),
		liveCase("Routes: Macau drive day", routesURL, map[string]any{
			"date": date, "mode": "drive", "places": []string{"mo-senado", "mo-taipa-village", "mo-um"},
		}, 2),
		{Name: "Cache: provider responses stored", Run: checkCache},

		{Name: "Perf: validation throughput", Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, routesURL, map[string]any{"date": date, "places": []string{"mo-senado"}})
		}},
		{Name: "Perf: health throughput", Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, r.cfg.BaseURL+"/health", nil)
		}},
	}
}

func checkDB(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: StatusFail, Note: "db not configured"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.db.Ping(ctx); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	return Result{Status: StatusPass}
}

func checkRedis(ctx context.Context, r *Runner) Result {
	if r.redis == nil {
		return Result{Status: StatusSkip, Note: "route cache disabled"}
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.redis.Ping(ctx).Err(); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	return Result{Status: StatusPass}
}

func applyMigration(ctx context.Context, r *Runner) Result {
	if !r.cfg.ApplyMigration {
		return Result{Status: StatusSkip, Note: "apply-migration=false"}
	}
	if r.db == nil {
		return Result{Status: StatusFail, Note: "db not configured"}
	}
	sql, err := os.ReadFile(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for _, stmt := range splitSQL(string(sql)) {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
	}
	return Result{Status: StatusPass}
}

func checkTables(ctx context.Context, r *Runner) Result {
	if r.db == nil {
		return Result{Status: StatusFail, Note: "db not configured"}
	}
	sql, err := os.ReadFile(r.cfg.MigrationPath)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for _, t := range extractTables(string(sql)) {
		var exists bool
		err := r.db.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)", t,
		).Scan(&exists)
		if err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
		if !exists {
			return Result{Status: StatusFail, Note: "missing table: " + t}
		}
	}
	return Result{Status: StatusPass}
}

func checkCache(ctx context.Context, r *Runner) Result {
	if r.redis == nil || !r.cfg.LiveRoutes {
		return Result{Status: StatusSkip, Note: "needs --redis and --live-routes"}
	}
	keys, _, err := r.redis.Scan(ctx, 0, "routes:*", 100).Result()
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	if len(keys) == 0 {
		return Result{Status: StatusFail, Note: "no routes:* keys"}
	}
	return Result{Status: StatusPass, Note: fmt.Sprintf("keys>=%d", len(keys))}
}

func doJSON(ctx context.Context, r *Runner, method, url string, body any) (*http.Response, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	return resp, time.Since(start), err
}

func httpCase(name, method, url string, body any, okStatuses []int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			resp, latency, err := doJSON(ctx, r, method, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			return Result{Status: statusFor(resp.StatusCode, okStatuses), Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

// liveCase calls the maps provider through the API and checks the leg count.
func liveCase(name, url string, body any, wantLegs int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			if !r.cfg.LiveRoutes {
				return Result{Status: StatusSkip, Note: "live-routes=false"}
			}
			resp, latency, err := doJSON(ctx, r, http.MethodPost, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			var out struct {
				Routes []struct {
					Mode string `json:"mode"`
					Fare *struct {
						Amount   float64 `json:"amount"`
						Currency string  `json:"currency"`
					} `json:"fare"`
				} `json:"routes"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return Result{Status: StatusFail, Latency: latency, Note: err.Error()}
			}
			if len(out.Routes) != wantLegs {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("legs=%d want %d", len(out.Routes), wantLegs)}
			}
			priced := 0
			for _, leg := range out.Routes {
				if leg.Fare != nil {
					priced++
				}
			}
			return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("legs=%d priced=%d", len(out.Routes), priced)}
		},
	}
}

func statusFor(code int, ok []int) string {
	switch {
	case slices.Contains(ok, code):
		return StatusPass
	case code == http.StatusNotImplemented:
		return StatusPending
	default:
		return StatusFail
	}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	method := http.MethodGet
	if payload != nil {
		method = http.MethodPost
	}
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				resp, _, err := doJSON(ctx, r, method, url, payload)
				if err != nil {
					errCount.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}

var createTableRe = regexp.MustCompile(`(?i)create\s+table\s+if\s+not\s+exists\s+([a-zA-Z0-9_]+)`)

func extractTables(sql string) []string {
	matches := createTableRe.FindAllStringSubmatch(sql, -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, m[1])
	}
	return tables
}

// splitSQL drops comment lines and splits on semicolons.
func splitSQL(sql string) []string {
	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		l := strings.TrimSpace(line)
		if l == "" || strings.HasPrefix(l, "--") {
			continue
		}
		kept = append(kept, line)
	}
	var stmts []string
	for _, p := range strings.Split(strings.Join(kept, "\n"), ";") {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

package litellm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, baseURL string, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = baseURL
	if cfg.APIKey == "" {
		cfg.APIKey = "sk-admin"
	}
	c, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func testWindow() activity.Window {
	return activity.Window{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 2, 23, 59, 59, 0, time.UTC),
	}
}

func entityDay(date string) map[string]any {
	return map[string]any{
		"date": date,
		"breakdown": map[string]any{
			"entities": map[string]any{
				"t-1": map[string]any{"metrics": map[string]any{"total_tokens": 100}},
			},
		},
	}
}

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	if _, err := New(Config{}, zerolog.Nop()); err == nil {
		t.Error("expected error for empty base URL")
	}
}

func TestFetchTeams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/team/list" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-admin" {
			t.Errorf("auth header = %q", got)
		}
		fmt.Fprint(w, `[{"team_id":"t-1","team_alias":"Alpha"},{"team_id":"t-2"}]`)
	}))
	defer srv.Close()

	teams, err := newTestClient(t, srv.URL, Config{}).FetchTeams(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(teams) != 2 || teams[0].Alias != "Alpha" {
		t.Errorf("teams = %+v", teams)
	}
}

func TestAuthFailure(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		_, err := newTestClient(t, srv.URL, Config{}).FetchTeams(context.Background())
		srv.Close()
		if !errors.Is(err, activity.ErrAuthenticationFailed) {
			t.Errorf("status %d: got %v, want ErrAuthenticationFailed", status, err)
		}
	}
}

func TestServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, Config{}).FetchTeams(context.Background())
	if !errors.Is(err, activity.ErrUpstreamUnavailable) {
		t.Errorf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestNetworkErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestClient(t, srv.URL, Config{}).FetchTeams(context.Background())
	if !errors.Is(err, activity.ErrUpstreamUnavailable) {
		t.Errorf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestUndecodableBodyIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{not json`)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, Config{}).FetchTeams(context.Background())
	if !errors.Is(err, activity.ErrMalformedData) {
		t.Errorf("got %v, want ErrMalformedData", err)
	}
}

func TestFetchDailyActivityDrainsPages(t *testing.T) {
	var pagesServed []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/team/daily/activity" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		pagesServed = append(pagesServed, q.Get("page"))
		if q.Get("team_ids") != "t-1,t-2" {
			t.Errorf("team_ids = %q", q.Get("team_ids"))
		}
		if q.Get("start_date") != "2024.06.01" {
			t.Errorf("start_date = %q", q.Get("start_date"))
		}
		if q.Get("end_date") != "2024-06-02T23:59:59Z" {
			t.Errorf("end_date = %q", q.Get("end_date"))
		}

		switch q.Get("page") {
		case "1":
			json.NewEncoder(w).Encode(map[string]any{
				"results":  []any{entityDay("2024-06-01")},
				"metadata": map[string]any{"page": 1, "total_pages": 2, "has_more": true},
			})
		case "2":
			json.NewEncoder(w).Encode(map[string]any{
				"results":  []any{entityDay("2024-06-02")},
				"metadata": map[string]any{"page": 2, "total_pages": 2, "has_more": false},
			})
		default:
			t.Errorf("unexpected page %q", q.Get("page"))
		}
	}))
	defer srv.Close()

	report, err := newTestClient(t, srv.URL, Config{}).FetchDailyActivity(context.Background(), []string{"t-1", "t-2"}, testWindow())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Results) != 2 {
		t.Errorf("got %d days, want 2 (merged across pages)", len(report.Results))
	}
	if len(pagesServed) != 2 {
		t.Errorf("pages served = %v", pagesServed)
	}
}

func TestFetchDailyActivityTooManyPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results":  []any{entityDay("2024-06-01")},
			"metadata": map[string]any{"total_pages": 100, "has_more": true},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Config{MaxPages: 3})
	_, err := c.FetchDailyActivity(context.Background(), []string{"t-1"}, testWindow())
	if !errors.Is(err, activity.ErrTooManyPages) {
		t.Errorf("got %v, want ErrTooManyPages", err)
	}
}

func TestFetchDailyActivityRejectsReportWithoutEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []any{map[string]any{"date": "2024-06-01"}},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, Config{}).FetchDailyActivity(context.Background(), []string{"t-1"}, testWindow())
	if !errors.Is(err, activity.ErrMalformedData) {
		t.Errorf("got %v, want ErrMalformedData", err)
	}
}

func TestFetchDailyActivityEmptyWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()

	report, err := newTestClient(t, srv.URL, Config{}).FetchDailyActivity(context.Background(), nil, testWindow())
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Results) != 0 {
		t.Errorf("results = %v", report.Results)
	}
}

func TestFetchModelInfoFallsBackToV1(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/model/info" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"data":[{"model_name":"azure-gpt4o","litellm_params":{"model":"azure/gpt-4o"}},{"model_name":"bare"}]}`)
	}))
	defer srv.Close()

	deployments, err := newTestClient(t, srv.URL, Config{}).FetchModelInfo(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || paths[1] != "/v1/model/info" {
		t.Errorf("paths = %v, want fallback to /v1/model/info", paths)
	}
	if len(deployments) != 2 || deployments[0].Canonical != "azure/gpt-4o" {
		t.Errorf("deployments = %+v", deployments)
	}
	if deployments[1].Canonical != "" {
		t.Errorf("deployment without params should have empty canonical, got %q", deployments[1].Canonical)
	}
}

func TestFetchModelInfoBothMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL, Config{}).FetchModelInfo(context.Background())
	if !errors.Is(err, activity.ErrUpstreamUnavailable) {
		t.Errorf("got %v, want ErrUpstreamUnavailable", err)
	}
}

func TestHealthCheckFallsBackToReadiness(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health/liveliness" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `"ready"`)
	}))
	defer srv.Close()

	if err := newTestClient(t, srv.URL, Config{}).HealthCheck(context.Background()); err != nil {
		t.Errorf("health check failed: %v", err)
	}
}

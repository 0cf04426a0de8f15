// Package litellm provides the HTTP client for the upstream LiteLLM
// gateway. It is the only place that knows the gateway's transport
// details; everything it returns is typed and validated, and every
// failure is wrapped into the activity error taxonomy.
package litellm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/devboost/leaderboard/adapters/metrics"
	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/team"
	"github.com/devboost/leaderboard/ports"
	"github.com/rs/zerolog"
)

// Config configures the gateway client.
type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	PageSize int
	MaxPages int
}

// Client talks to the LiteLLM gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
	maxPages   int
	logger     zerolog.Logger
	metrics    *metrics.Collector
}

// errNotFound marks a 404 so FetchModelInfo can try its fallback path.
var errNotFound = errors.New("not found")

// New creates a gateway client.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	if _, err := url.Parse(cfg.BaseURL); err != nil || cfg.BaseURL == "" {
		return nil, fmt.Errorf("invalid gateway base URL %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = 20000
	}
	maxPages := cfg.MaxPages
	if maxPages == 0 {
		maxPages = 10
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		pageSize:   pageSize,
		maxPages:   maxPages,
		logger:     logger,
	}, nil
}

// SetMetrics enables gateway request instrumentation.
func (c *Client) SetMetrics(m *metrics.Collector) {
	c.metrics = m
}

// get performs an authenticated GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.GatewayDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countGateway(path, "transport_error")
		return fmt.Errorf("%w: %s: %v", activity.ErrUpstreamUnavailable, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.countGateway(path, "auth_failed")
		return fmt.Errorf("%w: %s returned %d", activity.ErrAuthenticationFailed, path, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		c.countGateway(path, "not_found")
		return fmt.Errorf("%w: %s", errNotFound, path)
	case resp.StatusCode >= 400:
		c.countGateway(path, "error_status")
		return fmt.Errorf("%w: %s returned %d", activity.ErrUpstreamUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		c.countGateway(path, "malformed")
		return fmt.Errorf("%w: decode %s: %v", activity.ErrMalformedData, path, err)
	}
	c.countGateway(path, "ok")
	return nil
}

func (c *Client) countGateway(path, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.GatewayRequests.WithLabelValues(path, outcome).Inc()
	if outcome != "ok" && outcome != "not_found" {
		c.metrics.GatewayErrors.WithLabelValues(outcome).Inc()
	}
}

// FetchTeams returns the gateway's team list.
func (c *Client) FetchTeams(ctx context.Context) ([]team.Team, error) {
	var teams []team.Team
	if err := c.get(ctx, "/team/list", nil, &teams); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: /team/list missing", activity.ErrUpstreamUnavailable)
		}
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	if c.metrics != nil {
		c.metrics.CachedTeams.Set(float64(len(teams)))
	}
	c.logger.Debug().Int("teams", len(teams)).Msg("fetched team list")
	return teams, nil
}

// FetchDailyActivity returns the daily activity report for the given
// teams and window. The gateway paginates; all pages are drained and
// merged so callers never aggregate over a truncated window. Windows
// spanning more than MaxPages pages fail with ErrTooManyPages rather
// than returning incomplete totals.
func (c *Client) FetchDailyActivity(ctx context.Context, teamIDs []string, window activity.Window) (activity.Report, error) {
	var merged activity.Report

	for page := 1; ; page++ {
		if page > c.maxPages {
			return activity.Report{}, fmt.Errorf("%w: window needs more than %d pages", activity.ErrTooManyPages, c.maxPages)
		}

		query := url.Values{
			"team_ids":   {strings.Join(teamIDs, ",")},
			"start_date": {window.StartParam()},
			"end_date":   {window.EndParam()},
			"page_size":  {strconv.Itoa(c.pageSize)},
			"page":       {strconv.Itoa(page)},
		}

		var pageReport activity.Report
		if err := c.get(ctx, "/team/daily/activity", query, &pageReport); err != nil {
			if errors.Is(err, errNotFound) {
				return activity.Report{}, fmt.Errorf("%w: /team/daily/activity missing", activity.ErrUpstreamUnavailable)
			}
			return activity.Report{}, fmt.Errorf("fetch daily activity page %d: %w", page, err)
		}

		merged.Results = append(merged.Results, pageReport.Results...)
		merged.Metadata = pageReport.Metadata
		if c.metrics != nil {
			c.metrics.GatewayPages.Inc()
		}

		meta := pageReport.Metadata
		if meta == nil || (!meta.HasMore && page >= meta.TotalPages) {
			break
		}
	}

	if err := merged.Validate(); err != nil {
		return activity.Report{}, err
	}

	c.logger.Debug().
		Int("days", len(merged.Results)).
		Str("start", window.StartParam()).
		Msg("fetched daily activity")
	return merged, nil
}

// modelInfoResponse mirrors the gateway's /model/info payload.
type modelInfoResponse struct {
	Data []struct {
		ModelName     string `json:"model_name"`
		LiteLLMParams *struct {
			Model string `json:"model"`
		} `json:"litellm_params"`
	} `json:"data"`
}

// FetchModelInfo returns the gateway's model catalog. Deployments
// expose both /model/info and /v1/model/info depending on version, so
// a 404 on the first path retries the second.
func (c *Client) FetchModelInfo(ctx context.Context) ([]ports.ModelDeployment, error) {
	var resp modelInfoResponse
	err := c.get(ctx, "/model/info", nil, &resp)
	if errors.Is(err, errNotFound) {
		err = c.get(ctx, "/v1/model/info", nil, &resp)
	}
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: model info endpoint missing", activity.ErrUpstreamUnavailable)
		}
		return nil, fmt.Errorf("fetch model info: %w", err)
	}

	deployments := make([]ports.ModelDeployment, 0, len(resp.Data))
	for _, item := range resp.Data {
		d := ports.ModelDeployment{Name: item.ModelName}
		if item.LiteLLMParams != nil {
			d.Canonical = item.LiteLLMParams.Model
		}
		deployments = append(deployments, d)
	}
	return deployments, nil
}

// HealthCheck probes the gateway's liveliness endpoint. Older
// deployments only expose the readiness variant, so a 404 retries it.
func (c *Client) HealthCheck(ctx context.Context) error {
	var body json.RawMessage
	err := c.get(ctx, "/health/liveliness", nil, &body)
	if errors.Is(err, errNotFound) {
		err = c.get(ctx, "/health/readiness", nil, &body)
	}
	if err != nil {
		return fmt.Errorf("gateway health: %w", err)
	}
	return nil
}

var _ ports.Gateway = (*Client)(nil)

// Package http provides the HTTP surface of the leaderboard service.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/devboost/leaderboard/adapters/metrics"
	"github.com/devboost/leaderboard/app"
	_ "github.com/devboost/leaderboard/docs/swagger" // swagger docs
	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/leaderboard"
	"github.com/devboost/leaderboard/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// ErrorResponseBody represents an error response body.
type ErrorResponseBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details.
type ErrorDetail struct {
	Code    string `json:"code" example:"invalid_date"`
	Message string `json:"message" example:"start_date \"2024-13-40\" is not a valid YYYY-MM-DD date"`
}

// VersionResponse represents the version endpoint response.
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
	Service string `json:"service" example:"leaderboard"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// TokensResponse wraps the team token totals.
type TokensResponse struct {
	Teams []leaderboard.TeamTokenSummary `json:"teams"`
}

// TimeSeriesResponse wraps the per-day usage points.
type TimeSeriesResponse struct {
	TimeSeries []leaderboard.DailyTeamPoint `json:"timeseries"`
}

// ModelsResponse wraps the per-model token totals.
type ModelsResponse struct {
	Models []leaderboard.ModelUsage `json:"models"`
}

// SuccessRateResponse wraps the per-team request outcome summaries.
type SuccessRateResponse struct {
	Teams []leaderboard.TeamSuccessRate `json:"teams"`
}

// CostEfficiencyResponse wraps the per-team per-model cost cells.
type CostEfficiencyResponse struct {
	Cells []leaderboard.CostEfficiencyCell `json:"cells"`
}

// DashboardHandler serves the aggregation endpoints.
type DashboardHandler struct {
	service *app.Dashboard
	clock   ports.Clock
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard HTTP handler.
func NewDashboardHandler(service *app.Dashboard, clock ports.Clock, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		clock:   clock,
		logger:  logger,
	}
}

// window parses the optional start_date/end_date query parameters. On
// failure it writes a 400 response and reports false.
func (h *DashboardHandler) window(w http.ResponseWriter, r *http.Request) (activity.Window, bool) {
	window, err := app.ParseWindow(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"), h.clock)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return activity.Window{}, false
	}
	return window, true
}

// Tokens returns per-team token totals with nested breakdowns.
//
//	@Summary		Team token totals
//	@Description	Returns total token usage per team for the window, sorted by tokens descending, with per-key per-model breakdowns
//	@Tags			Tokens
//	@Produce		json
//	@Param			start_date	query		string	false	"Window start (YYYY-MM-DD, default: end - 24h)"
//	@Param			end_date	query		string	false	"Window end (YYYY-MM-DD, default: now)"
//	@Success		200			{object}	TokensResponse
//	@Failure		400			{object}	ErrorResponseBody	"Invalid date parameter"
//	@Failure		502			{object}	ErrorResponseBody	"Upstream gateway failure"
//	@Router			/tokens [get]
func (h *DashboardHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	window, ok := h.window(w, r)
	if !ok {
		return
	}

	teams, err := h.service.TeamTokens(r.Context(), window)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	// Presentation order: heaviest consumers first. Ties keep the
	// aggregator's name ordering.
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Tokens > teams[j].Tokens
	})
	if teams == nil {
		teams = []leaderboard.TeamTokenSummary{}
	}
	writeJSON(w, http.StatusOK, TokensResponse{Teams: teams})
}

// TimeSeries returns the per-day per-team usage series.
//
//	@Summary		Daily usage time series
//	@Description	Returns one point per day in the window with per-team token and request counts, dates ascending
//	@Tags			Tokens
//	@Produce		json
//	@Param			start_date	query		string	false	"Window start (YYYY-MM-DD, default: end - 24h)"
//	@Param			end_date	query		string	false	"Window end (YYYY-MM-DD, default: now)"
//	@Success		200			{object}	TimeSeriesResponse
//	@Failure		400			{object}	ErrorResponseBody	"Invalid date parameter"
//	@Failure		502			{object}	ErrorResponseBody	"Upstream gateway failure"
//	@Router			/tokens/timeseries [get]
func (h *DashboardHandler) TimeSeries(w http.ResponseWriter, r *http.Request) {
	window, ok := h.window(w, r)
	if !ok {
		return
	}

	points, err := h.service.DailySeries(r.Context(), window)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if points == nil {
		points = []leaderboard.DailyTeamPoint{}
	}
	writeJSON(w, http.StatusOK, TimeSeriesResponse{TimeSeries: points})
}

// Models returns per-model token totals across all teams.
//
//	@Summary		Per-model token totals
//	@Description	Returns total token usage per model for the window, sorted by tokens descending, with deployment names resolved to display names
//	@Tags			Tokens
//	@Produce		json
//	@Param			start_date	query		string	false	"Window start (YYYY-MM-DD, default: end - 24h)"
//	@Param			end_date	query		string	false	"Window end (YYYY-MM-DD, default: now)"
//	@Success		200			{object}	ModelsResponse
//	@Failure		400			{object}	ErrorResponseBody	"Invalid date parameter"
//	@Failure		502			{object}	ErrorResponseBody	"Upstream gateway failure"
//	@Router			/tokens/models [get]
func (h *DashboardHandler) Models(w http.ResponseWriter, r *http.Request) {
	window, ok := h.window(w, r)
	if !ok {
		return
	}

	models, err := h.service.ModelUsage(r.Context(), window)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if models == nil {
		models = []leaderboard.ModelUsage{}
	}
	writeJSON(w, http.StatusOK, ModelsResponse{Models: models})
}

// SuccessRate returns per-team request outcome summaries.
//
//	@Summary		Team success rates
//	@Description	Returns request counts and success rate percentage per team for the window
//	@Tags			Tokens
//	@Produce		json
//	@Param			start_date	query		string	false	"Window start (YYYY-MM-DD, default: end - 24h)"
//	@Param			end_date	query		string	false	"Window end (YYYY-MM-DD, default: now)"
//	@Success		200			{object}	SuccessRateResponse
//	@Failure		400			{object}	ErrorResponseBody	"Invalid date parameter"
//	@Failure		502			{object}	ErrorResponseBody	"Upstream gateway failure"
//	@Router			/tokens/success-rate [get]
func (h *DashboardHandler) SuccessRate(w http.ResponseWriter, r *http.Request) {
	window, ok := h.window(w, r)
	if !ok {
		return
	}

	teams, err := h.service.SuccessRates(r.Context(), window)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if teams == nil {
		teams = []leaderboard.TeamSuccessRate{}
	}
	writeJSON(w, http.StatusOK, SuccessRateResponse{Teams: teams})
}

// CostEfficiency returns per-team per-model cost efficiency cells.
//
//	@Summary		Cost efficiency matrix
//	@Description	Returns cost per 1K tokens for every team and model pairing with usage in the window
//	@Tags			Tokens
//	@Produce		json
//	@Param			start_date	query		string	false	"Window start (YYYY-MM-DD, default: end - 24h)"
//	@Param			end_date	query		string	false	"Window end (YYYY-MM-DD, default: now)"
//	@Success		200			{object}	CostEfficiencyResponse
//	@Failure		400			{object}	ErrorResponseBody	"Invalid date parameter"
//	@Failure		502			{object}	ErrorResponseBody	"Upstream gateway failure"
//	@Router			/tokens/cost-efficiency [get]
func (h *DashboardHandler) CostEfficiency(w http.ResponseWriter, r *http.Request) {
	window, ok := h.window(w, r)
	if !ok {
		return
	}

	cells, err := h.service.CostCells(r.Context(), window)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if cells == nil {
		cells = []leaderboard.CostEfficiencyCell{}
	}
	writeJSON(w, http.StatusOK, CostEfficiencyResponse{Cells: cells})
}

// writeServiceError maps domain errors to HTTP responses. Every
// upstream failure mode is a 502: the dashboard itself is healthy, the
// gateway is not.
func (h *DashboardHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, activity.ErrAuthenticationFailed):
		status, code = http.StatusBadGateway, "upstream_auth_failed"
	case errors.Is(err, activity.ErrMalformedData):
		status, code = http.StatusBadGateway, "upstream_malformed_data"
	case errors.Is(err, activity.ErrTooManyPages):
		status, code = http.StatusBadGateway, "upstream_pagination_overflow"
	case errors.Is(err, activity.ErrUpstreamUnavailable):
		status, code = http.StatusBadGateway, "upstream_unavailable"
	default:
		status, code = http.StatusInternalServerError, "internal_error"
	}

	h.logger.Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("code", code).
		Msg("request failed")
	writeError(w, status, code, err.Error())
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponseBody{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

// HealthChecker checks upstream gateway health.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	upstream HealthChecker
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(upstream HealthChecker) *HealthHandler {
	return &HealthHandler{upstream: upstream}
}

// Liveness returns a simple liveness check.
//
//	@Summary		Liveness check
//	@Description	Returns OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
//	@Router			/health/live [get]
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness checks if the upstream gateway is reachable.
//
//	@Summary		Readiness check
//	@Description	Checks if the service and the upstream gateway are ready to serve traffic
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	ErrorResponseBody	"Gateway unreachable"
//	@Router			/health/ready [get]
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.upstream != nil {
		if err := h.upstream.HealthCheck(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, "gateway_unreachable", err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Version returns the service version.
//
//	@Summary		Get service version
//	@Description	Returns the version information for the leaderboard service
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{
		Version: "dev",
		Service: "leaderboard",
	})
}

// RouterConfig holds optional configuration for the router.
type RouterConfig struct {
	Metrics       *metrics.Collector
	MetricsPath   string // default: /metrics
	EnableOpenAPI bool
	CORSOrigins   []string
	RequestIDs    ports.IDGenerator
}

// NewRouter creates the main HTTP router.
func NewRouter(dashboard *DashboardHandler, health *HealthHandler, logger zerolog.Logger, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	if cfg.RequestIDs != nil {
		r.Use(NewRequestIDMiddleware(cfg.RequestIDs))
	} else {
		r.Use(middleware.RequestID)
	}
	r.Use(middleware.RealIP)
	r.Use(NewLoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if len(cfg.CORSOrigins) > 0 {
		r.Use(NewCORSMiddleware(cfg.CORSOrigins))
	}
	if cfg.Metrics != nil {
		r.Use(NewMetricsMiddleware(cfg.Metrics))
	}

	r.Get("/health", health.Liveness)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)
	r.Get("/version", Version)

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, promhttp.Handler())
	}

	if cfg.EnableOpenAPI {
		r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
		})
		r.Get("/docs/*", httpSwagger.Handler(
			httpSwagger.URL("/docs/doc.json"),
		))
	}

	r.Route("/tokens", func(r chi.Router) {
		r.Get("/", dashboard.Tokens)
		r.Get("/timeseries", dashboard.TimeSeries)
		r.Get("/models", dashboard.Models)
		r.Get("/success-rate", dashboard.SuccessRate)
		r.Get("/cost-efficiency", dashboard.CostEfficiency)
	})

	return r
}

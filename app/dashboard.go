// Package app provides the request-serving services: the dashboard
// orchestrator, the team directory and model catalog caches, and the
// date window parsing shared by all endpoints.
package app

import (
	"context"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/leaderboard"
	"github.com/devboost/leaderboard/domain/team"
	"github.com/devboost/leaderboard/ports"
	"github.com/rs/zerolog"
)

// Dashboard serves the aggregation endpoints. Each method fetches a
// fresh activity report for the requested window and runs one of the
// pure aggregators over it; nothing is persisted between requests
// beyond the directory and catalog caches.
type Dashboard struct {
	gateway   ports.Gateway
	directory *TeamDirectory
	catalog   *ModelCatalog
	logger    zerolog.Logger
}

// NewDashboard creates the dashboard service.
func NewDashboard(gateway ports.Gateway, directory *TeamDirectory, catalog *ModelCatalog, logger zerolog.Logger) *Dashboard {
	return &Dashboard{
		gateway:   gateway,
		directory: directory,
		catalog:   catalog,
		logger:    logger,
	}
}

// fetch loads the roster and the activity report for a window.
func (s *Dashboard) fetch(ctx context.Context, window activity.Window) (activity.Report, team.Roster, error) {
	roster, err := s.directory.Roster(ctx)
	if err != nil {
		return activity.Report{}, team.Roster{}, err
	}
	report, err := s.gateway.FetchDailyActivity(ctx, roster.IDs(), window)
	if err != nil {
		return activity.Report{}, team.Roster{}, err
	}
	return report, roster, nil
}

// TeamTokens returns per-team token totals with nested breakdowns.
func (s *Dashboard) TeamTokens(ctx context.Context, window activity.Window) ([]leaderboard.TeamTokenSummary, error) {
	report, roster, err := s.fetch(ctx, window)
	if err != nil {
		return nil, err
	}
	summaries, unresolved := leaderboard.TeamTokens(report, roster)
	s.logUnresolved(unresolved, "token breakdown")
	return summaries, nil
}

// DailySeries returns the per-day per-team time series.
func (s *Dashboard) DailySeries(ctx context.Context, window activity.Window) ([]leaderboard.DailyTeamPoint, error) {
	report, roster, err := s.fetch(ctx, window)
	if err != nil {
		return nil, err
	}
	return leaderboard.DailySeries(report, roster), nil
}

// SuccessRates returns per-team request outcome summaries.
func (s *Dashboard) SuccessRates(ctx context.Context, window activity.Window) ([]leaderboard.TeamSuccessRate, error) {
	report, roster, err := s.fetch(ctx, window)
	if err != nil {
		return nil, err
	}
	return leaderboard.SuccessRates(report, roster), nil
}

// CostCells returns per-team per-model cost efficiency cells.
func (s *Dashboard) CostCells(ctx context.Context, window activity.Window) ([]leaderboard.CostEfficiencyCell, error) {
	report, roster, err := s.fetch(ctx, window)
	if err != nil {
		return nil, err
	}
	cells, unresolved := leaderboard.CostCells(report, roster)
	s.logUnresolved(unresolved, "cost efficiency")
	return cells, nil
}

// ModelUsage returns per-model token totals across all teams, with
// deployment names resolved through the model catalog.
func (s *Dashboard) ModelUsage(ctx context.Context, window activity.Window) ([]leaderboard.ModelUsage, error) {
	report, _, err := s.fetch(ctx, window)
	if err != nil {
		return nil, err
	}
	return leaderboard.ModelUsageTotals(report, s.catalog.Resolver(ctx)), nil
}

// logUnresolved records keys whose owning team could not be
// determined. Aggregation has already continued without their nested
// detail; this is an observability hook, not an error path.
func (s *Dashboard) logUnresolved(keys []string, context string) {
	if len(keys) == 0 {
		return
	}
	masked := make([]string, len(keys))
	for i, key := range keys {
		masked[i] = leaderboard.MaskKey(key)
	}
	s.logger.Warn().
		Strs("keys", masked).
		Str("aggregation", context).
		Msg("api keys with unresolved team ownership omitted from breakdowns")
}

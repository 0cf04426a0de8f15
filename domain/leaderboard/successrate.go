package leaderboard

import (
	"sort"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/team"
)

// TeamSuccessRate is one team's request outcome summary over a window.
type TeamSuccessRate struct {
	Name               string  `json:"name"`
	TotalRequests      int64   `json:"total_requests"`
	SuccessfulRequests int64   `json:"successful_requests"`
	FailedRequests     int64   `json:"failed_requests"`
	SuccessRate        float64 `json:"success_rate"`
}

// SuccessRates sums request counters per known team across all days
// and derives a success percentage, one entry per roster team (teams
// with zero requests appear with all-zero counts and a rate of 0).
//
// TotalRequests comes from the upstream api_requests counter and is
// not asserted equal to successful+failed; the gateway may count
// retries differently and reconciliation is not this function's job.
func SuccessRates(report activity.Report, roster team.Roster) []TeamSuccessRate {
	totals := make(map[string]*TeamSuccessRate, roster.Len())
	for _, id := range roster.IDs() {
		totals[id] = &TeamSuccessRate{Name: roster.Name(id)}
	}

	for _, day := range report.Results {
		for teamID, entity := range day.Entities() {
			entry, ok := totals[teamID]
			if !ok {
				continue
			}
			entry.TotalRequests += entity.Metrics.APIRequests
			entry.SuccessfulRequests += entity.Metrics.SuccessfulRequests
			entry.FailedRequests += entity.Metrics.FailedRequests
		}
	}

	out := make([]TeamSuccessRate, 0, len(totals))
	for _, entry := range totals {
		if entry.TotalRequests > 0 {
			entry.SuccessRate = roundTo(float64(entry.SuccessfulRequests)/float64(entry.TotalRequests)*100, 2)
		}
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

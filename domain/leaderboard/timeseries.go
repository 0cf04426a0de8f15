package leaderboard

import (
	"sort"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/team"
)

// TeamDayUsage is one team's activity on a single day.
type TeamDayUsage struct {
	Name               string `json:"name"`
	Tokens             int64  `json:"tokens"`
	TotalRequests      int64  `json:"total_requests"`
	SuccessfulRequests int64  `json:"successful_requests"`
	FailedRequests     int64  `json:"failed_requests"`
}

// DailyTeamPoint is one day of the time series. Teams is sparse: a
// team with no entity data that day is simply absent, and charts must
// tolerate per-day team lists of different lengths.
type DailyTeamPoint struct {
	Date  string         `json:"date"`
	Teams []TeamDayUsage `json:"teams"`
}

// DailySeries builds the per-day per-team series, date ascending. It
// reflects exactly the days the upstream returned; gaps in the range
// are not filled. Only known teams appear (unknown entity ids are a
// totals concern handled by TeamTokens, not a charting concern), and
// teams within a day are sorted by name so repeated runs over the same
// report produce identical output.
func DailySeries(report activity.Report, roster team.Roster) []DailyTeamPoint {
	points := make([]DailyTeamPoint, 0, len(report.Results))
	for _, day := range report.Results {
		point := DailyTeamPoint{Date: day.Date, Teams: []TeamDayUsage{}}
		for teamID, entity := range day.Entities() {
			if !roster.Contains(teamID) {
				continue
			}
			point.Teams = append(point.Teams, TeamDayUsage{
				Name:               roster.Name(teamID),
				Tokens:             entity.Metrics.TotalTokens,
				TotalRequests:      entity.Metrics.APIRequests,
				SuccessfulRequests: entity.Metrics.SuccessfulRequests,
				FailedRequests:     entity.Metrics.FailedRequests,
			})
		}
		sort.Slice(point.Teams, func(i, j int) bool { return point.Teams[i].Name < point.Teams[j].Name })
		points = append(points, point)
	}
	// ISO dates sort lexicographically; SliceStable keeps upstream
	// order for any duplicate dates.
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

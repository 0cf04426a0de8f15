package leaderboard

import (
	"sort"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/team"
)

// CostEfficiencyCell is the spend efficiency of one (team, model)
// pair over the window.
type CostEfficiencyCell struct {
	Team            string  `json:"team"`
	Model           string  `json:"model"`
	CostPer1KTokens float64 `json:"cost_per_1k_tokens"`
	TotalCost       float64 `json:"total_cost"`
	TotalTokens     int64   `json:"total_tokens"`
}

type costCellAcc struct {
	teamID string
	model  string
	cost   float64
	tokens int64
}

// CostCells accumulates spend and tokens per (team, model) pair from
// the model-group breakdown, attributing each key's usage through the
// shared ownership resolution. Pairs that end up with zero tokens are
// dropped: a zero-token cost cell carries no information and would
// render as a zero-sized bubble downstream. The second return value
// lists keys whose team could not be resolved; their spend is absent
// from every cell by design, not silently guessed onto a team.
//
// Cells are sorted by team then model.
func CostCells(report activity.Report, roster team.Roster) ([]CostEfficiencyCell, []string) {
	type pair struct{ teamID, model string }
	accs := make(map[pair]*costCellAcc)
	unresolvedSet := make(map[string]struct{})

	for _, day := range report.Results {
		owners := keyOwners(day)
		for modelName, group := range day.ModelGroups() {
			for key, usage := range group.APIKeyBreakdown {
				ownerID, ok := owners[key]
				if !ok {
					unresolvedSet[key] = struct{}{}
					continue
				}
				p := pair{teamID: ownerID, model: modelName}
				acc, ok := accs[p]
				if !ok {
					acc = &costCellAcc{teamID: ownerID, model: modelName}
					accs[p] = acc
				}
				acc.cost += usage.Metrics.Spend
				acc.tokens += usage.Metrics.TotalTokens
			}
		}
	}

	cells := make([]CostEfficiencyCell, 0, len(accs))
	for _, acc := range accs {
		if acc.tokens == 0 {
			continue
		}
		cells = append(cells, CostEfficiencyCell{
			Team:            roster.Name(acc.teamID),
			Model:           acc.model,
			CostPer1KTokens: roundTo(acc.cost/float64(acc.tokens)*1000, 4),
			TotalCost:       roundTo(acc.cost, 4),
			TotalTokens:     acc.tokens,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Team != cells[j].Team {
			return cells[i].Team < cells[j].Team
		}
		return cells[i].Model < cells[j].Model
	})

	unresolved := make([]string, 0, len(unresolvedSet))
	for key := range unresolvedSet {
		unresolved = append(unresolved, key)
	}
	sort.Strings(unresolved)

	return cells, unresolved
}

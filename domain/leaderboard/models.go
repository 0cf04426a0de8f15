package leaderboard

import (
	"sort"

	"github.com/devboost/leaderboard/domain/activity"
)

// ModelUsage is one model's total token usage across all teams.
type ModelUsage struct {
	Model  string `json:"model"`
	Tokens int64  `json:"tokens"`
}

// ModelUsageTotals sums tokens per model across the whole report.
// displayName maps gateway deployment names to canonical display
// names (nil leaves names untouched); models that resolve to the same
// display name are merged. Zero-token models are filtered out and the
// result is sorted tokens descending, ties by name.
func ModelUsageTotals(report activity.Report, displayName func(string) string) []ModelUsage {
	if displayName == nil {
		displayName = func(name string) string { return name }
	}

	totals := make(map[string]int64)
	for _, day := range report.Results {
		for modelName, group := range day.ModelGroups() {
			totals[displayName(modelName)] += group.Metrics.TotalTokens
		}
	}

	out := make([]ModelUsage, 0, len(totals))
	for name, tokens := range totals {
		if tokens == 0 {
			continue
		}
		out = append(out, ModelUsage{Model: name, Tokens: tokens})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tokens != out[j].Tokens {
			return out[i].Tokens > out[j].Tokens
		}
		return out[i].Model < out[j].Model
	})
	return out
}

// Package leaderboard provides the pure aggregation functions behind
// the dashboard endpoints: per-team token totals, the daily time
// series, success rates, cost efficiency cells, and per-model usage.
// All functions take an already-fetched activity report and perform no
// I/O; callers aggregate over fresh input on every request.
package leaderboard

import (
	"math"

	"github.com/devboost/leaderboard/domain/activity"
)

// keyOwners resolves which team owns each API key seen on a given day.
//
// The entity breakdown and the model-group breakdown are independent
// views of the same events, so the team/model/key join has to be
// reconstructed. A key listed under a team's entity-level
// api_key_breakdown belongs to that team; failing that, the team_id
// carried in the key's own metadata decides. Keys that match neither
// rule stay unresolved and their per-key detail is dropped by the
// caller (the team totals are unaffected; they come from the entity
// view alone).
func keyOwners(day activity.Day) map[string]string {
	owners := make(map[string]string)
	for teamID, entity := range day.Entities() {
		for key := range entity.APIKeyBreakdown {
			owners[key] = teamID
		}
	}
	claim := func(key string, usage activity.KeyUsage) {
		if _, ok := owners[key]; ok {
			return
		}
		if teamID := usage.TeamID(); teamID != "" {
			owners[key] = teamID
		}
	}
	for _, group := range day.ModelGroups() {
		for key, usage := range group.APIKeyBreakdown {
			claim(key, usage)
		}
	}
	if day.Breakdown != nil {
		for key, usage := range day.Breakdown.APIKeys {
			claim(key, usage)
		}
	}
	return owners
}

// keyAlias finds a display alias for a key on a given day, preferring
// the top-level api_keys metadata over the per-model entries.
func keyAlias(day activity.Day, key string) string {
	if day.Breakdown != nil {
		if usage, ok := day.Breakdown.APIKeys[key]; ok {
			if alias := usage.Alias(); alias != "" {
				return alias
			}
		}
	}
	for _, group := range day.ModelGroups() {
		if usage, ok := group.APIKeyBreakdown[key]; ok {
			if alias := usage.Alias(); alias != "" {
				return alias
			}
		}
	}
	return ""
}

// MaskKey obscures a raw API key for display: the first three and last
// four characters joined by an ellipsis. Keys shorter than ten
// characters are returned unmasked; there is no partial mask that
// hides anything useful at that length.
func MaskKey(key string) string {
	if len(key) < 10 {
		return key
	}
	return key[:3] + "..." + key[len(key)-4:]
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

package leaderboard

import (
	"sort"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/team"
)

// ModelTokens is the per-model slice of an API key's usage.
type ModelTokens struct {
	ModelName        string `json:"model_name"`
	TotalTokens      int64  `json:"total_tokens"`
	PromptTokens     int64  `json:"prompt_tokens"`
	CompletionTokens int64  `json:"completion_tokens"`
}

// APIKeyTokens is one API key's usage within a team summary. APIKey is
// the display form (alias when the gateway provides one, otherwise the
// masked raw key); KeyAlias repeats the alias when present so the
// frontend can distinguish named keys from masked hashes.
type APIKeyTokens struct {
	APIKey   string        `json:"api_key"`
	KeyAlias string        `json:"key_alias,omitempty"`
	Models   []ModelTokens `json:"models"`
}

// TokenBreakdown nests a team's usage by API key and model.
type TokenBreakdown struct {
	APIKeys []APIKeyTokens `json:"api_keys"`
}

// TeamTokenSummary is one team's total token usage over the window.
// Tokens always equals the sum over the entity view; the breakdown may
// be sparser when key ownership could not be resolved.
type TeamTokenSummary struct {
	Name      string         `json:"name"`
	Tokens    int64          `json:"tokens"`
	Breakdown TokenBreakdown `json:"breakdown"`
}

type keyTokensAcc struct {
	rawKey string
	alias  string
	models map[string]*ModelTokens
}

type teamTokensAcc struct {
	teamID string
	tokens int64
	keys   map[string]*keyTokensAcc
}

// TeamTokens aggregates total tokens per team with a nested
// api-key/model breakdown.
//
// Totals come exclusively from the per-day entity breakdown, so they
// are exact even when the nested detail is incomplete. Teams from the
// roster always appear, zeros included; entity ids missing from the
// roster (a team deleted after producing usage) accumulate under their
// raw id rather than vanishing. The second return value lists keys
// whose owning team could not be resolved; their detail is omitted
// from every breakdown and the caller is expected to log them.
//
// Output is sorted by team name for deterministic results. Ranking
// (tokens descending) is a presentation concern left to the caller.
func TeamTokens(report activity.Report, roster team.Roster) ([]TeamTokenSummary, []string) {
	accs := make(map[string]*teamTokensAcc, roster.Len())
	ensure := func(teamID string) *teamTokensAcc {
		acc, ok := accs[teamID]
		if !ok {
			acc = &teamTokensAcc{teamID: teamID, keys: make(map[string]*keyTokensAcc)}
			accs[teamID] = acc
		}
		return acc
	}
	for _, id := range roster.IDs() {
		ensure(id)
	}

	unresolvedSet := make(map[string]struct{})
	for _, day := range report.Results {
		for teamID, entity := range day.Entities() {
			ensure(teamID).tokens += entity.Metrics.TotalTokens
		}

		owners := keyOwners(day)
		for modelName, group := range day.ModelGroups() {
			for key, usage := range group.APIKeyBreakdown {
				ownerID, ok := owners[key]
				if !ok {
					unresolvedSet[key] = struct{}{}
					continue
				}
				acc := ensure(ownerID)
				ka, ok := acc.keys[key]
				if !ok {
					ka = &keyTokensAcc{rawKey: key, models: make(map[string]*ModelTokens)}
					acc.keys[key] = ka
				}
				if ka.alias == "" {
					if alias := usage.Alias(); alias != "" {
						ka.alias = alias
					} else if alias := keyAlias(day, key); alias != "" {
						ka.alias = alias
					}
				}
				mt, ok := ka.models[modelName]
				if !ok {
					mt = &ModelTokens{ModelName: modelName}
					ka.models[modelName] = mt
				}
				mt.TotalTokens += usage.Metrics.TotalTokens
				mt.PromptTokens += usage.Metrics.PromptTokens
				mt.CompletionTokens += usage.Metrics.CompletionTokens
			}
		}
	}

	summaries := make([]TeamTokenSummary, 0, len(accs))
	for _, acc := range accs {
		summaries = append(summaries, TeamTokenSummary{
			Name:      roster.Name(acc.teamID),
			Tokens:    acc.tokens,
			Breakdown: buildBreakdown(acc),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })

	unresolved := make([]string, 0, len(unresolvedSet))
	for key := range unresolvedSet {
		unresolved = append(unresolved, key)
	}
	sort.Strings(unresolved)

	return summaries, unresolved
}

// buildBreakdown flattens a team accumulator into its output form,
// dropping keys that carry no tokens.
func buildBreakdown(acc *teamTokensAcc) TokenBreakdown {
	breakdown := TokenBreakdown{APIKeys: []APIKeyTokens{}}
	for _, ka := range acc.keys {
		models := make([]ModelTokens, 0, len(ka.models))
		var keyTotal int64
		for _, mt := range ka.models {
			keyTotal += mt.TotalTokens
			models = append(models, *mt)
		}
		if keyTotal == 0 {
			continue
		}
		sort.Slice(models, func(i, j int) bool { return models[i].ModelName < models[j].ModelName })

		display := ka.alias
		if display == "" {
			display = MaskKey(ka.rawKey)
		}
		breakdown.APIKeys = append(breakdown.APIKeys, APIKeyTokens{
			APIKey:   display,
			KeyAlias: ka.alias,
			Models:   models,
		})
	}
	sort.Slice(breakdown.APIKeys, func(i, j int) bool {
		return breakdown.APIKeys[i].APIKey < breakdown.APIKeys[j].APIKey
	})
	return breakdown
}

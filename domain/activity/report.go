// Package activity defines the typed schema for the gateway's daily
// activity response. The raw upstream payload is loosely shaped; it is
// decoded and validated once at the client boundary so that everything
// above it operates on a fully typed structure.
package activity

import (
	"fmt"
	"time"
)

// Metrics holds the numeric counters the gateway reports for a single
// slice of activity (a whole day, one team, one model, or one key).
type Metrics struct {
	Spend                    float64 `json:"spend"`
	PromptTokens             int64   `json:"prompt_tokens"`
	CompletionTokens         int64   `json:"completion_tokens"`
	CacheReadInputTokens     int64   `json:"cache_read_input_tokens"`
	CacheCreationInputTokens int64   `json:"cache_creation_input_tokens"`
	TotalTokens              int64   `json:"total_tokens"`
	SuccessfulRequests       int64   `json:"successful_requests"`
	FailedRequests           int64   `json:"failed_requests"`
	APIRequests              int64   `json:"api_requests"`
}

// KeyMetadata carries the optional metadata the gateway attaches to an
// API key entry. TeamID is the ownership hint used to attribute
// per-key usage to a team; the gateway does not always populate it.
type KeyMetadata struct {
	KeyAlias string `json:"key_alias,omitempty"`
	TeamID   string `json:"team_id,omitempty"`
}

// KeyUsage is the per-API-key slice of a breakdown.
type KeyUsage struct {
	Metrics  Metrics      `json:"metrics"`
	Metadata *KeyMetadata `json:"metadata,omitempty"`
}

// Alias returns the key's display alias, or "" if none is set.
func (k KeyUsage) Alias() string {
	if k.Metadata == nil {
		return ""
	}
	return k.Metadata.KeyAlias
}

// TeamID returns the owning team id hint, or "" if none is set.
func (k KeyUsage) TeamID() string {
	if k.Metadata == nil {
		return ""
	}
	return k.Metadata.TeamID
}

// EntityUsage is the per-team slice of a breakdown. APIKeyBreakdown
// lists the keys that produced this team's usage that day; it is the
// primary source for key-to-team attribution.
type EntityUsage struct {
	Metrics         Metrics             `json:"metrics"`
	APIKeyBreakdown map[string]KeyUsage `json:"api_key_breakdown,omitempty"`
}

// ModelGroupUsage is the per-model slice of a breakdown, with a nested
// per-key split of that model's usage.
type ModelGroupUsage struct {
	Metrics         Metrics             `json:"metrics"`
	APIKeyBreakdown map[string]KeyUsage `json:"api_key_breakdown,omitempty"`
}

// Breakdown splits one day's activity along independent dimensions.
// Entities (teams) and ModelGroups are parallel views of the same
// underlying events; the upstream never provides a single joined
// team x model x key breakdown.
type Breakdown struct {
	Entities    map[string]EntityUsage     `json:"entities,omitempty"`
	ModelGroups map[string]ModelGroupUsage `json:"model_groups,omitempty"`
	APIKeys     map[string]KeyUsage        `json:"api_keys,omitempty"`
}

// Day is one day of the report.
type Day struct {
	Date      string     `json:"date"`
	Metrics   Metrics    `json:"metrics"`
	Breakdown *Breakdown `json:"breakdown,omitempty"`
}

// Entities returns the day's per-team breakdown, or nil when the
// gateway omitted it.
func (d Day) Entities() map[string]EntityUsage {
	if d.Breakdown == nil {
		return nil
	}
	return d.Breakdown.Entities
}

// ModelGroups returns the day's per-model breakdown, or nil when the
// gateway omitted it.
func (d Day) ModelGroups() map[string]ModelGroupUsage {
	if d.Breakdown == nil {
		return nil
	}
	return d.Breakdown.ModelGroups
}

// PageMetadata describes pagination state of a report page.
type PageMetadata struct {
	TotalSpend    float64 `json:"total_spend"`
	TotalTokens   int64   `json:"total_tokens"`
	TotalRequests int64   `json:"total_api_requests"`
	Page          int     `json:"page"`
	TotalPages    int     `json:"total_pages"`
	HasMore       bool    `json:"has_more"`
}

// Report is a fully drained daily activity report: one entry per day
// the upstream returned, in upstream order. It is read-only input for
// the aggregators.
type Report struct {
	Results  []Day         `json:"results"`
	Metadata *PageMetadata `json:"metadata,omitempty"`
}

// Validate checks the structural invariant the aggregators rely on:
// a non-empty report must expose a per-team entity breakdown on at
// least one day. A missing breakdown on individual days is tolerated
// (treated as "no detail available"), but when every day lacks it the
// totals cannot be trusted and the report is rejected.
func (r Report) Validate() error {
	if len(r.Results) == 0 {
		return nil
	}
	for _, day := range r.Results {
		if len(day.Entities()) > 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: no entity breakdown present on any of %d days", ErrMalformedData, len(r.Results))
}

// Window is the reporting window for a daily activity request.
// Start is truncated to the beginning of its day; End keeps full
// precision (the gateway accepts a timestamp for the end bound).
type Window struct {
	Start time.Time
	End   time.Time
}

// StartParam formats the window start the way the gateway expects it.
func (w Window) StartParam() string {
	return w.Start.Format("2006.01.02")
}

// EndParam formats the window end the way the gateway expects it.
func (w Window) EndParam() string {
	return w.End.Format(time.RFC3339)
}

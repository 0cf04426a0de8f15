// Package team provides the team value type and the roster used to
// resolve team ids to display names. All functions are pure.
package team

import "sort"

// Team is a workshop group as reported by the gateway's team list.
type Team struct {
	ID    string `json:"team_id"`
	Alias string `json:"team_alias,omitempty"`
}

// DisplayName returns the alias when set, otherwise the raw id.
// It always yields a renderable string.
func (t Team) DisplayName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.ID
}

// Roster is an immutable snapshot of the known teams. Aggregators use
// it both to resolve names and to guarantee that teams with zero usage
// in a window still appear in their output.
type Roster struct {
	ids   []string
	names map[string]string
}

// NewRoster builds a roster from a team list. Duplicate ids keep the
// first entry.
func NewRoster(teams []Team) Roster {
	ids := make([]string, 0, len(teams))
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		if _, ok := names[t.ID]; ok {
			continue
		}
		ids = append(ids, t.ID)
		names[t.ID] = t.DisplayName()
	}
	sort.Strings(ids)
	return Roster{ids: ids, names: names}
}

// IDs returns the known team ids in sorted order.
func (r Roster) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Contains reports whether the id belongs to a known team.
func (r Roster) Contains(id string) bool {
	_, ok := r.names[id]
	return ok
}

// Name resolves a team id to its display name. Unknown ids resolve to
// themselves so that usage attributed to a deleted team never loses
// its label.
func (r Roster) Name(id string) string {
	if name, ok := r.names[id]; ok {
		return name
	}
	return id
}

// Len returns the number of known teams.
func (r Roster) Len() int {
	return len(r.ids)
}

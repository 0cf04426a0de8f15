package app

import (
	"context"
	"sync"

	"github.com/devboost/leaderboard/domain/team"
	"github.com/devboost/leaderboard/ports"
	"github.com/rs/zerolog"
)

// TeamDirectory caches the gateway's team list for the lifetime of the
// process. The roster is fetched on first use and kept; a failed fetch
// is not cached, so the next request retries. Concurrent first calls
// may fetch twice, which is harmless: both write the same roster and
// the first writer wins.
type TeamDirectory struct {
	gateway ports.Gateway
	logger  zerolog.Logger

	mu     sync.RWMutex
	roster team.Roster
	loaded bool
}

// NewTeamDirectory creates a directory backed by the gateway.
func NewTeamDirectory(gateway ports.Gateway, logger zerolog.Logger) *TeamDirectory {
	return &TeamDirectory{gateway: gateway, logger: logger}
}

// Roster returns the cached team roster, fetching it on first use.
func (d *TeamDirectory) Roster(ctx context.Context) (team.Roster, error) {
	d.mu.RLock()
	if d.loaded {
		roster := d.roster
		d.mu.RUnlock()
		return roster, nil
	}
	d.mu.RUnlock()

	teams, err := d.gateway.FetchTeams(ctx)
	if err != nil {
		return team.Roster{}, err
	}
	roster := team.NewRoster(teams)

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded {
		d.roster = roster
		d.loaded = true
		d.logger.Info().Int("teams", roster.Len()).Msg("team directory populated")
	}
	return d.roster, nil
}

// IDs returns the known team ids, fetching the roster if needed.
func (d *TeamDirectory) IDs(ctx context.Context) ([]string, error) {
	roster, err := d.Roster(ctx)
	if err != nil {
		return nil, err
	}
	return roster.IDs(), nil
}

// Name resolves a team id to its display name. It never fails: before
// the roster is loaded, or for unknown ids, the id itself is returned.
func (d *TeamDirectory) Name(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.loaded {
		return id
	}
	return d.roster.Name(id)
}

// Package ports defines the interfaces between layers. Implementations
// live in adapters/; app services depend only on these contracts so
// tests can substitute fakes.
package ports

import (
	"context"
	"time"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/domain/team"
)

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers (request ids).
type IDGenerator interface {
	New() string
}

// ModelDeployment is one entry of the gateway's model catalog. Name is
// the deployment name the activity breakdown reports under; Canonical
// is the underlying model identifier when the gateway exposes it.
type ModelDeployment struct {
	Name      string
	Canonical string
}

// Gateway is the upstream analytics API. All errors are wrapped into
// the activity error taxonomy (ErrUpstreamUnavailable,
// ErrAuthenticationFailed, ErrMalformedData, ErrTooManyPages) so
// callers can map them without knowing transport details.
type Gateway interface {
	// FetchTeams returns the gateway's team list.
	FetchTeams(ctx context.Context) ([]team.Team, error)

	// FetchDailyActivity returns the daily activity report for the
	// given teams and window, drained across all result pages. The
	// returned report has passed activity.Report.Validate.
	FetchDailyActivity(ctx context.Context, teamIDs []string, window activity.Window) (activity.Report, error)

	// FetchModelInfo returns the gateway's model catalog.
	FetchModelInfo(ctx context.Context) ([]ModelDeployment, error)
}

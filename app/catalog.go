package app

import (
	"context"
	"sync"
	"time"

	"github.com/devboost/leaderboard/ports"
	"github.com/rs/zerolog"
)

// ModelCatalog caches the gateway's deployment-name to display-name
// mapping with a TTL. A refresh failure keeps the previous mapping
// (stale names beat missing names); when nothing was ever fetched the
// resolver falls back to identity, so model aggregation still works
// with raw deployment names.
type ModelCatalog struct {
	gateway ports.Gateway
	clock   ports.Clock
	logger  zerolog.Logger
	ttl     time.Duration

	mu        sync.RWMutex
	names     map[string]string
	fetchedAt time.Time
}

// NewModelCatalog creates a catalog with the given refresh interval.
func NewModelCatalog(gateway ports.Gateway, clock ports.Clock, ttl time.Duration, logger zerolog.Logger) *ModelCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ModelCatalog{gateway: gateway, clock: clock, logger: logger, ttl: ttl}
}

// Resolver returns a name-resolution function over a snapshot of the
// current mapping, refreshing the cache first when it is stale.
func (c *ModelCatalog) Resolver(ctx context.Context) func(string) string {
	c.refreshIfStale(ctx)

	c.mu.RLock()
	names := c.names
	c.mu.RUnlock()

	if names == nil {
		return func(name string) string { return name }
	}
	return func(name string) string {
		if display, ok := names[name]; ok && display != "" {
			return display
		}
		return name
	}
}

func (c *ModelCatalog) refreshIfStale(ctx context.Context) {
	now := c.clock.Now()

	c.mu.RLock()
	fresh := c.names != nil && now.Sub(c.fetchedAt) < c.ttl
	c.mu.RUnlock()
	if fresh {
		return
	}

	deployments, err := c.gateway.FetchModelInfo(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("model catalog refresh failed, keeping previous mapping")
		return
	}

	names := make(map[string]string, len(deployments))
	for _, d := range deployments {
		if d.Canonical != "" {
			names[d.Name] = d.Canonical
		}
	}

	c.mu.Lock()
	c.names = names
	c.fetchedAt = now
	c.mu.Unlock()
	c.logger.Debug().Int("models", len(names)).Msg("model catalog refreshed")
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/devboost/leaderboard/adapters/clock"
	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/ports"
	"github.com/rs/zerolog"
)

func TestCatalogResolvesNames(t *testing.T) {
	gw := &fakeGateway{deployments: []ports.ModelDeployment{
		{Name: "azure-gpt4o", Canonical: "gpt-4o"},
		{Name: "bare-deployment"},
	}}
	fake := clock.NewFake(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	catalog := NewModelCatalog(gw, fake, 5*time.Minute, zerolog.Nop())

	resolve := catalog.Resolver(context.Background())
	if got := resolve("azure-gpt4o"); got != "gpt-4o" {
		t.Errorf("resolve = %q, want gpt-4o", got)
	}
	// No canonical name: the deployment name passes through.
	if got := resolve("bare-deployment"); got != "bare-deployment" {
		t.Errorf("resolve = %q", got)
	}
	if got := resolve("never-seen"); got != "never-seen" {
		t.Errorf("resolve = %q", got)
	}
}

func TestCatalogCachesWithinTTL(t *testing.T) {
	gw := &fakeGateway{deployments: []ports.ModelDeployment{{Name: "m", Canonical: "M"}}}
	fake := clock.NewFake(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	catalog := NewModelCatalog(gw, fake, 5*time.Minute, zerolog.Nop())

	catalog.Resolver(context.Background())
	fake.Advance(4 * time.Minute)
	catalog.Resolver(context.Background())
	if gw.modelCalls != 1 {
		t.Errorf("gateway called %d times within TTL, want 1", gw.modelCalls)
	}

	fake.Advance(2 * time.Minute)
	catalog.Resolver(context.Background())
	if gw.modelCalls != 2 {
		t.Errorf("gateway called %d times after TTL, want 2", gw.modelCalls)
	}
}

func TestCatalogKeepsStaleMappingOnError(t *testing.T) {
	gw := &fakeGateway{deployments: []ports.ModelDeployment{{Name: "m", Canonical: "M"}}}
	fake := clock.NewFake(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	catalog := NewModelCatalog(gw, fake, time.Minute, zerolog.Nop())

	catalog.Resolver(context.Background())

	gw.mu.Lock()
	gw.modelErr = activity.ErrUpstreamUnavailable
	gw.mu.Unlock()
	fake.Advance(2 * time.Minute)

	resolve := catalog.Resolver(context.Background())
	if got := resolve("m"); got != "M" {
		t.Errorf("stale mapping lost: resolve = %q, want M", got)
	}
}

func TestCatalogIdentityWhenNeverFetched(t *testing.T) {
	gw := &fakeGateway{modelErr: activity.ErrUpstreamUnavailable}
	fake := clock.NewFake(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	catalog := NewModelCatalog(gw, fake, time.Minute, zerolog.Nop())

	resolve := catalog.Resolver(context.Background())
	if got := resolve("anything"); got != "anything" {
		t.Errorf("resolve = %q, want identity fallback", got)
	}
}

func TestCatalogDefaultTTL(t *testing.T) {
	gw := &fakeGateway{}
	fake := clock.NewFake(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	catalog := NewModelCatalog(gw, fake, 0, zerolog.Nop())
	if catalog.ttl != 5*time.Minute {
		t.Errorf("default ttl = %v, want 5m", catalog.ttl)
	}
}

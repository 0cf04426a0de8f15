package leaderboard

import (
	"testing"

	"github.com/devboost/leaderboard/domain/activity"
)

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"long key", "sk-1234567890abcdef", "sk-...cdef"},
		{"exactly ten chars", "0123456789", "012...6789"},
		{"nine chars unmasked", "012345678", "012345678"},
		{"empty", "", ""},
		{"short", "abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskKey(tt.key); got != tt.want {
				t.Errorf("MaskKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestKeyOwnersPrecedence(t *testing.T) {
	d := day("2024-06-01", &activity.Breakdown{
		Entities: map[string]activity.EntityUsage{
			"t-alpha": {
				APIKeyBreakdown: map[string]activity.KeyUsage{
					"sk-entity-owned-01": keyUsage(tokens(1), "", ""),
				},
			},
		},
		ModelGroups: map[string]activity.ModelGroupUsage{
			"gpt-4o": {
				APIKeyBreakdown: map[string]activity.KeyUsage{
					"sk-entity-owned-01": keyUsage(tokens(1), "", "t-beta"),
					"sk-metadata-own-01": keyUsage(tokens(1), "", "t-beta"),
					"sk-orphan-00000001": keyUsage(tokens(1), "", ""),
				},
			},
		},
		APIKeys: map[string]activity.KeyUsage{
			"sk-toplevel-own-01": keyUsage(tokens(1), "", "t-alpha"),
		},
	})

	owners := keyOwners(d)
	if owners["sk-entity-owned-01"] != "t-alpha" {
		t.Errorf("entity membership should win, got %q", owners["sk-entity-owned-01"])
	}
	if owners["sk-metadata-own-01"] != "t-beta" {
		t.Errorf("metadata fallback failed, got %q", owners["sk-metadata-own-01"])
	}
	if owners["sk-toplevel-own-01"] != "t-alpha" {
		t.Errorf("top-level api_keys metadata should claim, got %q", owners["sk-toplevel-own-01"])
	}
	if _, ok := owners["sk-orphan-00000001"]; ok {
		t.Error("orphan key should stay unresolved")
	}
}

func TestKeyAliasPrefersTopLevel(t *testing.T) {
	d := day("2024-06-01", &activity.Breakdown{
		ModelGroups: map[string]activity.ModelGroupUsage{
			"gpt-4o": {
				APIKeyBreakdown: map[string]activity.KeyUsage{
					"sk-key-00000000001": keyUsage(tokens(1), "group-alias", ""),
				},
			},
		},
		APIKeys: map[string]activity.KeyUsage{
			"sk-key-00000000001": keyUsage(tokens(1), "top-alias", ""),
		},
	})

	if got := keyAlias(d, "sk-key-00000000001"); got != "top-alias" {
		t.Errorf("keyAlias = %q, want top-alias", got)
	}
	if got := keyAlias(d, "sk-unknown-key-001"); got != "" {
		t.Errorf("keyAlias for unknown key = %q, want empty", got)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{1.0 / 3.0 * 100, 2, 33.33},
		{0.123456, 4, 0.1235},
		{2.5, 0, 3},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := roundTo(tt.v, tt.places); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

package team

import (
	"reflect"
	"testing"
)

func TestDisplayName(t *testing.T) {
	if got := (Team{ID: "t-1", Alias: "Alpha"}).DisplayName(); got != "Alpha" {
		t.Errorf("got %q, want Alpha", got)
	}
	if got := (Team{ID: "t-1"}).DisplayName(); got != "t-1" {
		t.Errorf("got %q, want t-1", got)
	}
}

func TestNewRosterDeduplicates(t *testing.T) {
	r := NewRoster([]Team{
		{ID: "t-1", Alias: "First"},
		{ID: "t-1", Alias: "Duplicate"},
		{ID: "t-2", Alias: "Second"},
	})
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	if got := r.Name("t-1"); got != "First" {
		t.Errorf("duplicate should keep first entry, got %q", got)
	}
}

func TestRosterIDsSorted(t *testing.T) {
	r := NewRoster([]Team{{ID: "t-zeta"}, {ID: "t-alpha"}, {ID: "t-mid"}})
	want := []string{"t-alpha", "t-mid", "t-zeta"}
	if got := r.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}
}

func TestRosterIDsReturnsCopy(t *testing.T) {
	r := NewRoster([]Team{{ID: "t-1"}, {ID: "t-2"}})
	ids := r.IDs()
	ids[0] = "mutated"
	if got := r.IDs()[0]; got != "t-1" {
		t.Errorf("roster mutated through IDs copy: %q", got)
	}
}

func TestRosterNameFallback(t *testing.T) {
	r := NewRoster([]Team{{ID: "t-1", Alias: "Alpha"}})
	if got := r.Name("t-1"); got != "Alpha" {
		t.Errorf("got %q, want Alpha", got)
	}
	if got := r.Name("t-unknown"); got != "t-unknown" {
		t.Errorf("unknown id should resolve to itself, got %q", got)
	}
}

func TestRosterContains(t *testing.T) {
	r := NewRoster([]Team{{ID: "t-1"}})
	if !r.Contains("t-1") {
		t.Error("t-1 should be known")
	}
	if r.Contains("t-2") {
		t.Error("t-2 should be unknown")
	}
}

func TestEmptyRoster(t *testing.T) {
	var r Roster
	if r.Len() != 0 {
		t.Errorf("Len = %d", r.Len())
	}
	if got := r.Name("x"); got != "x" {
		t.Errorf("Name on empty roster = %q", got)
	}
}

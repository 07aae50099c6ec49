package crew

import (
	"testing"

	"github.com/familiarcat/crewcoord/internal/state"
	"github.com/familiarcat/crewcoord/pkg/models"
)

func newTestTracker(t *testing.T) (*AvailabilityTracker, *Registry) {
	t.Helper()
	registry, err := NewRegistry(DefaultRoster())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return NewAvailabilityTracker(registry, nil), registry
}

func TestUpdateAfterCollaboration(t *testing.T) {
	tests := []struct {
		name       string
		hoursSpent float64
		capacity   float64
		want       float64
	}{
		{"full capacity spent", 40, 40, 0},
		{"nothing spent", 0, 40, 100},
		{"half spent", 20, 40, 50},
		{"over capacity floors at zero", 60, 40, 0},
		{"zero capacity uses default", 10, 0, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, registry := newTestTracker(t)

			got, err := tracker.UpdateAfterCollaboration("data", tt.hoursSpent, tt.capacity)
			if err != nil {
				t.Fatalf("UpdateAfterCollaboration: %v", err)
			}
			if got != tt.want {
				t.Errorf("new availability = %v, want %v", got, tt.want)
			}

			m, _ := registry.Get("data")
			if m.Availability != tt.want {
				t.Errorf("registry availability = %v, want %v", m.Availability, tt.want)
			}
		})
	}
}

func TestUpdateAfterCollaboration_UnknownCrew(t *testing.T) {
	tracker, _ := newTestTracker(t)
	if _, err := tracker.UpdateAfterCollaboration("q", 10, 40); err == nil {
		t.Error("expected error for unknown crew id")
	}
}

func TestResetWeekly(t *testing.T) {
	tracker, registry := newTestTracker(t)

	if _, err := tracker.UpdateAfterCollaboration("worf", 40, 40); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := tracker.ResetWeekly("worf")
	if err != nil {
		t.Fatalf("ResetWeekly: %v", err)
	}
	if got != 100 {
		t.Errorf("ResetWeekly = %v, want 100", got)
	}

	m, _ := registry.Get("worf")
	if m.Availability != 100 {
		t.Errorf("registry availability = %v, want 100", m.Availability)
	}

	stats := tracker.UtilizationStats("worf")
	if stats.Collaborations != 1 {
		t.Errorf("Collaborations = %d, want 1 (reset is not a collaboration)", stats.Collaborations)
	}
}

func TestAvailableCrew(t *testing.T) {
	roster := []*models.CrewMember{
		{ID: "a", Availability: 80},
		{ID: "b", Availability: 50},
		{ID: "c", Availability: 20},
	}

	got := AvailableCrew(roster, 50)
	if len(got) != 2 {
		t.Fatalf("got %d members, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("AvailableCrew = %v, want [a b]", []string{got[0].ID, got[1].ID})
	}
}

func TestPredictAvailability(t *testing.T) {
	tests := []struct {
		name       string
		hoursSpent float64
		planned    int
		want       float64
	}{
		{"fresh member, nothing planned", 0, 0, 100},
		{"one collaboration", 0, 1, 75}, // 10h of a 40h week = 25 points
		{"two collaborations", 0, 2, 50},
		{"partially booked member", 16, 2, 10}, // current 60
		{"floors at zero", 28, 2, 0},           // current 30
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, _ := newTestTracker(t)
			if tt.hoursSpent > 0 {
				if _, err := tracker.UpdateAfterCollaboration("data", tt.hoursSpent, 40); err != nil {
					t.Fatalf("UpdateAfterCollaboration: %v", err)
				}
			}

			got := tracker.PredictAvailability("data", tt.planned)
			if got != tt.want {
				t.Errorf("PredictAvailability(data, %d) = %v, want %v", tt.planned, got, tt.want)
			}
		})
	}
}

func TestPredictAvailabilityUnknownMember(t *testing.T) {
	tracker, _ := newTestTracker(t)

	if got := tracker.PredictAvailability("q", 1); got != 75 {
		t.Errorf("PredictAvailability(q, 1) = %v, want 75 (unknown member starts at 100)", got)
	}
}

func TestUtilizationStats(t *testing.T) {
	tracker, _ := newTestTracker(t)

	tracker.UpdateAfterCollaboration("geordi", 10, 40) // 75
	tracker.UpdateAfterCollaboration("geordi", 20, 40) // 50

	stats := tracker.UtilizationStats("geordi")
	if stats.Current != 50 {
		t.Errorf("Current = %v, want 50", stats.Current)
	}
	if stats.Avg != 62.5 {
		t.Errorf("Avg = %v, want 62.5", stats.Avg)
	}
	if stats.Min != 50 || stats.Max != 75 {
		t.Errorf("Min/Max = %v/%v, want 50/75", stats.Min, stats.Max)
	}
	if stats.Collaborations != 2 {
		t.Errorf("Collaborations = %d, want 2", stats.Collaborations)
	}
}

func TestUtilizationStats_UnknownCrew(t *testing.T) {
	tracker, _ := newTestTracker(t)

	// Must not fail for a never-seen id.
	stats := tracker.UtilizationStats("q")
	if stats.Current != 100 || stats.Avg != 100 || stats.Min != 100 || stats.Max != 100 {
		t.Errorf("unknown crew stats = %+v, want all-100 defaults", stats)
	}
	if stats.Collaborations != 0 {
		t.Errorf("Collaborations = %d, want 0", stats.Collaborations)
	}
}

func TestTrackerPersistsToSink(t *testing.T) {
	db, err := state.Open(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	registry, err := NewRegistry(DefaultRoster())
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	tracker := NewAvailabilityTracker(registry, db)

	if _, err := tracker.UpdateAfterCollaboration("picard", 8, 40); err != nil {
		t.Fatalf("update: %v", err)
	}

	history, err := db.AvailabilityHistory("picard")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d audit events, want 1", len(history))
	}
	if history[0].Availability != 80 {
		t.Errorf("logged availability = %v, want 80", history[0].Availability)
	}
}

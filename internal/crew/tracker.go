package crew

import (
	"fmt"
	"sync"
	"time"

	"github.com/familiarcat/crewcoord/internal/state"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// DefaultWeeklyCapacity is the hours of capacity behind 100% availability.
const DefaultWeeklyCapacity = 40.0

// hoursPerCollaboration is the planning assumption used by
// PredictAvailability.
const hoursPerCollaboration = 10.0

// AuditSink receives availability events for durable logging.
// *state.DB satisfies it; a nil sink disables persistence.
type AuditSink interface {
	AppendAvailabilityEvent(e state.AvailabilityEvent) error
}

// UtilizationStats summarizes a member's logged availability history.
type UtilizationStats struct {
	// Current is the member's availability right now.
	Current float64
	// Avg is the mean availability across logged events.
	Avg float64
	// Min is the lowest logged availability.
	Min float64
	// Max is the highest logged availability.
	Max float64
	// Collaborations is the count of logged collaboration events.
	Collaborations int
}

// AvailabilityTracker is the authoritative write path for crew
// availability. The team selector and coordinator never write
// availability directly.
type AvailabilityTracker struct {
	registry *Registry
	sink     AuditSink

	mu  sync.RWMutex
	log map[string][]state.AvailabilityEvent
}

// NewAvailabilityTracker creates a tracker over the given registry.
// sink may be nil to skip durable audit logging.
func NewAvailabilityTracker(registry *Registry, sink AuditSink) *AvailabilityTracker {
	return &AvailabilityTracker{
		registry: registry,
		sink:     sink,
		log:      make(map[string][]state.AvailabilityEvent),
	}
}

// UpdateAfterCollaboration recomputes a member's availability after a
// collaboration consumed hoursSpent of a totalCapacity-hour period.
// A totalCapacity of 0 or less uses DefaultWeeklyCapacity. Returns the
// new availability.
func (t *AvailabilityTracker) UpdateAfterCollaboration(crewID string, hoursSpent, totalCapacity float64) (float64, error) {
	if totalCapacity <= 0 {
		totalCapacity = DefaultWeeklyCapacity
	}

	newAvailability := 100 - (hoursSpent/totalCapacity)*100
	if newAvailability < 0 {
		newAvailability = 0
	}

	if err := t.registry.setAvailability(crewID, newAvailability); err != nil {
		return 0, fmt.Errorf("update availability: %w", err)
	}

	t.record(state.AvailabilityEvent{
		CrewID:       crewID,
		Event:        "collaboration",
		HoursSpent:   hoursSpent,
		Availability: newAvailability,
		RecordedAt:   time.Now(),
	})

	return newAvailability, nil
}

// ResetWeekly restores a member to full availability at a period
// boundary. The reset is audit-logged.
func (t *AvailabilityTracker) ResetWeekly(crewID string) (float64, error) {
	if err := t.registry.setAvailability(crewID, 100); err != nil {
		return 0, fmt.Errorf("reset availability: %w", err)
	}

	t.record(state.AvailabilityEvent{
		CrewID:       crewID,
		Event:        "weekly_reset",
		Availability: 100,
		RecordedAt:   time.Now(),
	})

	return 100, nil
}

// AvailableCrew filters the roster to members at or above the minimum
// availability. Pure read.
func AvailableCrew(roster []*models.CrewMember, minimumAvailability float64) []*models.CrewMember {
	var out []*models.CrewMember
	for _, m := range roster {
		if m.Availability >= minimumAvailability {
			out = append(out, m)
		}
	}
	return out
}

// PredictAvailability projects a member's availability after the given
// number of planned collaborations, assuming 10 hours each against the
// default capacity. Starts from the member's current availability in
// the registry; unknown members are treated as fully available. Floors
// at 0.
func (t *AvailabilityTracker) PredictAvailability(crewID string, plannedCollaborations int) float64 {
	current := 100.0
	if m, ok := t.registry.Get(crewID); ok {
		current = m.Availability
	}

	costPerCollaboration := (hoursPerCollaboration / DefaultWeeklyCapacity) * 100
	predicted := current - float64(plannedCollaborations)*costPerCollaboration
	if predicted < 0 {
		return 0
	}
	return predicted
}

// UtilizationStats returns availability statistics for a member.
// Unknown or never-logged members get full-availability defaults with
// zero history; the call never fails on an unknown ID.
func (t *AvailabilityTracker) UtilizationStats(crewID string) UtilizationStats {
	current := 100.0
	if m, ok := t.registry.Get(crewID); ok {
		current = m.Availability
	}

	t.mu.RLock()
	events := t.log[crewID]
	t.mu.RUnlock()

	if len(events) == 0 {
		return UtilizationStats{Current: current, Avg: 100, Min: 100, Max: 100}
	}

	stats := UtilizationStats{
		Current: current,
		Min:     events[0].Availability,
		Max:     events[0].Availability,
	}
	var sum float64
	for _, e := range events {
		sum += e.Availability
		if e.Availability < stats.Min {
			stats.Min = e.Availability
		}
		if e.Availability > stats.Max {
			stats.Max = e.Availability
		}
		if e.Event == "collaboration" {
			stats.Collaborations++
		}
	}
	stats.Avg = sum / float64(len(events))

	return stats
}

// record appends to the in-memory log and the durable sink, if any.
// Sink failures are swallowed: capacity accounting must not fail because
// the audit store is unavailable.
func (t *AvailabilityTracker) record(e state.AvailabilityEvent) {
	t.mu.Lock()
	t.log[e.CrewID] = append(t.log[e.CrewID], e)
	t.mu.Unlock()

	if t.sink != nil {
		_ = t.sink.AppendAvailabilityEvent(e)
	}
}

package state

import (
	"fmt"
	"time"
)

// AvailabilityEvent is one entry in the availability audit log.
type AvailabilityEvent struct {
	// CrewID is the crew member the event applies to.
	CrewID string
	// Event names what happened: "collaboration" or "weekly_reset".
	Event string
	// HoursSpent is the hours consumed, for collaboration events.
	HoursSpent float64
	// Availability is the member's availability after the event.
	Availability float64
	// RecordedAt is when the event was logged.
	RecordedAt time.Time
}

// AppendAvailabilityEvent records one availability change.
func (db *DB) AppendAvailabilityEvent(e AvailabilityEvent) error {
	_, err := db.Exec(`
		INSERT INTO availability_log (crew_id, event, hours_spent, availability, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.CrewID, e.Event, e.HoursSpent, e.Availability, formatTime(e.RecordedAt))
	if err != nil {
		return fmt.Errorf("insert availability event: %w", err)
	}
	return nil
}

// AvailabilityHistory returns the audit log for one crew member, oldest first.
// An unknown crew ID returns an empty history, not an error.
func (db *DB) AvailabilityHistory(crewID string) ([]AvailabilityEvent, error) {
	rows, err := db.Query(`
		SELECT crew_id, event, hours_spent, availability, recorded_at
		FROM availability_log
		WHERE crew_id = ?
		ORDER BY id ASC
	`, crewID)
	if err != nil {
		return nil, fmt.Errorf("query availability log: %w", err)
	}
	defer rows.Close()

	var events []AvailabilityEvent
	for rows.Next() {
		var (
			e          AvailabilityEvent
			recordedAt string
		)
		if err := rows.Scan(&e.CrewID, &e.Event, &e.HoursSpent, &e.Availability, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan availability event: %w", err)
		}
		t, err := parseTime(recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at: %w", err)
		}
		e.RecordedAt = t
		events = append(events, e)
	}

	return events, rows.Err()
}

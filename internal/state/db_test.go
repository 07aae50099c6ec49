package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/familiarcat/crewcoord/pkg/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	// Running migrations twice must not fail.
	if err := db.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestAppendAndListSessions(t *testing.T) {
	db := openTestDB(t)

	session := &models.CollaborationSession{
		ID: "sess-1",
		Task: models.CollaborationTask{
			ID:        "task-1",
			ProjectID: "proj-1",
			Type:      models.TaskTypeDevelopment,
			Priority:  models.PriorityHigh,
		},
		Team: []models.CollaborationPair{
			{A: &models.CrewMember{ID: "a"}, B: &models.CrewMember{ID: "b"}, Synergy: 75},
		},
		LLMModel:      "sonnet",
		StartedAt:     time.Now().UTC().Truncate(time.Second),
		ProgressDelta: 18,
		Insights:      []string{"pairing worked well"},
		MemoriesUsed:  []string{"mem-1"},
	}

	if err := db.AppendSession(session); err != nil {
		t.Fatalf("append session: %v", err)
	}

	sessions, err := db.ListSessions("proj-1")
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}

	got := sessions[0]
	if got.ID != "sess-1" {
		t.Errorf("ID = %q, want sess-1", got.ID)
	}
	if got.Task.ProjectID != "proj-1" {
		t.Errorf("Task.ProjectID = %q, want proj-1", got.Task.ProjectID)
	}
	if got.ProgressDelta != 18 {
		t.Errorf("ProgressDelta = %v, want 18", got.ProgressDelta)
	}
	if len(got.Team) != 1 || got.Team[0].Synergy != 75 {
		t.Errorf("Team = %+v, want one pair with synergy 75", got.Team)
	}

	// Filtering by a different project returns nothing.
	other, err := db.ListSessions("proj-2")
	if err != nil {
		t.Fatalf("list sessions for proj-2: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d sessions for proj-2, want 0", len(other))
	}
}

func TestAvailabilityLog(t *testing.T) {
	db := openTestDB(t)

	events := []AvailabilityEvent{
		{CrewID: "geordi", Event: "collaboration", HoursSpent: 10, Availability: 75, RecordedAt: time.Now()},
		{CrewID: "geordi", Event: "weekly_reset", Availability: 100, RecordedAt: time.Now()},
	}
	for _, e := range events {
		if err := db.AppendAvailabilityEvent(e); err != nil {
			t.Fatalf("append availability event: %v", err)
		}
	}

	history, err := db.AvailabilityHistory("geordi")
	if err != nil {
		t.Fatalf("availability history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d events, want 2", len(history))
	}
	if history[0].Event != "collaboration" || history[1].Event != "weekly_reset" {
		t.Errorf("events out of order: %+v", history)
	}

	// Unknown crew ID: empty history, no error.
	empty, err := db.AvailabilityHistory("nobody")
	if err != nil {
		t.Fatalf("availability history for unknown id: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d events for unknown id, want 0", len(empty))
	}
}

func TestSQLiteKV(t *testing.T) {
	db := openTestDB(t)
	kv := NewSQLiteKV(db)

	// Absent key returns nil, nil.
	v, err := kv.Get("missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if v != nil {
		t.Errorf("get missing = %v, want nil", v)
	}

	if err := kv.Set("k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err = kv.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != "v1" {
		t.Errorf("get = %q, want v1", v)
	}

	// Overwrite.
	if err := kv.Set("k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _ = kv.Get("k")
	if string(v) != "v2" {
		t.Errorf("get after overwrite = %q, want v2", v)
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	v, _ = kv.Get("k")
	if v != nil {
		t.Errorf("get after delete = %v, want nil", v)
	}
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	if err := kv.Set("k", []byte("value")); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := kv.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(v) != "value" {
		t.Errorf("get = %q, want value", v)
	}

	// Returned slice is a copy; mutating it must not affect the store.
	v[0] = 'X'
	v2, _ := kv.Get("k")
	if string(v2) != "value" {
		t.Errorf("store mutated through returned slice: %q", v2)
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if v, _ := kv.Get("k"); v != nil {
		t.Errorf("get after delete = %v, want nil", v)
	}
}

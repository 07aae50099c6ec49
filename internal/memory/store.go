// Package memory provides SQLite-backed storage for crew RAG memories.
// The coordination engine only reads memories; writing new ones after a
// session is the caller's responsibility.
package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/familiarcat/crewcoord/internal/state"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// Store reads and writes crew memories over the crewcoord database.
type Store struct {
	db *state.DB
}

// NewStore creates a memory store over the given database.
func NewStore(db *state.DB) *Store {
	return &Store{db: db}
}

// Add records a memory. Memories are immutable once written.
func (s *Store) Add(m *models.RAGMemory) error {
	_, err := s.db.Exec(`
		INSERT INTO memories (id, crew_id, content, type, project_context, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.CrewID, m.Content, m.Type, m.ProjectContext, formatTime(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert memory: %w", err)
	}
	return nil
}

// ByAuthors returns memories authored by any of the given crew members,
// newest first, up to limit. A limit of 0 or less returns all matches.
func (s *Store) ByAuthors(crewIDs []string, limit int) ([]*models.RAGMemory, error) {
	if len(crewIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(crewIDs)), ",")
	query := fmt.Sprintf(`
		SELECT id, crew_id, content, type, COALESCE(project_context, ''), created_at
		FROM memories
		WHERE crew_id IN (%s)
		ORDER BY created_at DESC
	`, placeholders)

	args := make([]any, len(crewIDs))
	for i, id := range crewIDs {
		args[i] = id
	}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.scan(query, args...)
}

// Search returns memories whose content contains the given term,
// case-insensitive, newest first.
func (s *Store) Search(term string, limit int) ([]*models.RAGMemory, error) {
	query := `
		SELECT id, crew_id, content, type, COALESCE(project_context, ''), created_at
		FROM memories
		WHERE LOWER(content) LIKE ?
		ORDER BY created_at DESC
	`
	args := []any{"%" + strings.ToLower(term) + "%"}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.scan(query, args...)
}

// ByProject returns memories recorded against the given project context,
// newest first.
func (s *Store) ByProject(projectID string) ([]*models.RAGMemory, error) {
	return s.scan(`
		SELECT id, crew_id, content, type, COALESCE(project_context, ''), created_at
		FROM memories
		WHERE project_context = ?
		ORDER BY created_at DESC
	`, projectID)
}

func (s *Store) scan(query string, args ...any) ([]*models.RAGMemory, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query memories: %w", err)
	}
	defer rows.Close()

	var memories []*models.RAGMemory
	for rows.Next() {
		var (
			m         models.RAGMemory
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.CrewID, &m.Content, &m.Type, &m.ProjectContext, &createdAt); err != nil {
			return nil, fmt.Errorf("scan memory: %w", err)
		}
		t, err := parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for memory %s: %w", m.ID, err)
		}
		m.CreatedAt = t
		memories = append(memories, &m)
	}

	return memories, rows.Err()
}

// formatTime formats a time.Time for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a time string from SQLite.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

package state

import (
	"encoding/json"
	"fmt"

	"github.com/familiarcat/crewcoord/pkg/models"
)

// AppendSession records a completed collaboration session.
// Sessions form an immutable log; there is no update path.
func (db *DB) AppendSession(s *models.CollaborationSession) error {
	taskJSON, err := json.Marshal(s.Task)
	if err != nil {
		return fmt.Errorf("marshal task: %w", err)
	}
	teamJSON, err := json.Marshal(s.Team)
	if err != nil {
		return fmt.Errorf("marshal team: %w", err)
	}
	insightsJSON, err := json.Marshal(s.Insights)
	if err != nil {
		return fmt.Errorf("marshal insights: %w", err)
	}
	memoriesJSON, err := json.Marshal(s.MemoriesUsed)
	if err != nil {
		return fmt.Errorf("marshal memories: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO collaboration_sessions
			(id, project_id, task_json, team_json, llm_model, started_at, progress_delta, insights_json, memories_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Task.ProjectID, string(taskJSON), string(teamJSON), s.LLMModel,
		formatTime(s.StartedAt), s.ProgressDelta, string(insightsJSON), string(memoriesJSON))
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// ListSessions returns recorded sessions, newest first.
// An empty projectID returns sessions for all projects.
func (db *DB) ListSessions(projectID string) ([]*models.CollaborationSession, error) {
	query := `
		SELECT id, task_json, team_json, llm_model, started_at, progress_delta, insights_json, memories_json
		FROM collaboration_sessions
	`
	var args []any
	if projectID != "" {
		query += " WHERE project_id = ?"
		args = append(args, projectID)
	}
	query += " ORDER BY started_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.CollaborationSession
	for rows.Next() {
		var (
			s            models.CollaborationSession
			taskJSON     string
			teamJSON     string
			startedAt    string
			insightsJSON string
			memoriesJSON string
		)
		if err := rows.Scan(&s.ID, &taskJSON, &teamJSON, &s.LLMModel, &startedAt,
			&s.ProgressDelta, &insightsJSON, &memoriesJSON); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		if err := json.Unmarshal([]byte(taskJSON), &s.Task); err != nil {
			return nil, fmt.Errorf("unmarshal task for session %s: %w", s.ID, err)
		}
		if err := json.Unmarshal([]byte(teamJSON), &s.Team); err != nil {
			return nil, fmt.Errorf("unmarshal team for session %s: %w", s.ID, err)
		}
		if insightsJSON != "" {
			if err := json.Unmarshal([]byte(insightsJSON), &s.Insights); err != nil {
				return nil, fmt.Errorf("unmarshal insights for session %s: %w", s.ID, err)
			}
		}
		if memoriesJSON != "" {
			if err := json.Unmarshal([]byte(memoriesJSON), &s.MemoriesUsed); err != nil {
				return nil, fmt.Errorf("unmarshal memories for session %s: %w", s.ID, err)
			}
		}

		t, err := parseTime(startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at for session %s: %w", s.ID, err)
		}
		s.StartedAt = t

		sessions = append(sessions, &s)
	}

	return sessions, rows.Err()
}

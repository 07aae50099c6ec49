package coordinator

import (
	"fmt"
	"math"
	"time"

	"github.com/familiarcat/crewcoord/pkg/models"
)

// baseProgressDelta is the progress credit every executed collaboration
// earns before the synergy bonus.
const baseProgressDelta = 10

// maxSessionMemories caps how many memories a session consults.
const maxSessionMemories = 5

// ExecuteCollaboration executes an opportunity from the most recent plan
// and returns the resulting session record. The plan itself is not
// mutated; the caller applies the session's ProgressDelta to project
// state and records hours through the availability tracker.
//
// Returns a *NotFoundError when the id does not belong to the current
// plan's opportunities.
func (c *Coordinator) ExecuteCollaboration(opportunityID string) (*models.CollaborationSession, error) {
	c.mu.RLock()
	opp, ok := c.opportunities[opportunityID]
	c.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Kind: "opportunity", ID: opportunityID}
	}

	avgSynergy := opp.AvgSynergy()
	session := &models.CollaborationSession{
		ID:            shortID(),
		Task:          opp.Task,
		Team:          opp.Pairs,
		LLMModel:      opp.LLM.Model,
		StartedAt:     time.Now(),
		ProgressDelta: baseProgressDelta + math.Round(avgSynergy/10),
		Insights:      sessionInsights(opp),
	}

	if c.memories != nil {
		teamIDs := make([]string, len(opp.Team))
		for i, m := range opp.Team {
			teamIDs[i] = m.ID
		}
		memories, err := c.memories.ByAuthors(teamIDs, maxSessionMemories)
		if err != nil {
			return nil, fmt.Errorf("load session memories: %w", err)
		}
		for _, mem := range memories {
			session.MemoriesUsed = append(session.MemoriesUsed, mem.ID)
		}
	}

	debugLog("[execute] opportunity %s -> session %s (delta %.0f, %d memories)",
		opportunityID, session.ID, session.ProgressDelta, len(session.MemoriesUsed))

	return session, nil
}

// sessionInsights distills the executed opportunity into narrative
// takeaways for the session record.
func sessionInsights(opp *models.CollaborationOpportunity) []string {
	insights := []string{
		fmt.Sprintf("%s collaboration on %s with %s", opp.Type, opp.Task.DomainSlug, teamNames(opp.Team)),
		fmt.Sprintf("expected %.1f hours saved at %.2fx acceleration", opp.Expected.TimeSaved, opp.Expected.Factor),
	}
	if opp.LLM.Reasoning != "" {
		insights = append(insights, opp.LLM.Reasoning)
	}
	return insights
}

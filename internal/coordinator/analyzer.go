package coordinator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/familiarcat/crewcoord/internal/collab"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// neededProgressThreshold marks a domain as needing help: in-progress
// work below this percentage attracts a collaboration opportunity.
const neededProgressThreshold = 50

// highPriorityProgressThreshold escalates very early domains to high priority.
const highPriorityProgressThreshold = 25

// hoursPerProgressPoint converts missing progress into an hours estimate.
const hoursPerProgressPoint = 0.4

// analyzeProject finds the needy domains of one project and builds a
// collaboration opportunity for each.
func (c *Coordinator) analyzeProject(p *models.ProjectSnapshot) ([]*models.CollaborationOpportunity, error) {
	var opportunities []*models.CollaborationOpportunity

	for _, domain := range p.Domains {
		if domain.Status != models.DomainInProgress || domain.Progress >= neededProgressThreshold {
			continue
		}

		task := c.buildTask(p, domain)
		debugLog("[analyzer] project %s domain %s: %s priority, %.0f hours",
			p.ID, domain.Slug, task.Priority, task.EstimatedHours)

		opp, err := c.buildOpportunity(p, domain, task)
		if err != nil {
			return nil, fmt.Errorf("build opportunity for domain %s: %w", domain.Slug, err)
		}
		opportunities = append(opportunities, opp)
	}

	return opportunities, nil
}

// buildTask creates the collaboration task for a needy domain.
func (c *Coordinator) buildTask(p *models.ProjectSnapshot, domain models.DomainSnapshot) models.CollaborationTask {
	priority := models.PriorityMedium
	if domain.Progress < highPriorityProgressThreshold {
		priority = models.PriorityHigh
	}

	return models.CollaborationTask{
		ID:             shortID(),
		ProjectID:      p.ID,
		DomainSlug:     domain.Slug,
		Type:           models.TaskTypeDevelopment,
		Description:    fmt.Sprintf("Accelerate %s for %s (%.0f%% complete)", domain.Name, p.Name, domain.Progress),
		RequiredSkills: c.inferSkills(domain.Features),
		EstimatedHours: math.Round((100 - domain.Progress) * hoursPerProgressPoint),
		Priority:       priority,
		Status:         models.TaskStatusPending,
	}
}

// buildOpportunity selects a team for the task and annotates the result
// with acceleration, an LLM recommendation, and narrative notes.
func (c *Coordinator) buildOpportunity(p *models.ProjectSnapshot, domain models.DomainSnapshot, task models.CollaborationTask) (*models.CollaborationOpportunity, error) {
	roster := c.selectionPool()
	team, pairs := c.selector.FindOptimalTeam(task, roster, c.cfg.MaxTeamSize)
	if len(team) == 0 {
		return nil, fmt.Errorf("no crew available for domain %s", domain.Slug)
	}

	opp := &models.CollaborationOpportunity{
		ID:           shortID(),
		ProjectIDs:   []string{p.ID},
		ProjectNames: []string{p.Name},
		Type:         opportunityTypeFor(team),
		Priority:     task.Priority,
		Team:         team,
		Pairs:        pairs,
		Task:         task,
		Expected:     collab.CalculateAcceleration(pairs, task.EstimatedHours, c.cfg.MaxAccelerationFactor),
		LLM:          collab.SelectOptimalLLM(task.Type, team),
	}

	notes, err := c.narrativeNotes(opp)
	if err != nil {
		return nil, err
	}
	opp.Notes = notes

	return opp, nil
}

// opportunityTypeFor categorizes a per-project opportunity from its team
// composition: a mentor on the team makes it a mentor pairing, a large
// team splits the work in parallel, and pairs spread skills otherwise.
func opportunityTypeFor(team []*models.CrewMember) models.OpportunityType {
	for _, m := range team {
		if m.Style == models.StyleMentor {
			return models.OpportunityMentorPair
		}
	}
	if len(team) >= 3 {
		return models.OpportunityParallelWork
	}
	return models.OpportunitySkillShare
}

// narrativeNotes builds the user-facing notes: the lead member and any
// memories authored by the team.
func (c *Coordinator) narrativeNotes(opp *models.CollaborationOpportunity) ([]string, error) {
	lead := opp.Team[0]
	notes := []string{
		fmt.Sprintf("%s leads a team of %d on %s", lead.Name, len(opp.Team), opp.Task.DomainSlug),
	}

	if c.memories == nil {
		return notes, nil
	}

	teamIDs := make([]string, len(opp.Team))
	for i, m := range opp.Team {
		teamIDs[i] = m.ID
	}
	memories, err := c.memories.ByAuthors(teamIDs, 3)
	if err != nil {
		return nil, fmt.Errorf("load memories: %w", err)
	}
	for _, mem := range memories {
		notes = append(notes, fmt.Sprintf("memory from %s: %s", mem.CrewID, mem.Content))
	}

	return notes, nil
}

// inferSkills maps a domain's feature names to required skills through
// the keyword table: a case-insensitive substring match on any feature
// name pulls in that keyword's skills. The result is deduplicated and
// sorted for stable output.
func (c *Coordinator) inferSkills(features []string) []string {
	seen := make(map[string]bool)
	for keyword, skills := range c.keywords {
		if !anyFeatureContains(features, keyword) {
			continue
		}
		for _, s := range skills {
			seen[s] = true
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func anyFeatureContains(features []string, keyword string) bool {
	for _, f := range features {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}

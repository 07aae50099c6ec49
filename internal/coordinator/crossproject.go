package coordinator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/familiarcat/crewcoord/internal/collab"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// minTokenOverlap is how many normalized feature tokens two domains must
// share to count as similar.
const minTokenOverlap = 2

// analyzeCrossProject examines every unordered pair of active projects
// for cross-pollination potential: projects that share crew members and
// have domains with overlapping feature vocabulary can reuse each
// other's work. Returns the synthesized opportunities plus per-pair
// warnings for pairs that could not be analyzed.
func (c *Coordinator) analyzeCrossProject(active []models.ProjectSnapshot) ([]*models.CollaborationOpportunity, []string) {
	var (
		opportunities []*models.CollaborationOpportunity
		warnings      []string
	)

	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := &active[i], &active[j]

			shared := sharedCrew(a, b)
			if len(shared) == 0 {
				continue
			}

			domA, domB, ok := similarDomains(a, b)
			if !ok {
				continue
			}
			debugLog("[cross] %s and %s: %d shared crew, similar domains %s / %s",
				a.ID, b.ID, len(shared), domA.Slug, domB.Slug)

			opp, err := c.buildCrossOpportunity(a, b, shared, domA, domB)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("cross-project analysis of %s and %s skipped: %v", a.ID, b.ID, err))
				continue
			}
			opportunities = append(opportunities, opp)
		}
	}

	return opportunities, warnings
}

// buildCrossOpportunity synthesizes a cross-pollinate opportunity for two
// projects with shared crew and similar domains. The team starts from the
// shared members and is topped up from the wider roster; the time-saved
// estimate is doubled because the work benefits both projects.
func (c *Coordinator) buildCrossOpportunity(a, b *models.ProjectSnapshot, sharedIDs []string, domA, domB models.DomainSnapshot) (*models.CollaborationOpportunity, error) {
	skills := mergeSkills(c.inferSkills(domA.Features), c.inferSkills(domB.Features))

	task := models.CollaborationTask{
		ID:             shortID(),
		ProjectID:      a.ID,
		DomainSlug:     domA.Slug,
		Type:           models.TaskTypeDevelopment,
		Description:    fmt.Sprintf("Cross-pollinate %s between %s and %s", domA.Name, a.Name, b.Name),
		RequiredSkills: skills,
		EstimatedHours: crossEstimatedHours(domA, domB),
		Priority:       models.PriorityMedium,
		Status:         models.TaskStatusPending,
	}

	team := c.crossTeam(sharedIDs, task)
	if len(team) == 0 {
		return nil, fmt.Errorf("no crew available")
	}
	pairs := c.selector.PairsFor(team)

	expected := collab.CalculateAcceleration(pairs, task.EstimatedHours, c.cfg.MaxAccelerationFactor)
	expected.TimeSaved *= c.cfg.CrossProjectMultiplier

	opp := &models.CollaborationOpportunity{
		ID:           shortID(),
		ProjectIDs:   []string{a.ID, b.ID},
		ProjectNames: []string{a.Name, b.Name},
		Type:         models.OpportunityCrossPollinate,
		Priority:     models.PriorityMedium,
		Team:         team,
		Pairs:        pairs,
		Task:         task,
		Expected:     expected,
		LLM:          collab.SelectOptimalLLM(task.Type, team),
	}

	notes, err := c.narrativeNotes(opp)
	if err != nil {
		return nil, err
	}
	opp.Notes = append(notes,
		fmt.Sprintf("shared work between %s (%s) and %s (%s)", a.Name, domA.Slug, b.Name, domB.Slug))

	return opp, nil
}

// crossTeam builds the cross-project team: members shared between the two
// projects first, then the best remaining roster members by task fit, up
// to the configured cross-team limit.
func (c *Coordinator) crossTeam(sharedIDs []string, task models.CollaborationTask) []*models.CrewMember {
	maxSize := c.cfg.MaxCrossTeamSize
	inTeam := make(map[string]bool)

	var team []*models.CrewMember
	for _, id := range sharedIDs {
		if len(team) >= maxSize {
			break
		}
		m, ok := c.registry.Get(id)
		if !ok {
			debugLog("[cross] assigned crew %s not in registry, skipping", id)
			continue
		}
		team = append(team, m)
		inTeam[id] = true
	}
	if len(team) >= maxSize {
		return team
	}

	// Shared assignees stay regardless of availability; only the top-up
	// pool honors the floor.
	var rest []*models.CrewMember
	for _, m := range c.selectionPool() {
		if !inTeam[m.ID] {
			rest = append(rest, m)
		}
	}
	extras, _ := c.selector.FindOptimalTeam(task, rest, maxSize-len(team))
	return append(team, extras...)
}

// crossEstimatedHours estimates the solo hours for the cross-project task
// as the mean of the two domains' remaining work.
func crossEstimatedHours(a, b models.DomainSnapshot) float64 {
	remainA := math.Round((100 - a.Progress) * hoursPerProgressPoint)
	remainB := math.Round((100 - b.Progress) * hoursPerProgressPoint)
	return math.Round((remainA + remainB) / 2)
}

// sharedCrew returns the crew member IDs assigned to both projects, in
// the first project's assignment order.
func sharedCrew(a, b *models.ProjectSnapshot) []string {
	inB := make(map[string]bool)
	for _, id := range b.CrewIDs() {
		inB[id] = true
	}
	var shared []string
	for _, id := range a.CrewIDs() {
		if inB[id] {
			shared = append(shared, id)
		}
	}
	return shared
}

// similarDomains finds the first domain pair across the two projects
// whose feature lists overlap by at least minTokenOverlap normalized
// tokens.
func similarDomains(a, b *models.ProjectSnapshot) (models.DomainSnapshot, models.DomainSnapshot, bool) {
	for _, da := range a.Domains {
		tokensA := featureTokens(da.Features)
		if len(tokensA) == 0 {
			continue
		}
		for _, db := range b.Domains {
			overlap := 0
			for t := range featureTokens(db.Features) {
				if tokensA[t] {
					overlap++
				}
			}
			if overlap >= minTokenOverlap {
				return da, db, true
			}
		}
	}
	return models.DomainSnapshot{}, models.DomainSnapshot{}, false
}

// featureTokens normalizes feature names into a token set: lowercased and
// split on whitespace, hyphens, and underscores.
func featureTokens(features []string) map[string]bool {
	tokens := make(map[string]bool)
	for _, f := range features {
		fields := strings.FieldsFunc(strings.ToLower(f), func(r rune) bool {
			return r == ' ' || r == '-' || r == '_' || r == '/'
		})
		for _, t := range fields {
			if t != "" {
				tokens[t] = true
			}
		}
	}
	return tokens
}

// mergeSkills unions two sorted skill lists into one sorted, deduplicated
// list.
func mergeSkills(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for _, s := range a {
		seen[s] = true
	}
	for _, s := range b {
		seen[s] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

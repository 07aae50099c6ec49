package coordinator

import (
	"fmt"
	"strings"

	"github.com/familiarcat/crewcoord/pkg/models"
)

// briefingTopCount is how many leading opportunities the briefing details.
const briefingTopCount = 3

// buildBriefing renders the plan's free-text summary: opportunity counts
// by priority, then the top opportunities with team and impact. Assumes
// the plan's opportunities are already ranked.
func buildBriefing(plan *models.CoordinationPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Coordination plan %s: %d opportunities across %d projects, %.1f hours of estimated savings.\n",
		plan.ID, len(plan.Opportunities), plan.TotalProjectsAnalyzed, plan.TotalTimeSavings)

	if len(plan.Opportunities) == 0 {
		b.WriteString("No collaboration opportunities found; all active work is on track.")
		return b.String()
	}

	counts := make(map[models.Priority]int)
	for _, o := range plan.Opportunities {
		counts[o.Priority]++
	}
	var parts []string
	for _, p := range []models.Priority{models.PriorityCritical, models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if counts[p] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[p], p))
		}
	}
	fmt.Fprintf(&b, "By priority: %s.\n", strings.Join(parts, ", "))

	top := plan.Opportunities
	if len(top) > briefingTopCount {
		top = top[:briefingTopCount]
	}
	b.WriteString("Top opportunities:\n")
	for i, o := range top {
		fmt.Fprintf(&b, "  %d. [%s/%s] %s with %s, saving %.1f hours (%.2fx)\n",
			i+1, o.Priority, o.Type, o.Task.Description, teamNames(o.Team), o.Expected.TimeSaved, o.Expected.Factor)
	}

	if len(plan.Warnings) > 0 {
		fmt.Fprintf(&b, "%d project(s) could not be fully analyzed.\n", len(plan.Warnings))
	}

	return strings.TrimRight(b.String(), "\n")
}

// teamNames joins the team's display names for the briefing.
func teamNames(team []*models.CrewMember) string {
	names := make([]string, len(team))
	for i, m := range team {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}

package collab

import (
	"sort"

	"github.com/familiarcat/crewcoord/pkg/models"
)

// OptimalTeamSize maps task complexity to a recommended team size,
// bounded by the available crew size. Never exceeds availableCrewSize.
func OptimalTeamSize(c models.Complexity, availableCrewSize int) int {
	var size int
	switch c {
	case models.ComplexitySimple:
		size = 2
	case models.ComplexityMedium:
		size = 3
	case models.ComplexityComplex:
		size = 5
	default:
		size = 2
	}

	if size > availableCrewSize {
		return availableCrewSize
	}
	return size
}

// TeamSelector picks optimal teams for tasks using a synergy scorer.
type TeamSelector struct {
	scorer *SynergyScorer
}

// NewTeamSelector creates a selector backed by the given scorer.
func NewTeamSelector(scorer *SynergyScorer) *TeamSelector {
	return &TeamSelector{scorer: scorer}
}

// FindOptimalTeam selects up to maxSize members from the roster for the
// task, ranked by skill and specialization match and, among ties, by
// availability. All unordered pairs within the chosen team are scored.
// Pure selection: availability is read, never written, here.
func (s *TeamSelector) FindOptimalTeam(task models.CollaborationTask, roster []*models.CrewMember, maxSize int) ([]*models.CrewMember, []models.CollaborationPair) {
	if maxSize > len(roster) {
		maxSize = len(roster)
	}
	if maxSize <= 0 || len(roster) == 0 {
		return nil, nil
	}

	type candidate struct {
		member *models.CrewMember
		match  int
	}

	candidates := make([]candidate, 0, len(roster))
	for _, m := range roster {
		candidates = append(candidates, candidate{member: m, match: matchScore(m, task.RequiredSkills)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].match != candidates[j].match {
			return candidates[i].match > candidates[j].match
		}
		return candidates[i].member.Availability > candidates[j].member.Availability
	})

	team := make([]*models.CrewMember, 0, maxSize)
	for _, c := range candidates[:maxSize] {
		team = append(team, c.member)
	}

	return team, s.PairsFor(team)
}

// PairsFor scores all unordered pairs within a team.
func (s *TeamSelector) PairsFor(team []*models.CrewMember) []models.CollaborationPair {
	var pairs []models.CollaborationPair
	for i := 0; i < len(team); i++ {
		for j := i + 1; j < len(team); j++ {
			pairs = append(pairs, models.CollaborationPair{
				A:       team[i],
				B:       team[j],
				Synergy: s.scorer.Score(team[i], team[j]),
			})
		}
	}
	return pairs
}

// matchScore counts how many required skills a member covers through
// either their skill map or their specializations.
func matchScore(m *models.CrewMember, requiredSkills []string) int {
	score := 0
	for _, skill := range requiredSkills {
		if m.SkillLevel(skill) > 0 || m.HasSpecialization(skill) {
			score++
		}
	}
	return score
}

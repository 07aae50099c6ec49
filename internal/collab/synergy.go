// Package collab provides the pure scoring and selection functions of the
// coordination engine: synergy scoring, complexity assessment, team
// selection, acceleration estimation, and LLM tier recommendation.
package collab

import (
	"github.com/familiarcat/crewcoord/pkg/models"
)

// complementaryPairs lists specialization pairs that reinforce each other.
// Either ordering of a pair counts.
var complementaryPairs = [][2]string{
	{"frontend", "backend"},
	{"architecture", "implementation"},
	{"ux", "development"},
	{"security", "development"},
	{"strategy", "execution"},
	{"ai", "infrastructure"},
	{"design", "engineering"},
}

// styleMatrix scores ordered pairs of collaboration styles.
// Lookups check both orderings; pairs absent from the matrix score
// styleDefault.
var styleMatrix = map[[2]models.CollaborationStyle]float64{
	{models.StyleMentor, models.StylePartner}:        20,
	{models.StyleMentor, models.StyleGeneralist}:     20,
	{models.StyleMentor, models.StyleSpecialist}:     16,
	{models.StylePartner, models.StylePartner}:       18,
	{models.StylePartner, models.StyleGeneralist}:    16,
	{models.StylePartner, models.StyleSpecialist}:    15,
	{models.StyleSpecialist, models.StyleSpecialist}: 12,
	{models.StyleGeneralist, models.StyleGeneralist}: 14,
	{models.StyleMentor, models.StyleMentor}:         12,
}

const styleDefault = 10

// SynergyScorer computes compatibility scores between crew members.
type SynergyScorer struct {
	pairs  [][2]string
	matrix map[[2]models.CollaborationStyle]float64
}

// NewSynergyScorer creates a scorer with the default complementary-pair
// list and style matrix.
func NewSynergyScorer() *SynergyScorer {
	return &SynergyScorer{
		pairs:  complementaryPairs,
		matrix: styleMatrix,
	}
}

// Score computes the synergy between two crew members on a 0-100 scale.
// Deterministic and pure; unknown skills or styles simply contribute zero
// from their component. Self-pairing is well-defined.
//
// The score sums four components:
//   - shared skills, capped at 30
//   - complementary specializations, 10 points per matched pair
//   - style compatibility from the matrix, default 10
//   - availability bucket, up to 10
func (s *SynergyScorer) Score(a, b *models.CrewMember) float64 {
	total := s.sharedSkills(a, b) +
		s.complementary(a, b) +
		s.styleScore(a, b) +
		s.availabilityScore(a, b)

	return clamp(total, 0, 100)
}

// sharedSkills awards up to 30 points for skills both members hold.
// The mean of the pair's shared-skill levels is multiplied by the count
// of shared skills, then capped.
func (s *SynergyScorer) sharedSkills(a, b *models.CrewMember) float64 {
	var sum float64
	count := 0
	for skill, levelA := range a.Skills {
		levelB, ok := b.Skills[skill]
		if !ok {
			continue
		}
		sum += (levelA + levelB) / 2
		count++
	}
	if count == 0 {
		return 0
	}

	mean := sum / float64(count)
	contribution := mean * float64(count)
	if contribution > 30 {
		return 30
	}
	return contribution
}

// complementary awards 10 points per complementary specialization pair
// matched in either direction.
func (s *SynergyScorer) complementary(a, b *models.CrewMember) float64 {
	var score float64
	for _, pair := range s.pairs {
		x, y := pair[0], pair[1]
		if (a.HasSpecialization(x) && b.HasSpecialization(y)) ||
			(a.HasSpecialization(y) && b.HasSpecialization(x)) {
			score += 10
		}
	}
	return score
}

// styleScore looks up the pair's collaboration styles in the matrix,
// checking both orderings since the table stores ordered pairs.
func (s *SynergyScorer) styleScore(a, b *models.CrewMember) float64 {
	if v, ok := s.matrix[[2]models.CollaborationStyle{a.Style, b.Style}]; ok {
		return v
	}
	if v, ok := s.matrix[[2]models.CollaborationStyle{b.Style, a.Style}]; ok {
		return v
	}
	return styleDefault
}

// availabilityScore buckets the pair's average availability. Pairing two
// already-overloaded members scores zero.
func (s *SynergyScorer) availabilityScore(a, b *models.CrewMember) float64 {
	avg := (a.Availability + b.Availability) / 2
	switch {
	case avg > 80:
		return 10
	case avg > 60:
		return 5
	case avg > 40:
		return 2
	default:
		return 0
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package collab

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/familiarcat/crewcoord/pkg/models"
)

var styleGen = rapid.SampledFrom([]models.CollaborationStyle{
	models.StyleMentor, models.StylePartner, models.StyleSpecialist, models.StyleGeneralist,
})

var skillNames = []string{"frontend", "backend", "security", "devops", "ux", "testing", "ai-integration"}

func drawMember(rt *rapid.T, label string) *models.CrewMember {
	numSkills := rapid.IntRange(0, len(skillNames)).Draw(rt, label+"_numSkills")
	skills := make(map[string]float64)
	for i := 0; i < numSkills; i++ {
		skills[skillNames[i]] = float64(rapid.IntRange(0, 100).Draw(rt, label+"_level"))
	}

	numSpecs := rapid.IntRange(0, 3).Draw(rt, label+"_numSpecs")
	specs := make([]string, 0, numSpecs)
	all := []string{"frontend", "backend", "architecture", "implementation", "ux", "development", "security", "strategy", "execution", "ai", "infrastructure", "design", "engineering"}
	for i := 0; i < numSpecs; i++ {
		specs = append(specs, rapid.SampledFrom(all).Draw(rt, label+"_spec"))
	}

	return &models.CrewMember{
		ID:              label,
		Style:           styleGen.Draw(rt, label+"_style"),
		Availability:    float64(rapid.IntRange(0, 100).Draw(rt, label+"_availability")),
		Skills:          skills,
		Specializations: specs,
	}
}

func TestScore_AlwaysInRange_Property(t *testing.T) {
	scorer := NewSynergyScorer()

	rapid.Check(t, func(rt *rapid.T) {
		a := drawMember(rt, "a")
		b := drawMember(rt, "b")

		got := scorer.Score(a, b)
		if got < 0 || got > 100 {
			rt.Fatalf("Score = %v out of [0, 100] for %+v / %+v", got, a, b)
		}

		// Symmetric in intent: both orderings must agree.
		if rev := scorer.Score(b, a); rev != got {
			rt.Fatalf("Score(a,b) = %v but Score(b,a) = %v", got, rev)
		}
	})
}

func complexityRank(c models.Complexity) int {
	switch c {
	case models.ComplexitySimple:
		return 0
	case models.ComplexityMedium:
		return 1
	default:
		return 2
	}
}

func TestAssessComplexity_MonotoneInFeatureCount_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		features := rapid.IntRange(0, 30).Draw(rt, "features")
		hours := float64(rapid.IntRange(0, 80).Draw(rt, "hours"))
		progress := float64(rapid.IntRange(0, 100).Draw(rt, "progress"))

		base := AssessComplexity(ComplexitySignals{
			FeatureCount:   &features,
			EstimatedHours: &hours,
			Progress:       &progress,
		})

		more := features + rapid.IntRange(1, 10).Draw(rt, "delta")
		bumped := AssessComplexity(ComplexitySignals{
			FeatureCount:   &more,
			EstimatedHours: &hours,
			Progress:       &progress,
		})

		if complexityRank(bumped) < complexityRank(base) {
			rt.Fatalf("more features lowered complexity: %d features -> %v, %d features -> %v",
				features, base, more, bumped)
		}
	})
}

func TestAssessComplexity_AntiMonotoneInProgress_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		progress := float64(rapid.IntRange(0, 90).Draw(rt, "progress"))
		hours := float64(rapid.IntRange(0, 80).Draw(rt, "hours"))

		base := AssessComplexity(ComplexitySignals{Progress: &progress, EstimatedHours: &hours})

		higher := progress + float64(rapid.IntRange(1, 10).Draw(rt, "delta"))
		advanced := AssessComplexity(ComplexitySignals{Progress: &higher, EstimatedHours: &hours})

		if complexityRank(advanced) > complexityRank(base) {
			rt.Fatalf("more progress raised complexity: %v%% -> %v, %v%% -> %v",
				progress, base, higher, advanced)
		}
	})
}

func TestOptimalTeamSize_NeverExceedsCrew_Property(t *testing.T) {
	complexities := []models.Complexity{models.ComplexitySimple, models.ComplexityMedium, models.ComplexityComplex}

	rapid.Check(t, func(rt *rapid.T) {
		c := rapid.SampledFrom(complexities).Draw(rt, "complexity")
		crew := rapid.IntRange(0, 20).Draw(rt, "crewSize")

		got := OptimalTeamSize(c, crew)
		if got > crew {
			rt.Fatalf("OptimalTeamSize(%v, %d) = %d exceeds crew size", c, crew, got)
		}
		if got < 0 {
			rt.Fatalf("OptimalTeamSize(%v, %d) = %d negative", c, crew, got)
		}
	})
}

func TestCalculateAcceleration_Bounds_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numPairs := rapid.IntRange(0, 6).Draw(rt, "numPairs")
		pairs := make([]models.CollaborationPair, numPairs)
		for i := range pairs {
			pairs[i].Synergy = float64(rapid.IntRange(0, 100).Draw(rt, "synergy"))
		}
		hours := float64(rapid.IntRange(0, 200).Draw(rt, "hours"))

		got := CalculateAcceleration(pairs, hours, 2.0)
		if got.Factor < 1 || got.Factor > 2.0 {
			rt.Fatalf("Factor = %v out of [1, 2]", got.Factor)
		}
		if got.TimeSaved < 0 || got.TimeSaved > hours {
			rt.Fatalf("TimeSaved = %v out of [0, %v]", got.TimeSaved, hours)
		}
	})
}

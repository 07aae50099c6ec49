package collab

import "github.com/familiarcat/crewcoord/pkg/models"

// ComplexitySignals are the optional, multi-factor inputs to complexity
// assessment. Nil fields contribute zero points.
type ComplexitySignals struct {
	// FeatureCount is the number of features in scope, if known.
	FeatureCount *int
	// Progress is percent complete (0-100), if known.
	Progress *float64
	// EstimatedHours is the solo-work estimate, if known.
	EstimatedHours *float64
	// RequiredSkills lists the skills the work needs.
	RequiredSkills []string
}

// AssessComplexity classifies a unit of work into a complexity tier from
// independent threshold scores. Missing fields contribute 0; the function
// tolerates fully empty input.
//
// Scoring: feature count >10 adds 2 (>5 adds 1); progress <20 adds 2
// (<50 adds 1); hours >40 adds 2 (>20 adds 1); more than 5 required
// skills adds 1. Totals of 5+ are complex, 3+ medium, otherwise simple.
func AssessComplexity(sig ComplexitySignals) models.Complexity {
	points := 0

	if sig.FeatureCount != nil {
		switch {
		case *sig.FeatureCount > 10:
			points += 2
		case *sig.FeatureCount > 5:
			points++
		}
	}

	if sig.Progress != nil {
		switch {
		case *sig.Progress < 20:
			points += 2
		case *sig.Progress < 50:
			points++
		}
	}

	if sig.EstimatedHours != nil {
		switch {
		case *sig.EstimatedHours > 40:
			points += 2
		case *sig.EstimatedHours > 20:
			points++
		}
	}

	if len(sig.RequiredSkills) > 5 {
		points++
	}

	switch {
	case points >= 5:
		return models.ComplexityComplex
	case points >= 3:
		return models.ComplexityMedium
	default:
		return models.ComplexitySimple
	}
}

package collab

import "github.com/familiarcat/crewcoord/pkg/models"

// DefaultMaxAccelerationFactor is the speed multiplier at synergy 100.
const DefaultMaxAccelerationFactor = 2.0

// CalculateAcceleration converts a team's average pair synergy into an
// estimated speedup over solo work. The mapping is linear in synergy:
// factor = 1 + (avgSynergy/100) * (maxFactor - 1), so synergy 0 yields
// factor 1 and zero time saved, and synergy 100 yields maxFactor.
// A maxFactor below 1 falls back to the default.
func CalculateAcceleration(pairs []models.CollaborationPair, estimatedHours, maxFactor float64) models.Acceleration {
	if maxFactor < 1 {
		maxFactor = DefaultMaxAccelerationFactor
	}

	var avg float64
	if len(pairs) > 0 {
		var sum float64
		for _, p := range pairs {
			sum += p.Synergy
		}
		avg = sum / float64(len(pairs))
	}

	factor := 1 + (avg/100)*(maxFactor-1)
	timeSaved := estimatedHours - estimatedHours/factor

	return models.Acceleration{
		TimeSaved: timeSaved,
		Factor:    factor,
	}
}

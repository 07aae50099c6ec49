package collab

import "github.com/familiarcat/crewcoord/pkg/models"

// Model tiers recommended by SelectOptimalLLM, cheapest first.
const (
	ModelHaiku  = "haiku"
	ModelSonnet = "sonnet"
	ModelOpus   = "opus"
)

// aiSpecializations mark members whose presence on a team shifts the
// recommendation up a tier.
var aiSpecializations = []string{"ai", "ai-integration", "machine-learning"}

// baseModelForTask is the decision table keyed by task type.
var baseModelForTask = map[models.TaskType]string{
	models.TaskTypePlanning:     ModelOpus,
	models.TaskTypeDevelopment:  ModelSonnet,
	models.TaskTypeOptimization: ModelSonnet,
	models.TaskTypeReview:       ModelHaiku,
}

// SelectOptimalLLM maps a task type and team composition to a cost-tier
// recommendation. Pure decision table, no inference: planning work starts
// at the top tier, development and optimization in the middle, review at
// the bottom; a mentor on the team or an AI specialist bumps the tier up
// one step. Always returns a concrete recommendation.
func SelectOptimalLLM(taskType models.TaskType, team []*models.CrewMember) models.LLMRecommendation {
	model, ok := baseModelForTask[taskType]
	if !ok {
		model = ModelSonnet
	}
	reasoning := "base tier for " + string(taskType) + " work"

	if hasAISpecialist(team) {
		model = bumpTier(model)
		reasoning += "; AI specialist on team raises the tier"
	} else if hasMentor(team) {
		model = bumpTier(model)
		reasoning += "; mentor-led team raises the tier"
	}

	return models.LLMRecommendation{Model: model, Reasoning: reasoning}
}

// bumpTier moves a model one tier up; opus stays opus.
func bumpTier(model string) string {
	switch model {
	case ModelHaiku:
		return ModelSonnet
	case ModelSonnet:
		return ModelOpus
	default:
		return ModelOpus
	}
}

func hasMentor(team []*models.CrewMember) bool {
	for _, m := range team {
		if m.Style == models.StyleMentor {
			return true
		}
	}
	return false
}

func hasAISpecialist(team []*models.CrewMember) bool {
	for _, m := range team {
		for _, spec := range aiSpecializations {
			if m.HasSpecialization(spec) {
				return true
			}
		}
	}
	return false
}

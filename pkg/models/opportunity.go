package models

import "time"

// OpportunityType categorizes a proposed collaboration.
type OpportunityType string

const (
	// OpportunitySkillShare pairs members to spread a skill.
	OpportunitySkillShare OpportunityType = "skill-share"
	// OpportunityParallelWork splits a task across members.
	OpportunityParallelWork OpportunityType = "parallel-work"
	// OpportunityMentorPair pairs a mentor with a learner.
	OpportunityMentorPair OpportunityType = "mentor-pair"
	// OpportunityCrossPollinate reuses work between similar projects.
	OpportunityCrossPollinate OpportunityType = "cross-pollinate"
)

// Valid returns true if the type is a known value.
func (t OpportunityType) Valid() bool {
	switch t {
	case OpportunitySkillShare, OpportunityParallelWork, OpportunityMentorPair, OpportunityCrossPollinate:
		return true
	default:
		return false
	}
}

// CollaborationPair is two crew members with their computed synergy score.
// Derived, never persisted independently.
type CollaborationPair struct {
	// A is the first member of the pair.
	A *CrewMember `json:"a"`
	// B is the second member of the pair.
	B *CrewMember `json:"b"`
	// Synergy is the computed compatibility score (0-100).
	Synergy float64 `json:"synergy"`
}

// Acceleration estimates the benefit of a team over solo work.
type Acceleration struct {
	// TimeSaved is the estimated hours saved.
	TimeSaved float64 `json:"time_saved"`
	// Factor is the speed multiplier (>= 1).
	Factor float64 `json:"acceleration_factor"`
}

// LLMRecommendation is the cost-tier recommendation for a collaboration.
type LLMRecommendation struct {
	// Model is the recommended model name.
	Model string `json:"model"`
	// Reasoning explains why the model was chosen.
	Reasoning string `json:"reasoning"`
}

// CollaborationOpportunity is a proposed collaboration surfaced by the
// coordinator: a team, a task, and the expected benefit. Recomputed fresh
// on every plan generation.
type CollaborationOpportunity struct {
	// ID is the unique identifier for this opportunity.
	ID string `json:"id"`
	// ProjectIDs lists the projects the opportunity spans.
	ProjectIDs []string `json:"project_ids"`
	// ProjectNames lists the display names of those projects.
	ProjectNames []string `json:"project_names"`
	// Type categorizes the collaboration.
	Type OpportunityType `json:"type"`
	// Priority is the opportunity's urgency.
	Priority Priority `json:"priority"`
	// Team is the suggested team, lead first.
	Team []*CrewMember `json:"suggested_team"`
	// Pairs holds the scored pairings within the team.
	Pairs []CollaborationPair `json:"pairs"`
	// Task is the work the team would take on.
	Task CollaborationTask `json:"task"`
	// Expected is the estimated acceleration.
	Expected Acceleration `json:"expected_acceleration"`
	// LLM is the cost-tier recommendation.
	LLM LLMRecommendation `json:"llm_recommendation"`
	// Notes holds narrative context for the user.
	Notes []string `json:"notes,omitempty"`
}

// AvgSynergy returns the mean synergy across the opportunity's pairs,
// or 0 when there are no pairs.
func (o *CollaborationOpportunity) AvgSynergy() float64 {
	if len(o.Pairs) == 0 {
		return 0
	}
	var sum float64
	for _, p := range o.Pairs {
		sum += p.Synergy
	}
	return sum / float64(len(o.Pairs))
}

// CoordinationPlan is the ranked set of opportunities produced by one
// planning pass. A pure snapshot, never mutated after creation.
type CoordinationPlan struct {
	// ID is the unique identifier for this plan.
	ID string `json:"id"`
	// CreatedAt is when the plan was generated.
	CreatedAt time.Time `json:"created_at"`
	// Opportunities is the ranked opportunity list, highest impact first.
	Opportunities []*CollaborationOpportunity `json:"opportunities"`
	// TotalProjectsAnalyzed is the number of projects examined.
	TotalProjectsAnalyzed int `json:"total_projects_analyzed"`
	// TotalTimeSavings is the summed estimated hours saved.
	TotalTimeSavings float64 `json:"total_time_savings"`
	// CrewUtilization maps crew IDs to busy percentage (0-100).
	CrewUtilization map[string]float64 `json:"crew_utilization"`
	// Briefing is the generated text summary of the plan.
	Briefing string `json:"briefing"`
	// Warnings lists projects whose analysis was skipped, with reasons.
	Warnings []string `json:"warnings,omitempty"`
}

// CollaborationSession records the execution of an opportunity.
// Appended to an immutable log; never modified after creation.
type CollaborationSession struct {
	// ID is the unique identifier for this session.
	ID string `json:"id"`
	// Task is the work the session executed.
	Task CollaborationTask `json:"task"`
	// Team holds the scored pairings that worked the session.
	Team []CollaborationPair `json:"team"`
	// LLMModel is the model tier the session used.
	LLMModel string `json:"llm_model"`
	// StartedAt is when the session began.
	StartedAt time.Time `json:"started_at"`
	// ProgressDelta is the domain-progress credited (0-100).
	ProgressDelta float64 `json:"progress_delta"`
	// Insights holds narrative takeaways from the session.
	Insights []string `json:"insights,omitempty"`
	// MemoriesUsed lists the IDs of memories consulted.
	MemoriesUsed []string `json:"memories_used,omitempty"`
}

package models

// TaskType categorizes a collaboration task.
type TaskType string

const (
	// TaskTypePlanning is for roadmap and design work.
	TaskTypePlanning TaskType = "planning"
	// TaskTypeDevelopment is for implementation work.
	TaskTypeDevelopment TaskType = "development"
	// TaskTypeOptimization is for performance and refinement work.
	TaskTypeOptimization TaskType = "optimization"
	// TaskTypeReview is for review and quality work.
	TaskTypeReview TaskType = "review"
)

// Valid returns true if the task type is a known value.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypePlanning, TaskTypeDevelopment, TaskTypeOptimization, TaskTypeReview:
		return true
	default:
		return false
	}
}

// Priority orders tasks and opportunities by urgency.
type Priority string

const (
	// PriorityCritical is the highest urgency.
	PriorityCritical Priority = "critical"
	// PriorityHigh is above-normal urgency.
	PriorityHigh Priority = "high"
	// PriorityMedium is normal urgency.
	PriorityMedium Priority = "medium"
	// PriorityLow is below-normal urgency.
	PriorityLow Priority = "low"
)

// Valid returns true if the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Rank returns the sort rank for the priority; lower ranks sort first.
// Unknown priorities rank after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// TaskStatus represents the current state of a collaboration task.
type TaskStatus string

const (
	// TaskStatusPending indicates the task has not started.
	TaskStatusPending TaskStatus = "pending"
	// TaskStatusActive indicates the task is being worked on.
	TaskStatusActive TaskStatus = "active"
	// TaskStatusDone indicates the task completed.
	TaskStatusDone TaskStatus = "done"
)

// Valid returns true if the status is a known value.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusActive, TaskStatusDone:
		return true
	default:
		return false
	}
}

// Complexity is the assessed complexity tier of a task.
type Complexity string

const (
	// ComplexitySimple is a small, contained task.
	ComplexitySimple Complexity = "simple"
	// ComplexityMedium is a moderately involved task.
	ComplexityMedium Complexity = "medium"
	// ComplexityComplex is a large, multi-skill task.
	ComplexityComplex Complexity = "complex"
)

// Valid returns true if the complexity is a known value.
func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityMedium, ComplexityComplex:
		return true
	default:
		return false
	}
}

// CollaborationTask is a unit of work needing acceleration.
// Immutable once created except for Status.
type CollaborationTask struct {
	// ID is the unique identifier for this task.
	ID string `json:"id"`
	// ProjectID is the project this task belongs to.
	ProjectID string `json:"project_id"`
	// DomainSlug identifies the project domain the task targets.
	DomainSlug string `json:"domain_slug"`
	// Type categorizes the work.
	Type TaskType `json:"task_type"`
	// Description explains what needs to be done.
	Description string `json:"description"`
	// RequiredSkills lists the skills needed to complete the task.
	RequiredSkills []string `json:"required_skills"`
	// EstimatedHours is the solo-work time estimate.
	EstimatedHours float64 `json:"estimated_hours"`
	// Priority is the task's urgency.
	Priority Priority `json:"priority"`
	// Status is the current state of the task.
	Status TaskStatus `json:"status"`
}

package models

import "time"

// ProjectStatus represents the lifecycle state of a project snapshot.
type ProjectStatus string

const (
	// ProjectActive indicates the project is in active development.
	ProjectActive ProjectStatus = "active"
	// ProjectPaused indicates the project is on hold.
	ProjectPaused ProjectStatus = "paused"
	// ProjectCompleted indicates the project is finished.
	ProjectCompleted ProjectStatus = "completed"
)

// Valid returns true if the status is a known value.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPaused, ProjectCompleted:
		return true
	default:
		return false
	}
}

// DomainStatus represents the state of one domain within a project.
type DomainStatus string

const (
	// DomainPlanned indicates work has not begun.
	DomainPlanned DomainStatus = "planned"
	// DomainInProgress indicates the domain is under active work.
	DomainInProgress DomainStatus = "in-progress"
	// DomainDone indicates the domain is complete.
	DomainDone DomainStatus = "done"
)

// DomainSnapshot is one functional area of a project.
type DomainSnapshot struct {
	// Slug is the machine identifier for the domain.
	Slug string `json:"slug" yaml:"slug"`
	// Name is the display name.
	Name string `json:"name" yaml:"name"`
	// Status is the domain's lifecycle state.
	Status DomainStatus `json:"status" yaml:"status"`
	// Progress is percent complete (0-100).
	Progress float64 `json:"progress" yaml:"progress"`
	// Features lists the feature names planned for the domain.
	Features []string `json:"features" yaml:"features"`
}

// CrewAssignment links a crew member to a project.
type CrewAssignment struct {
	// MemberID is the assigned crew member's ID.
	MemberID string `json:"member_id" yaml:"member_id"`
	// Role is the member's role on this project.
	Role string `json:"role" yaml:"role"`
	// Assignment describes what the member is responsible for.
	Assignment string `json:"assignment,omitempty" yaml:"assignment,omitempty"`
}

// Milestone is a dated project checkpoint.
type Milestone struct {
	// ID is the milestone identifier.
	ID string `json:"id" yaml:"id"`
	// Name is the display name.
	Name string `json:"name" yaml:"name"`
	// Status is the milestone's state.
	Status string `json:"status" yaml:"status"`
	// Date is the target date, if set.
	Date *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
}

// ProjectSnapshot is the read-only project view supplied to the
// coordination engine by the persistence layer.
type ProjectSnapshot struct {
	// ID is the project identifier.
	ID string `json:"id" yaml:"id"`
	// Name is the project display name.
	Name string `json:"name" yaml:"name"`
	// Status is the project's lifecycle state.
	Status ProjectStatus `json:"status" yaml:"status"`
	// Progress is overall percent complete (0-100).
	Progress float64 `json:"progress" yaml:"progress"`
	// Domains lists the project's functional areas.
	Domains []DomainSnapshot `json:"domains" yaml:"domains"`
	// Crew lists the project's crew assignments.
	Crew []CrewAssignment `json:"crew" yaml:"crew"`
	// Milestones lists the project's checkpoints.
	Milestones []Milestone `json:"milestones,omitempty" yaml:"milestones,omitempty"`
}

// CrewIDs returns the IDs of all crew members assigned to the project.
func (p *ProjectSnapshot) CrewIDs() []string {
	ids := make([]string, 0, len(p.Crew))
	for _, c := range p.Crew {
		ids = append(ids, c.MemberID)
	}
	return ids
}

// RAGMemory is a read-only memory record consulted for narrative notes.
// Writing new memories is the caller's responsibility, not the core's.
type RAGMemory struct {
	// ID is the memory identifier.
	ID string `json:"id"`
	// CrewID is the authoring crew member's ID.
	CrewID string `json:"crew_id"`
	// Content is the memory text.
	Content string `json:"content"`
	// Type categorizes the memory.
	Type string `json:"type"`
	// ProjectContext names the project the memory relates to, if any.
	ProjectContext string `json:"project_context,omitempty"`
	// CreatedAt is when the memory was recorded.
	CreatedAt time.Time `json:"created_at"`
}

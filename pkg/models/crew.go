// Package models defines the shared data model for the crew coordination engine.
package models

// CollaborationStyle describes how a crew member prefers to work with others.
type CollaborationStyle string

const (
	// StyleMentor indicates a member who teaches and guides pairing partners.
	StyleMentor CollaborationStyle = "mentor"
	// StylePartner indicates a member who works best in equal pairs.
	StylePartner CollaborationStyle = "partner"
	// StyleSpecialist indicates a deep expert in a narrow area.
	StyleSpecialist CollaborationStyle = "specialist"
	// StyleGeneralist indicates a flexible member effective across domains.
	StyleGeneralist CollaborationStyle = "generalist"
)

// Valid returns true if the style is a known value.
func (s CollaborationStyle) Valid() bool {
	switch s {
	case StyleMentor, StylePartner, StyleSpecialist, StyleGeneralist:
		return true
	default:
		return false
	}
}

// CrewMember represents a virtual collaborator that can be scheduled onto tasks.
type CrewMember struct {
	// ID is the unique identifier for this member.
	ID string `json:"id" yaml:"id"`
	// Name is the member's display name.
	Name string `json:"name" yaml:"name"`
	// Role is the member's functional role on the crew.
	Role string `json:"role" yaml:"role"`
	// Skills maps skill names to proficiency levels (0-100).
	Skills map[string]float64 `json:"skills" yaml:"skills"`
	// Specializations lists the member's areas of deep expertise.
	Specializations []string `json:"specializations" yaml:"specializations"`
	// Style is the member's preferred collaboration style.
	Style CollaborationStyle `json:"collaboration_style" yaml:"collaboration_style"`
	// Availability is the remaining capacity this planning period (0-100).
	Availability float64 `json:"availability" yaml:"availability"`
	// CurrentProjects lists the project IDs the member is assigned to.
	CurrentProjects []string `json:"current_projects,omitempty" yaml:"current_projects,omitempty"`
}

// HasSpecialization returns true if the member lists the given specialization.
func (m *CrewMember) HasSpecialization(spec string) bool {
	for _, s := range m.Specializations {
		if s == spec {
			return true
		}
	}
	return false
}

// SkillLevel returns the member's level for a skill, or 0 if unknown.
func (m *CrewMember) SkillLevel(skill string) float64 {
	return m.Skills[skill]
}

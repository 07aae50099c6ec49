// Package crew manages the crew roster and capacity accounting.
// The Registry is an explicit handle created once per run and passed into
// the coordinator and tracker; there is no ambient global roster.
package crew

import (
	"fmt"
	"sync"

	"github.com/familiarcat/crewcoord/pkg/models"
)

// Registry holds the crew roster for one run. Availability and project
// assignments are the only mutable fields, and availability writes go
// through the AvailabilityTracker only.
type Registry struct {
	mu      sync.RWMutex
	members map[string]*models.CrewMember
	order   []string
}

// NewRegistry seeds a registry from a roster. Member IDs must be unique.
func NewRegistry(roster []*models.CrewMember) (*Registry, error) {
	r := &Registry{
		members: make(map[string]*models.CrewMember, len(roster)),
		order:   make([]string, 0, len(roster)),
	}
	for _, m := range roster {
		if m.ID == "" {
			return nil, fmt.Errorf("roster member %q has no id", m.Name)
		}
		if _, exists := r.members[m.ID]; exists {
			return nil, fmt.Errorf("duplicate roster member id %q", m.ID)
		}
		r.members[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r, nil
}

// Get returns the member with the given ID.
func (r *Registry) Get(id string) (*models.CrewMember, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[id]
	return m, ok
}

// List returns all members in seed order.
func (r *Registry) List() []*models.CrewMember {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.CrewMember, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.members[id])
	}
	return out
}

// Size returns the number of roster members.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// AssignProject records that a member is working on a project.
// Assigning the same project twice is a no-op.
func (r *Registry) AssignProject(crewID, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[crewID]
	if !ok {
		return fmt.Errorf("crew member %s not found", crewID)
	}
	for _, p := range m.CurrentProjects {
		if p == projectID {
			return nil
		}
	}
	m.CurrentProjects = append(m.CurrentProjects, projectID)
	return nil
}

// setAvailability is the registry-internal availability write.
// Only the AvailabilityTracker calls this.
func (r *Registry) setAvailability(crewID string, availability float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[crewID]
	if !ok {
		return fmt.Errorf("crew member %s not found", crewID)
	}
	m.Availability = availability
	return nil
}

package coordinator

import "fmt"

// NotFoundError indicates a referenced opportunity, project, or crew id
// does not exist in the current computation context. Surfaced to the
// caller, never retried internally.
type NotFoundError struct {
	// Kind names what was looked up: "opportunity", "project", or "crew".
	Kind string
	// ID is the identifier that failed to resolve.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

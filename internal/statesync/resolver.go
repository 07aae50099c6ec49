package statesync

import (
	"fmt"
	"sort"

	"github.com/familiarcat/crewcoord/pkg/models"
)

// ConflictPolicy selects how concurrent edits are reconciled.
type ConflictPolicy string

const (
	// PolicyClientWins takes the local state verbatim.
	PolicyClientWins ConflictPolicy = "client_wins"
	// PolicyServerWins takes the remote state verbatim.
	PolicyServerWins ConflictPolicy = "server_wins"
	// PolicyMerge reconciles field by field.
	PolicyMerge ConflictPolicy = "merge"
)

// Valid returns true if the policy is a known value.
func (p ConflictPolicy) Valid() bool {
	switch p {
	case PolicyClientWins, PolicyServerWins, PolicyMerge:
		return true
	default:
		return false
	}
}

// InvalidConflictPolicyError indicates an unrecognized policy was
// configured. Raised when the manager is built, never per-sync.
type InvalidConflictPolicyError struct {
	Policy string
}

// Error implements the error interface.
func (e *InvalidConflictPolicyError) Error() string {
	return fmt.Sprintf("invalid conflict policy %q", e.Policy)
}

// resolveConflict reconciles concurrent edits under the given policy.
// The result always carries version max(local, remote)+1 and updatedAt
// set to now, so whichever side receives it supersedes both inputs.
func resolveConflict(policy ConflictPolicy, local, remote *models.ProjectState, now int64) *models.ProjectState {
	var resolved models.ProjectState
	switch policy {
	case PolicyClientWins:
		resolved = *local
	case PolicyServerWins:
		resolved = *remote
	default:
		resolved = mergeStates(local, remote)
	}

	resolved.Metadata.Version = maxInt(local.Metadata.Version, remote.Metadata.Version) + 1
	resolved.Metadata.UpdatedAt = now
	resolved.Metadata.ConflictResolution = string(policy)
	return &resolved
}

// mergeStates combines two states field by field: scalar content fields
// come from the side with the later updatedAt, components merge by id
// with the newer item winning, and pages merge key-wise with local
// overriding remote on collision.
func mergeStates(local, remote *models.ProjectState) models.ProjectState {
	newer := local
	if remote.Metadata.UpdatedAt > local.Metadata.UpdatedAt {
		newer = remote
	}

	merged := *local
	merged.Content = models.Content{
		Headline:    newer.Content.Headline,
		Subheadline: newer.Content.Subheadline,
		Description: newer.Content.Description,
		Theme:       newer.Content.Theme,
		Components:  mergeComponents(local.Content.Components, remote.Content.Components),
		Pages:       mergePages(local.Content.Pages, remote.Content.Pages),
	}
	merged.Metadata = newer.Metadata
	merged.Permissions = newer.Permissions

	return merged
}

// mergeComponents merges two component lists by id, newer UpdatedAt wins
// per item. Output is ordered by id for determinism.
func mergeComponents(local, remote []models.Component) []models.Component {
	if len(local) == 0 && len(remote) == 0 {
		return nil
	}

	byID := make(map[string]models.Component, len(local)+len(remote))
	for _, c := range remote {
		byID[c.ID] = c
	}
	for _, c := range local {
		if existing, ok := byID[c.ID]; !ok || c.UpdatedAt >= existing.UpdatedAt {
			byID[c.ID] = c
		}
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.Component, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

// mergePages unions two page maps, local wins on key collision.
func mergePages(local, remote map[string]models.Page) map[string]models.Page {
	if len(local) == 0 && len(remote) == 0 {
		return nil
	}

	out := make(map[string]models.Page, len(local)+len(remote))
	for k, p := range remote {
		out[k] = p
	}
	for k, p := range local {
		out[k] = p
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

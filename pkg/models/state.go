package models

// StateTier is the visibility/ownership scope of a project's state.
type StateTier string

const (
	// TierMain is the shared main-site tier.
	TierMain StateTier = "main"
	// TierProject is the per-user project tier.
	TierProject StateTier = "project"
	// TierPublished is the public published tier.
	TierPublished StateTier = "published"
)

// Valid returns true if the tier is a known value.
func (t StateTier) Valid() bool {
	switch t {
	case TierMain, TierProject, TierPublished:
		return true
	default:
		return false
	}
}

// Component is one renderable block within project content.
// Components are merged by ID during reconciliation, last write wins.
type Component struct {
	// ID is the component identifier.
	ID string `json:"id"`
	// Type is the component kind.
	Type string `json:"type"`
	// Props holds the component's configuration values.
	Props map[string]string `json:"props,omitempty"`
	// UpdatedAt is the epoch-ms timestamp of the component's last edit.
	UpdatedAt int64 `json:"updated_at"`
}

// Page is one page of project content, keyed by slug in Content.Pages.
type Page struct {
	// Title is the page title.
	Title string `json:"title"`
	// Body is the page body text.
	Body string `json:"body"`
}

// Content is the editable body of a project state.
type Content struct {
	// Headline is the main heading.
	Headline string `json:"headline"`
	// Subheadline is the secondary heading.
	Subheadline string `json:"subheadline"`
	// Description is the long-form description.
	Description string `json:"description"`
	// Theme names the visual theme.
	Theme string `json:"theme"`
	// Components lists the renderable blocks.
	Components []Component `json:"components,omitempty"`
	// Pages maps page slugs to page content.
	Pages map[string]Page `json:"pages,omitempty"`
}

// Metadata tracks versioning for reconciliation.
// Version is monotonically non-decreasing across successful syncs.
type Metadata struct {
	// Version is the state's version counter.
	Version int `json:"version"`
	// UpdatedAt is the epoch-ms timestamp of the last authoritative mutation.
	UpdatedAt int64 `json:"updated_at"`
	// SyncedAt is the epoch-ms timestamp of the last successful sync, if any.
	SyncedAt int64 `json:"synced_at,omitempty"`
	// LastSyncBy identifies who performed the last sync, if known.
	LastSyncBy string `json:"last_sync_by,omitempty"`
	// ConflictResolution records the policy applied on the last conflict.
	ConflictResolution string `json:"conflict_resolution,omitempty"`
}

// Permissions lists principals allowed to act on the state.
type Permissions struct {
	// Read lists principals with read access.
	Read []string `json:"read,omitempty"`
	// Write lists principals with write access.
	Write []string `json:"write,omitempty"`
	// Admin lists principals with admin access.
	Admin []string `json:"admin,omitempty"`
}

// ProjectState is one tier's view of a project, reconciled by the sync
// manager. Never deleted by the sync manager itself.
type ProjectState struct {
	// ProjectID is the project identifier.
	ProjectID string `json:"project_id"`
	// Tier is the state's visibility scope.
	Tier StateTier `json:"tier"`
	// UserID is the owning user for tier-2 states.
	UserID string `json:"user_id,omitempty"`
	// Content is the editable body.
	Content Content `json:"content"`
	// Metadata tracks versioning.
	Metadata Metadata `json:"metadata"`
	// Permissions lists access grants.
	Permissions Permissions `json:"permissions"`
}

// SyncAction is the reconciliation decision for one project.
type SyncAction string

const (
	// ActionPush uploads local state to the remote store.
	ActionPush SyncAction = "push"
	// ActionPull downloads remote state over local.
	ActionPull SyncAction = "pull"
	// ActionMerge reconciles concurrent edits field by field.
	ActionMerge SyncAction = "merge"
	// ActionNone means the sides already agree.
	ActionNone SyncAction = "no_action"
)

// SyncResult reports the outcome of one reconciliation.
type SyncResult struct {
	// Success is false when the reconciliation failed.
	Success bool `json:"success"`
	// Action is the decision that was taken.
	Action SyncAction `json:"action"`
	// Conflict is true when a genuine concurrent-edit conflict was resolved.
	Conflict bool `json:"conflict"`
	// Version is the resulting state version.
	Version int `json:"version"`
	// Timestamp is the epoch-ms time of the reconciliation.
	Timestamp int64 `json:"timestamp"`
	// Message carries the error text on failure.
	Message string `json:"message,omitempty"`
}

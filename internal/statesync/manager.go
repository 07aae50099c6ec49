package statesync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/familiarcat/crewcoord/internal/config"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// Logger receives debug messages from the sync manager.
// *coordinator.DebugLogger satisfies it; nil disables logging.
type Logger interface {
	Log(format string, args ...interface{})
}

// Target identifies one project state to keep reconciled.
type Target struct {
	ProjectID string
	Tier      models.StateTier
	UserID    string
}

func (t Target) key() string {
	return stateKey(t.ProjectID, t.Tier, t.UserID)
}

// inflight is one pending reconciliation shared between concurrent
// callers for the same target.
type inflight struct {
	done   chan struct{}
	result *models.SyncResult
}

// SyncManager reconciles local project states against a remote store.
// At most one reconciliation per target runs at a time; concurrent
// requests for the same target share one result.
type SyncManager struct {
	local    *LocalStore
	remote   RemoteStore
	policy   ConflictPolicy
	thresh   time.Duration
	logger   Logger
	syncedBy string

	mu      sync.Mutex
	pending map[string]*inflight
}

// ManagerOption configures a SyncManager.
type ManagerOption func(*SyncManager)

// WithSyncLogger installs a debug logger.
func WithSyncLogger(l Logger) ManagerOption {
	return func(m *SyncManager) { m.logger = l }
}

// WithSyncedBy sets the identity recorded on reconciled states.
func WithSyncedBy(id string) ManagerOption {
	return func(m *SyncManager) { m.syncedBy = id }
}

// NewSyncManager builds a manager over the given stores. The conflict
// policy is validated here; an unrecognized policy is a configuration
// error, not a per-sync one.
func NewSyncManager(local *LocalStore, remote RemoteStore, cfg config.SyncConfig, opts ...ManagerOption) (*SyncManager, error) {
	policy := ConflictPolicy(cfg.ConflictPolicy)
	if !policy.Valid() {
		return nil, &InvalidConflictPolicyError{Policy: cfg.ConflictPolicy}
	}

	thresh := cfg.TimestampThreshold
	if thresh <= 0 {
		thresh = time.Second
	}

	m := &SyncManager{
		local:    local,
		remote:   remote,
		policy:   policy,
		thresh:   thresh,
		syncedBy: "crewcoord",
		pending:  make(map[string]*inflight),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *SyncManager) log(format string, args ...interface{}) {
	if m.logger != nil {
		m.logger.Log(format, args...)
	}
}

// SyncProject reconciles one target. I/O failures are reported in the
// result with Success false rather than returned, so the periodic loop
// can carry on with other projects. If a reconciliation for the same
// target is already in flight, the call waits for it and returns its
// result instead of racing a duplicate.
func (m *SyncManager) SyncProject(ctx context.Context, target Target) *models.SyncResult {
	key := target.key()

	m.mu.Lock()
	if op, ok := m.pending[key]; ok {
		m.mu.Unlock()
		<-op.done
		return op.result
	}
	op := &inflight{done: make(chan struct{})}
	m.pending[key] = op
	m.mu.Unlock()

	op.result = m.reconcile(ctx, target)

	m.mu.Lock()
	delete(m.pending, key)
	m.mu.Unlock()
	close(op.done)

	return op.result
}

// reconcile performs one compare-and-act pass for a target.
func (m *SyncManager) reconcile(ctx context.Context, target Target) *models.SyncResult {
	now := time.Now().UnixMilli()

	local, err := m.local.Get(target.ProjectID, target.Tier, target.UserID)
	if err != nil {
		return failure(now, "", fmt.Errorf("load local state: %w", err))
	}
	remote, err := m.remote.Retrieve(ctx, target.ProjectID, target.Tier, target.UserID)
	if err != nil {
		return failure(now, "", fmt.Errorf("retrieve remote state: %w", err))
	}

	action := m.determineAction(local, remote)
	m.log("[sync] %s: %s", target.key(), action)

	switch action {
	case models.ActionNone:
		version := 0
		if local != nil {
			version = local.Metadata.Version
		}
		return &models.SyncResult{Success: true, Action: models.ActionNone, Version: version, Timestamp: now}

	case models.ActionPush:
		return m.push(ctx, local, now)

	case models.ActionPull:
		return m.pull(remote, now)

	default:
		return m.merge(ctx, local, remote, now)
	}
}

// determineAction decides how to reconcile the two sides:
//   - only one side exists: copy it to the other (push or pull)
//   - neither exists: nothing to do
//   - timestamps within the threshold and versions equal: in sync
//   - timestamps within the threshold but versions differ: genuine
//     concurrent edit, merge
//   - otherwise the newer side wins: push if local is newer, pull if
//     remote is
func (m *SyncManager) determineAction(local, remote *models.ProjectState) models.SyncAction {
	switch {
	case local == nil && remote == nil:
		return models.ActionNone
	case local == nil:
		return models.ActionPull
	case remote == nil:
		return models.ActionPush
	}

	delta := local.Metadata.UpdatedAt - remote.Metadata.UpdatedAt
	threshold := m.thresh.Milliseconds()

	if delta >= -threshold && delta <= threshold {
		if local.Metadata.Version == remote.Metadata.Version {
			return models.ActionNone
		}
		return models.ActionMerge
	}
	if delta > 0 {
		return models.ActionPush
	}
	return models.ActionPull
}

// push uploads local state to the remote store and records the sync.
func (m *SyncManager) push(ctx context.Context, local *models.ProjectState, now int64) *models.SyncResult {
	st := *local
	st.Metadata.SyncedAt = now
	st.Metadata.LastSyncBy = m.syncedBy

	if err := m.remote.Store(ctx, st.ProjectID, &st); err != nil {
		return failure(now, models.ActionPush, fmt.Errorf("push: %w", err))
	}
	if err := m.local.Put(&st); err != nil {
		return failure(now, models.ActionPush, fmt.Errorf("push: record sync: %w", err))
	}

	return &models.SyncResult{Success: true, Action: models.ActionPush, Version: st.Metadata.Version, Timestamp: now}
}

// pull replaces the local cache with the remote state.
func (m *SyncManager) pull(remote *models.ProjectState, now int64) *models.SyncResult {
	st := *remote
	st.Metadata.SyncedAt = now
	st.Metadata.LastSyncBy = m.syncedBy

	if err := m.local.Put(&st); err != nil {
		return failure(now, models.ActionPull, fmt.Errorf("pull: %w", err))
	}

	return &models.SyncResult{Success: true, Action: models.ActionPull, Version: st.Metadata.Version, Timestamp: now}
}

// merge resolves a concurrent edit under the configured policy and
// commits the resolution to both sides. Local state is written only
// after the remote store accepts the resolution.
func (m *SyncManager) merge(ctx context.Context, local, remote *models.ProjectState, now int64) *models.SyncResult {
	resolved := resolveConflict(m.policy, local, remote, now)
	resolved.Metadata.SyncedAt = now
	resolved.Metadata.LastSyncBy = m.syncedBy

	if err := m.remote.Store(ctx, resolved.ProjectID, resolved); err != nil {
		return failure(now, models.ActionMerge, fmt.Errorf("merge: store remote: %w", err))
	}
	if err := m.local.Put(resolved); err != nil {
		return failure(now, models.ActionMerge, fmt.Errorf("merge: store local: %w", err))
	}

	return &models.SyncResult{
		Success:   true,
		Action:    models.ActionMerge,
		Conflict:  true,
		Version:   resolved.Metadata.Version,
		Timestamp: now,
	}
}

// failure builds the in-band error result for a reconciliation.
func failure(now int64, action models.SyncAction, err error) *models.SyncResult {
	return &models.SyncResult{Success: false, Action: action, Timestamp: now, Message: err.Error()}
}

package statesync

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/familiarcat/crewcoord/internal/state"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// KVRemote adapts a key-value store as a RemoteStore, for setups where
// the "remote" side is another database rather than a network endpoint.
type KVRemote struct {
	kv state.KVStore
}

// NewKVRemote wraps a key-value store as a remote store.
func NewKVRemote(kv state.KVStore) *KVRemote {
	return &KVRemote{kv: kv}
}

// Retrieve returns the stored state, or nil when absent.
func (r *KVRemote) Retrieve(ctx context.Context, projectID string, tier models.StateTier, userID string) (*models.ProjectState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.kv.Get(stateKey(projectID, tier, userID))
	if err != nil {
		return nil, fmt.Errorf("read remote state: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	st := &models.ProjectState{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("decode remote state: %w", err)
	}
	return st, nil
}

// Store saves the state, replacing any previous version.
func (r *KVRemote) Store(ctx context.Context, projectID string, st *models.ProjectState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode remote state: %w", err)
	}
	if err := r.kv.Set(stateKey(st.ProjectID, st.Tier, st.UserID), data); err != nil {
		return fmt.Errorf("write remote state: %w", err)
	}
	return nil
}

// MemoryRemote is an in-memory RemoteStore, used when no remote endpoint
// is configured and in tests.
type MemoryRemote struct {
	mu     sync.RWMutex
	states map[string]*models.ProjectState
}

// NewMemoryRemote creates an empty in-memory remote store.
func NewMemoryRemote() *MemoryRemote {
	return &MemoryRemote{states: make(map[string]*models.ProjectState)}
}

// Retrieve returns the stored state, or nil when absent.
func (r *MemoryRemote) Retrieve(ctx context.Context, projectID string, tier models.StateTier, userID string) (*models.ProjectState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.states[stateKey(projectID, tier, userID)]
	if !ok {
		return nil, nil
	}
	cp := *st
	return &cp, nil
}

// Store saves the state, replacing any previous version.
func (r *MemoryRemote) Store(ctx context.Context, projectID string, st *models.ProjectState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *st
	r.states[stateKey(st.ProjectID, st.Tier, st.UserID)] = &cp
	return nil
}

// Package statesync reconciles local project state against a remote
// store: it compares versions and timestamps, decides push, pull, merge,
// or no action, and resolves genuine conflicts under a configurable
// policy.
package statesync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/familiarcat/crewcoord/internal/state"
	"github.com/familiarcat/crewcoord/pkg/models"
)

// RemoteStore is the remote side of a sync. Retrieve returns nil with no
// error when the remote has no state for the project.
type RemoteStore interface {
	Retrieve(ctx context.Context, projectID string, tier models.StateTier, userID string) (*models.ProjectState, error)
	Store(ctx context.Context, projectID string, st *models.ProjectState) error
}

// LocalStore is the client-side cache of project states, a JSON blob per
// project and tier over a key-value store.
type LocalStore struct {
	kv state.KVStore
}

// NewLocalStore wraps a key-value store as the local state cache.
func NewLocalStore(kv state.KVStore) *LocalStore {
	return &LocalStore{kv: kv}
}

// stateKey builds the cache key for one project state.
func stateKey(projectID string, tier models.StateTier, userID string) string {
	if userID != "" {
		return fmt.Sprintf("state/%s/%s/%s", projectID, tier, userID)
	}
	return fmt.Sprintf("state/%s/%s", projectID, tier)
}

// Get loads the cached state, or nil when none is cached.
func (s *LocalStore) Get(projectID string, tier models.StateTier, userID string) (*models.ProjectState, error) {
	data, err := s.kv.Get(stateKey(projectID, tier, userID))
	if err != nil {
		return nil, fmt.Errorf("read local state: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	st := &models.ProjectState{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("decode local state: %w", err)
	}
	return st, nil
}

// Put caches the state.
func (s *LocalStore) Put(st *models.ProjectState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode local state: %w", err)
	}
	if err := s.kv.Set(stateKey(st.ProjectID, st.Tier, st.UserID), data); err != nil {
		return fmt.Errorf("write local state: %w", err)
	}
	return nil
}

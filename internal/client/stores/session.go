package stores

import (
	"context"
	"encoding/json"

	"github.com/dkoval85/dashterm/internal/client/models"
	"github.com/dkoval85/dashterm/internal/client/repositories/kv"
	"github.com/dkoval85/dashterm/internal/logging"
)

// SessionStore is the durable single-slot cell holding the currently
// authenticated identity, or nothing.
type SessionStore interface {
	// Get returns the stored identity and whether one exists. Unreadable
	// or corrupt storage reads as empty.
	Get(ctx context.Context) (models.SessionIdentity, bool)

	// Set replaces the slot with the given identity.
	Set(ctx context.Context, id models.SessionIdentity) error

	// Clear empties the slot. Clearing an empty slot is a no-op.
	Clear(ctx context.Context) error
}

// KVSessionStore is the kv-backed SessionStore.
type KVSessionStore struct {
	repo kv.Repository
	log  logging.Logger
}

func NewKVSessionStore(repo kv.Repository, log logging.Logger) *KVSessionStore {
	return &KVSessionStore{repo: repo, log: log}
}

func (s *KVSessionStore) Get(ctx context.Context) (models.SessionIdentity, bool) {
	raw, ok, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		s.log.Warn(ctx, "session store unreadable, treating as empty", "error", err)
		return models.SessionIdentity{}, false
	}
	if !ok {
		return models.SessionIdentity{}, false
	}

	var id models.SessionIdentity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		s.log.Warn(ctx, "session store corrupt, treating as empty", "error", err)
		return models.SessionIdentity{}, false
	}
	return id, true
}

func (s *KVSessionStore) Set(ctx context.Context, id models.SessionIdentity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, sessionKey, string(data))
}

func (s *KVSessionStore) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, sessionKey)
}

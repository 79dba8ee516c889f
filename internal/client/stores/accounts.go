// Package stores implements the two durable identity stores on top of the
// kv repository: the account collection and the single-slot session cell.
//
// Both stores fail open on read: a missing, unreadable or unparseable record
// is treated as "nothing stored yet", never surfaced as an error. The worst
// outcome of corrupt local storage is an empty dashboard, not a crash.
package stores

import (
	"context"
	"encoding/json"

	"github.com/dkoval85/dashterm/internal/client/models"
	"github.com/dkoval85/dashterm/internal/client/repositories/kv"
	"github.com/dkoval85/dashterm/internal/logging"
)

// Storage record names. These are part of the on-disk contract and must
// not change between releases.
const (
	accountsKey = "users"
	sessionKey  = "user"
)

// AccountStore is the durable collection of registered accounts,
// in insertion order.
type AccountStore interface {
	// List returns all accounts. Unreadable or corrupt storage yields an
	// empty slice.
	List(ctx context.Context) []models.Account

	// Save replaces the full collection. The write either fully succeeds
	// or the prior state is retained.
	Save(ctx context.Context, accounts []models.Account) error
}

// KVAccountStore is the kv-backed AccountStore.
type KVAccountStore struct {
	repo kv.Repository
	log  logging.Logger
}

func NewKVAccountStore(repo kv.Repository, log logging.Logger) *KVAccountStore {
	return &KVAccountStore{repo: repo, log: log}
}

func (s *KVAccountStore) List(ctx context.Context) []models.Account {
	raw, ok, err := s.repo.Get(ctx, accountsKey)
	if err != nil {
		s.log.Warn(ctx, "account store unreadable, treating as empty", "error", err)
		return []models.Account{}
	}
	if !ok {
		return []models.Account{}
	}

	var accounts []models.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		s.log.Warn(ctx, "account store corrupt, treating as empty", "error", err)
		return []models.Account{}
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts
}

func (s *KVAccountStore) Save(ctx context.Context, accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	// Single upsert of the whole collection: no partial write is ever
	// visible to readers.
	return s.repo.Set(ctx, accountsKey, string(data))
}

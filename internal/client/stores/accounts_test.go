package stores

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoval85/dashterm/internal/client/models"
	"github.com/dkoval85/dashterm/internal/logging"
)

// fakeKV is an in-memory kv.Repository with injectable failures.
type fakeKV struct {
	data map[string]string

	getErr error
	setErr error
	delErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(ctx context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

func TestKVAccountStore_ListEmptyWhenAbsent(t *testing.T) {
	s := NewKVAccountStore(newFakeKV(), logging.NewNop())

	got := s.List(context.Background())
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestKVAccountStore_SaveListRoundTrip(t *testing.T) {
	s := NewKVAccountStore(newFakeKV(), logging.NewNop())
	ctx := context.Background()

	accounts := []models.Account{
		{ID: "1", Name: "Ann", Email: "ann@x.com", Password: "secret1"},
		{ID: "2", Name: "Bo", Email: "bo@x.com", Password: "secret2"},
	}
	require.NoError(t, s.Save(ctx, accounts))

	got := s.List(ctx)
	require.Equal(t, accounts, got)
}

func TestKVAccountStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewKVAccountStore(newFakeKV(), logging.NewNop())
	ctx := context.Background()

	var accounts []models.Account
	for _, name := range []string{"c", "a", "b"} {
		accounts = append(accounts, models.Account{ID: name, Name: name, Email: name + "@x.com"})
		require.NoError(t, s.Save(ctx, accounts))
	}

	got := s.List(ctx)
	require.Len(t, got, 3)
	require.Equal(t, "c", got[0].ID)
	require.Equal(t, "a", got[1].ID)
	require.Equal(t, "b", got[2].ID)
}

func TestKVAccountStore_ListFailsOpenOnCorruptValue(t *testing.T) {
	repo := newFakeKV()
	repo.data["users"] = `{"not": "an array"`
	s := NewKVAccountStore(repo, logging.NewNop())

	got := s.List(context.Background())
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestKVAccountStore_ListFailsOpenOnReadError(t *testing.T) {
	repo := newFakeKV()
	repo.getErr = errors.New("disk on fire")
	s := NewKVAccountStore(repo, logging.NewNop())

	require.Empty(t, s.List(context.Background()))
}

func TestKVAccountStore_SaveFailureRetainsPriorState(t *testing.T) {
	repo := newFakeKV()
	s := NewKVAccountStore(repo, logging.NewNop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []models.Account{{ID: "1", Email: "a@x.com"}}))

	repo.setErr = errors.New("write failed")
	err := s.Save(ctx, []models.Account{{ID: "2", Email: "b@x.com"}})
	require.Error(t, err)

	repo.setErr = nil
	got := s.List(ctx)
	require.Len(t, got, 1)
	require.Equal(t, "1", got[0].ID)
}

func TestKVAccountStore_SaveNilWritesEmptyCollection(t *testing.T) {
	repo := newFakeKV()
	s := NewKVAccountStore(repo, logging.NewNop())
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, nil))
	require.Equal(t, "[]", repo.data["users"])
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval85/dashterm/internal/client/models"
	"github.com/dkoval85/dashterm/internal/logging"
)

type fakeRecords struct {
	recs []models.Record
	err  error
}

func (f *fakeRecords) GetAll(ctx context.Context) ([]models.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Record(nil), f.recs...), nil
}

func testRecords() []models.Record {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Record{
		{ID: "REC-3", Customer: "Globex", Status: "pending", Amount: 300, CreatedAt: base.AddDate(0, 0, 3)},
		{ID: "REC-1", Customer: "Acme", Status: "paid", Amount: 100, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "REC-2", Customer: "Initech", Status: "overdue", Amount: 200, CreatedAt: base.AddDate(0, 0, 2)},
	}
}

func TestRecords_List_DefaultKeepsInsertionOrder(t *testing.T) {
	svc := NewRecords(&fakeRecords{recs: testRecords()}, logging.NewNop())

	got, err := svc.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "REC-3", got[0].ID)
	assert.Equal(t, "REC-1", got[1].ID)
	assert.Equal(t, "REC-2", got[2].ID)
}

func TestRecords_List_SortColumns(t *testing.T) {
	svc := NewRecords(&fakeRecords{recs: testRecords()}, logging.NewNop())
	ctx := context.Background()

	tests := []struct {
		column string
		want   []string // expected id order, ascending
	}{
		{"id", []string{"REC-1", "REC-2", "REC-3"}},
		{"customer", []string{"REC-1", "REC-3", "REC-2"}},
		{"amount", []string{"REC-1", "REC-2", "REC-3"}},
		{"created", []string{"REC-1", "REC-2", "REC-3"}},
		{"status", []string{"REC-2", "REC-1", "REC-3"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.column, func(t *testing.T) {
			got, err := svc.List(ctx, ListOptions{SortBy: tt.column})
			require.NoError(t, err)
			ids := make([]string, len(got))
			for i, r := range got {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRecords_List_SortDescending(t *testing.T) {
	svc := NewRecords(&fakeRecords{recs: testRecords()}, logging.NewNop())

	got, err := svc.List(context.Background(), ListOptions{SortBy: "amount", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, "REC-3", got[0].ID)
	assert.Equal(t, "REC-1", got[2].ID)
}

func TestRecords_List_UnknownSortColumn(t *testing.T) {
	svc := NewRecords(&fakeRecords{recs: testRecords()}, logging.NewNop())

	_, err := svc.List(context.Background(), ListOptions{SortBy: "favourite_color"})
	require.ErrorIs(t, err, ErrUnknownSortColumn)
}

func TestRecords_List_FilterIsCaseInsensitive(t *testing.T) {
	svc := NewRecords(&fakeRecords{recs: testRecords()}, logging.NewNop())

	got, err := svc.List(context.Background(), ListOptions{Filter: "ACME"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "REC-1", got[0].ID)
}

func TestRecords_List_FilterMatchesStatusAndID(t *testing.T) {
	svc := NewRecords(&fakeRecords{recs: testRecords()}, logging.NewNop())
	ctx := context.Background()

	byStatus, err := svc.List(ctx, ListOptions{Filter: "overdue"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "REC-2", byStatus[0].ID)

	byID, err := svc.List(ctx, ListOptions{Filter: "rec-"})
	require.NoError(t, err)
	assert.Len(t, byID, 3)
}

func TestRecords_List_FilterThenSort(t *testing.T) {
	svc := NewRecords(&fakeRecords{recs: testRecords()}, logging.NewNop())

	got, err := svc.List(context.Background(), ListOptions{Filter: "e", SortBy: "customer"})
	require.NoError(t, err)
	require.Len(t, got, 3) // all customers contain "e"
	assert.Equal(t, "Acme", got[0].Customer)
}

func TestRecords_List_RepositoryError(t *testing.T) {
	svc := NewRecords(&fakeRecords{err: errors.New("db gone")}, logging.NewNop())

	_, err := svc.List(context.Background(), ListOptions{})
	require.Error(t, err)
}

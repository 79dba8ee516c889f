package services

import (
	"context"
	"sort"
	"strings"

	"github.com/dkoval85/dashterm/internal/client/models"
	"github.com/dkoval85/dashterm/internal/client/repositories/records"
	"github.com/dkoval85/dashterm/internal/logging"
)

// ListOptions controls sorting and filtering of the data table.
// A zero value lists everything in insertion order.
type ListOptions struct {
	// SortBy is one of: id, customer, status, amount, created.
	SortBy string
	Desc   bool
	// Filter keeps rows whose id, customer or status contains the term,
	// case-insensitively.
	Filter string
}

// RecordsService lists dashboard records with sorting and filtering applied.
type RecordsService interface {
	List(ctx context.Context, opts ListOptions) ([]models.Record, error)
}

// Records serves the dashboard data table. It never touches identity state;
// whether it is reachable at all is the session guard's business.
type Records struct {
	repo records.Repository
	log  logging.Logger
}

var _ RecordsService = (*Records)(nil)

func NewRecords(repo records.Repository, log logging.Logger) *Records {
	return &Records{repo: repo, log: log}
}

// List returns records with opts applied: filter first, then a stable sort.
func (s *Records) List(ctx context.Context, opts ListOptions) ([]models.Record, error) {
	recs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if opts.Filter != "" {
		term := strings.ToLower(opts.Filter)
		filtered := make([]models.Record, 0, len(recs))
		for _, r := range recs {
			if strings.Contains(strings.ToLower(r.ID), term) ||
				strings.Contains(strings.ToLower(r.Customer), term) ||
				strings.Contains(strings.ToLower(r.Status), term) {
				filtered = append(filtered, r)
			}
		}
		recs = filtered
	}

	if opts.SortBy != "" {
		less, ok := recordLess(opts.SortBy)
		if !ok {
			return nil, ErrUnknownSortColumn
		}
		sort.SliceStable(recs, func(i, j int) bool {
			if opts.Desc {
				return less(recs[j], recs[i])
			}
			return less(recs[i], recs[j])
		})
	}

	return recs, nil
}

func recordLess(column string) (func(a, b models.Record) bool, bool) {
	switch column {
	case "id":
		return func(a, b models.Record) bool { return a.ID < b.ID }, true
	case "customer":
		return func(a, b models.Record) bool { return a.Customer < b.Customer }, true
	case "status":
		return func(a, b models.Record) bool { return a.Status < b.Status }, true
	case "amount":
		return func(a, b models.Record) bool { return a.Amount < b.Amount }, true
	case "created":
		return func(a, b models.Record) bool { return a.CreatedAt.Before(b.CreatedAt) }, true
	default:
		return nil, false
	}
}

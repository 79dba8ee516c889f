package records

import (
	"context"
	"fmt"
	"time"

	"github.com/dkoval85/dashterm/internal/client/models"
	"github.com/dkoval85/dashterm/internal/dbx"
)

// SQLiteRepository implements Repository over the records table.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, customer, status, amount, created_at FROM records ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var rec models.Record
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Customer, &rec.Status, &rec.Amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate record rows: %w", err)
	}

	return result, nil
}

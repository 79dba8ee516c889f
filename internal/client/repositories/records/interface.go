// Package records provides read access to the business records shown in the
// dashboard data table.
package records

import (
	"context"

	"github.com/dkoval85/dashterm/internal/client/models"
)

type Repository interface {
	// GetAll lists every record in insertion order.
	GetAll(ctx context.Context) ([]models.Record, error)
}

package repository

import (
	"context"

	"github.com/DealeGear/synapse/internal/model"
)

// ReportRepository owns the append-only moderation log. Records are
// immutable once appended.
type ReportRepository interface {
	// Append assigns an ID, appends the report, and persists.
	Append(ctx context.Context, r *model.Report) (*model.Report, error)
	// List returns all reports in submission order.
	List(ctx context.Context) ([]*model.Report, error)
}

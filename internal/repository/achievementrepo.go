package repository

import (
	"context"

	"github.com/DealeGear/synapse/internal/model"
)

// AchievementRepository owns the one-shot unlock records, keyed by
// achievement ID.
type AchievementRepository interface {
	// Get returns the record and whether it exists.
	Get(ctx context.Context, id string) (model.Achievement, bool, error)
	// Put stores the record and persists.
	Put(ctx context.Context, a model.Achievement) error
	// List returns all records in unlock order.
	List(ctx context.Context) ([]model.Achievement, error)
}

package repository

import (
	"context"

	"github.com/DealeGear/synapse/internal/model"
)

// ClusterRepository owns topic-group records.
type ClusterRepository interface {
	// Create assigns an ID, appends the cluster, and persists.
	Create(ctx context.Context, c *model.Cluster) (*model.Cluster, error)
	// GetByID loads a cluster by ID.
	GetByID(ctx context.Context, id int64) (*model.Cluster, error)
	// List returns all clusters in creation order.
	List(ctx context.Context) ([]*model.Cluster, error)
	// Update replaces the stored record sharing c's ID.
	Update(ctx context.Context, c *model.Cluster) error
}

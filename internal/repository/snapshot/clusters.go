package snapshot

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage"
)

// Clusters is the snapshot-backed topic-group registry.
type Clusters struct {
	store  storage.Store
	list   []*model.Cluster
	nextID int64
}

// NewClusters loads the clusters slot.
func NewClusters(ctx context.Context, store storage.Store) (*Clusters, error) {
	c := &Clusters{store: store, nextID: 1}
	if _, err := store.Load(ctx, storage.SlotClusters, &c.list); err != nil {
		return nil, fmt.Errorf("load clusters: %w", err)
	}
	for _, item := range c.list {
		if item.ID >= c.nextID {
			c.nextID = item.ID + 1
		}
	}
	return c, nil
}

func (r *Clusters) persist(ctx context.Context) error {
	return r.store.Save(ctx, storage.SlotClusters, r.list)
}

// Create assigns an ID, appends the cluster, and persists.
func (r *Clusters) Create(ctx context.Context, c *model.Cluster) (*model.Cluster, error) {
	cpy := cloneCluster(c)
	cpy.ID = r.nextID
	r.list = append(r.list, cpy)
	if err := r.persist(ctx); err != nil {
		r.list = r.list[:len(r.list)-1]
		return nil, err
	}
	r.nextID++
	return cloneCluster(cpy), nil
}

// GetByID loads a cluster by ID.
func (r *Clusters) GetByID(_ context.Context, id int64) (*model.Cluster, error) {
	for _, c := range r.list {
		if c.ID == id {
			return cloneCluster(c), nil
		}
	}
	return nil, errs.ErrNotFound
}

// List returns all clusters in creation order.
func (r *Clusters) List(_ context.Context) ([]*model.Cluster, error) {
	out := make([]*model.Cluster, len(r.list))
	for i, c := range r.list {
		out[i] = cloneCluster(c)
	}
	return out, nil
}

// Update replaces the stored record sharing c's ID.
func (r *Clusters) Update(ctx context.Context, c *model.Cluster) error {
	for i, existing := range r.list {
		if existing.ID == c.ID {
			prev := r.list[i]
			r.list[i] = cloneCluster(c)
			if err := r.persist(ctx); err != nil {
				r.list[i] = prev
				return err
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

func cloneCluster(c *model.Cluster) *model.Cluster {
	cpy := *c
	cpy.Members = append([]uuid.UUID(nil), c.Members...)
	cpy.Posts = append([]int64(nil), c.Posts...)
	return &cpy
}

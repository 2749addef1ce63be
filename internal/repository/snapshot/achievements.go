package snapshot

import (
	"context"
	"fmt"
	"sort"

	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage"
)

// Achievements is the snapshot-backed unlock log, keyed by achievement ID.
type Achievements struct {
	store   storage.Store
	records map[string]model.Achievement
}

// NewAchievements loads the achievements slot.
func NewAchievements(ctx context.Context, store storage.Store) (*Achievements, error) {
	a := &Achievements{store: store, records: map[string]model.Achievement{}}
	if _, err := store.Load(ctx, storage.SlotAchievements, &a.records); err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	if a.records == nil {
		a.records = map[string]model.Achievement{}
	}
	return a, nil
}

// Get returns the record and whether it exists.
func (r *Achievements) Get(_ context.Context, id string) (model.Achievement, bool, error) {
	a, ok := r.records[id]
	return a, ok, nil
}

// Put stores the record and persists.
func (r *Achievements) Put(ctx context.Context, a model.Achievement) error {
	prev, had := r.records[a.ID]
	r.records[a.ID] = a
	if err := r.store.Save(ctx, storage.SlotAchievements, r.records); err != nil {
		if had {
			r.records[a.ID] = prev
		} else {
			delete(r.records, a.ID)
		}
		return err
	}
	return nil
}

// List returns all records in unlock order.
func (r *Achievements) List(_ context.Context) ([]model.Achievement, error) {
	out := make([]model.Achievement, 0, len(r.records))
	for _, a := range r.records {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnlockedAt.Before(out[j].UnlockedAt) })
	return out, nil
}

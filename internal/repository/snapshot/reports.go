package snapshot

import (
	"context"
	"fmt"

	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage"
)

// Reports is the snapshot-backed moderation log, append-only.
type Reports struct {
	store  storage.Store
	list   []*model.Report
	nextID int64
}

// NewReports loads the reports slot.
func NewReports(ctx context.Context, store storage.Store) (*Reports, error) {
	r := &Reports{store: store, nextID: 1}
	if _, err := store.Load(ctx, storage.SlotReports, &r.list); err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	for _, item := range r.list {
		if item.ID >= r.nextID {
			r.nextID = item.ID + 1
		}
	}
	return r, nil
}

// Append assigns an ID, appends the report, and persists.
func (r *Reports) Append(ctx context.Context, report *model.Report) (*model.Report, error) {
	cpy := *report
	cpy.ID = r.nextID
	r.list = append(r.list, &cpy)
	if err := r.store.Save(ctx, storage.SlotReports, r.list); err != nil {
		r.list = r.list[:len(r.list)-1]
		return nil, err
	}
	r.nextID++
	out := cpy
	return &out, nil
}

// List returns all reports in submission order.
func (r *Reports) List(_ context.Context) ([]*model.Report, error) {
	out := make([]*model.Report, len(r.list))
	for i, item := range r.list {
		cpy := *item
		out[i] = &cpy
	}
	return out, nil
}

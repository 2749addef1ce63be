package snapshot

import (
	"context"
	"fmt"

	"github.com/DealeGear/synapse/internal/errs"
	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/storage"
)

// Notifications is the snapshot-backed notification log, newest first.
type Notifications struct {
	store  storage.Store
	list   []*model.Notification
	nextID int64
}

// NewNotifications loads the notifications slot.
func NewNotifications(ctx context.Context, store storage.Store) (*Notifications, error) {
	n := &Notifications{store: store, nextID: 1}
	if _, err := store.Load(ctx, storage.SlotNotifications, &n.list); err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	for _, item := range n.list {
		if item.ID >= n.nextID {
			n.nextID = item.ID + 1
		}
	}
	return n, nil
}

func (r *Notifications) persist(ctx context.Context) error {
	return r.store.Save(ctx, storage.SlotNotifications, r.list)
}

// Create assigns an ID, prepends the notification, and persists.
func (r *Notifications) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	cpy := *n
	cpy.ID = r.nextID
	r.list = append([]*model.Notification{&cpy}, r.list...)
	if err := r.persist(ctx); err != nil {
		r.list = r.list[1:]
		return nil, err
	}
	r.nextID++
	out := cpy
	return &out, nil
}

// List returns all notifications, newest first.
func (r *Notifications) List(_ context.Context) ([]*model.Notification, error) {
	out := make([]*model.Notification, len(r.list))
	for i, n := range r.list {
		cpy := *n
		out[i] = &cpy
	}
	return out, nil
}

// MarkRead sets the read flag; already-read records are a no-op.
func (r *Notifications) MarkRead(ctx context.Context, id int64) error {
	for _, n := range r.list {
		if n.ID == id {
			if n.Read {
				return nil
			}
			n.Read = true
			if err := r.persist(ctx); err != nil {
				n.Read = false
				return err
			}
			return nil
		}
	}
	return errs.ErrNotFound
}

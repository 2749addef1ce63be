package repository

import (
	"context"

	"github.com/DealeGear/synapse/internal/model"
)

// NotificationRepository owns the append-only notification log and is the
// only writer of the read flag.
type NotificationRepository interface {
	// Create assigns an ID, prepends the notification, and persists.
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]*model.Notification, error)
	// MarkRead sets the read flag. Marking an already read notification is
	// a no-op; an unknown ID fails with errs.ErrNotFound.
	MarkRead(ctx context.Context, id int64) error
}

package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/DealeGear/synapse/internal/model"
	"github.com/DealeGear/synapse/internal/repository"
)

// NotificationService owns the append-only notification log. Records are
// never pruned, only marked read.
type NotificationService interface {
	// Record appends a notification unless from == to; self-notifications
	// are silently dropped and reported as (nil, nil).
	Record(ctx context.Context, typ model.NotificationType, from, to uuid.UUID, postID int64) (*model.Notification, error)
	// MarkRead sets the read flag; idempotent.
	MarkRead(ctx context.Context, id int64) error
	// UnreadCount counts notifications with read == false.
	UnreadCount(ctx context.Context) (int, error)
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]*model.Notification, error)
}

type NotificationServiceImpl struct {
	repo repository.NotificationRepository
}

// NewNotificationService constructs NotificationService.
func NewNotificationService(repo repository.NotificationRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{repo: repo}
}

// Record appends a notification; the self-action guard is centralized here
// so no call site can produce one.
func (s *NotificationServiceImpl) Record(ctx context.Context, typ model.NotificationType, from, to uuid.UUID, postID int64) (*model.Notification, error) {
	if from == to {
		return nil, nil
	}
	return s.repo.Create(ctx, &model.Notification{
		Type:      typ,
		FromID:    from,
		ToID:      to,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	})
}

// MarkRead sets the read flag; marking twice is a no-op.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

// UnreadCount counts unread notifications for the badge indicator.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context) (int, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// List returns all notifications, newest first.
func (s *NotificationServiceImpl) List(ctx context.Context) ([]*model.Notification, error) {
	return s.repo.List(ctx)
}

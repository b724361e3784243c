package jsondb

import (
	"context"
	"fmt"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// NotificationRepository stores notification records in the shared document store.
type NotificationRepository struct {
	store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) Add(ctx context.Context, notification domain.Notification) error {
	return r.store.write(ctx, func(d *document) error {
		d.Notifications = append(d.Notifications, notification)
		return nil
	})
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	err := r.store.read(func(d *document) error {
		out = filterCopy(d.Notifications, func(n domain.Notification) bool { return n.UserID == userID })
		return nil
	})
	return out, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	return r.store.write(ctx, func(d *document) error {
		for i := range d.Notifications {
			if d.Notifications[i].NotificationID == notificationID {
				d.Notifications[i].Read = true
				return nil
			}
		}
		return fmt.Errorf("notification %s: %w", notificationID, apperrors.ErrNotFound)
	})
}

func (r *NotificationRepository) Remove(ctx context.Context, notificationID string) (bool, error) {
	var removed bool
	err := r.store.write(ctx, func(d *document) error {
		d.Notifications, removed = removeFirst(d.Notifications, func(n domain.Notification) bool {
			return n.NotificationID == notificationID
		})
		return nil
	})
	return removed, err
}

func (r *NotificationRepository) RemoveByUser(ctx context.Context, userID string) (int, error) {
	var removed int
	err := r.store.write(ctx, func(d *document) error {
		kept := d.Notifications[:0:0]
		for _, n := range d.Notifications {
			if n.UserID == userID {
				removed++
				continue
			}
			kept = append(kept, n)
		}
		d.Notifications = kept
		return nil
	})
	return removed, err
}

package repositories

import (
	"context"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// NotificationRepository persists notification records. Rows are append-only
// apart from the read flag.
type NotificationRepository interface {
	Add(ctx context.Context, notification domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	Remove(ctx context.Context, notificationID string) (bool, error)
	RemoveByUser(ctx context.Context, userID string) (int, error)
}

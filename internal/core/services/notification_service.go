package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/utils"
)

// dedupBucket is the window within which repeated (event, user) pairs are
// folded in the read view. Persisted rows are never collapsed.
const dedupBucket = 5 * time.Second

// notificationService exposes the persisted notification records.
type notificationService struct {
	BaseService
	repo portsrepo.NotificationRepository
}

func NewNotificationService(repo portsrepo.NotificationRepository) portssvc.NotificationSvcFacade {
	return &notificationService{repo: repo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// ListForUser returns the user's notifications, folding rows that share the
// same event and 5-second timestamp bucket down to the first occurrence.
func (s *notificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", apperrors.ErrValidation)
	}
	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	out := []domain.Notification{}
	for _, n := range all {
		key, ok := dedupKey(n)
		if ok && seen[key] {
			continue
		}
		if ok {
			seen[key] = true
		}
		out = append(out, n)
	}
	return out, nil
}

// dedupKey buckets a notification by (event, userId, rounded timestamp).
// Unparseable timestamps are never folded.
func dedupKey(n domain.Notification) (string, bool) {
	at, err := time.ParseInLocation(utils.LocalTimestampLayout, n.At, time.Local)
	if err != nil {
		return "", false
	}
	bucket := at.Unix() / int64(dedupBucket.Seconds())
	return fmt.Sprintf("%s|%s|%d", n.Event, n.UserID, bucket), true
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return fmt.Errorf("%w: notification id is required", apperrors.ErrValidation)
	}
	return s.repo.MarkRead(ctx, notificationID)
}

func (s *notificationService) Delete(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return fmt.Errorf("%w: notification id is required", apperrors.ErrValidation)
	}
	removed, err := s.repo.Remove(ctx, notificationID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("notification %s: %w", notificationID, apperrors.ErrNotFound)
	}
	return nil
}

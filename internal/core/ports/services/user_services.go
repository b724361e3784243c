package services

import (
	"context"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
)

// UserSvcFacade handles signup, login and profile management.
type UserSvcFacade interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)
	// Login verifies credentials and returns the user plus a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// NotificationSvcFacade exposes the persisted notification records.
type NotificationSvcFacade interface {
	// ListForUser returns the user's notifications with near-duplicate
	// events (same event, user and 5-second bucket) folded in the read view.
	ListForUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	Delete(ctx context.Context, notificationID string) error
}

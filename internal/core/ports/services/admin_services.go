package services

import (
	"context"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// AdminSvc exposes the privileged maintenance operations. The role gate lives
// in the proxy wrapping this interface, not here.
type AdminSvc interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	// DeleteUser removes the user record and cascades across all four
	// transaction collections and the user's notifications.
	DeleteUser(ctx context.Context, userID string) error
	// Broadcast persists a notification for every user; returns the number
	// of users reached.
	Broadcast(ctx context.Context, message string) (int, error)
}

package repositories

import (
	"context"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// UserRepository persists user records.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) error
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, userID string, apply func(*domain.User)) (*domain.User, error)
	Remove(ctx context.Context, userID string) (bool, error)
}

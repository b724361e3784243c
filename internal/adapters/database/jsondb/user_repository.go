package jsondb

import (
	"context"
	"fmt"
	"strings"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// UserRepository stores user records in the shared document store.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Save(ctx context.Context, user domain.User) error {
	return r.store.write(ctx, func(d *document) error {
		d.Users = append(d.Users, user)
		return nil
	})
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	var out *domain.User
	err := r.store.read(func(d *document) error {
		if found, ok := findCopy(d.Users, func(u domain.User) bool { return u.UserID == userID }); ok {
			out = &found
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var out *domain.User
	err := r.store.read(func(d *document) error {
		if found, ok := findCopy(d.Users, func(u domain.User) bool {
			return strings.EqualFold(u.Email, email)
		}); ok {
			out = &found
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := r.store.read(func(d *document) error {
		out = append([]domain.User{}, d.Users...)
		return nil
	})
	return out, err
}

func (r *UserRepository) Update(ctx context.Context, userID string, apply func(*domain.User)) (*domain.User, error) {
	var out *domain.User
	err := r.store.write(ctx, func(d *document) error {
		for i := range d.Users {
			if d.Users[i].UserID == userID {
				apply(&d.Users[i])
				updated := d.Users[i]
				out = &updated
				return nil
			}
		}
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepository) Remove(ctx context.Context, userID string) (bool, error) {
	var removed bool
	err := r.store.write(ctx, func(d *document) error {
		d.Users, removed = removeFirst(d.Users, func(u domain.User) bool { return u.UserID == userID })
		return nil
	})
	return removed, err
}

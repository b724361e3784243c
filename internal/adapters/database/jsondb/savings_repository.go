package jsondb

import (
	"context"
	"fmt"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// SavingsRepository stores savings records in the shared document store.
type SavingsRepository struct {
	store *Store
}

func NewSavingsRepository(store *Store) *SavingsRepository {
	return &SavingsRepository{store: store}
}

func (r *SavingsRepository) Add(ctx context.Context, savings domain.Savings) error {
	return r.store.write(ctx, func(d *document) error {
		d.Savings = append(d.Savings, savings)
		return nil
	})
}

func (r *SavingsRepository) Remove(ctx context.Context, savingsID string) (bool, error) {
	var removed bool
	err := r.store.write(ctx, func(d *document) error {
		d.Savings, removed = removeFirst(d.Savings, func(s domain.Savings) bool { return s.SavingsID == savingsID })
		return nil
	})
	return removed, err
}

func (r *SavingsRepository) FindByID(ctx context.Context, savingsID string) (*domain.Savings, error) {
	var out *domain.Savings
	err := r.store.read(func(d *document) error {
		if found, ok := findCopy(d.Savings, func(s domain.Savings) bool { return s.SavingsID == savingsID }); ok {
			out = &found
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("savings %s: %w", savingsID, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *SavingsRepository) ListByUser(ctx context.Context, userID string) ([]domain.Savings, error) {
	var out []domain.Savings
	err := r.store.read(func(d *document) error {
		out = filterCopy(d.Savings, func(s domain.Savings) bool { return s.UserID == userID })
		return nil
	})
	return out, err
}

func (r *SavingsRepository) Update(ctx context.Context, savingsID string, apply func(*domain.Savings)) (*domain.Savings, error) {
	var out *domain.Savings
	err := r.store.write(ctx, func(d *document) error {
		for i := range d.Savings {
			if d.Savings[i].SavingsID == savingsID {
				apply(&d.Savings[i])
				updated := d.Savings[i]
				out = &updated
				return nil
			}
		}
		return fmt.Errorf("savings %s: %w", savingsID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

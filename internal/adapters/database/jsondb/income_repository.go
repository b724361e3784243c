package jsondb

import (
	"context"
	"fmt"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// IncomeRepository stores income records in the shared document store.
type IncomeRepository struct {
	store *Store
}

func NewIncomeRepository(store *Store) *IncomeRepository {
	return &IncomeRepository{store: store}
}

func (r *IncomeRepository) Add(ctx context.Context, income domain.Income) error {
	return r.store.write(ctx, func(d *document) error {
		d.Income = append(d.Income, income)
		return nil
	})
}

func (r *IncomeRepository) Remove(ctx context.Context, incomeID string) (bool, error) {
	var removed bool
	err := r.store.write(ctx, func(d *document) error {
		d.Income, removed = removeFirst(d.Income, func(i domain.Income) bool { return i.IncomeID == incomeID })
		return nil
	})
	return removed, err
}

func (r *IncomeRepository) FindByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	var out *domain.Income
	err := r.store.read(func(d *document) error {
		if found, ok := findCopy(d.Income, func(i domain.Income) bool { return i.IncomeID == incomeID }); ok {
			out = &found
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("income %s: %w", incomeID, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *IncomeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Income, error) {
	var out []domain.Income
	err := r.store.read(func(d *document) error {
		out = filterCopy(d.Income, func(i domain.Income) bool { return i.UserID == userID })
		return nil
	})
	return out, err
}

func (r *IncomeRepository) Update(ctx context.Context, incomeID string, apply func(*domain.Income)) (*domain.Income, error) {
	var out *domain.Income
	err := r.store.write(ctx, func(d *document) error {
		for i := range d.Income {
			if d.Income[i].IncomeID == incomeID {
				apply(&d.Income[i])
				updated := d.Income[i]
				out = &updated
				return nil
			}
		}
		return fmt.Errorf("income %s: %w", incomeID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

package jsondb

import (
	"context"
	"fmt"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// ExpenseRepository stores expense records in the shared document store.
type ExpenseRepository struct {
	store *Store
}

func NewExpenseRepository(store *Store) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

func (r *ExpenseRepository) Add(ctx context.Context, expense domain.Expense) error {
	return r.store.write(ctx, func(d *document) error {
		d.Expenses = append(d.Expenses, expense)
		return nil
	})
}

func (r *ExpenseRepository) Remove(ctx context.Context, expenseID string) (bool, error) {
	var removed bool
	err := r.store.write(ctx, func(d *document) error {
		d.Expenses, removed = removeFirst(d.Expenses, func(e domain.Expense) bool { return e.ExpenseID == expenseID })
		return nil
	})
	return removed, err
}

func (r *ExpenseRepository) FindByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	var out *domain.Expense
	err := r.store.read(func(d *document) error {
		if found, ok := findCopy(d.Expenses, func(e domain.Expense) bool { return e.ExpenseID == expenseID }); ok {
			out = &found
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	var out []domain.Expense
	err := r.store.read(func(d *document) error {
		out = filterCopy(d.Expenses, func(e domain.Expense) bool { return e.UserID == userID })
		return nil
	})
	return out, err
}

func (r *ExpenseRepository) Update(ctx context.Context, expenseID string, apply func(*domain.Expense)) (*domain.Expense, error) {
	var out *domain.Expense
	err := r.store.write(ctx, func(d *document) error {
		for i := range d.Expenses {
			if d.Expenses[i].ExpenseID == expenseID {
				apply(&d.Expenses[i])
				updated := d.Expenses[i]
				out = &updated
				return nil
			}
		}
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

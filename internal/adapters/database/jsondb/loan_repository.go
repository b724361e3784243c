package jsondb

import (
	"context"
	"fmt"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// LoanRepository stores loan records in the shared document store.
type LoanRepository struct {
	store *Store
}

func NewLoanRepository(store *Store) *LoanRepository {
	return &LoanRepository{store: store}
}

func (r *LoanRepository) Add(ctx context.Context, loan domain.Loan) error {
	return r.store.write(ctx, func(d *document) error {
		d.Loans = append(d.Loans, loan)
		return nil
	})
}

func (r *LoanRepository) Remove(ctx context.Context, loanID string) (bool, error) {
	var removed bool
	err := r.store.write(ctx, func(d *document) error {
		d.Loans, removed = removeFirst(d.Loans, func(l domain.Loan) bool { return l.LoanID == loanID })
		return nil
	})
	return removed, err
}

func (r *LoanRepository) FindByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	var out *domain.Loan
	err := r.store.read(func(d *document) error {
		if found, ok := findCopy(d.Loans, func(l domain.Loan) bool { return l.LoanID == loanID }); ok {
			out = &found
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	}
	return out, nil
}

func (r *LoanRepository) ListByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	var out []domain.Loan
	err := r.store.read(func(d *document) error {
		out = filterCopy(d.Loans, func(l domain.Loan) bool { return l.UserID == userID })
		return nil
	})
	return out, err
}

func (r *LoanRepository) Update(ctx context.Context, loanID string, apply func(*domain.Loan)) (*domain.Loan, error) {
	var out *domain.Loan
	err := r.store.write(ctx, func(d *document) error {
		for i := range d.Loans {
			if d.Loans[i].LoanID == loanID {
				apply(&d.Loans[i])
				updated := d.Loans[i]
				out = &updated
				return nil
			}
		}
		return fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

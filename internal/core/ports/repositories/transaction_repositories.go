package repositories

import (
	"context"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

// IncomeRepository persists income records. FindByID fails with
// apperrors.ErrNotFound when the id is unknown; the same convention applies
// to the other transaction repositories.
type IncomeRepository interface {
	Add(ctx context.Context, income domain.Income) error
	Remove(ctx context.Context, incomeID string) (bool, error)
	FindByID(ctx context.Context, incomeID string) (*domain.Income, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Income, error)
	Update(ctx context.Context, incomeID string, apply func(*domain.Income)) (*domain.Income, error)
}

// ExpenseRepository persists expense records.
type ExpenseRepository interface {
	Add(ctx context.Context, expense domain.Expense) error
	Remove(ctx context.Context, expenseID string) (bool, error)
	FindByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Expense, error)
	Update(ctx context.Context, expenseID string, apply func(*domain.Expense)) (*domain.Expense, error)
}

// SavingsRepository persists savings records.
type SavingsRepository interface {
	Add(ctx context.Context, savings domain.Savings) error
	Remove(ctx context.Context, savingsID string) (bool, error)
	FindByID(ctx context.Context, savingsID string) (*domain.Savings, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Savings, error)
	Update(ctx context.Context, savingsID string, apply func(*domain.Savings)) (*domain.Savings, error)
}

// LoanRepository persists loan records.
type LoanRepository interface {
	Add(ctx context.Context, loan domain.Loan) error
	Remove(ctx context.Context, loanID string) (bool, error)
	FindByID(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Loan, error)
	Update(ctx context.Context, loanID string, apply func(*domain.Loan)) (*domain.Loan, error)
}

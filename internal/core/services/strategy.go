package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
	"github.com/mdrafsun/Advance-tracker/internal/utils"
)

// transactionStrategy is the kind-specific validation and persistence logic
// behind the facade. One implementation exists per transaction kind.
type transactionStrategy interface {
	add(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error)
	getDetails(ctx context.Context, id string) (domain.Transaction, error)
	update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (domain.Transaction, error)
	delete(ctx context.Context, id string) error
}

var validate = validator.New()

// validateRecordRequest enforces the shared creation invariants: a userId and
// a finite amount strictly greater than zero.
func validateRecordRequest(req dto.RecordTransactionRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}
	return nil
}

func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", apperrors.ErrValidation)
	}
	return nil
}

// --- income ---

type incomeStrategy struct {
	repo portsrepo.IncomeRepository
}

func (s *incomeStrategy) add(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	if err := validateRecordRequest(req); err != nil {
		return nil, err
	}
	day, err := utils.ToCalendarDay(req.Date)
	if err != nil {
		return nil, err
	}
	incomeType := req.Type
	if incomeType == "" {
		incomeType = domain.IncomeTypeRegular
	}
	income := domain.Income{
		IncomeID:    utils.NewID(utils.PrefixIncome),
		UserID:      req.UserID,
		Amount:      req.Amount,
		Date:        day,
		Description: req.Description,
		Category:    req.Category,
		Type:        incomeType,
		UpdateDate:  mustToday(),
	}
	if err := s.repo.Add(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to persist income: %w", err)
	}
	return income, nil
}

func (s *incomeStrategy) getDetails(ctx context.Context, id string) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	income, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *income, nil
}

func (s *incomeStrategy) update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	income, err := s.repo.Update(ctx, id, func(i *domain.Income) {
		if req.Amount != nil {
			i.Amount = *req.Amount
		}
		if req.Date != nil {
			i.Date = *req.Date
		}
		if req.Description != nil {
			i.Description = *req.Description
		}
		if req.Category != nil {
			i.Category = *req.Category
		}
		if req.Type != nil {
			i.Type = *req.Type
		}
		i.UpdateDate = mustToday()
	})
	if err != nil {
		return nil, err
	}
	return *income, nil
}

func (s *incomeStrategy) delete(ctx context.Context, id string) error {
	return deleteByID(ctx, id, s.repo.Remove)
}

// --- expense ---

type expenseStrategy struct {
	repo portsrepo.ExpenseRepository
}

func (s *expenseStrategy) add(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	if err := validateRecordRequest(req); err != nil {
		return nil, err
	}
	day, err := utils.ToCalendarDay(req.Date)
	if err != nil {
		return nil, err
	}
	expenseKind := req.Kind
	if expenseKind == "" {
		expenseKind = domain.ExpenseKindPurchase
	}
	expense := domain.Expense{
		ExpenseID:   utils.NewID(utils.PrefixExpense),
		UserID:      req.UserID,
		Amount:      req.Amount,
		Date:        day,
		Description: req.Description,
		Category:    req.Category,
		ExpenseKind: expenseKind,
		UpdateDate:  mustToday(),
	}
	if err := s.repo.Add(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to persist expense: %w", err)
	}
	return expense, nil
}

func (s *expenseStrategy) getDetails(ctx context.Context, id string) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *expense, nil
}

func (s *expenseStrategy) update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	expense, err := s.repo.Update(ctx, id, func(e *domain.Expense) {
		if req.Amount != nil {
			e.Amount = *req.Amount
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Kind != nil {
			e.ExpenseKind = *req.Kind
		}
		e.UpdateDate = mustToday()
	})
	if err != nil {
		return nil, err
	}
	return *expense, nil
}

func (s *expenseStrategy) delete(ctx context.Context, id string) error {
	return deleteByID(ctx, id, s.repo.Remove)
}

// --- savings ---

type savingsStrategy struct {
	repo portsrepo.SavingsRepository
}

func (s *savingsStrategy) add(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	if err := validateRecordRequest(req); err != nil {
		return nil, err
	}
	day, err := utils.ToCalendarDay(req.Date)
	if err != nil {
		return nil, err
	}
	savings := domain.Savings{
		SavingsID:       utils.NewID(utils.PrefixSavings),
		UserID:          req.UserID,
		Amount:          req.Amount,
		Date:            day,
		Description:     req.Description,
		BankName:        req.BankName,
		SavingsCategory: req.SavingsCategory,
		UpdateDate:      mustToday(),
	}
	if err := s.repo.Add(ctx, savings); err != nil {
		return nil, fmt.Errorf("failed to persist savings: %w", err)
	}
	return savings, nil
}

func (s *savingsStrategy) getDetails(ctx context.Context, id string) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	savings, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *savings, nil
}

func (s *savingsStrategy) update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	savings, err := s.repo.Update(ctx, id, func(sv *domain.Savings) {
		if req.Amount != nil {
			sv.Amount = *req.Amount
		}
		if req.Date != nil {
			sv.Date = *req.Date
		}
		if req.Description != nil {
			sv.Description = *req.Description
		}
		if req.BankName != nil {
			sv.BankName = *req.BankName
		}
		if req.SavingsCategory != nil {
			sv.SavingsCategory = *req.SavingsCategory
		}
		sv.UpdateDate = mustToday()
	})
	if err != nil {
		return nil, err
	}
	return *savings, nil
}

func (s *savingsStrategy) delete(ctx context.Context, id string) error {
	return deleteByID(ctx, id, s.repo.Remove)
}

// --- loan ---

type loanStrategy struct {
	repo portsrepo.LoanRepository
}

func (s *loanStrategy) add(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	if err := validateRecordRequest(req); err != nil {
		return nil, err
	}
	day, err := utils.ToCalendarDay(req.Date)
	if err != nil {
		return nil, err
	}
	loan := domain.Loan{
		LoanID:       utils.NewID(utils.PrefixLoan),
		UserID:       req.UserID,
		Amount:       req.Amount,
		Date:         day,
		Description:  req.Description,
		BankName:     req.BankName,
		LoanCategory: req.LoanCategory,
		UpdateDate:   mustToday(),
	}
	if err := s.repo.Add(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to persist loan: %w", err)
	}
	return loan, nil
}

func (s *loanStrategy) getDetails(ctx context.Context, id string) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	loan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *loan, nil
}

func (s *loanStrategy) update(ctx context.Context, id string, req dto.UpdateTransactionRequest) (domain.Transaction, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	loan, err := s.repo.Update(ctx, id, func(l *domain.Loan) {
		if req.Amount != nil {
			l.Amount = *req.Amount
		}
		if req.Date != nil {
			l.Date = *req.Date
		}
		if req.Description != nil {
			l.Description = *req.Description
		}
		if req.BankName != nil {
			l.BankName = *req.BankName
		}
		if req.LoanCategory != nil {
			l.LoanCategory = *req.LoanCategory
		}
		l.UpdateDate = mustToday()
	})
	if err != nil {
		return nil, err
	}
	return *loan, nil
}

func (s *loanStrategy) delete(ctx context.Context, id string) error {
	return deleteByID(ctx, id, s.repo.Remove)
}

// --- shared helpers ---

func deleteByID(ctx context.Context, id string, remove func(context.Context, string) (bool, error)) error {
	if err := requireID(id); err != nil {
		return err
	}
	removed, err := remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func mustToday() string {
	day, _ := utils.ToCalendarDay("")
	return day
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
)

// financeService is the facade over the per-kind strategies and the
// notification fan-out. Dispatch is by kind through a fixed strategy table;
// there is no mutable "current strategy" state.
type financeService struct {
	BaseService
	repos      portsrepo.RepositoryProvider
	strategies map[domain.TransactionKind]transactionStrategy
	notifier   *Notifier
}

// NewFinanceService builds the facade. All four transaction repositories are
// required; a missing one fails with apperrors.ErrConfiguration.
func NewFinanceService(repos portsrepo.RepositoryProvider, notifier *Notifier) (portssvc.FinanceSvcFacade, error) {
	if repos.Income == nil || repos.Expense == nil || repos.Savings == nil || repos.Loan == nil {
		return nil, fmt.Errorf("%w: finance service requires income, expense, savings and loan repositories", apperrors.ErrConfiguration)
	}
	if notifier == nil {
		notifier = NewNotifier()
	}
	return &financeService{
		repos: repos,
		strategies: map[domain.TransactionKind]transactionStrategy{
			domain.KindIncome:  &incomeStrategy{repo: repos.Income},
			domain.KindExpense: &expenseStrategy{repo: repos.Expense},
			domain.KindSavings: &savingsStrategy{repo: repos.Savings},
			domain.KindLoan:    &loanStrategy{repo: repos.Loan},
		},
		notifier: notifier,
	}, nil
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) strategyFor(kind domain.TransactionKind) (transactionStrategy, error) {
	strategy, ok := s.strategies[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrConfiguration, kind)
	}
	return strategy, nil
}

// Record validates and persists a transaction of the given kind, then fans
// the added event out to the registered sinks. Validation errors propagate
// unchanged; sink failures never do.
func (s *financeService) Record(ctx context.Context, kind domain.TransactionKind, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	strategy, err := s.strategyFor(kind)
	if err != nil {
		return nil, err
	}
	created, err := strategy.add(ctx, req)
	if err != nil {
		return nil, err
	}

	results := s.notifier.NotifyAll(ctx, kind.AddedEvent(), created)
	for _, r := range results {
		if r.Err != nil {
			s.LogWarn(ctx, "Transaction recorded but a notification sink failed",
				slog.String("sink", r.Sink),
				slog.String("transaction_id", created.ID()))
		}
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("kind", string(kind)),
		slog.String("transaction_id", created.ID()),
		slog.String("user_id", created.Owner()))
	return created, nil
}

func (s *financeService) RecordIncome(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	return s.Record(ctx, domain.KindIncome, req)
}

func (s *financeService) RecordExpense(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	return s.Record(ctx, domain.KindExpense, req)
}

func (s *financeService) RecordSavings(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	return s.Record(ctx, domain.KindSavings, req)
}

func (s *financeService) RecordLoan(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error) {
	return s.Record(ctx, domain.KindLoan, req)
}

func (s *financeService) GetTransaction(ctx context.Context, kind domain.TransactionKind, id string) (domain.Transaction, error) {
	strategy, err := s.strategyFor(kind)
	if err != nil {
		return nil, err
	}
	return strategy.getDetails(ctx, id)
}

// UpdateTransaction applies a partial update. Unlike Record, the amount is
// not re-validated here; the update path accepts whatever it is given.
func (s *financeService) UpdateTransaction(ctx context.Context, kind domain.TransactionKind, id string, req dto.UpdateTransactionRequest) (domain.Transaction, error) {
	strategy, err := s.strategyFor(kind)
	if err != nil {
		return nil, err
	}
	return strategy.update(ctx, id, req)
}

func (s *financeService) DeleteTransaction(ctx context.Context, kind domain.TransactionKind, id string) error {
	strategy, err := s.strategyFor(kind)
	if err != nil {
		return err
	}
	return strategy.delete(ctx, id)
}

// GetUserSummary fetches all four record lists for the user in parallel and
// sums amounts per kind.
func (s *financeService) GetUserSummary(ctx context.Context, userID string) (*domain.UserSummary, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", apperrors.ErrValidation)
	}

	var (
		income   []domain.Income
		expenses []domain.Expense
		savings  []domain.Savings
		loans    []domain.Loan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { income, err = s.repos.Income.ListByUser(gctx, userID); return })
	g.Go(func() (err error) { expenses, err = s.repos.Expense.ListByUser(gctx, userID); return })
	g.Go(func() (err error) { savings, err = s.repos.Savings.ListByUser(gctx, userID); return })
	g.Go(func() (err error) { loans, err = s.repos.Loan.ListByUser(gctx, userID); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load records for summary: %w", err)
	}

	summary := &domain.UserSummary{
		UserID:       userID,
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		SavingsTotal: decimal.Zero,
		LoanTotal:    decimal.Zero,
		Counts: domain.SummaryCounts{
			Income:   len(income),
			Expenses: len(expenses),
			Savings:  len(savings),
			Loans:    len(loans),
		},
	}
	for _, r := range income {
		summary.IncomeTotal = summary.IncomeTotal.Add(r.Amount)
	}
	for _, r := range expenses {
		summary.ExpenseTotal = summary.ExpenseTotal.Add(r.Amount)
	}
	for _, r := range savings {
		summary.SavingsTotal = summary.SavingsTotal.Add(r.Amount)
	}
	for _, r := range loans {
		summary.LoanTotal = summary.LoanTotal.Add(r.Amount)
	}
	return summary, nil
}

func (s *financeService) RegisterSink(sink portssvc.NotificationSink) {
	s.notifier.Register(sink)
}

func (s *financeService) UnregisterSink(sink portssvc.NotificationSink) {
	s.notifier.Unregister(sink)
}

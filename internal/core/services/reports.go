package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	"github.com/mdrafsun/Advance-tracker/internal/utils"
)

// reportBuilder builds one transient report over a user's records.
type reportBuilder interface {
	build(ctx context.Context) (*domain.Report, error)
}

// baseReport carries the validated parameters shared by every builder.
type baseReport struct {
	userID string
	start  time.Time // local midnight, inclusive
	end    time.Time // local midnight, inclusive
	repos  portsrepo.RepositoryProvider
}

func newBaseReport(userID, start, end string, repos portsrepo.RepositoryProvider) (baseReport, error) {
	if userID == "" {
		return baseReport{}, fmt.Errorf("%w: report requires userId", apperrors.ErrValidation)
	}
	if repos.Income == nil || repos.Expense == nil || repos.Savings == nil || repos.Loan == nil {
		return baseReport{}, fmt.Errorf("%w: report requires all four repositories", apperrors.ErrValidation)
	}
	startDay, err := utils.ParseCalendarDay(start)
	if err != nil {
		return baseReport{}, fmt.Errorf("invalid start date: %w", err)
	}
	endDay, err := utils.ParseCalendarDay(end)
	if err != nil {
		return baseReport{}, fmt.Errorf("invalid end date: %w", err)
	}
	return baseReport{userID: userID, start: startDay, end: endDay, repos: repos}, nil
}

func (b baseReport) rangeStrings() domain.ReportRange {
	return domain.ReportRange{
		Start: b.start.Format(utils.CalendarDayLayout),
		End:   b.end.Format(utils.CalendarDayLayout),
	}
}

func (b baseReport) inRange(day string) bool {
	return utils.DayInRange(day, b.start, b.end)
}

func sumAmounts[T domain.Transaction](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Value())
	}
	return total
}

func groupSum[T domain.Transaction](records []T, key func(T) string) map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, r := range records {
		k := key(r)
		out[k] = out[k].Add(r.Value())
	}
	return out
}

func filterRange[T any](records []T, day func(T) string, b baseReport) []T {
	out := []T{}
	for _, r := range records {
		if b.inRange(day(r)) {
			out = append(out, r)
		}
	}
	return out
}

func categoryOr(category, fallback string) string {
	if category == "" {
		return fallback
	}
	return category
}

// --- cash flow ---

type cashFlowReport struct{ baseReport }

func (r cashFlowReport) build(ctx context.Context) (*domain.Report, error) {
	var (
		income   []domain.Income
		expenses []domain.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { income, err = r.repos.Income.ListByUser(gctx, r.userID); return })
	g.Go(func() (err error) { expenses, err = r.repos.Expense.ListByUser(gctx, r.userID); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load cash flow records: %w", err)
	}

	inRange := filterRange(income, func(i domain.Income) string { return i.Date }, r.baseReport)
	exRange := filterRange(expenses, func(e domain.Expense) string { return e.Date }, r.baseReport)

	incomeTotal := sumAmounts(inRange)
	expenseTotal := sumAmounts(exRange)

	return &domain.Report{
		Type:   domain.ReportTypeCashFlow,
		UserID: r.userID,
		Range:  r.rangeStrings(),
		Totals: map[string]decimal.Decimal{
			"income":  incomeTotal,
			"expense": expenseTotal,
			"net":     incomeTotal.Sub(expenseTotal),
		},
		Breakdown: map[string]map[string]decimal.Decimal{
			"incomeByCategory": groupSum(inRange, func(i domain.Income) string {
				return categoryOr(i.Category, "uncategorized")
			}),
			"expenseByCategory": groupSum(exRange, func(e domain.Expense) string {
				return categoryOr(e.Category, "uncategorized")
			}),
		},
		Lists: domain.ReportLists{Income: inRange, Expenses: exRange},
	}, nil
}

// --- bank ---

type bankReport struct{ baseReport }

func (r bankReport) build(ctx context.Context) (*domain.Report, error) {
	var (
		savings []domain.Savings
		loans   []domain.Loan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { savings, err = r.repos.Savings.ListByUser(gctx, r.userID); return })
	g.Go(func() (err error) { loans, err = r.repos.Loan.ListByUser(gctx, r.userID); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load bank records: %w", err)
	}

	saRange := filterRange(savings, func(s domain.Savings) string { return s.Date }, r.baseReport)
	loRange := filterRange(loans, func(l domain.Loan) string { return l.Date }, r.baseReport)

	return &domain.Report{
		Type:   domain.ReportTypeBank,
		UserID: r.userID,
		Range:  r.rangeStrings(),
		Totals: map[string]decimal.Decimal{
			"savings": sumAmounts(saRange),
			"loans":   sumAmounts(loRange),
		},
		ByBank: map[string]map[string]decimal.Decimal{
			"savings": groupSum(saRange, func(s domain.Savings) string {
				return categoryOr(s.BankName, "unknown")
			}),
			"loans": groupSum(loRange, func(l domain.Loan) string {
				return categoryOr(l.BankName, "unknown")
			}),
		},
		Lists: domain.ReportLists{Savings: saRange, Loans: loRange},
	}, nil
}

// --- overall ---

type overallReport struct{ baseReport }

func (r overallReport) build(ctx context.Context) (*domain.Report, error) {
	var (
		income   []domain.Income
		expenses []domain.Expense
		savings  []domain.Savings
		loans    []domain.Loan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { income, err = r.repos.Income.ListByUser(gctx, r.userID); return })
	g.Go(func() (err error) { expenses, err = r.repos.Expense.ListByUser(gctx, r.userID); return })
	g.Go(func() (err error) { savings, err = r.repos.Savings.ListByUser(gctx, r.userID); return })
	g.Go(func() (err error) { loans, err = r.repos.Loan.ListByUser(gctx, r.userID); return })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load records for overall report: %w", err)
	}

	inRange := filterRange(income, func(i domain.Income) string { return i.Date }, r.baseReport)
	exRange := filterRange(expenses, func(e domain.Expense) string { return e.Date }, r.baseReport)
	saRange := filterRange(savings, func(s domain.Savings) string { return s.Date }, r.baseReport)
	loRange := filterRange(loans, func(l domain.Loan) string { return l.Date }, r.baseReport)

	return &domain.Report{
		Type:   domain.ReportTypeOverall,
		UserID: r.userID,
		Range:  r.rangeStrings(),
		Totals: map[string]decimal.Decimal{
			"income":  sumAmounts(inRange),
			"expense": sumAmounts(exRange),
			"savings": sumAmounts(saRange),
			"loan":    sumAmounts(loRange),
		},
		Counts: map[string]int{
			"income":   len(inRange),
			"expenses": len(exRange),
			"savings":  len(saRange),
			"loans":    len(loRange),
		},
		Lists: domain.ReportLists{
			Income:   inRange,
			Expenses: exRange,
			Savings:  saRange,
			Loans:    loRange,
		},
	}, nil
}

package domain

import "github.com/shopspring/decimal"

// Report type strings as returned in the Type field.
const (
	ReportTypeCashFlow = "cashflow"
	ReportTypeBank     = "bank"
	ReportTypeOverall  = "overall"
)

// ReportRange is the inclusive calendar-day range a report covers.
type ReportRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReportLists carries the filtered record lists underlying a report. Only the
// slices relevant to the report type are populated.
type ReportLists struct {
	Income   []Income  `json:"income,omitempty"`
	Expenses []Expense `json:"expenses,omitempty"`
	Savings  []Savings `json:"savings,omitempty"`
	Loans    []Loan    `json:"loans,omitempty"`
}

// Report is a transient aggregate built on demand; it is never persisted.
// Totals keys depend on the type: cashflow has income/expense/net, bank has
// savings/loans, overall has all four kinds.
type Report struct {
	Type      string                                `json:"type"`
	UserID    string                                `json:"userId"`
	Range     ReportRange                           `json:"range"`
	Totals    map[string]decimal.Decimal            `json:"totals"`
	Breakdown map[string]map[string]decimal.Decimal `json:"breakdown,omitempty"`
	ByBank    map[string]map[string]decimal.Decimal `json:"byBank,omitempty"`
	Counts    map[string]int                        `json:"counts,omitempty"`
	Lists     ReportLists                           `json:"lists"`
}

// SummaryCounts holds per-kind record counts for a user summary.
type SummaryCounts struct {
	Income   int `json:"income"`
	Expenses int `json:"expenses"`
	Savings  int `json:"savings"`
	Loans    int `json:"loans"`
}

// UserSummary aggregates a user's totals across all four transaction kinds.
type UserSummary struct {
	UserID       string          `json:"userId"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	SavingsTotal decimal.Decimal `json:"savingsTotal"`
	LoanTotal    decimal.Decimal `json:"loanTotal"`
	Counts       SummaryCounts   `json:"counts"`
}

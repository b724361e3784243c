package domain

import "github.com/shopspring/decimal"

// TransactionKind identifies one of the four recordable transaction kinds.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
	KindSavings TransactionKind = "savings"
	KindLoan    TransactionKind = "loan"
)

// Income subtype tags.
const (
	IncomeTypeRegular   = "regular"
	IncomeTypeIrregular = "irregular"
)

// Expense subtype tags.
const (
	ExpenseKindBill     = "bill"
	ExpenseKindPurchase = "purchase"
)

// Transaction is the common view over the four persisted transaction records.
type Transaction interface {
	ID() string
	Owner() string
	Value() decimal.Decimal
	Kind() TransactionKind
}

// Income is a recorded income entry.
type Income struct {
	IncomeID    string          `json:"incomeId"`
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // local calendar day, YYYY-MM-DD
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        string          `json:"type"` // regular | irregular
	UpdateDate  string          `json:"updateDate"`
}

func (i Income) ID() string             { return i.IncomeID }
func (i Income) Owner() string          { return i.UserID }
func (i Income) Value() decimal.Decimal { return i.Amount }
func (i Income) Kind() TransactionKind  { return KindIncome }

// Expense is a recorded expense entry.
type Expense struct {
	ExpenseID   string          `json:"expenseId"`
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ExpenseKind string          `json:"kind"` // bill | purchase
	UpdateDate  string          `json:"updateDate"`
}

func (e Expense) ID() string             { return e.ExpenseID }
func (e Expense) Owner() string          { return e.UserID }
func (e Expense) Value() decimal.Decimal { return e.Amount }
func (e Expense) Kind() TransactionKind  { return KindExpense }

// Savings is a recorded savings entry against a bank.
type Savings struct {
	SavingsID       string          `json:"savingsId"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	BankName        string          `json:"bankName"`
	SavingsCategory string          `json:"savingsCategory"`
	UpdateDate      string          `json:"updateDate"`
}

func (s Savings) ID() string             { return s.SavingsID }
func (s Savings) Owner() string          { return s.UserID }
func (s Savings) Value() decimal.Decimal { return s.Amount }
func (s Savings) Kind() TransactionKind  { return KindSavings }

// Loan is a recorded loan entry against a bank.
type Loan struct {
	LoanID       string          `json:"loanId"`
	UserID       string          `json:"userId"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	BankName     string          `json:"bankName"`
	LoanCategory string          `json:"loanCategory"`
	UpdateDate   string          `json:"updateDate"`
}

func (l Loan) ID() string             { return l.LoanID }
func (l Loan) Owner() string          { return l.UserID }
func (l Loan) Value() decimal.Decimal { return l.Amount }
func (l Loan) Kind() TransactionKind  { return KindLoan }

// AddedEvent returns the notification event tag emitted after a record of
// this kind is persisted, e.g. "income:added".
func (k TransactionKind) AddedEvent() string { return string(k) + ":added" }

package dto

import (
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest is the shared payload for recording any of the
// four transaction kinds. The kind-specific fields are optional and only read
// by the matching strategy.
type RecordTransactionRequest struct {
	UserID      string          `json:"userId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`

	// Income only.
	Type string `json:"type" validate:"omitempty,oneof=regular irregular"`
	// Expense only.
	Kind string `json:"kind" validate:"omitempty,oneof=bill purchase"`
	// Savings and loan only.
	BankName        string `json:"bankName"`
	SavingsCategory string `json:"savingsCategory"`
	LoanCategory    string `json:"loanCategory"`
}

// UpdateTransactionRequest is a partial update; nil fields are left
// untouched. Amount is deliberately not re-validated on update.
type UpdateTransactionRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	Date            *string          `json:"date"`
	Description     *string          `json:"description"`
	Category        *string          `json:"category"`
	Type            *string          `json:"type"`
	Kind            *string          `json:"kind"`
	BankName        *string          `json:"bankName"`
	SavingsCategory *string          `json:"savingsCategory"`
	LoanCategory    *string          `json:"loanCategory"`
}

// TransactionResponse is the wire shape for any transaction record.
type TransactionResponse struct {
	ID              string          `json:"id"`
	TransactionKind string          `json:"transactionKind"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	Type            string          `json:"type,omitempty"`
	Kind            string          `json:"kind,omitempty"`
	BankName        string          `json:"bankName,omitempty"`
	SavingsCategory string          `json:"savingsCategory,omitempty"`
	LoanCategory    string          `json:"loanCategory,omitempty"`
	UpdateDate      string          `json:"updateDate"`
}

// ToTransactionResponse converts any domain transaction to its wire shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              txn.ID(),
		TransactionKind: string(txn.Kind()),
		UserID:          txn.Owner(),
		Amount:          txn.Value(),
	}
	switch t := txn.(type) {
	case domain.Income:
		resp.Date = t.Date
		resp.Description = t.Description
		resp.Category = t.Category
		resp.Type = t.Type
		resp.UpdateDate = t.UpdateDate
	case domain.Expense:
		resp.Date = t.Date
		resp.Description = t.Description
		resp.Category = t.Category
		resp.Kind = t.ExpenseKind
		resp.UpdateDate = t.UpdateDate
	case domain.Savings:
		resp.Date = t.Date
		resp.Description = t.Description
		resp.BankName = t.BankName
		resp.SavingsCategory = t.SavingsCategory
		resp.UpdateDate = t.UpdateDate
	case domain.Loan:
		resp.Date = t.Date
		resp.Description = t.Description
		resp.BankName = t.BankName
		resp.LoanCategory = t.LoanCategory
		resp.UpdateDate = t.UpdateDate
	}
	return resp
}

package services

import (
	"context"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
)

// NotificationSink receives an event after a transaction has been persisted.
// A sink failure must never block the triggering transaction.
type NotificationSink interface {
	Name() string
	Notify(ctx context.Context, event string, txn domain.Transaction) error
}

// SinkResult captures one sink's outcome from a fan-out; Err is nil on
// success. Failures are reported here instead of being silently discarded.
type SinkResult struct {
	Sink string
	Err  error
}

// FinanceSvcFacade is the single entry point for recording transactions and
// deriving per-user summaries.
type FinanceSvcFacade interface {
	Record(ctx context.Context, kind domain.TransactionKind, req dto.RecordTransactionRequest) (domain.Transaction, error)
	RecordIncome(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error)
	RecordExpense(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error)
	RecordSavings(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error)
	RecordLoan(ctx context.Context, req dto.RecordTransactionRequest) (domain.Transaction, error)

	GetTransaction(ctx context.Context, kind domain.TransactionKind, id string) (domain.Transaction, error)
	UpdateTransaction(ctx context.Context, kind domain.TransactionKind, id string, req dto.UpdateTransactionRequest) (domain.Transaction, error)
	DeleteTransaction(ctx context.Context, kind domain.TransactionKind, id string) error

	GetUserSummary(ctx context.Context, userID string) (*domain.UserSummary, error)

	RegisterSink(sink NotificationSink)
	UnregisterSink(sink NotificationSink)
}

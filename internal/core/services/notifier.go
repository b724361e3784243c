package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/utils"
)

// Notifier fans an event out to every registered sink after a transaction is
// recorded. A sink failure is captured into the returned results and logged;
// it never reaches the caller, so a broken sink cannot block the others or
// the triggering transaction.
type Notifier struct {
	BaseService
	mu    sync.Mutex
	sinks []portssvc.NotificationSink
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Register appends a sink to the fan-out order.
func (n *Notifier) Register(sink portssvc.NotificationSink) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sinks = append(n.sinks, sink)
}

// Unregister removes a previously registered sink by identity.
func (n *Notifier) Unregister(sink portssvc.NotificationSink) {
	n.mu.Lock()
	defer n.mu.Unlock()
	kept := n.sinks[:0:0]
	for _, s := range n.sinks {
		if s != sink {
			kept = append(kept, s)
		}
	}
	n.sinks = kept
}

// NotifyAll invokes every sink in registration order and returns one result
// per sink.
func (n *Notifier) NotifyAll(ctx context.Context, event string, txn domain.Transaction) []portssvc.SinkResult {
	n.mu.Lock()
	sinks := append([]portssvc.NotificationSink{}, n.sinks...)
	n.mu.Unlock()

	results := make([]portssvc.SinkResult, 0, len(sinks))
	for _, sink := range sinks {
		err := sink.Notify(ctx, event, txn)
		if err != nil {
			n.LogError(ctx, err, "Notification sink failed",
				slog.String("sink", sink.Name()),
				slog.String("event", event))
		}
		results = append(results, portssvc.SinkResult{Sink: sink.Name(), Err: err})
	}
	return results
}

// formatEventMessage renders the human-readable notification text for an event.
func formatEventMessage(event string, txn domain.Transaction) string {
	amount := txn.Value().String()
	switch event {
	case domain.KindIncome.AddedEvent():
		return "Income recorded: " + amount
	case domain.KindExpense.AddedEvent():
		return "Expense recorded: " + amount
	case domain.KindSavings.AddedEvent():
		return "Savings recorded: " + amount
	case domain.KindLoan.AddedEvent():
		return "Loan recorded: " + amount
	default:
		return "Event: " + event
	}
}

// GlobalUserSink persists a notification for whichever user owns the payload.
type GlobalUserSink struct {
	repo portsrepo.NotificationRepository
}

func NewGlobalUserSink(repo portsrepo.NotificationRepository) *GlobalUserSink {
	return &GlobalUserSink{repo: repo}
}

func (s *GlobalUserSink) Name() string { return "global" }

func (s *GlobalUserSink) Notify(ctx context.Context, event string, txn domain.Transaction) error {
	if txn == nil || txn.Owner() == "" {
		return nil
	}
	return s.repo.Add(ctx, domain.Notification{
		NotificationID: utils.NewID(utils.PrefixNotification),
		UserID:         txn.Owner(),
		Event:          event,
		Message:        formatEventMessage(event, txn),
		At:             utils.NowLocalTimestamp(),
		RefID:          txn.ID(),
	})
}

// UserSink persists notifications only for its configured user; payloads for
// other users are ignored.
type UserSink struct {
	userID string
	repo   portsrepo.NotificationRepository
}

func NewUserSink(userID string, repo portsrepo.NotificationRepository) (*UserSink, error) {
	if userID == "" {
		return nil, fmt.Errorf("user sink requires a userId")
	}
	return &UserSink{userID: userID, repo: repo}, nil
}

func (s *UserSink) Name() string { return "user:" + s.userID }

func (s *UserSink) Notify(ctx context.Context, event string, txn domain.Transaction) error {
	if txn == nil || txn.Owner() != s.userID {
		return nil
	}
	return s.repo.Add(ctx, domain.Notification{
		NotificationID: utils.NewID(utils.PrefixNotification),
		UserID:         s.userID,
		Event:          event,
		Message:        formatEventMessage(event, txn),
		At:             utils.NowLocalTimestamp(),
		RefID:          txn.ID(),
	})
}

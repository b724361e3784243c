package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdrafsun/Advance-tracker/internal/adapters/database/jsondb"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	"github.com/mdrafsun/Advance-tracker/internal/core/services"
)

func testIncome(userID string) domain.Income {
	return domain.Income{
		IncomeID: "inc_1",
		UserID:   userID,
		Amount:   decimal.NewFromInt(250),
		Date:     "2026-08-15",
	}
}

func TestNotifier_FailingSinkIsCapturedOthersStillRun(t *testing.T) {
	notifier := services.NewNotifier()
	broken := &recordingSink{name: "broken", err: errors.New("boom")}
	healthy := &recordingSink{name: "healthy"}
	notifier.Register(broken)
	notifier.Register(healthy)

	results := notifier.NotifyAll(context.Background(), "income:added", testIncome("usr_1"))

	require.Len(t, results, 2)
	assert.Equal(t, "broken", results[0].Sink)
	assert.Error(t, results[0].Err)
	assert.Equal(t, "healthy", results[1].Sink)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, []string{"income:added"}, healthy.events)
}

func TestNotifier_UnregisterByIdentity(t *testing.T) {
	notifier := services.NewNotifier()
	first := &recordingSink{name: "same-name"}
	second := &recordingSink{name: "same-name"}
	notifier.Register(first)
	notifier.Register(second)

	notifier.Unregister(first)
	results := notifier.NotifyAll(context.Background(), "income:added", testIncome("usr_1"))

	require.Len(t, results, 1)
	assert.Empty(t, first.events)
	assert.Equal(t, []string{"income:added"}, second.events)
}

func TestGlobalUserSink_PersistsForOwner(t *testing.T) {
	ctx := context.Background()
	store, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	repo := jsondb.NewNotificationRepository(store)
	sink := services.NewGlobalUserSink(repo)

	require.NoError(t, sink.Notify(ctx, "income:added", testIncome("usr_1")))

	notifications, err := repo.ListByUser(ctx, "usr_1")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "income:added", notifications[0].Event)
	assert.Equal(t, "Income recorded: 250", notifications[0].Message)
	assert.Equal(t, "inc_1", notifications[0].RefID)
	assert.Contains(t, notifications[0].NotificationID, "ntf_")
}

func TestUserSink_FiltersByOwner(t *testing.T) {
	ctx := context.Background()
	store, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	repo := jsondb.NewNotificationRepository(store)

	sink, err := services.NewUserSink("usr_1", repo)
	require.NoError(t, err)

	require.NoError(t, sink.Notify(ctx, "income:added", testIncome("usr_1")))
	require.NoError(t, sink.Notify(ctx, "income:added", testIncome("usr_2")))

	mine, err := repo.ListByUser(ctx, "usr_1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := repo.ListByUser(ctx, "usr_2")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestNewUserSink_RequiresUserID(t *testing.T) {
	_, err := services.NewUserSink("", nil)
	assert.Error(t, err)
}

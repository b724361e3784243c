package jsondb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/adapters/database/jsondb"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
)

func TestOpen_CreatesSeedFileWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "db.json")

	store, err := jsondb.Open(path)
	require.NoError(t, err)
	require.NotNil(t, store)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"users"`)
	assert.Contains(t, string(raw), `"notifications"`)
}

func TestOpen_CorruptFileIsMovedAsideAndReseeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := jsondb.Open(path)
	require.NoError(t, err)

	// The unreadable file must survive under a .corrupt.<ts> name.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var asideFound bool
	for _, e := range entries {
		if e.Name() != "db.json" {
			assert.Contains(t, e.Name(), "db.json.corrupt.")
			asideFound = true
		}
	}
	assert.True(t, asideFound, "expected the corrupt file to be moved aside")

	// The replacement store behaves like a fresh one.
	users, err := jsondb.NewUserRepository(store).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRepositories_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := jsondb.Open(path)
	require.NoError(t, err)

	income := domain.Income{
		IncomeID:    "inc_test1",
		UserID:      "usr_1",
		Amount:      decimal.NewFromInt(1500),
		Date:        "2026-08-01",
		Description: "salary",
		Category:    "job",
		Type:        domain.IncomeTypeRegular,
	}
	require.NoError(t, jsondb.NewIncomeRepository(store).Add(ctx, income))

	// Reopen from disk and read the record back.
	reopened, err := jsondb.Open(path)
	require.NoError(t, err)
	repo := jsondb.NewIncomeRepository(reopened)

	found, err := repo.FindByID(ctx, "inc_test1")
	require.NoError(t, err)
	assert.Equal(t, "usr_1", found.UserID)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(1500)))

	listed, err := repo.ListByUser(ctx, "usr_1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestIncomeRepository_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	store, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	repo := jsondb.NewIncomeRepository(store)

	require.NoError(t, repo.Add(ctx, domain.Income{IncomeID: "inc_a", UserID: "usr_1", Amount: decimal.NewFromInt(10)}))

	updated, err := repo.Update(ctx, "inc_a", func(i *domain.Income) {
		i.Description = "updated"
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Description)

	_, err = repo.Update(ctx, "inc_missing", func(i *domain.Income) {})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	removed, err := repo.Remove(ctx, "inc_a")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, "inc_a")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.FindByID(ctx, "inc_a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNotificationRepository_RemoveByUser(t *testing.T) {
	ctx := context.Background()
	store, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)
	repo := jsondb.NewNotificationRepository(store)

	require.NoError(t, repo.Add(ctx, domain.Notification{NotificationID: "ntf_1", UserID: "usr_1"}))
	require.NoError(t, repo.Add(ctx, domain.Notification{NotificationID: "ntf_2", UserID: "usr_1"}))
	require.NoError(t, repo.Add(ctx, domain.Notification{NotificationID: "ntf_3", UserID: "usr_2"}))

	removed, err := repo.RemoveByUser(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := repo.ListByUser(ctx, "usr_2")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestStore_ClearAll(t *testing.T) {
	ctx := context.Background()
	store, err := jsondb.Open(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, err)

	userRepo := jsondb.NewUserRepository(store)
	require.NoError(t, userRepo.Save(ctx, domain.User{UserID: "usr_1", Name: "A"}))

	require.NoError(t, store.ClearAll(ctx))

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

package accountrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-coinx/coinx/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testAccount(username string) domain.Account {
	now := time.Now().Truncate(time.Second).UTC()

	return domain.Account{
		Username:       username,
		HashedPassword: "not-a-real-hash",
		Balances:       domain.Balances{USD: decimal.NewFromInt(5000)},
		Transactions: []domain.Transaction{
			{
				Kind:       domain.TransactionDeposit,
				Coin:       "USD",
				CoinAmount: decimal.NewFromInt(5000),
				USDAmount:  decimal.NewFromInt(5000),
				CreatedAt:  now,
			},
		},
		CreatedAt: now,
	}
}

func seedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	t.Parallel()

	repo := NewRepoFile(filepath.Join(t.TempDir(), "does-not-exist.json"))

	err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestLoadCorruptFileIsFatal(t *testing.T) {
	t.Parallel()

	repo := NewRepoFile(seedFile(t, `{"alice": truncated`))

	err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestLoadEmptyTable(t *testing.T) {
	t.Parallel()

	repo := NewRepoFile(seedFile(t, "{}\n"))

	require.NoError(t, repo.Load(context.Background()))
	require.Empty(t, repo.List(context.Background()))
}

func TestInitIfMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "accounts.json")
	repo := NewRepoFile(path)

	require.NoError(t, repo.InitIfMissing(ctx))
	require.NoError(t, repo.Load(ctx))

	// A second call must not touch the existing file.
	require.NoError(t, repo.InitIfMissing(ctx))
}

func TestCreateFlushLoadRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := seedFile(t, "{}\n")

	repo := NewRepoFile(path)
	require.NoError(t, repo.Load(ctx))

	want := testAccount("alice")

	_, err := repo.Create(ctx, want)
	require.NoError(t, err)
	require.NoError(t, repo.Flush(ctx))

	reloaded := NewRepoFile(path)
	require.NoError(t, reloaded.Load(ctx))

	got, err := reloaded.Get(ctx, "alice")
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("account mismatch after reload (-want +got):\n%s", diff)
	}
}

func TestCreateDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRepoFile(seedFile(t, "{}\n"))
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Create(ctx, testAccount("bob"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testAccount("bob"))
	require.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestExistsIsCaseSensitive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRepoFile(seedFile(t, "{}\n"))
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Create(ctx, testAccount("Carol"))
	require.NoError(t, err)

	require.True(t, repo.Exists(ctx, "Carol"))
	require.False(t, repo.Exists(ctx, "carol"))
}

func TestGetReturnsDeepCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRepoFile(seedFile(t, "{}\n"))
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Create(ctx, testAccount("dave"))
	require.NoError(t, err)

	got, err := repo.Get(ctx, "dave")
	require.NoError(t, err)

	// Mutating the copy must not leak into the stored table.
	got.Balances.USD = decimal.Zero
	got.Transactions[0].USDAmount = decimal.Zero

	stored, err := repo.Get(ctx, "dave")
	require.NoError(t, err)
	require.True(t, stored.Balances.USD.Equal(decimal.NewFromInt(5000)))
	require.True(t, stored.Transactions[0].USDAmount.Equal(decimal.NewFromInt(5000)))
}

func TestUpdateUnknownAccount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRepoFile(seedFile(t, "{}\n"))
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Update(ctx, testAccount("ghost"))
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestFlushSkipsWhenClean(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := seedFile(t, "{}\n")

	repo := NewRepoFile(path)
	require.NoError(t, repo.Load(ctx))

	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, repo.Flush(ctx))

	after, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime())
}

func TestFlushLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	repo := NewRepoFile(path)
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Create(ctx, testAccount("erin"))
	require.NoError(t, err)
	require.NoError(t, repo.Flush(ctx))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "accounts.json", entries[0].Name())
}

func TestFlushFailureSurfaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	repo := NewRepoFile(path)
	require.NoError(t, repo.Load(ctx))

	_, err := repo.Create(ctx, testAccount("frank"))
	require.NoError(t, err)

	// Removing the directory makes the temp-file creation fail.
	require.NoError(t, os.RemoveAll(dir))

	err = repo.Flush(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrStorageUnavailable))
}

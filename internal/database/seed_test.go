package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
)

func newSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(path, migrations))

	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, SeedDefaults(context.Background(), db))
	return db
}

func TestSeedDefaults(t *testing.T) {
	t.Parallel()
	db := newSeededDB(t)
	ctx := context.Background()

	customer, err := repository.NewCustomerRepo(db).Get(ctx, 2100)
	require.NoError(t, err)
	require.Equal(t, "Matthew Bolger", customer.Name)

	balances := map[int]string{
		4100: "100.00",
		4101: "500.00",
		4200: "500.95",
		4201: "1250.50",
		4300: "1250.50",
	}
	accounts := repository.NewAccountRepo(db)
	for number, want := range balances {
		account, err := accounts.Get(ctx, number)
		require.NoError(t, err)
		require.True(t, account.Balance.Equal(decimal.RequireFromString(want)),
			"account %d: want %s, got %s", number, want, account.Balance)
	}

	payees, err := repository.NewPayeeRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, payees, 4)
}

func TestSeedLedgerExplainsBalances(t *testing.T) {
	t.Parallel()
	db := newSeededDB(t)
	ctx := context.Background()

	// 4200 was opened with two deposits that sum to its balance
	rows, err := repository.NewTransactionRepo(db).ForAccount(ctx, 4200)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	total := decimal.Zero
	for _, row := range rows {
		require.Equal(t, bank.TypeDeposit, row.Type)
		total = total.Add(row.Amount)
	}
	require.True(t, total.Equal(decimal.RequireFromString("500.95")))
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	db := newSeededDB(t)
	ctx := context.Background()

	require.NoError(t, SeedDefaults(ctx, db))

	accounts, err := repository.NewAccountRepo(db).ForCustomer(ctx, 2200)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	payees, err := repository.NewPayeeRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, payees, 4, "reseeding an initialized database is a no-op")
}

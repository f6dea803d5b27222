package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// fixedClock keeps fee tiering and due-bill selection deterministic.
var fixedClock = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func clockAt(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedAccount(t *testing.T, db *sql.DB, customerID, number int, kind bank.AccountType, balance string) {
	t.Helper()
	ctx := context.Background()
	customers := repository.NewCustomerRepo(db)
	if _, err := customers.Get(ctx, customerID); err != nil {
		require.ErrorIs(t, err, bank.ErrCustomerNotFound)
		require.NoError(t, customers.Insert(ctx, bank.Customer{ID: customerID, Name: "Test Customer"}))
	}
	accounts := repository.NewAccountRepo(db)
	require.NoError(t, accounts.Insert(ctx, bank.Account{
		Number:     number,
		Type:       kind,
		CustomerID: customerID,
		Balance:    dec(balance),
	}))
}

func seedPayee(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	id, err := repository.NewPayeeRepo(db).Insert(context.Background(), bank.Payee{
		Name: name, Address: "1 Collins St", City: "Melbourne", State: "VIC", Postcode: "3000", Phone: "(03) 9000 0000",
	})
	require.NoError(t, err)
	return id
}

func newExecutor(t *testing.T, db *sql.DB) *TransactionService {
	t.Helper()
	return NewTransactionService(db,
		repository.NewAccountRepo(db),
		repository.NewTransactionRepo(db),
		bank.DefaultFeePolicy(),
		clockAt(fixedClock),
	)
}

func newBillService(t *testing.T, db *sql.DB, clock func() time.Time) *BillPayService {
	t.Helper()
	return NewBillPayService(db,
		repository.NewBillPayRepo(db),
		repository.NewPayeeRepo(db),
		repository.NewAccountRepo(db),
		newExecutor(t, db),
		clock,
		nil,
	)
}

func accountBalance(t *testing.T, db *sql.DB, number int) decimal.Decimal {
	t.Helper()
	acct, err := repository.NewAccountRepo(db).Get(context.Background(), number)
	require.NoError(t, err)
	return acct.Balance
}

func ledgerRows(t *testing.T, db *sql.DB, number int) []bank.Transaction {
	t.Helper()
	rows, err := repository.NewTransactionRepo(db).ForAccount(context.Background(), number)
	require.NoError(t, err)
	return rows
}

// recordWithdrawals burns free-tier slots by executing real withdrawals,
// since only committed ledger rows consume the tier.
func recordWithdrawals(t *testing.T, db *sql.DB, number, n int) {
	t.Helper()
	exec := newExecutor(t, db)
	for i := 0; i < n; i++ {
		op, err := bank.NewOperation(bank.TypeWithdraw, number, dec("1.00"), "prior usage")
		require.NoError(t, err)
		require.NoError(t, exec.Execute(context.Background(), op))
	}
}

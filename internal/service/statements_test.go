package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
)

func newStatements(db *sql.DB, pageSize int) *StatementsService {
	return NewStatementsService(repository.NewAccountRepo(db), repository.NewTransactionRepo(db), pageSize)
}

// appendDeposits writes n deposit rows a minute apart so the newest-first
// ordering is unambiguous. Comments run "deposit 1" (oldest) to "deposit n".
func appendDeposits(t *testing.T, db *sql.DB, account, n int) {
	t.Helper()
	repo := repository.NewTransactionRepo(db)
	for i := 1; i <= n; i++ {
		comment := fmt.Sprintf("deposit %d", i)
		err := repo.Insert(context.Background(), bank.Transaction{
			ID:            uuid.NewString(),
			Type:          bank.TypeDeposit,
			AccountNumber: account,
			Amount:        dec("1.00"),
			Comment:       &comment,
			TimeUTC:       fixedClock.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestStatementPaging(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	seedAccount(t, db, 2100, 4100, bank.Savings, "100.00")
	appendDeposits(t, db, 4100, 9)
	svc := newStatements(db, 4)

	first, err := svc.Page(ctx, 2100, 4100, 1)
	require.NoError(t, err)
	require.Equal(t, 1, first.Page)
	require.Equal(t, 3, first.TotalPages)
	require.Len(t, first.Transactions, 4)
	require.Equal(t, "deposit 9", *first.Transactions[0].Comment)
	require.Equal(t, "deposit 6", *first.Transactions[3].Comment)

	last, err := svc.Page(ctx, 2100, 4100, 3)
	require.NoError(t, err)
	require.Len(t, last.Transactions, 1, "final page carries the remainder")
	require.Equal(t, "deposit 1", *last.Transactions[0].Comment)

	beyond, err := svc.Page(ctx, 2100, 4100, 4)
	require.NoError(t, err)
	require.Empty(t, beyond.Transactions)
	require.Equal(t, 3, beyond.TotalPages)
}

func TestStatementEmptyAccount(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	seedAccount(t, db, 2100, 4100, bank.Savings, "0")
	svc := newStatements(db, 4)

	st, err := svc.Page(context.Background(), 2100, 4100, 1)
	require.NoError(t, err)
	require.Empty(t, st.Transactions)
	require.Equal(t, 1, st.TotalPages, "an empty history still has one page")
	require.Equal(t, 4100, st.Account.Number)
}

func TestStatementPageFloor(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	seedAccount(t, db, 2100, 4100, bank.Savings, "0")
	appendDeposits(t, db, 4100, 2)
	svc := newStatements(db, 4)

	st, err := svc.Page(context.Background(), 2100, 4100, 0)
	require.NoError(t, err)
	require.Equal(t, 1, st.Page, "page requests below one clamp to the first page")
	require.Len(t, st.Transactions, 2)
}

func TestStatementOwnership(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	ctx := context.Background()
	seedAccount(t, db, 2100, 4100, bank.Savings, "100.00")
	seedAccount(t, db, 2200, 4200, bank.Checking, "100.00")
	svc := newStatements(db, 4)

	_, err := svc.Page(ctx, 2200, 4100, 1)
	require.ErrorIs(t, err, bank.ErrAccountNotFound,
		"another customer's account looks like it does not exist")

	_, err = svc.Page(ctx, 2100, 9999, 1)
	require.ErrorIs(t, err, bank.ErrAccountNotFound)
}

package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBillStateMachine(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	bill := NewBillPay(4100, 1, dec("30"), due, Monthly)
	require.Equal(t, BillPending, bill.Status)
	require.NotEmpty(t, bill.ID)

	require.NoError(t, bill.Block())
	require.Equal(t, BillBlocked, bill.Status)

	require.ErrorIs(t, bill.Block(), ErrBillNotPending)
	require.Equal(t, BillBlocked, bill.Status, "rejected transition must not change status")

	require.NoError(t, bill.Unblock())
	require.Equal(t, BillPending, bill.Status)

	require.ErrorIs(t, bill.Unblock(), ErrBillNotBlocked)
	require.ErrorIs(t, bill.Retry(), ErrBillNotFailed)

	bill.Status = BillFailed
	require.NoError(t, bill.Retry())
	require.Equal(t, BillPending, bill.Status)

	bill.Status = BillCompleted
	require.ErrorIs(t, bill.Block(), ErrBillNotPending)
	require.ErrorIs(t, bill.Retry(), ErrBillNotFailed)
	require.Equal(t, BillCompleted, bill.Status)
}

func TestNextOccurrence(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	bill := NewBillPay(4100, 7, dec("99.95"), due, Monthly)
	bill.Status = BillCompleted

	next := bill.NextOccurrence()
	require.NotEqual(t, bill.ID, next.ID)
	require.Equal(t, bill.AccountNumber, next.AccountNumber)
	require.Equal(t, bill.PayeeID, next.PayeeID)
	require.True(t, next.Amount.Equal(bill.Amount))
	require.Equal(t, bill.Period, next.Period)
	require.Equal(t, BillPending, next.Status)

	// one calendar month from the original due time, not from "now";
	// Jan 31 + 1 month normalizes per time.AddDate
	require.Equal(t, due.AddDate(0, 1, 0), next.ScheduleTimeUTC)
}

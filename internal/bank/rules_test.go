package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMinimumBalance(t *testing.T) {
	t.Parallel()

	require.True(t, MinimumBalance(Checking).Equal(decimal.NewFromInt(-500)))
	require.True(t, MinimumBalance(Savings).Equal(decimal.Zero))
	require.True(t, MinimumBalance(AccountType("margin")).Equal(decimal.Zero))
}

func TestFeeTiering(t *testing.T) {
	t.Parallel()

	p := DefaultFeePolicy()

	// first two operations are free regardless of type
	require.True(t, p.Fee(TypeWithdraw, 0).IsZero())
	require.True(t, p.Fee(TypeWithdraw, 1).IsZero())
	require.True(t, p.Fee(TypeTransfer, 1).IsZero())

	// third and later operations are charged
	require.True(t, p.Fee(TypeWithdraw, 2).Equal(decimal.RequireFromString("0.01")))
	require.True(t, p.Fee(TypeWithdraw, 7).Equal(decimal.RequireFromString("0.01")))
	require.True(t, p.Fee(TypeTransfer, 2).Equal(decimal.RequireFromString("0.05")))

	// deposits and bill payments never incur the charge
	require.True(t, p.Fee(TypeDeposit, 10).IsZero())
	require.True(t, p.Fee(TypeBillPay, 10).IsZero())
}

func TestFeeTieringConfigurable(t *testing.T) {
	t.Parallel()

	p := FeePolicy{
		FreeOperations: 0,
		WithdrawFee:    decimal.RequireFromString("0.25"),
		TransferFee:    decimal.RequireFromString("0.50"),
	}
	require.True(t, p.Fee(TypeWithdraw, 0).Equal(decimal.RequireFromString("0.25")))
	require.True(t, p.Fee(TypeTransfer, 0).Equal(decimal.RequireFromString("0.50")))
}

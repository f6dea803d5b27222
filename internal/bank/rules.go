package bank

import "github.com/shopspring/decimal"

// MinimumBalance returns the lowest balance an account may legally reach.
// Checking accounts may overdraw to -500.00; savings never go negative.
func MinimumBalance(t AccountType) decimal.Decimal {
	switch t {
	case Checking:
		return decimal.NewFromInt(-500)
	case Savings:
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// FeePolicy is the tiered service-charge rule for withdrawals and
// transfers. The tier is keyed on prior usage count, not prior fee count:
// the first FreeOperations withdrawals-or-transfers on an account are
// free, every one after that is charged.
type FeePolicy struct {
	FreeOperations int
	WithdrawFee    decimal.Decimal
	TransferFee    decimal.Decimal
}

// DefaultFeePolicy returns the reference tiering: two free operations,
// then 0.01 per withdrawal and 0.05 per transfer.
func DefaultFeePolicy() FeePolicy {
	return FeePolicy{
		FreeOperations: 2,
		WithdrawFee:    decimal.New(1, -2),
		TransferFee:    decimal.New(5, -2),
	}
}

// Fee returns the service charge for an operation of type t given the
// number of withdrawals and transfers already recorded on the account.
// The count is the caller's responsibility; it must come from the ledger
// at evaluation time, since only committed operations consume free tiers.
func (p FeePolicy) Fee(t TransactionType, priorCount int) decimal.Decimal {
	if priorCount < p.FreeOperations {
		return decimal.Zero
	}
	switch t {
	case TypeWithdraw:
		return p.WithdrawFee
	case TypeTransfer:
		return p.TransferFee
	default:
		return decimal.Zero
	}
}

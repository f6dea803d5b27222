package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Operation is one in-flight balance mutation: a deposit, withdrawal,
// transfer or bill payment that has not yet been validated or applied.
// The executor attaches the service charge to Fee before validating, so
// the minimum-balance check covers the full deduction.
type Operation struct {
	Type              TransactionType
	AccountNumber     int
	DestinationNumber int // zero when the operation has no destination
	Amount            decimal.Decimal
	Comment           string
	Fee               decimal.Decimal
}

// NewOperation builds a deposit, withdrawal or bill payment. Asking for a
// transfer here, or for an unknown type, is caller misuse and fails at
// construction rather than at validation time.
func NewOperation(t TransactionType, accountNumber int, amount decimal.Decimal, comment string) (*Operation, error) {
	switch t {
	case TypeDeposit, TypeWithdraw, TypeBillPay:
		return &Operation{
			Type:          t,
			AccountNumber: accountNumber,
			Amount:        amount,
			Comment:       comment,
		}, nil
	case TypeTransfer:
		return nil, fmt.Errorf("transfer requires a destination account, use NewTransfer")
	default:
		return nil, fmt.Errorf("invalid transaction type %q", t)
	}
}

// NewTransfer builds a transfer operation between two accounts.
func NewTransfer(accountNumber, destinationNumber int, amount decimal.Decimal, comment string) (*Operation, error) {
	return &Operation{
		Type:              TypeTransfer,
		AccountNumber:     accountNumber,
		DestinationNumber: destinationNumber,
		Amount:            amount,
		Comment:           comment,
	}, nil
}

// TotalDebit is the full amount deducted from the source account,
// including any attached service charge.
func (o *Operation) TotalDebit() decimal.Decimal {
	return o.Amount.Add(o.Fee)
}

// Validate checks the operation against the source account and, for
// transfers, the resolved destination (nil when it does not exist). It
// returns nil or one of the validation sentinels; it never mutates state.
func (o *Operation) Validate(source Account, destination *Account) error {
	if !o.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch o.Type {
	case TypeDeposit:
		// Deposits only increase the balance, no floor to check.
		return nil

	case TypeWithdraw:
		return checkMinimum(source, o.TotalDebit())

	case TypeTransfer:
		if destination == nil {
			return ErrDestinationNotFound
		}
		if destination.Number == source.Number {
			return ErrSameAccount
		}
		// Only the source side can breach a floor; the destination is
		// credited the plain amount and never decreases.
		return checkMinimum(source, o.TotalDebit())

	case TypeBillPay:
		return checkMinimum(source, o.Amount)

	default:
		return fmt.Errorf("invalid transaction type %q", o.Type)
	}
}

func checkMinimum(source Account, debit decimal.Decimal) error {
	if source.Balance.Sub(debit).LessThan(MinimumBalance(source.Type)) {
		return ErrInsufficientFunds
	}
	return nil
}

// Deltas returns the balance changes a valid operation applies: the
// source account delta and, for transfers, the destination delta.
func (o *Operation) Deltas() (source, destination decimal.Decimal) {
	switch o.Type {
	case TypeDeposit:
		return o.Amount, decimal.Zero
	case TypeTransfer:
		return o.TotalDebit().Neg(), o.Amount
	default:
		return o.TotalDebit().Neg(), decimal.Zero
	}
}

package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies a ledger row.
type TransactionType string

const (
	TypeDeposit       TransactionType = "deposit"
	TypeWithdraw      TransactionType = "withdraw"
	TypeTransfer      TransactionType = "transfer"
	TypeServiceCharge TransactionType = "service_charge"
	TypeBillPay       TransactionType = "bill_pay"
)

// Comments written on service-charge ledger rows.
const (
	WithdrawFeeComment = "Withdraw Fee"
	TransferFeeComment = "Transfer Fee"
)

// Transaction is one immutable ledger row. Rows are created only by the
// transaction executor and never updated or deleted. DestinationNumber is
// set only on the outgoing leg of a transfer; the incoming leg is a
// transfer row on the destination account with no destination of its own.
type Transaction struct {
	ID                string
	Type              TransactionType
	AccountNumber     int
	DestinationNumber *int
	Amount            decimal.Decimal
	Comment           *string
	TimeUTC           time.Time
}

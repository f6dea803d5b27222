package bank

import "errors"

// Validation failures: recoverable business-rule rejections. Nothing is
// mutated when one of these is returned.
var (
	ErrAmountNotPositive   = errors.New("amount must be greater than zero")
	ErrInsufficientFunds   = errors.New("insufficient funds: balance would fall below the account minimum")
	ErrSameAccount         = errors.New("destination account must differ from source account")
	ErrDestinationNotFound = errors.New("destination account not found")
)

// Not-found: the caller named something that does not exist, distinct from
// a business rule being broken.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPayeeNotFound    = errors.New("payee not found")
	ErrBillNotFound     = errors.New("bill not found")
)

// Illegal bill state transitions. Status is left untouched.
var (
	ErrBillNotPending = errors.New("only pending bills can be blocked or cancelled")
	ErrBillNotBlocked = errors.New("only blocked bills can be unblocked")
	ErrBillNotFailed  = errors.New("only failed bills can be retried")
	ErrBillNotOwned   = errors.New("bill does not belong to this customer")
)

var validationErrs = []error{
	ErrAmountNotPositive,
	ErrInsufficientFunds,
	ErrSameAccount,
	ErrDestinationNotFound,
}

// IsValidation reports whether err is a business validation failure, as
// opposed to not-found, an illegal transition, or a storage fault. The
// scheduler uses this to decide between marking a bill Failed and leaving
// it Pending for the next cycle.
func IsValidation(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Period is a bill's recurrence.
type Period string

const (
	OneOff  Period = "one_off"
	Monthly Period = "monthly"
)

// BillStatus is the scheduled bill lifecycle state.
type BillStatus string

const (
	BillPending   BillStatus = "pending"
	BillBlocked   BillStatus = "blocked"
	BillFailed    BillStatus = "failed"
	BillCompleted BillStatus = "completed"
)

// BillPay is one scheduled payment instruction. Exactly one row
// represents one future obligation; completing a monthly bill spawns a
// new row for the next occurrence rather than rescheduling this one.
type BillPay struct {
	ID              string
	AccountNumber   int
	PayeeID         int64
	Amount          decimal.Decimal
	ScheduleTimeUTC time.Time
	Period          Period
	Status          BillStatus
}

// NewBillPay creates a pending bill with a fresh id. Schedule-time and
// amount validation is the service's job, since "future" depends on the
// injected clock.
func NewBillPay(accountNumber int, payeeID int64, amount decimal.Decimal, scheduleUTC time.Time, period Period) BillPay {
	return BillPay{
		ID:              uuid.NewString(),
		AccountNumber:   accountNumber,
		PayeeID:         payeeID,
		Amount:          amount,
		ScheduleTimeUTC: scheduleUTC.UTC(),
		Period:          period,
		Status:          BillPending,
	}
}

// Block moves a pending bill out of the scheduler's reach. Admin action
// only; any other current status is an illegal transition.
func (b *BillPay) Block() error {
	if b.Status != BillPending {
		return ErrBillNotPending
	}
	b.Status = BillBlocked
	return nil
}

// Unblock returns a blocked bill to pending.
func (b *BillPay) Unblock() error {
	if b.Status != BillBlocked {
		return ErrBillNotBlocked
	}
	b.Status = BillPending
	return nil
}

// Retry returns a failed bill to pending so the next cycle picks it up.
// Never called automatically; a person decides to retry.
func (b *BillPay) Retry() error {
	if b.Status != BillFailed {
		return ErrBillNotFailed
	}
	b.Status = BillPending
	return nil
}

// NextOccurrence builds the follow-up bill for a monthly recurrence:
// same account, payee, amount and period, scheduled exactly one calendar
// month after this bill's original due time (not after "now").
func (b BillPay) NextOccurrence() BillPay {
	next := b
	next.ID = uuid.NewString()
	next.ScheduleTimeUTC = b.ScheduleTimeUTC.AddDate(0, 1, 0)
	next.Status = BillPending
	return next
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
)

// ErrScheduleNotFuture rejects bill creation with a due time that is not
// after the current clock reading.
var ErrScheduleNotFuture = errors.New("schedule time must be in the future")

// BillPayService owns the scheduled-bill registry: creation, the
// customer actions (cancel, retry), the administrative block/unblock
// surface, and the per-cycle processing of due bills.
type BillPayService struct {
	db       *sql.DB
	bills    *repository.BillPayRepo
	payees   *repository.PayeeRepo
	accounts *repository.AccountRepo
	executor *TransactionService
	clock    func() time.Time
	logger   *zap.Logger
}

func NewBillPayService(db *sql.DB, bills *repository.BillPayRepo, payees *repository.PayeeRepo, accounts *repository.AccountRepo, executor *TransactionService, clock func() time.Time, logger *zap.Logger) *BillPayService {
	if clock == nil {
		clock = database.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillPayService{
		db:       db,
		bills:    bills,
		payees:   payees,
		accounts: accounts,
		executor: executor,
		clock:    clock,
		logger:   logger,
	}
}

// Create registers a new pending bill. The account and payee must exist,
// the amount must be positive and the schedule time must be in the
// future.
func (s *BillPayService) Create(ctx context.Context, accountNumber int, payeeID int64, amount decimal.Decimal, scheduleUTC time.Time, period bank.Period) (*bank.BillPay, error) {
	if !amount.IsPositive() {
		return nil, bank.ErrAmountNotPositive
	}
	if !scheduleUTC.After(s.clock()) {
		return nil, ErrScheduleNotFuture
	}
	if _, err := s.accounts.Get(ctx, accountNumber); err != nil {
		return nil, err
	}
	if _, err := s.payees.Get(ctx, payeeID); err != nil {
		return nil, err
	}

	bill := bank.NewBillPay(accountNumber, payeeID, amount, scheduleUTC, period)
	if err := s.bills.Insert(ctx, bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// ListForCustomer returns the customer's bills across all accounts.
func (s *BillPayService) ListForCustomer(ctx context.Context, customerID int) ([]bank.BillPay, error) {
	return s.bills.ListForCustomer(ctx, customerID)
}

// Cancel deletes a pending bill owned by the customer.
func (s *BillPayService) Cancel(ctx context.Context, billID string, customerID int) error {
	bill, err := s.ownedBill(ctx, billID, customerID)
	if err != nil {
		return err
	}
	if bill.Status != bank.BillPending {
		return bank.ErrBillNotPending
	}
	return s.bills.Delete(ctx, billID)
}

// Retry returns a failed bill owned by the customer to pending.
func (s *BillPayService) Retry(ctx context.Context, billID string, customerID int) error {
	bill, err := s.ownedBill(ctx, billID, customerID)
	if err != nil {
		return err
	}
	if err := bill.Retry(); err != nil {
		return err
	}
	return s.bills.UpdateStatus(ctx, billID, bill.Status)
}

// Block is the administrative action moving a pending bill to blocked.
func (s *BillPayService) Block(ctx context.Context, billID string) error {
	return s.transition(ctx, billID, (*bank.BillPay).Block)
}

// Unblock is the administrative action returning a blocked bill to
// pending.
func (s *BillPayService) Unblock(ctx context.Context, billID string) error {
	return s.transition(ctx, billID, (*bank.BillPay).Unblock)
}

func (s *BillPayService) transition(ctx context.Context, billID string, move func(*bank.BillPay) error) error {
	bill, err := s.bills.Get(ctx, billID)
	if err != nil {
		return err
	}
	if err := move(bill); err != nil {
		return err
	}
	return s.bills.UpdateStatus(ctx, billID, bill.Status)
}

func (s *BillPayService) ownedBill(ctx context.Context, billID string, customerID int) (*bank.BillPay, error) {
	bill, err := s.bills.Get(ctx, billID)
	if err != nil {
		return nil, err
	}
	account, err := s.accounts.Get(ctx, bill.AccountNumber)
	if err != nil {
		return nil, err
	}
	if account.CustomerID != customerID {
		return nil, bank.ErrBillNotOwned
	}
	return bill, nil
}

// CycleResult summarizes one scheduler pass.
type CycleResult struct {
	Due       int
	Completed int
	Failed    int
	Skipped   int
}

// ProcessDue runs one scheduling cycle: every pending bill due at the
// current clock reading is executed through the transaction executor.
// Success completes the bill (and spawns the next occurrence for monthly
// bills); a validation failure marks it failed for a human to retry; a
// storage fault leaves it pending for the next cycle. One bill's outcome
// never stops the rest of the cycle.
func (s *BillPayService) ProcessDue(ctx context.Context) (CycleResult, error) {
	asOf := s.clock()
	due, err := s.bills.Due(ctx, asOf)
	if err != nil {
		return CycleResult{}, fmt.Errorf("load due bills: %w", err)
	}

	res := CycleResult{Due: len(due)}
	for _, bill := range due {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		completed, err := s.processOne(ctx, bill)
		switch {
		case err != nil:
			res.Skipped++
			s.logger.Error("bill left pending after storage fault",
				zap.String("bill_id", bill.ID),
				zap.Int("account", bill.AccountNumber),
				zap.Error(err))
		case completed:
			res.Completed++
		default:
			res.Failed++
		}
	}
	return res, nil
}

// processOne executes a single due bill. It returns whether the bill
// completed; a non-nil error is a storage fault and the bill's status is
// untouched.
func (s *BillPayService) processOne(ctx context.Context, bill bank.BillPay) (bool, error) {
	payee, err := s.payees.Get(ctx, bill.PayeeID)
	switch {
	case errors.Is(err, bank.ErrPayeeNotFound):
		// unknown payee is a business failure, not a storage fault
		return false, s.bills.UpdateStatus(ctx, bill.ID, bank.BillFailed)
	case err != nil:
		return false, err
	}
	comment := fmt.Sprintf("BillPay to %s", payee.Name)

	op, err := bank.NewOperation(bank.TypeBillPay, bill.AccountNumber, bill.Amount, comment)
	if err != nil {
		return false, err
	}

	execErr := s.executor.Execute(ctx, op)
	switch {
	case execErr == nil:
		return true, s.complete(ctx, bill)
	case bank.IsValidation(execErr) || errors.Is(execErr, bank.ErrAccountNotFound):
		s.logger.Info("bill payment rejected",
			zap.String("bill_id", bill.ID),
			zap.Int("account", bill.AccountNumber),
			zap.String("reason", execErr.Error()))
		return false, s.bills.UpdateStatus(ctx, bill.ID, bank.BillFailed)
	default:
		return false, execErr
	}
}

// complete marks the bill completed and, for monthly bills, inserts the
// next occurrence; both writes share one transaction so a monthly bill
// can never complete without its follow-up existing.
func (s *BillPayService) complete(ctx context.Context, bill bank.BillPay) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.bills.UpdateStatusTx(ctx, tx, bill.ID, bank.BillCompleted); err != nil {
			return err
		}
		if bill.Period == bank.Monthly {
			return s.bills.InsertTx(ctx, tx, bill.NextOccurrence())
		}
		return nil
	})
}

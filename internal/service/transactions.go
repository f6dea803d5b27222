// Package service orchestrates the domain over the repositories: the
// transaction executor, the bill-pay operations and statements.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
)

// TransactionService executes operations against accounts: validate,
// charge the tiered fee, mutate balances and append ledger rows, all as
// one atomic commit. Both interactive callers and the bill scheduler go
// through Execute, which serializes per account.
type TransactionService struct {
	db           *sql.DB
	accounts     *repository.AccountRepo
	transactions *repository.TransactionRepo
	fees         bank.FeePolicy
	clock        func() time.Time
	locks        *accountLocks
}

func NewTransactionService(db *sql.DB, accounts *repository.AccountRepo, transactions *repository.TransactionRepo, fees bank.FeePolicy, clock func() time.Time) *TransactionService {
	if clock == nil {
		clock = database.Now
	}
	return &TransactionService{
		db:           db,
		accounts:     accounts,
		transactions: transactions,
		fees:         fees,
		clock:        clock,
		locks:        newAccountLocks(),
	}
}

// Execute runs one operation to completion. A validation sentinel from
// the bank package means the operation was rejected with nothing
// written; any other error is a storage fault, also with nothing
// written. On success the balance change and every ledger row are
// visible together.
func (s *TransactionService) Execute(ctx context.Context, op *bank.Operation) error {
	release := s.locks.acquire(op.AccountNumber, op.DestinationNumber)
	defer release()

	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		source, err := s.accounts.GetTx(ctx, tx, op.AccountNumber)
		if err != nil {
			return fmt.Errorf("load account %d: %w", op.AccountNumber, err)
		}

		var destination *bank.Account
		if op.Type == bank.TypeTransfer {
			destination, err = s.accounts.GetTx(ctx, tx, op.DestinationNumber)
			if err != nil && !errors.Is(err, bank.ErrAccountNotFound) {
				return fmt.Errorf("load destination %d: %w", op.DestinationNumber, err)
			}
			// a missing destination surfaces from Validate as
			// ErrDestinationNotFound, a validation failure rather than
			// a lookup fault
		}

		if op.Type == bank.TypeWithdraw || op.Type == bank.TypeTransfer {
			count, err := s.transactions.CountUsageTx(ctx, tx, op.AccountNumber)
			if err != nil {
				return fmt.Errorf("count prior usage: %w", err)
			}
			op.Fee = s.fees.Fee(op.Type, count)
		}

		if err := op.Validate(*source, destination); err != nil {
			return err
		}

		sourceDelta, destinationDelta := op.Deltas()
		if err := s.accounts.UpdateBalanceTx(ctx, tx, source.Number, source.Balance.Add(sourceDelta)); err != nil {
			return err
		}
		if destination != nil {
			if err := s.accounts.UpdateBalanceTx(ctx, tx, destination.Number, destination.Balance.Add(destinationDelta)); err != nil {
				return err
			}
		}

		now := s.clock()
		primary := bank.Transaction{
			ID:            uuid.NewString(),
			Type:          op.Type,
			AccountNumber: op.AccountNumber,
			Amount:        op.Amount,
			Comment:       nullable(op.Comment),
			TimeUTC:       now,
		}
		if destination != nil {
			primary.DestinationNumber = &destination.Number
		}
		if err := s.transactions.InsertTx(ctx, tx, primary); err != nil {
			return err
		}

		// incoming leg on the destination account, same amount, no fee
		if destination != nil {
			leg := bank.Transaction{
				ID:            uuid.NewString(),
				Type:          bank.TypeTransfer,
				AccountNumber: destination.Number,
				Amount:        op.Amount,
				Comment:       nullable(op.Comment),
				TimeUTC:       now,
			}
			if err := s.transactions.InsertTx(ctx, tx, leg); err != nil {
				return err
			}
		}

		if op.Fee.IsPositive() {
			comment := bank.WithdrawFeeComment
			if op.Type == bank.TypeTransfer {
				comment = bank.TransferFeeComment
			}
			charge := bank.Transaction{
				ID:            uuid.NewString(),
				Type:          bank.TypeServiceCharge,
				AccountNumber: op.AccountNumber,
				Amount:        op.Fee,
				Comment:       &comment,
				TimeUTC:       now,
			}
			if err := s.transactions.InsertTx(ctx, tx, charge); err != nil {
				return err
			}
		}
		return nil
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

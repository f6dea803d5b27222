package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
)

// AccountRepo handles accounts.
type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{db: db} }

const accountColumns = "account_number, account_type, customer_id, balance"

func (r *AccountRepo) Insert(ctx context.Context, a bank.Account) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO accounts(account_number, account_type, customer_id, balance)
	VALUES(?, ?, ?, ?);
	`, a.Number, a.Type, a.CustomerID, a.Balance)
	return err
}

func (r *AccountRepo) Get(ctx context.Context, number int) (*bank.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_number = ?`, number)
	return scanAccount(row)
}

// GetTx reads the account inside the executor's transaction so the
// balance used for validation is the balance the commit applies to.
func (r *AccountRepo) GetTx(ctx context.Context, tx *sql.Tx, number int) (*bank.Account, error) {
	row := tx.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE account_number = ?`, number)
	return scanAccount(row)
}

// UpdateBalanceTx writes the new balance inside the executor's transaction.
func (r *AccountRepo) UpdateBalanceTx(ctx context.Context, tx *sql.Tx, number int, balance decimal.Decimal) error {
	res, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = ? WHERE account_number = ?`, balance, number)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("account %d: %w", number, bank.ErrAccountNotFound)
	}
	return nil
}

// ForCustomer returns the customer's accounts ordered by number.
func (r *AccountRepo) ForCustomer(ctx context.Context, customerID int) ([]bank.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE customer_id = ? ORDER BY account_number`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bank.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func scanAccount(row scanner) (*bank.Account, error) {
	var a bank.Account
	if err := row.Scan(&a.Number, &a.Type, &a.CustomerID, &a.Balance); err != nil {
		if err == sql.ErrNoRows {
			return nil, bank.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

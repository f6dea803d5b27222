package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
)

// BillPayRepo handles scheduled bill instructions.
type BillPayRepo struct {
	db *sql.DB
}

func NewBillPayRepo(db *sql.DB) *BillPayRepo { return &BillPayRepo{db: db} }

const billPayColumns = "id, account_number, payee_id, amount, schedule_time_utc, period, status"

func (r *BillPayRepo) Insert(ctx context.Context, b bank.BillPay) error {
	return insertBillPay(ctx, r.db, b)
}

// InsertTx inserts the next monthly occurrence in the same transaction
// that completes the current one.
func (r *BillPayRepo) InsertTx(ctx context.Context, tx *sql.Tx, b bank.BillPay) error {
	return insertBillPay(ctx, tx, b)
}

func insertBillPay(ctx context.Context, e execer, b bank.BillPay) error {
	_, err := e.ExecContext(ctx, `
	INSERT INTO bill_pays(`+billPayColumns+`)
	VALUES(?, ?, ?, ?, ?, ?, ?);
	`, b.ID, b.AccountNumber, b.PayeeID, b.Amount, b.ScheduleTimeUTC.UTC(), b.Period, b.Status)
	return err
}

func (r *BillPayRepo) Get(ctx context.Context, id string) (*bank.BillPay, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+billPayColumns+` FROM bill_pays WHERE id = ?`, id)
	b, err := scanBillPay(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bank.ErrBillNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Due returns every pending bill scheduled at or before asOf, oldest
// first.
func (r *BillPayRepo) Due(ctx context.Context, asOf time.Time) ([]bank.BillPay, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+billPayColumns+` FROM bill_pays
	WHERE status = ? AND schedule_time_utc <= ?
	ORDER BY schedule_time_utc;
	`, bank.BillPending, asOf.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBillPays(rows)
}

// ListForCustomer returns bills across all of the customer's accounts,
// ordered by schedule time.
func (r *BillPayRepo) ListForCustomer(ctx context.Context, customerID int) ([]bank.BillPay, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT b.id, b.account_number, b.payee_id, b.amount, b.schedule_time_utc, b.period, b.status
	FROM bill_pays b
	JOIN accounts a ON a.account_number = b.account_number
	WHERE a.customer_id = ?
	ORDER BY b.schedule_time_utc;
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBillPays(rows)
}

func (r *BillPayRepo) UpdateStatus(ctx context.Context, id string, status bank.BillStatus) error {
	return updateBillStatus(ctx, r.db, id, status)
}

func (r *BillPayRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id string, status bank.BillStatus) error {
	return updateBillStatus(ctx, tx, id, status)
}

func updateBillStatus(ctx context.Context, e execer, id string, status bank.BillStatus) error {
	res, err := e.ExecContext(ctx, `UPDATE bill_pays SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("bill %s: %w", id, bank.ErrBillNotFound)
	}
	return nil
}

func (r *BillPayRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bill_pays WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("bill %s: %w", id, bank.ErrBillNotFound)
	}
	return nil
}

func collectBillPays(rows *sql.Rows) ([]bank.BillPay, error) {
	var out []bank.BillPay
	for rows.Next() {
		b, err := scanBillPay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBillPay(row scanner) (bank.BillPay, error) {
	var b bank.BillPay
	if err := row.Scan(&b.ID, &b.AccountNumber, &b.PayeeID, &b.Amount, &b.ScheduleTimeUTC, &b.Period, &b.Status); err != nil {
		return bank.BillPay{}, err
	}
	return b, nil
}

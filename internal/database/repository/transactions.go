package repository

import (
	"context"
	"database/sql"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
)

// TransactionRepo handles the append-only ledger.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const transactionColumns = "id, transaction_type, account_number, destination_number, amount, comment, transaction_time_utc"

func (r *TransactionRepo) Insert(ctx context.Context, t bank.Transaction) error {
	return insertTransaction(ctx, r.db, t)
}

// InsertTx appends a ledger row inside the executor's transaction.
func (r *TransactionRepo) InsertTx(ctx context.Context, tx *sql.Tx, t bank.Transaction) error {
	return insertTransaction(ctx, tx, t)
}

func insertTransaction(ctx context.Context, e execer, t bank.Transaction) error {
	_, err := e.ExecContext(ctx, `
	INSERT INTO transactions(`+transactionColumns+`)
	VALUES(?, ?, ?, ?, ?, ?, ?);
	`, t.ID, t.Type, t.AccountNumber, t.DestinationNumber, t.Amount, t.Comment, t.TimeUTC.UTC())
	return err
}

// CountUsageTx returns how many fee-relevant operations the account has
// already committed: withdrawals, plus outgoing transfers. The incoming
// leg of a transfer is stored with a NULL destination and must not
// consume the destination account's free tier.
func (r *TransactionRepo) CountUsageTx(ctx context.Context, tx *sql.Tx, accountNumber int) (int, error) {
	row := tx.QueryRowContext(ctx, `
	SELECT COUNT(*) FROM transactions
	WHERE account_number = ?
	  AND (transaction_type = ?
	       OR (transaction_type = ? AND destination_number IS NOT NULL));
	`, accountNumber, bank.TypeWithdraw, bank.TypeTransfer)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListPage returns one page of the account's ledger, newest first, along
// with the total row count for pagination.
func (r *TransactionRepo) ListPage(ctx context.Context, accountNumber, page, pageSize int) ([]bank.Transaction, int, error) {
	var total int
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE account_number = ?`, accountNumber)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+transactionColumns+` FROM transactions
	WHERE account_number = ?
	ORDER BY transaction_time_utc DESC, id DESC
	LIMIT ? OFFSET ?;
	`, accountNumber, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []bank.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

// ForAccount returns every ledger row for the account, newest first.
func (r *TransactionRepo) ForAccount(ctx context.Context, accountNumber int) ([]bank.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+transactionColumns+` FROM transactions
	WHERE account_number = ?
	ORDER BY transaction_time_utc DESC, id DESC;
	`, accountNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bank.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTransaction(row scanner) (bank.Transaction, error) {
	var t bank.Transaction
	var destination sql.NullInt64
	var comment sql.NullString
	if err := row.Scan(&t.ID, &t.Type, &t.AccountNumber, &destination, &t.Amount, &comment, &t.TimeUTC); err != nil {
		return bank.Transaction{}, err
	}
	if destination.Valid {
		n := int(destination.Int64)
		t.DestinationNumber = &n
	}
	if comment.Valid {
		t.Comment = &comment.String
	}
	return t, nil
}

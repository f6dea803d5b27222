package repository

import (
	"context"
	"database/sql"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
)

// PayeeRepo handles payees.
type PayeeRepo struct {
	db *sql.DB
}

func NewPayeeRepo(db *sql.DB) *PayeeRepo { return &PayeeRepo{db: db} }

const payeeColumns = "payee_id, name, address, city, state, postcode, phone"

// Insert stores a payee and returns its generated id.
func (r *PayeeRepo) Insert(ctx context.Context, p bank.Payee) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO payees(name, address, city, state, postcode, phone)
	VALUES(?, ?, ?, ?, ?, ?);
	`, p.Name, p.Address, p.City, p.State, p.Postcode, p.Phone)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *PayeeRepo) Get(ctx context.Context, id int64) (*bank.Payee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+payeeColumns+` FROM payees WHERE payee_id = ?`, id)
	var p bank.Payee
	if err := row.Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.Postcode, &p.Phone); err != nil {
		if err == sql.ErrNoRows {
			return nil, bank.ErrPayeeNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PayeeRepo) List(ctx context.Context) ([]bank.Payee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+payeeColumns+` FROM payees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bank.Payee
	for rows.Next() {
		var p bank.Payee
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.Postcode, &p.Phone); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

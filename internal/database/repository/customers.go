package repository

import (
	"context"
	"database/sql"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
)

// CustomerRepo handles customers.
type CustomerRepo struct {
	db *sql.DB
}

func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Insert(ctx context.Context, c bank.Customer) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO customers(customer_id, name, tfn, address, city, state, postcode, mobile)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?);
	`, c.ID, c.Name, c.TFN, c.Address, c.City, c.State, c.Postcode, c.Mobile)
	return err
}

func (r *CustomerRepo) Get(ctx context.Context, id int) (*bank.Customer, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT customer_id, name, tfn, address, city, state, postcode, mobile
	FROM customers WHERE customer_id = ?;
	`, id)
	var c bank.Customer
	var tfn, address, city, state, postcode, mobile sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &tfn, &address, &city, &state, &postcode, &mobile); err != nil {
		if err == sql.ErrNoRows {
			return nil, bank.ErrCustomerNotFound
		}
		return nil, err
	}
	if tfn.Valid {
		c.TFN = &tfn.String
	}
	if address.Valid {
		c.Address = &address.String
	}
	if city.Valid {
		c.City = &city.String
	}
	if state.Valid {
		c.State = &state.String
	}
	if postcode.Valid {
		c.Postcode = &postcode.String
	}
	if mobile.Valid {
		c.Mobile = &mobile.String
	}
	return &c, nil
}

// Any reports whether any customer exists; seeding is skipped when the
// database is already populated.
func (r *CustomerRepo) Any(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
)

// SeedDefaults populates a new database with the demo customers, their
// accounts and a set of payees. Opening balances are written as deposit
// ledger rows and each account balance is the sum of its rows, so the
// ledger explains every balance from day one. Idempotent: does nothing
// once customers exist.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	customers := repository.NewCustomerRepo(db)
	accounts := repository.NewAccountRepo(db)
	transactions := repository.NewTransactionRepo(db)
	payees := repository.NewPayeeRepo(db)

	populated, err := customers.Any(ctx)
	if err != nil || populated {
		return err
	}

	type seedAccount struct {
		number   int
		kind     bank.AccountType
		deposits []string
	}
	type seedCustomer struct {
		id       int
		name     string
		accounts []seedAccount
	}

	seed := []seedCustomer{
		{2100, "Matthew Bolger", []seedAccount{
			{4100, bank.Savings, []string{"100.00"}},
			{4101, bank.Checking, []string{"500.00"}},
		}},
		{2200, "Rodney Phillips", []seedAccount{
			{4200, bank.Savings, []string{"500.00", "0.95"}},
			{4201, bank.Checking, []string{"1250.50"}},
		}},
		{2300, "Shekhar Kalra", []seedAccount{
			{4300, bank.Checking, []string{"1250.50"}},
		}},
	}

	now := Now()
	for _, sc := range seed {
		if err := customers.Insert(ctx, bank.Customer{ID: sc.id, Name: sc.name}); err != nil {
			return err
		}
		for _, sa := range sc.accounts {
			balance := decimal.Zero
			amounts := make([]decimal.Decimal, 0, len(sa.deposits))
			for _, raw := range sa.deposits {
				amount, err := decimal.NewFromString(raw)
				if err != nil {
					return err
				}
				amounts = append(amounts, amount)
				balance = balance.Add(amount)
			}
			acct := bank.Account{Number: sa.number, Type: sa.kind, CustomerID: sc.id, Balance: balance}
			if err := accounts.Insert(ctx, acct); err != nil {
				return err
			}
			for _, amount := range amounts {
				comment := "Opening balance"
				row := bank.Transaction{
					ID:            uuid.NewString(),
					Type:          bank.TypeDeposit,
					AccountNumber: sa.number,
					Amount:        amount,
					Comment:       &comment,
					TimeUTC:       now,
				}
				if err := transactions.Insert(ctx, row); err != nil {
					return err
				}
			}
		}
	}

	seedPayees := []bank.Payee{
		{Name: "Telstra", Address: "242 Exhibition St", City: "Melbourne", State: "VIC", Postcode: "3000", Phone: "(03) 9634 6400"},
		{Name: "AGL Energy", Address: "699 Bourke St", City: "Docklands", State: "VIC", Postcode: "3008", Phone: "(03) 8633 6000"},
		{Name: "Melbourne Water", Address: "990 La Trobe St", City: "Docklands", State: "VIC", Postcode: "3008", Phone: "(03) 9679 7100"},
		{Name: "RMIT University", Address: "124 La Trobe St", City: "Melbourne", State: "VIC", Postcode: "3000", Phone: "(03) 9925 2000"},
	}
	for _, p := range seedPayees {
		if _, err := payees.Insert(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

// Package bank holds the core banking domain: accounts, money rules,
// transaction variants and the scheduled bill state machine. It has no
// storage or I/O; persistence lives in internal/database.
package bank

import "github.com/shopspring/decimal"

// AccountType distinguishes the two account categories.
type AccountType string

const (
	Checking AccountType = "checking"
	Savings  AccountType = "savings"
)

// Account is a customer bank account. Number is the 4-digit identifier.
type Account struct {
	Number     int
	Type       AccountType
	CustomerID int
	Balance    decimal.Decimal
}

// Customer owns accounts. Optional fields are nil when not recorded.
type Customer struct {
	ID       int
	Name     string
	TFN      *string
	Address  *string
	City     *string
	State    *string
	Postcode *string
	Mobile   *string
}

// Payee is an external biller that scheduled payments are made to.
type Payee struct {
	ID       int64
	Name     string
	Address  string
	City     string
	State    string
	Postcode string
	Phone    string
}

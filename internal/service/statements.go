package service

import (
	"context"

	"github.com/Russell0014/MCBA-Internet-Banking/internal/bank"
	"github.com/Russell0014/MCBA-Internet-Banking/internal/database/repository"
)

// DefaultStatementPageSize matches the four-rows-a-page statement view.
const DefaultStatementPageSize = 4

// StatementsService lists an account's ledger page by page, newest
// first, for the owning customer.
type StatementsService struct {
	accounts     *repository.AccountRepo
	transactions *repository.TransactionRepo
	pageSize     int
}

func NewStatementsService(accounts *repository.AccountRepo, transactions *repository.TransactionRepo, pageSize int) *StatementsService {
	if pageSize <= 0 {
		pageSize = DefaultStatementPageSize
	}
	return &StatementsService{accounts: accounts, transactions: transactions, pageSize: pageSize}
}

// Statement is one page of an account's history.
type Statement struct {
	Account      bank.Account
	Transactions []bank.Transaction
	Page         int
	TotalPages   int
}

// Page returns the requested page for an account the customer owns.
// An account belonging to someone else is reported as not found rather
// than revealing that it exists.
func (s *StatementsService) Page(ctx context.Context, customerID, accountNumber, page int) (*Statement, error) {
	if page < 1 {
		page = 1
	}
	account, err := s.accounts.Get(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account.CustomerID != customerID {
		return nil, bank.ErrAccountNotFound
	}

	rows, total, err := s.transactions.ListPage(ctx, accountNumber, page, s.pageSize)
	if err != nil {
		return nil, err
	}
	totalPages := (total + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	return &Statement{
		Account:      *account,
		Transactions: rows,
		Page:         page,
		TotalPages:   totalPages,
	}, nil
}

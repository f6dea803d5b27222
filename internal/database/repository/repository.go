// Package repository provides sqlite persistence for the banking domain.
// One file per entity. Methods with a Tx suffix run against a caller
// supplied transaction so the executor can keep one logical operation in
// a single atomic commit.
package repository

import (
	"context"
	"database/sql"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/decalage/internal/db"
)

// FailingExecUoW wraps transactions so that the Nth ExecContext call (counted
// from 1) returns Err. Reads pass through. Catalog reload tests use it to
// check that a failed import leaves the previous tables untouched.
type FailingExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if fnErr := fn(ctx, &failingExec{DBTX: tx, failOn: u.FailOn, err: u.Err}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	calls  int
	failOn int
	err    error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

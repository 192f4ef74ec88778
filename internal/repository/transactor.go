// Package repository storage, ledger and price sources
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxTxKey struct{}

// injects pgx.Tx into context
func injectTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, pgxTxKey{}, tx)
}

// retrieves pgx.Tx from context
func extractTx(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(pgxTxKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// PgxTransactor runs ledger and position writes of one transition atomically
type PgxTransactor struct {
	pool *pgxpool.Pool
}

// NewPgxTransactor builds new PgxTransactor
func NewPgxTransactor(p *pgxpool.Pool) *PgxTransactor {
	return &PgxTransactor{pool: p}
}

// WithinTransaction runs txFunc with pgx.Tx injected into context, commits on nil error
func (t *PgxTransactor) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) (err error) {
	if extractTx(ctx) != nil {
		return txFunc(ctx)
	}
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("transactor - WithinTransaction - BeginTx: %w", err)
	}
	defer func() {
		var txErr error
		if err != nil {
			txErr = tx.Rollback(ctx)
		} else {
			txErr = tx.Commit(ctx)
		}
		if txErr != nil && !errors.Is(txErr, pgx.ErrTxClosed) {
			err = fmt.Errorf("transactor - WithinTransaction - finish: %w", txErr)
		}
	}()

	err = txFunc(injectTx(ctx, tx))
	return err
}

// NoopTransactor used with in-memory storage, where every write is already final
type NoopTransactor struct{}

// WithinTransaction runs txFunc directly
func (NoopTransactor) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error {
	return txFunc(ctx)
}

// PgxQueryRunner represents query runner behavior
type PgxQueryRunner interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...interface{}) pgx.Row
}

// PgxWithinTransactionRunner picks the transaction from context or falls back to the pool
type PgxWithinTransactionRunner struct {
	pool *pgxpool.Pool
}

// NewPgxWithinTransactionRunner builds new PgxWithinTransactionRunner
func NewPgxWithinTransactionRunner(p *pgxpool.Pool) *PgxWithinTransactionRunner {
	return &PgxWithinTransactionRunner{pool: p}
}

// Runner extracts query runner from context, if pgx.Tx is injected into context it is returned and pgxpool.Pool otherwise
func (r *PgxWithinTransactionRunner) Runner(ctx context.Context) PgxQueryRunner {
	tx := extractTx(ctx)
	if tx != nil {
		return tx
	}
	return r.pool
}

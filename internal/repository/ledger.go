package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/google/uuid"
)

// closeCredit margin returned with realized pnl, a position never owes more than its margin
func closeCredit(position *model.Position) float64 {
	if position.PnL == nil {
		return position.Margin
	}
	return math.Max(0, position.Margin+*position.PnL)
}

// PgLedger account balances in postgres, each operation joins the transaction in ctx or runs in its own
type PgLedger struct {
	transactor   *PgxTransactor
	runner       *PgxWithinTransactionRunner
	startBalance float64
}

// NewPgLedger constructor, new accounts are funded with startBalance
func NewPgLedger(transactor *PgxTransactor, runner *PgxWithinTransactionRunner, startBalance float64) *PgLedger {
	return &PgLedger{transactor: transactor, runner: runner, startBalance: startBalance}
}

// GetBalance balance of account
func (l *PgLedger) GetBalance(ctx context.Context, account string) (float64, error) {
	if err := l.ensureAccount(ctx, account); err != nil {
		return 0, fmt.Errorf("ledger - GetBalance - ensureAccount: %w", err)
	}
	var balance float64
	err := l.runner.Runner(ctx).QueryRow(ctx, `select balance from accounts where id = $1`, account).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("ledger - GetBalance - QueryRow: %w", err)
	}
	return balance, nil
}

// ExecuteOpen debit margin of a new position
func (l *PgLedger) ExecuteOpen(ctx context.Context, position *model.Position) (confirmation *model.Confirmation, err error) {
	err = l.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := l.ensureAccount(ctx, position.Account); err != nil {
			return fmt.Errorf("ensureAccount: %w", err)
		}
		tag, err := l.runner.Runner(ctx).Exec(ctx,
			`update accounts set balance = balance - $1, updated = now() where id = $2 and balance >= $1`,
			position.Margin, position.Account)
		if err != nil {
			return fmt.Errorf("Exec: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrInsufficientBalance
		}
		entry, err := l.entry(ctx, position, "open", -position.Margin)
		confirmation = entry
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ledger - ExecuteOpen: %w", err)
	}
	return confirmation, nil
}

// ExecuteClose credit margin plus realized pnl of a closed position, at most once per position
func (l *PgLedger) ExecuteClose(ctx context.Context, position *model.Position) (confirmation *model.Confirmation, err error) {
	credit := closeCredit(position)
	err = l.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		entry, err := l.entry(ctx, position, "close", credit)
		if err != nil {
			return err
		}
		confirmation = entry
		tag, err := l.runner.Runner(ctx).Exec(ctx,
			`update accounts set balance = balance + $1, updated = now() where id = $2`, credit, position.Account)
		if err != nil {
			return fmt.Errorf("Exec: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("account %s not found", position.Account)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ledger - ExecuteClose: %w", err)
	}
	return confirmation, nil
}

func (l *PgLedger) entry(ctx context.Context, position *model.Position, kind string, amount float64) (*model.Confirmation, error) {
	confirmation := &model.Confirmation{
		ID:      uuid.NewString(),
		Account: position.Account,
		Amount:  amount,
		Time:    time.Now().UTC(),
	}
	_, err := l.runner.Runner(ctx).Exec(ctx,
		`insert into ledger_entries (id, account, position_id, kind, amount, created) values ($1, $2, $3, $4, $5, $6)`,
		confirmation.ID, position.Account, position.ID, kind, amount, confirmation.Time)
	if err != nil {
		return nil, fmt.Errorf("entry - Exec: %w", err)
	}
	return confirmation, nil
}

func (l *PgLedger) ensureAccount(ctx context.Context, account string) error {
	_, err := l.runner.Runner(ctx).Exec(ctx,
		`insert into accounts (id, balance) values ($1, $2) on conflict (id) do nothing`, account, l.startBalance)
	return err
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const positionColumns = `id, account, direction, status, result, close_reason, leverage, entry_price,
	liquidation_price, size, margin, pnl, exit_price, stop_loss, take_profit, created, updated, closed`

// Position postgres entity
type Position struct {
	runner *PgxWithinTransactionRunner
}

// NewPositionRepository creating new Position repository
func NewPositionRepository(runner *PgxWithinTransactionRunner) *Position {
	return &Position{runner: runner}
}

// CreatePosition create position
func (r *Position) CreatePosition(ctx context.Context, position *model.Position) error {
	_, err := r.runner.Runner(ctx).Exec(ctx,
		`insert into positions (`+positionColumns+`)
			values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		position.ID, position.Account, position.Direction, position.Status, position.Result, position.CloseReason,
		position.Leverage, position.EntryPrice, position.LiquidationPrice, position.Size, position.Margin,
		position.PnL, position.ExitPrice, position.StopLoss, position.TakeProfit,
		position.Created, position.Updated, nullTime(position.Closed))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("position - CreatePosition - Exec: %w", model.ErrPositionExists)
		}
		return fmt.Errorf("position - CreatePosition - Exec: %w", err)
	}
	return nil
}

// GetPositionByID get position by id
func (r *Position) GetPositionByID(ctx context.Context, id string) (*model.Position, error) {
	row := r.runner.Runner(ctx).QueryRow(ctx,
		`select `+positionColumns+` from positions where id = $1`, id)
	position, err := scanPosition(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("position - GetPositionByID - QueryRow: %w", model.ErrPositionNotFound)
		}
		return nil, fmt.Errorf("position - GetPositionByID - QueryRow: %w", err)
	}
	return position, nil
}

// GetAccountPositions all positions of account, newest first
func (r *Position) GetAccountPositions(ctx context.Context, account string) ([]*model.Position, error) {
	return r.query(ctx, "position - GetAccountPositions",
		`select `+positionColumns+` from positions where account = $1 order by created desc`, account)
}

// GetOpenPositions open positions of account, oldest first
func (r *Position) GetOpenPositions(ctx context.Context, account string) ([]*model.Position, error) {
	return r.query(ctx, "position - GetOpenPositions",
		`select `+positionColumns+` from positions where account = $1 and status = 'open' order by created`, account)
}

// GetSettledPositions closed and liquidated positions of every account
func (r *Position) GetSettledPositions(ctx context.Context) ([]*model.Position, error) {
	return r.query(ctx, "position - GetSettledPositions",
		`select `+positionColumns+` from positions where status <> 'open' order by closed`)
}

// GetOpenAccounts accounts having at least one open position
func (r *Position) GetOpenAccounts(ctx context.Context) ([]string, error) {
	rows, err := r.runner.Runner(ctx).Query(ctx,
		`select distinct account from positions where status = 'open'`)
	if err != nil {
		return nil, fmt.Errorf("position - GetOpenAccounts - Query: %w", err)
	}
	defer rows.Close()

	var accounts []string
	for rows.Next() {
		var account string
		if err = rows.Scan(&account); err != nil {
			return nil, fmt.Errorf("position - GetOpenAccounts - Scan: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("position - GetOpenAccounts - Rows: %w", err)
	}
	return accounts, nil
}

// UpdatePosition persist transition, only an open row may change
func (r *Position) UpdatePosition(ctx context.Context, position *model.Position) error {
	tag, err := r.runner.Runner(ctx).Exec(ctx,
		`update positions set status=$1, result=$2, close_reason=$3, pnl=$4, exit_price=$5, updated=$6, closed=$7
			where id=$8 and status='open'`,
		position.Status, position.Result, position.CloseReason, position.PnL, position.ExitPrice,
		position.Updated, nullTime(position.Closed), position.ID)
	if err != nil {
		return fmt.Errorf("position - UpdatePosition - Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("position - UpdatePosition: %w", r.missingReason(ctx, position.ID))
	}
	return nil
}

// SetStopLoss set stop loss of open position
func (r *Position) SetStopLoss(ctx context.Context, id string, stopLoss float64, updated time.Time) error {
	tag, err := r.runner.Runner(ctx).Exec(ctx,
		`update positions set stop_loss=$1, updated=$2 where id=$3 and status='open'`, stopLoss, updated, id)
	if err != nil {
		return fmt.Errorf("position - SetStopLoss - Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("position - SetStopLoss: %w", r.missingReason(ctx, id))
	}
	return nil
}

// SetTakeProfit set take profit of open position
func (r *Position) SetTakeProfit(ctx context.Context, id string, takeProfit float64, updated time.Time) error {
	tag, err := r.runner.Runner(ctx).Exec(ctx,
		`update positions set take_profit=$1, updated=$2 where id=$3 and status='open'`, takeProfit, updated, id)
	if err != nil {
		return fmt.Errorf("position - SetTakeProfit - Exec: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("position - SetTakeProfit: %w", r.missingReason(ctx, id))
	}
	return nil
}

func (r *Position) missingReason(ctx context.Context, id string) error {
	var exists bool
	err := r.runner.Runner(ctx).QueryRow(ctx, `select exists(select 1 from positions where id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return model.ErrPositionNotOpen
	}
	return model.ErrPositionNotFound
}

func (r *Position) query(ctx context.Context, op, sql string, args ...interface{}) ([]*model.Position, error) {
	rows, err := r.runner.Runner(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s - Query: %w", op, err)
	}
	defer rows.Close()

	var positions []*model.Position
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, fmt.Errorf("%s - Scan: %w", op, err)
		}
		positions = append(positions, position)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s - Rows: %w", op, err)
	}
	return positions, nil
}

func scanPosition(row pgx.Row) (*model.Position, error) {
	p := &model.Position{}
	var closed *time.Time
	err := row.Scan(&p.ID, &p.Account, &p.Direction, &p.Status, &p.Result, &p.CloseReason,
		&p.Leverage, &p.EntryPrice, &p.LiquidationPrice, &p.Size, &p.Margin,
		&p.PnL, &p.ExitPrice, &p.StopLoss, &p.TakeProfit, &p.Created, &p.Updated, &closed)
	if err != nil {
		return nil, err
	}
	if closed != nil {
		p.Closed = *closed
	}
	return p, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testPosition(account string, created time.Time) *model.Position {
	return &model.Position{
		ID:               uuid.NewString(),
		Account:          account,
		Direction:        model.Long,
		Status:           model.StatusOpen,
		Leverage:         10,
		EntryPrice:       100,
		LiquidationPrice: 95,
		Size:             1000,
		Margin:           100,
		Created:          created,
		Updated:          created,
	}
}

func TestMemoryPosition_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPositionRepository()
	position := testPosition("acc", time.Now())

	require.NoError(t, repo.CreatePosition(ctx, position))
	require.ErrorIs(t, repo.CreatePosition(ctx, position), model.ErrPositionExists)

	stored, err := repo.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, position, stored)
	require.NotSame(t, position, stored)

	stored.Margin = 1
	again, err := repo.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, 100.0, again.Margin)

	_, err = repo.GetPositionByID(ctx, "missing")
	require.ErrorIs(t, err, model.ErrPositionNotFound)
}

func TestMemoryPosition_Listing(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPositionRepository()
	now := time.Now()

	first := testPosition("acc-a", now.Add(-2*time.Hour))
	second := testPosition("acc-a", now.Add(-time.Hour))
	third := testPosition("acc-b", now)
	closed := testPosition("acc-c", now)
	closed.Status = model.StatusClosed
	for _, p := range []*model.Position{second, first, third, closed} {
		require.NoError(t, repo.CreatePosition(ctx, p))
	}

	all, err := repo.GetAccountPositions(ctx, "acc-a")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)

	open, err := repo.GetOpenPositions(ctx, "acc-a")
	require.NoError(t, err)
	require.Len(t, open, 2)
	require.Equal(t, first.ID, open[0].ID)

	accounts, err := repo.GetOpenAccounts(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"acc-a", "acc-b"}, accounts)

	settled, err := repo.GetSettledPositions(ctx)
	require.NoError(t, err)
	require.Len(t, settled, 1)
	require.Equal(t, closed.ID, settled[0].ID)
}

func TestMemoryPosition_UpdatePosition(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPositionRepository()
	position := testPosition("acc", time.Now())
	require.NoError(t, repo.CreatePosition(ctx, position))

	closed := position.Clone()
	closed.Status = model.StatusClosed
	closed.Result = model.ResultProfit
	closed.CloseReason = model.ReasonManual
	closed.PnL = model.Float(50)
	closed.ExitPrice = model.Float(105)
	closed.Closed = time.Now()
	require.NoError(t, repo.UpdatePosition(ctx, closed))

	stored, err := repo.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, stored.Status)
	require.Equal(t, 50.0, *stored.PnL)

	require.ErrorIs(t, repo.UpdatePosition(ctx, closed), model.ErrPositionNotOpen)
	missing := closed.Clone()
	missing.ID = "missing"
	require.ErrorIs(t, repo.UpdatePosition(ctx, missing), model.ErrPositionNotFound)
}

func TestMemoryPosition_StopLossTakeProfit(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPositionRepository()
	position := testPosition("acc", time.Now())
	require.NoError(t, repo.CreatePosition(ctx, position))

	require.NoError(t, repo.SetStopLoss(ctx, position.ID, 97, time.Now()))
	require.NoError(t, repo.SetTakeProfit(ctx, position.ID, 120, time.Now()))
	stored, err := repo.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, 97.0, *stored.StopLoss)
	require.Equal(t, 120.0, *stored.TakeProfit)

	require.ErrorIs(t, repo.SetStopLoss(ctx, "missing", 97, time.Now()), model.ErrPositionNotFound)

	closed := stored.Clone()
	closed.Status = model.StatusLiquidated
	closed.PnL = model.Float(-100)
	closed.ExitPrice = model.Float(95)
	require.NoError(t, repo.UpdatePosition(ctx, closed))
	require.ErrorIs(t, repo.SetTakeProfit(ctx, position.ID, 130, time.Now()), model.ErrPositionNotOpen)
}

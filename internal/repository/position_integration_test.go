//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPosition_CreateGet(t *testing.T) {
	ctx := context.Background()
	position := testPosition(uuid.NewString(), time.Now().UTC().Truncate(time.Microsecond))
	position.StopLoss = model.Float(97)

	require.NoError(t, testPositionRepository.CreatePosition(ctx, position))
	require.ErrorIs(t, testPositionRepository.CreatePosition(ctx, position), model.ErrPositionExists)

	stored, err := testPositionRepository.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, position.Account, stored.Account)
	require.Equal(t, model.StatusOpen, stored.Status)
	require.Equal(t, 97.0, *stored.StopLoss)
	require.Nil(t, stored.TakeProfit)
	require.Nil(t, stored.PnL)
	require.True(t, position.Created.Equal(stored.Created))

	_, err = testPositionRepository.GetPositionByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, model.ErrPositionNotFound)
}

func TestPosition_UpdatePosition(t *testing.T) {
	ctx := context.Background()
	position := testPosition(uuid.NewString(), time.Now().UTC())
	require.NoError(t, testPositionRepository.CreatePosition(ctx, position))

	accounts, err := testPositionRepository.GetOpenAccounts(ctx)
	require.NoError(t, err)
	require.Contains(t, accounts, position.Account)

	closed := position.Clone()
	closed.Status = model.StatusLiquidated
	closed.Result = model.ResultLoss
	closed.CloseReason = model.ReasonLiquidation
	closed.PnL = model.Float(-50)
	closed.ExitPrice = model.Float(95)
	closed.Closed = time.Now().UTC()
	closed.Updated = closed.Closed
	require.NoError(t, testPositionRepository.UpdatePosition(ctx, closed))
	require.ErrorIs(t, testPositionRepository.UpdatePosition(ctx, closed), model.ErrPositionNotOpen)

	stored, err := testPositionRepository.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusLiquidated, stored.Status)
	require.Equal(t, model.ReasonLiquidation, stored.CloseReason)
	require.Equal(t, -50.0, *stored.PnL)

	open, err := testPositionRepository.GetOpenPositions(ctx, position.Account)
	require.NoError(t, err)
	require.Empty(t, open)

	settled, err := testPositionRepository.GetSettledPositions(ctx)
	require.NoError(t, err)
	var found bool
	for _, p := range settled {
		require.NotEqual(t, model.StatusOpen, p.Status)
		found = found || p.ID == position.ID
	}
	require.True(t, found)

	require.ErrorIs(t, testPositionRepository.SetStopLoss(ctx, position.ID, 90, time.Now()), model.ErrPositionNotOpen)
	require.ErrorIs(t, testPositionRepository.SetTakeProfit(ctx, uuid.NewString(), 90, time.Now()), model.ErrPositionNotFound)
}

func TestPosition_GetAccountPositions(t *testing.T) {
	ctx := context.Background()
	account := uuid.NewString()
	now := time.Now().UTC()
	older := testPosition(account, now.Add(-time.Hour))
	newer := testPosition(account, now)
	require.NoError(t, testPositionRepository.CreatePosition(ctx, older))
	require.NoError(t, testPositionRepository.CreatePosition(ctx, newer))
	require.NoError(t, testPositionRepository.SetTakeProfit(ctx, older.ID, 130, now))

	positions, err := testPositionRepository.GetAccountPositions(ctx, account)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	require.Equal(t, newer.ID, positions[0].ID)
	require.Equal(t, 130.0, *positions[1].TakeProfit)
}

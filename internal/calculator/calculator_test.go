package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/stretchr/testify/require"
)

func testCalculator(t *testing.T, maintenanceMargin float64) *Calculator {
	c, err := NewCalculator(maintenanceMargin, 100)
	require.NoError(t, err)
	return c
}

func openPosition(t *testing.T, c *Calculator, direction model.Direction, entry, leverage, margin float64) *model.Position {
	p, err := c.CreatePosition("account", &model.OrderParams{
		Direction: direction,
		Margin:    margin,
		Leverage:  leverage,
	}, entry, time.Now())
	require.NoError(t, err)
	return p
}

func TestNewCalculator(t *testing.T) {
	_, err := NewCalculator(0.05, 100)
	require.NoError(t, err)
	_, err = NewCalculator(0, 1)
	require.NoError(t, err)

	for _, mm := range []float64{-0.01, 1, 1.5, math.NaN()} {
		_, err = NewCalculator(mm, 100)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
	_, err = NewCalculator(0.05, 0.5)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculator_LiquidationPrice(t *testing.T) {
	c := testCalculator(t, 0.05)

	price, err := c.LiquidationPrice(100, 10, model.Long)
	require.NoError(t, err)
	require.InDelta(t, 95, price, 1e-9)

	price, err = c.LiquidationPrice(100, 10, model.Short)
	require.NoError(t, err)
	require.InDelta(t, 105, price, 1e-9)

	price, err = c.LiquidationPrice(2000, 5, model.Short)
	require.NoError(t, err)
	require.InDelta(t, 2300, price, 1e-9)
}

func TestCalculator_LiquidationPrice_Degenerate(t *testing.T) {
	c := testCalculator(t, 0.20)

	_, err := c.LiquidationPrice(100, 5, model.Long)
	require.ErrorIs(t, err, ErrDegenerateLiquidation)
	_, err = c.LiquidationPrice(100, 10, model.Short)
	require.ErrorIs(t, err, ErrDegenerateLiquidation)

	price, err := c.LiquidationPrice(100, 4, model.Long)
	require.NoError(t, err)
	require.InDelta(t, 95, price, 1e-9)

	// buffer positive but smaller than the spacing of floats around 1
	tight := testCalculator(t, math.Nextafter(0.1, 0))
	_, err = tight.LiquidationPrice(100, 10, model.Long)
	require.ErrorIs(t, err, ErrDegenerateLiquidation)
	_, err = tight.LiquidationPrice(100, 10, model.Short)
	require.ErrorIs(t, err, ErrDegenerateLiquidation)
	_, err = tight.CreatePosition("0xabc", &model.OrderParams{Direction: model.Long, Margin: 10, Leverage: 10}, 100, time.Now())
	require.ErrorIs(t, err, ErrDegenerateLiquidation)
}

func TestCalculator_LiquidationPrice_InvalidInput(t *testing.T) {
	c := testCalculator(t, 0.05)

	_, err := c.LiquidationPrice(0, 10, model.Long)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.LiquidationPrice(math.NaN(), 10, model.Long)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.LiquidationPrice(100, 0.5, model.Long)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.LiquidationPrice(100, 101, model.Long)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.LiquidationPrice(100, 10, model.Direction("sideways"))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalculator_PnL(t *testing.T) {
	c := testCalculator(t, 0.05)

	long := openPosition(t, c, model.Long, 100, 10, 10)
	require.Equal(t, 100.0, long.Size)
	require.InDelta(t, 10, c.PnL(long, 110), 1e-9)
	require.InDelta(t, -5, c.PnL(long, 95), 1e-9)
	require.InDelta(t, -0.05*long.Size, c.PnL(long, long.LiquidationPrice), 1e-9)

	short := openPosition(t, c, model.Short, 100, 10, 10)
	require.InDelta(t, -10, c.PnL(short, 110), 1e-9)
	require.InDelta(t, 5, c.PnL(short, 95), 1e-9)
}

func TestCalculator_ShouldLiquidate(t *testing.T) {
	c := testCalculator(t, 0.05)

	long := openPosition(t, c, model.Long, 100, 10, 10)
	require.True(t, c.ShouldLiquidate(long, 95))
	require.True(t, c.ShouldLiquidate(long, 90))
	require.False(t, c.ShouldLiquidate(long, 95.01))

	short := openPosition(t, c, model.Short, 100, 10, 10)
	require.True(t, c.ShouldLiquidate(short, 105))
	require.True(t, c.ShouldLiquidate(short, 120))
	require.False(t, c.ShouldLiquidate(short, 104.99))
}

func TestCalculator_CheckTakeProfitStopLoss(t *testing.T) {
	c := testCalculator(t, 0.05)

	short := openPosition(t, c, model.Short, 2000, 5, 10)
	short.StopLoss = model.Float(2050)
	short.TakeProfit = model.Float(1900)
	require.Equal(t, model.Trigger{Triggered: true, Type: model.TriggerStopLoss}, c.CheckTakeProfitStopLoss(short, 2060))
	require.Equal(t, model.Trigger{Triggered: true, Type: model.TriggerTakeProfit}, c.CheckTakeProfitStopLoss(short, 1900))
	require.Equal(t, model.Trigger{}, c.CheckTakeProfitStopLoss(short, 2000))

	long := openPosition(t, c, model.Long, 100, 2, 10)
	long.TakeProfit = model.Float(120)
	require.Equal(t, model.Trigger{Triggered: true, Type: model.TriggerTakeProfit}, c.CheckTakeProfitStopLoss(long, 121))
	require.Equal(t, model.Trigger{}, c.CheckTakeProfitStopLoss(long, 60))
	long.StopLoss = model.Float(90)
	require.Equal(t, model.Trigger{Triggered: true, Type: model.TriggerStopLoss}, c.CheckTakeProfitStopLoss(long, 90))
}

func TestCalculator_CheckTakeProfitStopLoss_StopLossWinsTie(t *testing.T) {
	c := testCalculator(t, 0.05)

	// thresholds set on the wrong sides so both are crossed at once
	long := openPosition(t, c, model.Long, 100, 2, 10)
	long.StopLoss = model.Float(110)
	long.TakeProfit = model.Float(90)
	require.Equal(t, model.TriggerStopLoss, c.CheckTakeProfitStopLoss(long, 100).Type)

	short := openPosition(t, c, model.Short, 100, 2, 10)
	short.StopLoss = model.Float(90)
	short.TakeProfit = model.Float(110)
	require.Equal(t, model.TriggerStopLoss, c.CheckTakeProfitStopLoss(short, 100).Type)
}

func TestCalculator_Stats(t *testing.T) {
	c := testCalculator(t, 0.05)

	require.Equal(t, model.TradingStats{}, c.Stats(nil))

	closed := openPosition(t, c, model.Long, 100, 3, 10)
	closed.Status = model.StatusClosed
	closed.PnL = model.Float(50)
	stats := c.Stats([]*model.Position{closed})
	require.Equal(t, 100.0, stats.WinRate)
	require.Equal(t, 3.0, stats.AverageLeverage)
	require.Equal(t, 50.0, stats.TotalProfit)
	require.Equal(t, 1, stats.Profit)

	loser := openPosition(t, c, model.Short, 100, 5, 10)
	loser.Status = model.StatusLiquidated
	loser.PnL = model.Float(-20)
	flat := openPosition(t, c, model.Short, 100, 2, 10)
	flat.Status = model.StatusClosed
	flat.PnL = model.Float(0)
	open := openPosition(t, c, model.Long, 100, 10, 10)

	stats = c.Stats([]*model.Position{closed, loser, flat, open})
	require.Equal(t, 1, stats.Profit)
	require.Equal(t, 2, stats.Loss)
	require.Equal(t, 50.0, stats.TotalProfit)
	require.Equal(t, 20.0, stats.TotalLoss)
	require.InDelta(t, 100.0/3, stats.WinRate, 1e-9)
	require.Equal(t, 5.0, stats.AverageLeverage)
}

func TestCalculator_Funding(t *testing.T) {
	c := testCalculator(t, 0.05)

	long := openPosition(t, c, model.Long, 100, 10, 10)
	require.InDelta(t, 0.01, c.Funding(long, 0.0001), 1e-12)
	short := openPosition(t, c, model.Short, 100, 10, 10)
	require.InDelta(t, -0.01, c.Funding(short, 0.0001), 1e-12)
}

func TestCalculator_CreatePosition(t *testing.T) {
	c := testCalculator(t, 0.05)
	now := time.Now()

	p, err := c.CreatePosition("acc", &model.OrderParams{
		Direction:  model.Short,
		Margin:     20,
		Leverage:   5,
		StopLoss:   model.Float(2050),
		TakeProfit: model.Float(1900),
	}, 2000, now)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "acc", p.Account)
	require.Equal(t, model.StatusOpen, p.Status)
	require.Equal(t, 100.0, p.Size)
	require.Equal(t, 2000.0, p.EntryPrice)
	require.Greater(t, p.LiquidationPrice, p.EntryPrice)
	require.Nil(t, p.PnL)
	require.Nil(t, p.ExitPrice)
	require.Equal(t, 2050.0, *p.StopLoss)
	require.Equal(t, now, p.Created)

	other, err := c.CreatePosition("acc", &model.OrderParams{Direction: model.Long, Margin: 1, Leverage: 1}, 2000, now)
	require.NoError(t, err)
	require.NotEqual(t, p.ID, other.ID)
}

func TestCalculator_CreatePosition_Invalid(t *testing.T) {
	c := testCalculator(t, 0.05)
	valid := func() *model.OrderParams {
		return &model.OrderParams{Direction: model.Long, Margin: 10, Leverage: 10}
	}
	cases := map[string]struct {
		params *model.OrderParams
		price  float64
		field  string
	}{
		"zero price":         {params: valid(), price: 0, field: "currentPrice"},
		"negative margin":    {params: &model.OrderParams{Direction: model.Long, Margin: -1, Leverage: 10}, price: 100, field: "margin"},
		"leverage below one": {params: &model.OrderParams{Direction: model.Long, Margin: 10, Leverage: 0.5}, price: 100, field: "leverage"},
		"unknown direction":  {params: &model.OrderParams{Direction: "up", Margin: 10, Leverage: 10}, price: 100, field: "direction"},
		"negative stop loss": {params: &model.OrderParams{Direction: model.Long, Margin: 10, Leverage: 10, StopLoss: model.Float(-1)}, price: 100, field: "stopLoss"},
		"zero take profit":   {params: &model.OrderParams{Direction: model.Long, Margin: 10, Leverage: 10, TakeProfit: model.Float(0)}, price: 100, field: "takeProfit"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.CreatePosition("acc", tc.params, tc.price, time.Now())
			require.ErrorIs(t, err, ErrInvalidInput)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Equal(t, tc.field, vErr.Field)
		})
	}

	degenerate := testCalculator(t, 0.2)
	_, err := degenerate.CreatePosition("acc", valid(), 100, time.Now())
	require.ErrorIs(t, err, ErrDegenerateLiquidation)
}

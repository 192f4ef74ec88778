package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/calculator"
	"github.com/OVantsevich/AurumTrust-Trading/internal/metrics"
	"github.com/OVantsevich/AurumTrust-Trading/internal/model"
	"github.com/OVantsevich/AurumTrust-Trading/internal/repository"
	"github.com/OVantsevich/AurumTrust-Trading/internal/service/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccount = "0x00000000000000000000000000000000000000aa"

var testNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

// settablePrice price service whose price the test moves
type settablePrice struct {
	mu    sync.Mutex
	price float64
	err   error
}

func (s *settablePrice) set(price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.price = price
}

func (s *settablePrice) GetCurrentPrice(context.Context) (*model.PriceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &model.PriceResult{Price: s.price, IsReal: true, Source: "test"}, nil
}

func (s *settablePrice) GetHistory(_ context.Context, days int) ([]*model.PricePoint, error) {
	return make([]*model.PricePoint, days), nil
}

type testEnv struct {
	trading   *Trading
	positions *repository.MemoryPosition
	ledger    *repository.PaperLedger
	prices    *settablePrice
	metrics   *metrics.Metrics
}

func newTestCalculator(t *testing.T) *calculator.Calculator {
	calc, err := calculator.NewCalculator(0.05, 100)
	require.NoError(t, err)
	return calc
}

func newTestEnv(t *testing.T, ledger Ledger) *testEnv {
	env := &testEnv{
		positions: repository.NewMemoryPositionRepository(),
		ledger:    repository.NewPaperLedger(100, nil),
		prices:    &settablePrice{price: 100},
		metrics:   metrics.NewMetrics(prometheus.NewRegistry()),
	}
	if ledger == nil {
		ledger = env.ledger
	}
	env.trading = NewTrading(newTestCalculator(t), env.positions, ledger, env.prices, repository.NoopTransactor{},
		repository.NewListenersRepository(), env.metrics, Options{
			PollInterval:    10 * time.Millisecond,
			FundingRate:     0.01,
			FundingInterval: 8 * time.Hour,
		})
	env.trading.now = func() time.Time { return testNow }
	return env
}

func long(margin, leverage float64) *model.OrderParams {
	return &model.OrderParams{Direction: model.Long, Margin: margin, Leverage: leverage}
}

func TestTrading_CreatePosition(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	position, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)
	require.Equal(t, model.StatusOpen, position.Status)
	require.Equal(t, 100.0, position.EntryPrice)
	require.Equal(t, 100.0, position.Size)
	require.InDelta(t, 95, position.LiquidationPrice, 1e-9)
	require.Equal(t, testNow, position.Created)

	stored, err := env.trading.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, position, stored)

	balance, err := env.trading.GetBalance(ctx, testAccount)
	require.NoError(t, err)
	require.Equal(t, 90.0, balance)
}

func TestTrading_CreatePosition_Rejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	_, err := env.trading.CreatePosition(ctx, testAccount, long(101, 2))
	require.ErrorIs(t, err, model.ErrInsufficientBalance)

	_, err = env.trading.CreatePosition(ctx, testAccount, long(10, 0.5))
	var validationErr *calculator.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "leverage", validationErr.Field)
	require.ErrorIs(t, err, calculator.ErrInvalidInput)

	_, err = env.trading.CreatePosition(ctx, "", long(10, 2))
	require.ErrorIs(t, err, calculator.ErrInvalidInput)

	_, err = env.trading.CreatePosition(ctx, testAccount, long(10, 20))
	require.ErrorIs(t, err, calculator.ErrDegenerateLiquidation)

	env.prices.set(0)
	_, err = env.trading.CreatePosition(ctx, testAccount, long(10, 2))
	require.ErrorIs(t, err, model.ErrNoPrice)

	positions, err := env.trading.GetAccountPositions(ctx, testAccount)
	require.NoError(t, err)
	require.Empty(t, positions)
	balance, err := env.trading.GetBalance(ctx, testAccount)
	require.NoError(t, err)
	require.Equal(t, 100.0, balance)
}

func TestTrading_ClosePosition(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	position, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)

	env.prices.set(105)
	pnl, err := env.trading.GetUnrealizedPnL(ctx, position.ID)
	require.NoError(t, err)
	require.InDelta(t, 5, pnl, 1e-9)

	closed, err := env.trading.ClosePosition(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusClosed, closed.Status)
	require.Equal(t, model.ReasonManual, closed.CloseReason)
	require.Equal(t, model.ResultProfit, closed.Result)
	require.Equal(t, 105.0, *closed.ExitPrice)
	require.InDelta(t, 5, *closed.PnL, 1e-9)

	_, err = env.trading.ClosePosition(ctx, position.ID)
	require.ErrorIs(t, err, model.ErrPositionNotOpen)
	_, err = env.trading.ClosePosition(ctx, "missing")
	require.ErrorIs(t, err, model.ErrPositionNotFound)

	balance, err := env.trading.GetBalance(ctx, testAccount)
	require.NoError(t, err)
	require.InDelta(t, 105, balance, 1e-9)
	require.Equal(t, 1.0, testutil.ToFloat64(env.metrics.Transitions.WithLabelValues("manual")))

	pnl, err = env.trading.GetUnrealizedPnL(ctx, position.ID)
	require.NoError(t, err)
	require.InDelta(t, 5, pnl, 1e-9)
}

func TestTrading_ClosePosition_LiquidationWins(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	position, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)

	env.prices.set(90)
	closed, err := env.trading.ClosePosition(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusLiquidated, closed.Status)
	require.InDelta(t, 95, *closed.ExitPrice, 1e-9)
	require.Equal(t, model.ResultLoss, closed.Result)
}

func TestTrading_EvaluateAccount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	liquidated, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)
	stopped, err := env.trading.CreatePosition(ctx, testAccount, long(10, 2))
	require.NoError(t, err)
	require.NoError(t, env.trading.SetStopLoss(ctx, stopped.ID, 97))
	untouched, err := env.trading.CreatePosition(ctx, testAccount, long(10, 2))
	require.NoError(t, err)

	report, err := env.trading.EvaluateAccount(ctx, testAccount, 94)
	require.NoError(t, err)
	require.Empty(t, report.Failed)
	require.Len(t, report.Notifications, 2)

	byID := make(map[string]*model.Notification)
	for _, n := range report.Notifications {
		byID[n.PositionID] = n
	}
	require.Equal(t, model.ReasonLiquidation, byID[liquidated.ID].Reason)
	require.InDelta(t, 95, byID[liquidated.ID].Price, 1e-9)
	require.InDelta(t, -5, byID[liquidated.ID].PnL, 1e-9)
	require.Equal(t, model.ReasonStopLoss, byID[stopped.ID].Reason)
	require.Equal(t, 94.0, byID[stopped.ID].Price)

	stored, err := env.trading.GetPositionByID(ctx, untouched.ID)
	require.NoError(t, err)
	require.True(t, stored.IsOpen())

	// 70 left after three opens, liquidation returns 5, stop loss returns 10 - 1.2
	balance, err := env.trading.GetBalance(ctx, testAccount)
	require.NoError(t, err)
	require.InDelta(t, 83.8, balance, 1e-9)

	report, err = env.trading.EvaluateAccount(ctx, testAccount, 94)
	require.NoError(t, err)
	require.Empty(t, report.Notifications)

	_, err = env.trading.EvaluateAccount(ctx, testAccount, -1)
	require.ErrorIs(t, err, model.ErrNoPrice)
	require.Equal(t, 1.0, testutil.ToFloat64(env.metrics.SkippedTicks.WithLabelValues("invalid_price")))
}

func TestTrading_EvaluateAccount_LedgerFailureKeepsOpen(t *testing.T) {
	ctx := context.Background()
	ledger := mocks.NewLedger(t)
	env := newTestEnv(t, ledger)

	ledger.On("ExecuteOpen", mock.Anything, mock.AnythingOfType("*model.Position")).
		Return(&model.Confirmation{ID: "open"}, nil).Once()
	ledger.On("ExecuteClose", mock.Anything, mock.AnythingOfType("*model.Position")).
		Return(nil, errors.New("ledger unavailable")).Once()

	position, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)

	report, err := env.trading.EvaluateAccount(ctx, testAccount, 90)
	require.NoError(t, err)
	require.Empty(t, report.Notifications)
	require.ErrorIs(t, report.Failed[position.ID], model.ErrLedger)

	stored, err := env.trading.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, position, stored)
	require.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LedgerFailures.WithLabelValues("close")))
	require.Zero(t, testutil.ToFloat64(env.metrics.Transitions.WithLabelValues("liquidation")))

	ledger.On("ExecuteClose", mock.Anything, mock.AnythingOfType("*model.Position")).
		Return(&model.Confirmation{ID: "close"}, nil).Once()
	report, err = env.trading.EvaluateAccount(ctx, testAccount, 90)
	require.NoError(t, err)
	require.Len(t, report.Notifications, 1)
}

func TestTrading_EvaluateAccount_UpdateFailure(t *testing.T) {
	ctx := context.Background()
	calc := newTestCalculator(t)
	positions := mocks.NewPositionsRepository(t)
	ledger := mocks.NewLedger(t)
	transactor := mocks.NewTransactor(t)
	trading := NewTrading(calc, positions, ledger, &settablePrice{price: 100}, transactor, nil, nil, Options{})

	position, err := calc.CreatePosition(testAccount, long(10, 10), 100, testNow)
	require.NoError(t, err)
	failure := errors.New("connection reset")

	positions.On("GetOpenPositions", mock.Anything, testAccount).Return([]*model.Position{position}, nil)
	transactor.On("WithinTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	ledger.On("ExecuteClose", mock.Anything, mock.MatchedBy(func(p *model.Position) bool {
		return p.ID == position.ID && p.Status == model.StatusLiquidated
	})).Return(&model.Confirmation{}, nil)
	positions.On("UpdatePosition", mock.Anything, mock.AnythingOfType("*model.Position")).Return(failure)

	report, err := trading.EvaluateAccount(ctx, testAccount, 80)
	require.NoError(t, err)
	require.ErrorIs(t, report.Failed[position.ID], failure)
	require.True(t, position.IsOpen())
}

// flakyPositions memory store whose next UpdatePosition fails
type flakyPositions struct {
	*repository.MemoryPosition
	failNext atomic.Bool
}

func (f *flakyPositions) UpdatePosition(ctx context.Context, position *model.Position) error {
	if f.failNext.CompareAndSwap(true, false) {
		return errors.New("write failed")
	}
	return f.MemoryPosition.UpdatePosition(ctx, position)
}

func TestTrading_EvaluateAccount_PaperRetryAfterUpdateFailure(t *testing.T) {
	ctx := context.Background()
	positions := &flakyPositions{MemoryPosition: repository.NewMemoryPositionRepository()}
	ledger := repository.NewPaperLedger(100, nil)
	trading := NewTrading(newTestCalculator(t), positions, ledger, &settablePrice{price: 100}, repository.NoopTransactor{},
		repository.NewListenersRepository(), nil, Options{FundingInterval: time.Hour})

	position, err := trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)

	positions.failNext.Store(true)
	report, err := trading.EvaluateAccount(ctx, testAccount, 80)
	require.NoError(t, err)
	require.Error(t, report.Failed[position.ID])

	report, err = trading.EvaluateAccount(ctx, testAccount, 80)
	require.NoError(t, err)
	require.Empty(t, report.Failed)
	require.Len(t, report.Notifications, 1)

	stored, err := trading.GetPositionByID(ctx, position.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusLiquidated, stored.Status)

	// credited once: 100 - 10 + (10 - 5)
	balance, err := trading.GetBalance(ctx, testAccount)
	require.NoError(t, err)
	require.InDelta(t, 95, balance, 1e-9)
}

func TestTrading_StopLossTakeProfit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	position, err := env.trading.CreatePosition(ctx, testAccount, long(10, 2))
	require.NoError(t, err)

	require.ErrorIs(t, env.trading.SetStopLoss(ctx, position.ID, 0), calculator.ErrInvalidInput)
	require.ErrorIs(t, env.trading.SetTakeProfit(ctx, position.ID, -3), calculator.ErrInvalidInput)
	require.ErrorIs(t, env.trading.SetTakeProfit(ctx, "missing", 120), model.ErrPositionNotFound)
	require.NoError(t, env.trading.SetTakeProfit(ctx, position.ID, 120))

	report, err := env.trading.EvaluateAccount(ctx, testAccount, 121)
	require.NoError(t, err)
	require.Len(t, report.Notifications, 1)
	require.Equal(t, model.ReasonTakeProfit, report.Notifications[0].Reason)

	require.ErrorIs(t, env.trading.SetStopLoss(ctx, position.ID, 90), model.ErrPositionNotOpen)
}

func TestTrading_GetStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	stats, err := env.trading.GetStats(ctx, testAccount)
	require.NoError(t, err)
	require.Equal(t, model.TradingStats{}, stats)

	winner, err := env.trading.CreatePosition(ctx, testAccount, long(10, 2))
	require.NoError(t, err)
	_, err = env.trading.CreatePosition(ctx, testAccount, long(10, 4))
	require.NoError(t, err)
	env.prices.set(110)
	_, err = env.trading.ClosePosition(ctx, winner.ID)
	require.NoError(t, err)

	stats, err = env.trading.GetStats(ctx, testAccount)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Profit)
	require.Zero(t, stats.Loss)
	require.InDelta(t, 2, stats.TotalProfit, 1e-9)
	require.Equal(t, 3.0, stats.AverageLeverage)
	require.Equal(t, 100.0, stats.WinRate)
}

func settledPosition(id, account string, pnl float64) *model.Position {
	result := model.ResultLoss
	if pnl > 0 {
		result = model.ResultProfit
	}
	return &model.Position{
		ID:               id,
		Account:          account,
		Direction:        model.Long,
		Status:           model.StatusClosed,
		Result:           result,
		CloseReason:      model.ReasonManual,
		Leverage:         2,
		EntryPrice:       100,
		LiquidationPrice: 52.5,
		Size:             20,
		Margin:           10,
		PnL:              model.Float(pnl),
		ExitPrice:        model.Float(100 + pnl*5),
		Created:          testNow,
		Updated:          testNow,
		Closed:           testNow,
	}
}

func TestTrading_GetLeaderboard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	entries, err := env.trading.GetLeaderboard(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, entries)

	for _, p := range []*model.Position{
		settledPosition("p1", "acc-a", 4),
		settledPosition("p2", "acc-a", -2),
		settledPosition("p3", "acc-b", 9),
		settledPosition("p4", "acc-c", 1),
		settledPosition("p5", "acc-c", 3),
	} {
		require.NoError(t, env.positions.CreatePosition(ctx, p))
	}
	// open positions do not rank
	_, err = env.trading.CreatePosition(ctx, "acc-d", long(10, 2))
	require.NoError(t, err)

	entries, err = env.trading.GetLeaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, &model.LeaderboardEntry{Account: "acc-b", TotalWinnings: 9, TotalBets: 1, WinCount: 1, WinRate: 100}, entries[0])
	// equal winnings, higher win rate first
	require.Equal(t, "acc-c", entries[1].Account)
	require.Equal(t, "acc-a", entries[2].Account)
	require.Equal(t, 2, entries[2].TotalBets)
	require.Equal(t, 50.0, entries[2].WinRate)

	entries, err = env.trading.GetLeaderboard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = env.trading.GetLeaderboard(ctx, -1)
	require.ErrorIs(t, err, calculator.ErrInvalidInput)
	_, err = env.trading.GetLeaderboard(ctx, 101)
	require.ErrorIs(t, err, calculator.ErrInvalidInput)
}

func TestTrading_GetFundingInfo(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	_, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)
	_, err = env.trading.CreatePosition(ctx, testAccount, &model.OrderParams{Direction: model.Short, Margin: 20, Leverage: 5})
	require.NoError(t, err)

	info, err := env.trading.GetFundingInfo(ctx, testAccount)
	require.NoError(t, err)
	require.Equal(t, 0.01, info.Rate)
	require.Equal(t, time.Date(2024, 5, 1, 16, 0, 0, 0, time.UTC), info.NextTime)
	require.InDelta(t, 0.01, info.Paid, 1e-12)
	require.InDelta(t, 0.01, info.Received, 1e-12)

	info, err = env.trading.GetFundingInfo(ctx, "")
	require.NoError(t, err)
	require.Zero(t, info.Paid)
}

func TestTrading_GetPriceHistory(t *testing.T) {
	env := newTestEnv(t, nil)
	points, err := env.trading.GetPriceHistory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, points, 7)

	env.prices.err = errors.New("down")
	_, err = env.trading.GetCurrentPrice(context.Background())
	require.Error(t, err)
}

// slowLedger counts overlapping close calls per account
type slowLedger struct {
	*repository.PaperLedger
	running  int32
	overlaps int32
	closes   int32
}

func (l *slowLedger) ExecuteClose(ctx context.Context, position *model.Position) (*model.Confirmation, error) {
	if atomic.AddInt32(&l.running, 1) > 1 {
		atomic.AddInt32(&l.overlaps, 1)
	}
	defer atomic.AddInt32(&l.running, -1)
	atomic.AddInt32(&l.closes, 1)
	time.Sleep(5 * time.Millisecond)
	return l.PaperLedger.ExecuteClose(ctx, position)
}

func TestTrading_TicksSerializedPerAccount(t *testing.T) {
	ctx := context.Background()
	ledger := &slowLedger{PaperLedger: repository.NewPaperLedger(1000, nil)}
	env := newTestEnv(t, ledger)

	for i := 0; i < 5; i++ {
		_, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
		require.NoError(t, err)
	}

	env.prices.set(90)
	for i := 0; i < 20; i++ {
		env.trading.tick(ctx)
	}
	env.trading.listenersRepository.Close()

	require.Zero(t, atomic.LoadInt32(&ledger.overlaps))
	require.Equal(t, int32(5), atomic.LoadInt32(&ledger.closes))
	open, err := env.positions.GetOpenPositions(ctx, testAccount)
	require.NoError(t, err)
	require.Empty(t, open)
}

func TestTrading_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	env := newTestEnv(t, nil)

	position, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- env.trading.Run(ctx) }()

	env.prices.set(94)
	require.Eventually(t, func() bool {
		stored, err := env.trading.GetPositionByID(ctx, position.ID)
		return err == nil && stored.Status == model.StatusLiquidated
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("driver did not stop")
	}
}

func TestTrading_TickSkipped(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)
	_, err := env.trading.CreatePosition(ctx, testAccount, long(10, 10))
	require.NoError(t, err)

	env.prices.set(0)
	require.Zero(t, env.trading.tick(ctx))
	require.Equal(t, 1.0, testutil.ToFloat64(env.metrics.SkippedTicks.WithLabelValues("invalid_price")))

	env.prices.err = model.ErrNoPrice
	require.Zero(t, env.trading.tick(ctx))
	require.Equal(t, 1.0, testutil.ToFloat64(env.metrics.SkippedTicks.WithLabelValues("no_price")))

	env.prices.err = nil
	env.prices.set(100)
	require.Equal(t, 1, env.trading.tick(ctx))
	env.trading.listenersRepository.Close()
}

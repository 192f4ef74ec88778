// Package service trading
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/calculator"
	"github.com/OVantsevich/AurumTrust-Trading/internal/lifecycle"
	"github.com/OVantsevich/AurumTrust-Trading/internal/metrics"
	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/sirupsen/logrus"
)

// PositionsRepository positions repository
//
//go:generate mockery --name=PositionsRepository --case=underscore --output=./mocks
type PositionsRepository interface {
	CreatePosition(ctx context.Context, position *model.Position) error
	GetPositionByID(ctx context.Context, id string) (*model.Position, error)
	GetAccountPositions(ctx context.Context, account string) ([]*model.Position, error)
	GetOpenPositions(ctx context.Context, account string) ([]*model.Position, error)
	GetOpenAccounts(ctx context.Context) ([]string, error)
	GetSettledPositions(ctx context.Context) ([]*model.Position, error)
	UpdatePosition(ctx context.Context, position *model.Position) error
	SetStopLoss(ctx context.Context, id string, stopLoss float64, updated time.Time) error
	SetTakeProfit(ctx context.Context, id string, takeProfit float64, updated time.Time) error
}

// Ledger account balances
//
//go:generate mockery --name=Ledger --case=underscore --output=./mocks
type Ledger interface {
	GetBalance(ctx context.Context, account string) (float64, error)
	ExecuteOpen(ctx context.Context, position *model.Position) (*model.Confirmation, error)
	ExecuteClose(ctx context.Context, position *model.Position) (*model.Confirmation, error)
}

// PriceService price of the traded asset
//
//go:generate mockery --name=PriceService --case=underscore --output=./mocks
type PriceService interface {
	GetCurrentPrice(ctx context.Context) (*model.PriceResult, error)
	GetHistory(ctx context.Context, days int) ([]*model.PricePoint, error)
}

// Transactor runs fn in one transaction
//
//go:generate mockery --name=Transactor --case=underscore --output=./mocks
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ListenersRepository pool of per account tick goroutines
//
//go:generate mockery --name=ListenersRepository --case=underscore --output=./mocks
type ListenersRepository interface {
	Register(ctx context.Context, account string, handle func(ctx context.Context, account string, price float64)) bool
	Remove(account string) bool
	Send(account string, price float64) bool
	Accounts() []string
	Close()
}

// Options tunables of the trading service
type Options struct {
	PollInterval time.Duration
	// FundingRate percent per FundingInterval
	FundingRate     float64
	FundingInterval time.Duration
}

// TickReport outcome of one evaluation of an account
type TickReport struct {
	Account       string
	Price         float64
	Notifications []*model.Notification
	Failed        map[string]error
}

// Trading trading service
type Trading struct {
	calc                *calculator.Calculator
	positionsRepository PositionsRepository
	ledger              Ledger
	priceService        PriceService
	transactor          Transactor
	listenersRepository ListenersRepository
	metrics             *metrics.Metrics
	opts                Options

	now   func() time.Time
	locks sync.Map // account -> *sync.Mutex
}

// NewTrading constructor
func NewTrading(calc *calculator.Calculator, pr PositionsRepository, l Ledger, ps PriceService, tr Transactor,
	lr ListenersRepository, m *metrics.Metrics, opts Options,
) *Trading {
	return &Trading{
		calc:                calc,
		positionsRepository: pr,
		ledger:              l,
		priceService:        ps,
		transactor:          tr,
		listenersRepository: lr,
		metrics:             m,
		opts:                opts,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

// CreatePosition open market position for account at current price
func (t *Trading) CreatePosition(ctx context.Context, account string, params *model.OrderParams) (*model.Position, error) {
	if account == "" {
		return nil, fmt.Errorf("trading - CreatePosition: %w",
			&calculator.ValidationError{Field: "account", Value: account, Reason: "must not be empty"})
	}
	price, err := t.currentPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("trading - CreatePosition - currentPrice: %w", err)
	}
	position, err := t.calc.CreatePosition(account, params, price, t.now())
	if err != nil {
		return nil, fmt.Errorf("trading - CreatePosition - CreatePosition: %w", err)
	}

	unlock := t.lock(account)
	defer unlock()
	err = t.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := t.ledger.ExecuteOpen(ctx, position); err != nil {
			if !errors.Is(err, model.ErrInsufficientBalance) {
				t.metrics.LedgerFailure("open")
			}
			return fmt.Errorf("ExecuteOpen: %w", err)
		}
		return t.positionsRepository.CreatePosition(ctx, position)
	})
	if err != nil {
		return nil, fmt.Errorf("trading - CreatePosition - WithinTransaction: %w", err)
	}
	return position, nil
}

// ClosePosition user close at current price, a crossed liquidation price still wins
func (t *Trading) ClosePosition(ctx context.Context, positionID string) (*model.Position, error) {
	position, err := t.positionsRepository.GetPositionByID(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("trading - ClosePosition - GetPositionByID: %w", err)
	}
	if !position.IsOpen() {
		return nil, fmt.Errorf("trading - ClosePosition: %w", model.ErrPositionNotOpen)
	}
	price, err := t.currentPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("trading - ClosePosition - currentPrice: %w", err)
	}

	unlock := t.lock(position.Account)
	defer unlock()
	// re-read under the account lock, a tick may have closed it meanwhile
	position, err = t.positionsRepository.GetPositionByID(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("trading - ClosePosition - GetPositionByID: %w", err)
	}
	outcome, ok := lifecycle.Plan(t.calc, position, price, lifecycle.IntentClose)
	if !ok {
		return nil, fmt.Errorf("trading - ClosePosition: %w", model.ErrPositionNotOpen)
	}
	closed, _, err := t.commit(ctx, position, outcome)
	if err != nil {
		return nil, fmt.Errorf("trading - ClosePosition - commit: %w", err)
	}
	return closed, nil
}

// SetStopLoss set stop loss of open position
func (t *Trading) SetStopLoss(ctx context.Context, positionID string, stopLoss float64) error {
	if !calculator.ValidPrice(stopLoss) {
		return fmt.Errorf("trading - SetStopLoss: %w",
			&calculator.ValidationError{Field: "stopLoss", Value: stopLoss, Reason: "must be positive"})
	}
	if err := t.positionsRepository.SetStopLoss(ctx, positionID, stopLoss, t.now()); err != nil {
		return fmt.Errorf("trading - SetStopLoss - SetStopLoss: %w", err)
	}
	return nil
}

// SetTakeProfit set take profit of open position
func (t *Trading) SetTakeProfit(ctx context.Context, positionID string, takeProfit float64) error {
	if !calculator.ValidPrice(takeProfit) {
		return fmt.Errorf("trading - SetTakeProfit: %w",
			&calculator.ValidationError{Field: "takeProfit", Value: takeProfit, Reason: "must be positive"})
	}
	if err := t.positionsRepository.SetTakeProfit(ctx, positionID, takeProfit, t.now()); err != nil {
		return fmt.Errorf("trading - SetTakeProfit - SetTakeProfit: %w", err)
	}
	return nil
}

// GetPositionByID get position by id
func (t *Trading) GetPositionByID(ctx context.Context, positionID string) (*model.Position, error) {
	position, err := t.positionsRepository.GetPositionByID(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("trading - GetPositionByID - GetPositionByID: %w", err)
	}
	return position, nil
}

// GetAccountPositions all positions of account, newest first
func (t *Trading) GetAccountPositions(ctx context.Context, account string) ([]*model.Position, error) {
	positions, err := t.positionsRepository.GetAccountPositions(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("trading - GetAccountPositions - GetAccountPositions: %w", err)
	}
	return positions, nil
}

// GetStats trading statistics of account
func (t *Trading) GetStats(ctx context.Context, account string) (model.TradingStats, error) {
	positions, err := t.positionsRepository.GetAccountPositions(ctx, account)
	if err != nil {
		return model.TradingStats{}, fmt.Errorf("trading - GetStats - GetAccountPositions: %w", err)
	}
	return t.calc.Stats(positions), nil
}

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// GetLeaderboard accounts ranked by winnings over settled positions, zero limit means default size
func (t *Trading) GetLeaderboard(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	if limit < 0 || limit > maxLeaderboardSize {
		return nil, fmt.Errorf("trading - GetLeaderboard: %w", &calculator.ValidationError{
			Field: "limit", Value: limit, Reason: fmt.Sprintf("must be in [0, %d]", maxLeaderboardSize)})
	}
	if limit == 0 {
		limit = defaultLeaderboardSize
	}
	positions, err := t.positionsRepository.GetSettledPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("trading - GetLeaderboard - GetSettledPositions: %w", err)
	}

	byAccount := make(map[string][]*model.Position)
	for _, p := range positions {
		byAccount[p.Account] = append(byAccount[p.Account], p)
	}
	entries := make([]*model.LeaderboardEntry, 0, len(byAccount))
	for account, settled := range byAccount {
		stats := t.calc.Stats(settled)
		entries = append(entries, &model.LeaderboardEntry{
			Account:       account,
			TotalWinnings: stats.TotalProfit,
			TotalBets:     stats.Profit + stats.Loss,
			WinCount:      stats.Profit,
			WinRate:       stats.WinRate,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalWinnings != b.TotalWinnings {
			return a.TotalWinnings > b.TotalWinnings
		}
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		return a.Account < b.Account
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// GetBalance ledger balance of account
func (t *Trading) GetBalance(ctx context.Context, account string) (float64, error) {
	balance, err := t.ledger.GetBalance(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("trading - GetBalance - GetBalance: %w", err)
	}
	return balance, nil
}

// GetUnrealizedPnL pnl of open position at current price, realized pnl once closed
func (t *Trading) GetUnrealizedPnL(ctx context.Context, positionID string) (float64, error) {
	position, err := t.positionsRepository.GetPositionByID(ctx, positionID)
	if err != nil {
		return 0, fmt.Errorf("trading - GetUnrealizedPnL - GetPositionByID: %w", err)
	}
	if !position.IsOpen() {
		if position.PnL == nil {
			return 0, nil
		}
		return *position.PnL, nil
	}
	price, err := t.currentPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("trading - GetUnrealizedPnL - currentPrice: %w", err)
	}
	return t.calc.PnL(position, price), nil
}

// GetCurrentPrice current price with its source
func (t *Trading) GetCurrentPrice(ctx context.Context) (*model.PriceResult, error) {
	result, err := t.priceService.GetCurrentPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("trading - GetCurrentPrice - GetCurrentPrice: %w", err)
	}
	return result, nil
}

// GetPriceHistory daily prices of the last days
func (t *Trading) GetPriceHistory(ctx context.Context, days int) ([]*model.PricePoint, error) {
	points, err := t.priceService.GetHistory(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("trading - GetPriceHistory - GetHistory: %w", err)
	}
	return points, nil
}

// GetFundingInfo funding rate, next funding boundary and what open positions of account pay or receive per interval.
// Funding is reported only, balances are never charged.
func (t *Trading) GetFundingInfo(ctx context.Context, account string) (*model.FundingInfo, error) {
	now := t.now()
	info := &model.FundingInfo{
		Rate:     t.opts.FundingRate,
		NextTime: now.Truncate(t.opts.FundingInterval).Add(t.opts.FundingInterval),
	}
	if account == "" {
		return info, nil
	}
	positions, err := t.positionsRepository.GetOpenPositions(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("trading - GetFundingInfo - GetOpenPositions: %w", err)
	}
	for _, p := range positions {
		funding := t.calc.Funding(p, t.opts.FundingRate/100)
		if funding > 0 {
			info.Paid += funding
		} else {
			info.Received += math.Abs(funding)
		}
	}
	return info, nil
}

// EvaluateAccount one lifecycle tick of all open positions of account.
// A transition is kept only when ledger and storage both succeed, otherwise the position stays open.
func (t *Trading) EvaluateAccount(ctx context.Context, account string, price float64) (*TickReport, error) {
	if !calculator.ValidPrice(price) {
		t.metrics.SkippedTick("invalid_price")
		return nil, fmt.Errorf("trading - EvaluateAccount: price %v: %w", price, model.ErrNoPrice)
	}

	unlock := t.lock(account)
	defer unlock()
	positions, err := t.positionsRepository.GetOpenPositions(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("trading - EvaluateAccount - GetOpenPositions: %w", err)
	}

	report := &TickReport{Account: account, Price: price, Failed: make(map[string]error)}
	for _, position := range positions {
		outcome, ok := lifecycle.Plan(t.calc, position, price, lifecycle.IntentEvaluate)
		if !ok {
			continue
		}
		_, notification, err := t.commit(ctx, position, outcome)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"positionID": position.ID,
				"account":    account,
				"reason":     outcome.Reason,
			}).Errorf("trading - EvaluateAccount - commit: %v", err)
			report.Failed[position.ID] = err
			continue
		}
		report.Notifications = append(report.Notifications, notification)
	}
	return report, nil
}

// commit settles the outcome with the ledger and persists it in one transaction
func (t *Trading) commit(ctx context.Context, position *model.Position, outcome lifecycle.Outcome) (*model.Position, *model.Notification, error) {
	now := t.now()
	next := lifecycle.Apply(position, outcome, now)
	err := t.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := t.ledger.ExecuteClose(ctx, next); err != nil {
			t.metrics.LedgerFailure("close")
			return fmt.Errorf("ExecuteClose: %w: %w", model.ErrLedger, err)
		}
		if err := t.positionsRepository.UpdatePosition(ctx, next); err != nil {
			return fmt.Errorf("UpdatePosition: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	t.metrics.Transition(string(outcome.Reason))
	return next, lifecycle.Notify(next, outcome, now), nil
}

func (t *Trading) currentPrice(ctx context.Context) (float64, error) {
	result, err := t.priceService.GetCurrentPrice(ctx)
	if err != nil {
		return 0, err
	}
	if !calculator.ValidPrice(result.Price) {
		return 0, fmt.Errorf("price %v from %s: %w", result.Price, result.Source, model.ErrNoPrice)
	}
	return result.Price, nil
}

// lock serializes mutations of one account
func (t *Trading) lock(account string) func() {
	mu, _ := t.locks.LoadOrStore(account, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

package service

import (
	"context"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/calculator"

	"github.com/sirupsen/logrus"
)

// Run lifecycle driver, every poll interval the current price is handed to the listener of
// each account with open positions. Evaluations in flight complete before Run returns.
func (t *Trading) Run(ctx context.Context) error {
	defer t.listenersRepository.Close()

	ticker := time.NewTicker(t.opts.PollInterval)
	defer ticker.Stop()

	t.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

// tick one poll, returns number of accounts the price was dispatched to
func (t *Trading) tick(ctx context.Context) int {
	result, err := t.priceService.GetCurrentPrice(ctx)
	if err != nil {
		logrus.Warnf("trading - tick - GetCurrentPrice: %v", err)
		t.metrics.SkippedTick("no_price")
		return 0
	}
	if !calculator.ValidPrice(result.Price) {
		logrus.WithField("source", result.Source).Warnf("trading - tick: invalid price %v", result.Price)
		t.metrics.SkippedTick("invalid_price")
		return 0
	}

	accounts, err := t.positionsRepository.GetOpenAccounts(ctx)
	if err != nil {
		logrus.Errorf("trading - tick - GetOpenAccounts: %v", err)
		t.metrics.SkippedTick("storage")
		return 0
	}

	open := make(map[string]struct{}, len(accounts))
	for _, account := range accounts {
		open[account] = struct{}{}
	}
	for _, account := range t.listenersRepository.Accounts() {
		if _, ok := open[account]; !ok {
			t.listenersRepository.Remove(account)
		}
	}

	sent := 0
	for _, account := range accounts {
		t.listenersRepository.Register(ctx, account, t.handleTick)
		if t.listenersRepository.Send(account, result.Price) {
			sent++
		}
	}
	logrus.WithFields(logrus.Fields{
		"price":    result.Price,
		"source":   result.Source,
		"isReal":   result.IsReal,
		"accounts": sent,
	}).Debug("trading - tick")
	return sent
}

// handleTick called by the account listener, one at a time per account
func (t *Trading) handleTick(ctx context.Context, account string, price float64) {
	report, err := t.EvaluateAccount(ctx, account, price)
	if err != nil {
		logrus.WithField("account", account).Errorf("trading - handleTick - EvaluateAccount: %v", err)
		return
	}
	for _, n := range report.Notifications {
		logrus.WithFields(logrus.Fields{
			"positionID": n.PositionID,
			"account":    n.Account,
			"status":     n.Status,
			"reason":     n.Reason,
			"price":      n.Price,
			"pnl":        n.PnL,
		}).Info("position closed")
	}
}

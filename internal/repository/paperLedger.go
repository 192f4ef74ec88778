package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BalanceSource initial balance of an account, e.g. an on-chain token balance
type BalanceSource interface {
	BalanceOf(ctx context.Context, account string) (float64, error)
}

// PaperLedger simulated in-memory ledger
type PaperLedger struct {
	mu           sync.Mutex
	balances     map[string]float64
	settled      map[string]*model.Confirmation
	startBalance float64
	source       BalanceSource
}

// NewPaperLedger constructor, source may be nil
func NewPaperLedger(startBalance float64, source BalanceSource) *PaperLedger {
	return &PaperLedger{
		balances:     make(map[string]float64),
		settled:      make(map[string]*model.Confirmation),
		startBalance: startBalance,
		source:       source,
	}
}

// GetBalance balance of account
func (l *PaperLedger) GetBalance(ctx context.Context, account string) (float64, error) {
	l.fund(ctx, account)
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account], nil
}

// ExecuteOpen debit margin of a new position
func (l *PaperLedger) ExecuteOpen(ctx context.Context, position *model.Position) (*model.Confirmation, error) {
	l.fund(ctx, position.Account)
	l.mu.Lock()
	defer l.mu.Unlock()
	balance := l.balances[position.Account]
	if balance < position.Margin {
		return nil, fmt.Errorf("paperLedger - ExecuteOpen: %w", model.ErrInsufficientBalance)
	}
	l.balances[position.Account] = balance - position.Margin
	return confirm(position.Account, -position.Margin), nil
}

// ExecuteClose credit margin plus realized pnl, at most once per position.
// Settling an already settled position returns the first confirmation.
func (l *PaperLedger) ExecuteClose(ctx context.Context, position *model.Position) (*model.Confirmation, error) {
	l.fund(ctx, position.Account)
	l.mu.Lock()
	defer l.mu.Unlock()
	if confirmation, ok := l.settled[position.ID]; ok {
		return confirmation, nil
	}
	credit := closeCredit(position)
	l.balances[position.Account] += credit
	confirmation := confirm(position.Account, credit)
	l.settled[position.ID] = confirmation
	return confirmation, nil
}

// fund seeds unknown accounts, the source is queried without holding mu
func (l *PaperLedger) fund(ctx context.Context, account string) {
	l.mu.Lock()
	_, ok := l.balances[account]
	l.mu.Unlock()
	if ok {
		return
	}

	balance := l.startBalance
	if l.source != nil {
		onChain, err := l.source.BalanceOf(ctx, account)
		if err != nil {
			logrus.WithField("account", account).Warnf("paperLedger - fund - BalanceOf: %v", err)
		} else {
			balance = onChain
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok = l.balances[account]; !ok {
		l.balances[account] = balance
	}
}

func confirm(account string, amount float64) *model.Confirmation {
	return &model.Confirmation{
		ID:      uuid.NewString(),
		Account: account,
		Amount:  amount,
		Time:    time.Now().UTC(),
	}
}

package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"
)

// MemoryPosition in-memory position store, records are copied in and out
type MemoryPosition struct {
	mu        sync.RWMutex
	positions map[string]*model.Position
}

// NewMemoryPositionRepository constructor
func NewMemoryPositionRepository() *MemoryPosition {
	return &MemoryPosition{positions: make(map[string]*model.Position)}
}

// CreatePosition create position
func (r *MemoryPosition) CreatePosition(_ context.Context, position *model.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.positions[position.ID]; ok {
		return fmt.Errorf("memoryPosition - CreatePosition: %w", model.ErrPositionExists)
	}
	r.positions[position.ID] = position.Clone()
	return nil
}

// GetPositionByID get position by id
func (r *MemoryPosition) GetPositionByID(_ context.Context, id string) (*model.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	position, ok := r.positions[id]
	if !ok {
		return nil, fmt.Errorf("memoryPosition - GetPositionByID: %w", model.ErrPositionNotFound)
	}
	return position.Clone(), nil
}

// GetAccountPositions all positions of account, newest first
func (r *MemoryPosition) GetAccountPositions(_ context.Context, account string) ([]*model.Position, error) {
	positions := r.filter(func(p *model.Position) bool { return p.Account == account })
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Created.After(positions[j].Created)
	})
	return positions, nil
}

// GetOpenPositions open positions of account, oldest first
func (r *MemoryPosition) GetOpenPositions(_ context.Context, account string) ([]*model.Position, error) {
	positions := r.filter(func(p *model.Position) bool { return p.Account == account && p.IsOpen() })
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Created.Before(positions[j].Created)
	})
	return positions, nil
}

// GetSettledPositions closed and liquidated positions of every account
func (r *MemoryPosition) GetSettledPositions(_ context.Context) ([]*model.Position, error) {
	positions := r.filter(func(p *model.Position) bool { return !p.IsOpen() })
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Closed.Before(positions[j].Closed)
	})
	return positions, nil
}

// GetOpenAccounts accounts having at least one open position
func (r *MemoryPosition) GetOpenAccounts(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var accounts []string
	for _, p := range r.positions {
		if _, ok := seen[p.Account]; ok || !p.IsOpen() {
			continue
		}
		seen[p.Account] = struct{}{}
		accounts = append(accounts, p.Account)
	}
	sort.Strings(accounts)
	return accounts, nil
}

// UpdatePosition persist transition, only an open record may change
func (r *MemoryPosition) UpdatePosition(_ context.Context, position *model.Position) error {
	next := position.Clone()
	return r.modify(position.ID, "UpdatePosition", func(stored *model.Position) {
		stored.Status = next.Status
		stored.Result = next.Result
		stored.CloseReason = next.CloseReason
		stored.PnL = next.PnL
		stored.ExitPrice = next.ExitPrice
		stored.Updated = next.Updated
		stored.Closed = next.Closed
	})
}

// SetStopLoss set stop loss of open position
func (r *MemoryPosition) SetStopLoss(_ context.Context, id string, stopLoss float64, updated time.Time) error {
	return r.modify(id, "SetStopLoss", func(stored *model.Position) {
		stored.StopLoss = model.Float(stopLoss)
		stored.Updated = updated
	})
}

// SetTakeProfit set take profit of open position
func (r *MemoryPosition) SetTakeProfit(_ context.Context, id string, takeProfit float64, updated time.Time) error {
	return r.modify(id, "SetTakeProfit", func(stored *model.Position) {
		stored.TakeProfit = model.Float(takeProfit)
		stored.Updated = updated
	})
}

func (r *MemoryPosition) modify(id, op string, fn func(stored *model.Position)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.positions[id]
	if !ok {
		return fmt.Errorf("memoryPosition - %s: %w", op, model.ErrPositionNotFound)
	}
	if !stored.IsOpen() {
		return fmt.Errorf("memoryPosition - %s: %w", op, model.ErrPositionNotOpen)
	}
	fn(stored)
	return nil
}

func (r *MemoryPosition) filter(keep func(p *model.Position) bool) []*model.Position {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var positions []*model.Position
	for _, p := range r.positions {
		if keep(p) {
			positions = append(positions, p.Clone())
		}
	}
	return positions
}

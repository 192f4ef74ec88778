// Package calculator position risk calculations
package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/google/uuid"
)

// Calculator pure position formulas parametrized by maintenance margin
type Calculator struct {
	maintenanceMargin float64
	maxLeverage       float64
}

// NewCalculator constructor
func NewCalculator(maintenanceMargin, maxLeverage float64) (*Calculator, error) {
	if math.IsNaN(maintenanceMargin) || maintenanceMargin < 0 || maintenanceMargin >= 1 {
		return nil, fmt.Errorf("calculator - NewCalculator: %w",
			invalid("maintenanceMargin", maintenanceMargin, "must be in [0, 1)"))
	}
	if math.IsNaN(maxLeverage) || maxLeverage < 1 {
		return nil, fmt.Errorf("calculator - NewCalculator: %w",
			invalid("maxLeverage", maxLeverage, "must be >= 1"))
	}
	return &Calculator{maintenanceMargin: maintenanceMargin, maxLeverage: maxLeverage}, nil
}

// MaintenanceMargin configured maintenance margin
func (c *Calculator) MaintenanceMargin() float64 {
	return c.maintenanceMargin
}

// ValidPrice positive finite price
func ValidPrice(price float64) bool {
	return price > 0 && !math.IsInf(price, 0) && !math.IsNaN(price)
}

// LiquidationPrice price at which margin is considered exhausted
func (c *Calculator) LiquidationPrice(entryPrice, leverage float64, direction model.Direction) (float64, error) {
	if !ValidPrice(entryPrice) {
		return 0, invalid("entryPrice", entryPrice, "must be positive")
	}
	if err := c.checkLeverage(leverage); err != nil {
		return 0, err
	}
	// buffer between entry and liquidation as a fraction of entry
	buffer := 1/leverage - c.maintenanceMargin
	if buffer <= 0 {
		return 0, fmt.Errorf("%w: maintenance margin %v >= 1/leverage %v",
			ErrDegenerateLiquidation, c.maintenanceMargin, 1/leverage)
	}
	var price float64
	switch direction {
	case model.Long:
		price = entryPrice * (1 - buffer)
	case model.Short:
		price = entryPrice * (1 + buffer)
	default:
		return 0, invalid("direction", direction, "must be long or short")
	}
	// a buffer below float precision rounds back onto entry
	if (direction == model.Long && price >= entryPrice) || (direction == model.Short && price <= entryPrice) {
		return 0, fmt.Errorf("%w: buffer %v lost to rounding at entry %v", ErrDegenerateLiquidation, buffer, entryPrice)
	}
	return price, nil
}

// PnL profit or loss of position at currentPrice
func (c *Calculator) PnL(position *model.Position, currentPrice float64) float64 {
	move := (currentPrice - position.EntryPrice) / position.EntryPrice
	if position.Direction == model.Short {
		move = -move
	}
	return move * position.Size
}

// ShouldLiquidate price crossed liquidation price in the adverse direction, boundary inclusive
func (c *Calculator) ShouldLiquidate(position *model.Position, currentPrice float64) bool {
	if position.Direction == model.Long {
		return currentPrice <= position.LiquidationPrice
	}
	return currentPrice >= position.LiquidationPrice
}

// CheckTakeProfitStopLoss stop loss wins when both thresholds are crossed on one tick
func (c *Calculator) CheckTakeProfitStopLoss(position *model.Position, currentPrice float64) model.Trigger {
	long := position.Direction == model.Long
	if sl := position.StopLoss; sl != nil {
		if (long && currentPrice <= *sl) || (!long && currentPrice >= *sl) {
			return model.Trigger{Triggered: true, Type: model.TriggerStopLoss}
		}
	}
	if tp := position.TakeProfit; tp != nil {
		if (long && currentPrice >= *tp) || (!long && currentPrice <= *tp) {
			return model.Trigger{Triggered: true, Type: model.TriggerTakeProfit}
		}
	}
	return model.Trigger{}
}

// Stats aggregate statistics, leverage is averaged over open and closed positions alike
func (c *Calculator) Stats(positions []*model.Position) model.TradingStats {
	var stats model.TradingStats
	if len(positions) == 0 {
		return stats
	}
	var leverageSum float64
	for _, p := range positions {
		leverageSum += p.Leverage
		if p.PnL == nil {
			continue
		}
		if *p.PnL > 0 {
			stats.Profit++
			stats.TotalProfit += *p.PnL
		} else {
			stats.Loss++
			stats.TotalLoss += math.Abs(*p.PnL)
		}
	}
	if total := stats.Profit + stats.Loss; total > 0 {
		stats.WinRate = float64(stats.Profit) / float64(total) * 100
	}
	stats.AverageLeverage = leverageSum / float64(len(positions))
	return stats
}

// Funding payment for one funding interval, positive means holder pays
func (c *Calculator) Funding(position *model.Position, fundingRate float64) float64 {
	sign := 1.0
	if position.Direction == model.Short {
		sign = -1
	}
	return position.Size * fundingRate * sign
}

// CreatePosition validate order and build open position at currentPrice
func (c *Calculator) CreatePosition(account string, params *model.OrderParams, currentPrice float64, now time.Time) (*model.Position, error) {
	if !ValidPrice(currentPrice) {
		return nil, invalid("currentPrice", currentPrice, "must be positive")
	}
	if !params.Direction.Valid() {
		return nil, invalid("direction", params.Direction, "must be long or short")
	}
	if !ValidPrice(params.Margin) {
		return nil, invalid("margin", params.Margin, "must be positive")
	}
	if err := c.checkLeverage(params.Leverage); err != nil {
		return nil, err
	}
	if params.StopLoss != nil && !ValidPrice(*params.StopLoss) {
		return nil, invalid("stopLoss", *params.StopLoss, "must be positive")
	}
	if params.TakeProfit != nil && !ValidPrice(*params.TakeProfit) {
		return nil, invalid("takeProfit", *params.TakeProfit, "must be positive")
	}
	liquidationPrice, err := c.LiquidationPrice(currentPrice, params.Leverage, params.Direction)
	if err != nil {
		return nil, fmt.Errorf("calculator - CreatePosition - LiquidationPrice: %w", err)
	}

	position := &model.Position{
		ID:               uuid.NewString(),
		Account:          account,
		Direction:        params.Direction,
		Status:           model.StatusOpen,
		Leverage:         params.Leverage,
		EntryPrice:       currentPrice,
		LiquidationPrice: liquidationPrice,
		Size:             params.Margin * params.Leverage,
		Margin:           params.Margin,
		Created:          now,
		Updated:          now,
	}
	if params.StopLoss != nil {
		position.StopLoss = model.Float(*params.StopLoss)
	}
	if params.TakeProfit != nil {
		position.TakeProfit = model.Float(*params.TakeProfit)
	}
	return position, nil
}

func (c *Calculator) checkLeverage(leverage float64) error {
	if math.IsNaN(leverage) || leverage < 1 || leverage > c.maxLeverage {
		return invalid("leverage", leverage, fmt.Sprintf("must be in [1, %v]", c.maxLeverage))
	}
	return nil
}

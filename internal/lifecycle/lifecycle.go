// Package lifecycle position state machine: open -> closed | liquidated
package lifecycle

import (
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/calculator"
	"github.com/OVantsevich/AurumTrust-Trading/internal/model"
)

// Intent what the caller asks for on this evaluation
type Intent int

const (
	// IntentEvaluate price tick, only risk triggers may close the position
	IntentEvaluate Intent = iota
	// IntentClose user asked to close
	IntentClose
)

// Outcome planned transition, not applied yet
type Outcome struct {
	Status    model.Status
	Reason    model.CloseReason
	ExitPrice float64
	PnL       float64
}

// Result profit when pnl strictly positive
func (o Outcome) Result() model.Result {
	if o.PnL > 0 {
		return model.ResultProfit
	}
	return model.ResultLoss
}

// Plan decides the transition for position at currentPrice without touching it.
// Liquidation is checked before user close and before take profit / stop loss.
func Plan(calc *calculator.Calculator, position *model.Position, currentPrice float64, intent Intent) (Outcome, bool) {
	if !position.IsOpen() || !calculator.ValidPrice(currentPrice) {
		return Outcome{}, false
	}
	if calc.ShouldLiquidate(position, currentPrice) {
		return Outcome{
			Status:    model.StatusLiquidated,
			Reason:    model.ReasonLiquidation,
			ExitPrice: position.LiquidationPrice,
			PnL:       calc.PnL(position, position.LiquidationPrice),
		}, true
	}
	if intent == IntentClose {
		return closeAt(calc, position, currentPrice, model.ReasonManual), true
	}
	trigger := calc.CheckTakeProfitStopLoss(position, currentPrice)
	if !trigger.Triggered {
		return Outcome{}, false
	}
	reason := model.ReasonTakeProfit
	if trigger.Type == model.TriggerStopLoss {
		reason = model.ReasonStopLoss
	}
	return closeAt(calc, position, currentPrice, reason), true
}

func closeAt(calc *calculator.Calculator, position *model.Position, price float64, reason model.CloseReason) Outcome {
	return Outcome{
		Status:    model.StatusClosed,
		Reason:    reason,
		ExitPrice: price,
		PnL:       calc.PnL(position, price),
	}
}

// Apply returns a copy of position moved to the outcome state
func Apply(position *model.Position, outcome Outcome, now time.Time) *model.Position {
	next := position.Clone()
	next.Status = outcome.Status
	next.CloseReason = outcome.Reason
	next.Result = outcome.Result()
	next.ExitPrice = model.Float(outcome.ExitPrice)
	next.PnL = model.Float(outcome.PnL)
	next.Closed = now
	next.Updated = now
	return next
}

// Transition plan and apply in one step, position returned as is when nothing happens
func Transition(calc *calculator.Calculator, position *model.Position, currentPrice float64, intent Intent, now time.Time) *model.Position {
	outcome, ok := Plan(calc, position, currentPrice, intent)
	if !ok {
		return position
	}
	return Apply(position, outcome, now)
}

// Notify notification describing an applied outcome
func Notify(position *model.Position, outcome Outcome, now time.Time) *model.Notification {
	return &model.Notification{
		PositionID: position.ID,
		Account:    position.Account,
		Status:     outcome.Status,
		Reason:     outcome.Reason,
		Price:      outcome.ExitPrice,
		PnL:        outcome.PnL,
		Time:       now,
	}
}

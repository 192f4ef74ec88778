// Package model position model
package model

import "time"

// Direction of a position
type Direction string

// Status of a position
type Status string

// Result of a closed position
type Result string

// CloseReason why position left open state
type CloseReason string

const (
	// Long profits when price goes up
	Long Direction = "long"
	// Short profits when price goes down
	Short Direction = "short"
)

const (
	// StatusOpen position is live
	StatusOpen Status = "open"
	// StatusClosed closed by user or by TP/SL
	StatusClosed Status = "closed"
	// StatusLiquidated closed by risk engine
	StatusLiquidated Status = "liquidated"
)

const (
	// ResultProfit realized pnl > 0
	ResultProfit Result = "profit"
	// ResultLoss realized pnl <= 0
	ResultLoss Result = "loss"
)

const (
	// ReasonManual user initiated close
	ReasonManual CloseReason = "manual"
	// ReasonTakeProfit take profit reached
	ReasonTakeProfit CloseReason = "take_profit"
	// ReasonStopLoss stop loss reached
	ReasonStopLoss CloseReason = "stop_loss"
	// ReasonLiquidation liquidation price crossed
	ReasonLiquidation CloseReason = "liquidation"
)

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	return d == Long || d == Short
}

// Position model
type Position struct {
	ID               string      `json:"id"`
	Account          string      `json:"account"`
	Direction        Direction   `json:"direction"`
	Status           Status      `json:"status"`
	Result           Result      `json:"result,omitempty"`
	CloseReason      CloseReason `json:"closeReason,omitempty"`
	Leverage         float64     `json:"leverage"`
	EntryPrice       float64     `json:"entryPrice"`
	LiquidationPrice float64     `json:"liquidationPrice"`
	Size             float64     `json:"size"`
	Margin           float64     `json:"margin"`
	PnL              *float64    `json:"pnl,omitempty"`
	ExitPrice        *float64    `json:"exitPrice,omitempty"`
	StopLoss         *float64    `json:"stopLoss,omitempty"`
	TakeProfit       *float64    `json:"takeProfit,omitempty"`
	Created          time.Time   `json:"created"`
	Updated          time.Time   `json:"updated"`
	Closed           time.Time   `json:"closed,omitempty"`
}

// IsOpen position still open
func (p *Position) IsOpen() bool {
	return p.Status == StatusOpen
}

// Clone deep copy, optional fields included
func (p *Position) Clone() *Position {
	c := *p
	c.PnL = copyFloat(p.PnL)
	c.ExitPrice = copyFloat(p.ExitPrice)
	c.StopLoss = copyFloat(p.StopLoss)
	c.TakeProfit = copyFloat(p.TakeProfit)
	return &c
}

// OrderParams trading form submission
type OrderParams struct {
	Direction  Direction `json:"direction"`
	Margin     float64   `json:"margin"`
	Leverage   float64   `json:"leverage"`
	StopLoss   *float64  `json:"stopLoss,omitempty"`
	TakeProfit *float64  `json:"takeProfit,omitempty"`
}

// Float returns pointer to v
func Float(v float64) *float64 {
	return &v
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

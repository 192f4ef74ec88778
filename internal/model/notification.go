// Package model notification model
package model

import "time"

// Notification committed position transition
type Notification struct {
	PositionID string      `json:"id"`
	Account    string      `json:"account"`
	Status     Status      `json:"status"`
	Reason     CloseReason `json:"reason"`
	Price      float64     `json:"price"`
	PnL        float64     `json:"pnl"`
	Time       time.Time   `json:"time"`
}

// Confirmation ledger receipt
type Confirmation struct {
	ID      string    `json:"id"`
	Account string    `json:"account"`
	Amount  float64   `json:"amount"`
	Time    time.Time `json:"time"`
}

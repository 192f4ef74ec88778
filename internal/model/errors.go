package model

import "errors"

var (
	// ErrPositionNotFound no position with such id
	ErrPositionNotFound = errors.New("position not found")
	// ErrPositionNotOpen position already closed or liquidated
	ErrPositionNotOpen = errors.New("position not open")
	// ErrPositionExists duplicate position id
	ErrPositionExists = errors.New("position already exists")
	// ErrInsufficientBalance balance lower than margin
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrLedger ledger failed to settle an operation
	ErrLedger = errors.New("ledger operation failed")
	// ErrNoPrice no valid price available for this tick
	ErrNoPrice = errors.New("no valid price")
)

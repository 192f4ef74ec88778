package model

import "time"

// PriceResult current price with its origin
type PriceResult struct {
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	IsReal        bool      `json:"isReal"`
	Source        string    `json:"source"`
	Time          time.Time `json:"time"`
}

// PricePoint one point of price history
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// FundingInfo funding rate state, rate is percent per interval
type FundingInfo struct {
	Rate     float64   `json:"rate"`
	NextTime time.Time `json:"nextTime"`
	Paid     float64   `json:"paid"`
	Received float64   `json:"received"`
}

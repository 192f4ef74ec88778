package model

// TradingStats aggregate over positions
type TradingStats struct {
	Profit          int     `json:"profit"`
	Loss            int     `json:"loss"`
	TotalProfit     float64 `json:"totalProfit"`
	TotalLoss       float64 `json:"totalLoss"`
	AverageLeverage float64 `json:"averageLeverage"`
	WinRate         float64 `json:"winRate"`
}

// LeaderboardEntry ranking row of one account over its settled positions
type LeaderboardEntry struct {
	Account       string  `json:"account"`
	TotalWinnings float64 `json:"totalWinnings"`
	TotalBets     int     `json:"totalBets"`
	WinCount      int     `json:"winCount"`
	WinRate       float64 `json:"winRate"`
}

// TriggerType take profit or stop loss
type TriggerType string

const (
	// TriggerTakeProfit take profit hit
	TriggerTakeProfit TriggerType = "take_profit"
	// TriggerStopLoss stop loss hit
	TriggerStopLoss TriggerType = "stop_loss"
)

// Trigger result of TP/SL check
type Trigger struct {
	Triggered bool        `json:"triggered"`
	Type      TriggerType `json:"type,omitempty"`
}

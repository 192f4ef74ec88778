// Package handler trading
package handler

import (
	"context"
	"errors"

	"github.com/OVantsevich/AurumTrust-Trading/internal/calculator"
	"github.com/OVantsevich/AurumTrust-Trading/internal/model"
	pr "github.com/OVantsevich/AurumTrust-Trading/proto"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TradingService trading service
//
//go:generate mockery --name=TradingService --case=underscore --output=./mocks
type TradingService interface {
	CreatePosition(ctx context.Context, account string, params *model.OrderParams) (*model.Position, error)
	ClosePosition(ctx context.Context, positionID string) (*model.Position, error)
	GetPositionByID(ctx context.Context, positionID string) (*model.Position, error)
	GetAccountPositions(ctx context.Context, account string) ([]*model.Position, error)
	GetUnrealizedPnL(ctx context.Context, positionID string) (float64, error)
	SetStopLoss(ctx context.Context, positionID string, stopLoss float64) error
	SetTakeProfit(ctx context.Context, positionID string, takeProfit float64) error
	GetStats(ctx context.Context, account string) (model.TradingStats, error)
	GetBalance(ctx context.Context, account string) (float64, error)
	GetCurrentPrice(ctx context.Context) (*model.PriceResult, error)
	GetPriceHistory(ctx context.Context, days int) ([]*model.PricePoint, error)
	GetFundingInfo(ctx context.Context, account string) (*model.FundingInfo, error)
	GetLeaderboard(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error)
}

// Trading handler
type Trading struct {
	pr.UnimplementedTradingServiceServer
	service TradingService
}

// NewTrading constructor
func NewTrading(s TradingService) *Trading {
	return &Trading{service: s}
}

// OpenPosition open new market position
func (t *Trading) OpenPosition(ctx context.Context, request *pr.OpenPositionRequest) (*pr.OpenPositionResponse, error) {
	position, err := t.service.CreatePosition(ctx, request.Account, &model.OrderParams{
		Direction:  model.Direction(request.Direction),
		Margin:     request.Margin,
		Leverage:   request.Leverage,
		StopLoss:   request.StopLoss,
		TakeProfit: request.TakeProfit,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"Account":   request.Account,
			"Direction": request.Direction,
			"Margin":    request.Margin,
			"Leverage":  request.Leverage,
		}).Errorf("trading - OpenPosition - CreatePosition: %v", err)
		return nil, toStatus(err)
	}
	return &pr.OpenPositionResponse{Position: positionToGRPC(position)}, nil
}

// ClosePosition close position at current price
func (t *Trading) ClosePosition(ctx context.Context, request *pr.ClosePositionRequest) (*pr.ClosePositionResponse, error) {
	position, err := t.service.ClosePosition(ctx, request.PositionId)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"PositionID": request.PositionId,
		}).Errorf("trading - ClosePosition - ClosePosition: %v", err)
		return nil, toStatus(err)
	}
	return &pr.ClosePositionResponse{Position: positionToGRPC(position)}, nil
}

// GetPositionByID get position by id, open position comes with unrealized pnl
func (t *Trading) GetPositionByID(ctx context.Context, request *pr.GetPositionByIDRequest) (*pr.GetPositionByIDResponse, error) {
	position, err := t.service.GetPositionByID(ctx, request.PositionId)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"PositionID": request.PositionId,
		}).Errorf("trading - GetPositionByID - GetPositionByID: %v", err)
		return nil, toStatus(err)
	}
	response := &pr.GetPositionByIDResponse{Position: positionToGRPC(position)}
	if position.IsOpen() {
		pnl, err := t.service.GetUnrealizedPnL(ctx, position.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"PositionID": request.PositionId,
			}).Warnf("trading - GetPositionByID - GetUnrealizedPnL: %v", err)
		} else {
			response.Position.UnrealizedPnl = &pnl
		}
	}
	return response, nil
}

// GetUserPositions get positions of account
func (t *Trading) GetUserPositions(ctx context.Context, request *pr.GetUserPositionsRequest) (*pr.GetUserPositionsResponse, error) {
	positions, err := t.service.GetAccountPositions(ctx, request.Account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"Account": request.Account,
		}).Errorf("trading - GetUserPositions - GetAccountPositions: %v", err)
		return nil, toStatus(err)
	}
	resPos := make([]*pr.Position, len(positions))
	for i, p := range positions {
		resPos[i] = positionToGRPC(p)
	}
	return &pr.GetUserPositionsResponse{Positions: resPos}, nil
}

// StopLoss set stop loss
func (t *Trading) StopLoss(ctx context.Context, request *pr.StopLossRequest) (*pr.Response, error) {
	err := t.service.SetStopLoss(ctx, request.PositionId, request.Price)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"PositionID": request.PositionId,
			"Price":      request.Price,
		}).Errorf("trading - StopLoss - SetStopLoss: %v", err)
		return nil, toStatus(err)
	}
	return &pr.Response{}, nil
}

// TakeProfit set take profit
func (t *Trading) TakeProfit(ctx context.Context, request *pr.TakeProfitRequest) (*pr.Response, error) {
	err := t.service.SetTakeProfit(ctx, request.PositionId, request.Price)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"PositionID": request.PositionId,
			"Price":      request.Price,
		}).Errorf("trading - TakeProfit - SetTakeProfit: %v", err)
		return nil, toStatus(err)
	}
	return &pr.Response{}, nil
}

// GetStats trading statistics of account
func (t *Trading) GetStats(ctx context.Context, request *pr.GetStatsRequest) (*pr.GetStatsResponse, error) {
	stats, err := t.service.GetStats(ctx, request.Account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"Account": request.Account,
		}).Errorf("trading - GetStats - GetStats: %v", err)
		return nil, toStatus(err)
	}
	return &pr.GetStatsResponse{
		Profit:          int64(stats.Profit),
		Loss:            int64(stats.Loss),
		TotalProfit:     stats.TotalProfit,
		TotalLoss:       stats.TotalLoss,
		AverageLeverage: stats.AverageLeverage,
		WinRate:         stats.WinRate,
	}, nil
}

// GetBalance balance of account
func (t *Trading) GetBalance(ctx context.Context, request *pr.GetBalanceRequest) (*pr.GetBalanceResponse, error) {
	balance, err := t.service.GetBalance(ctx, request.Account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"Account": request.Account,
		}).Errorf("trading - GetBalance - GetBalance: %v", err)
		return nil, toStatus(err)
	}
	return &pr.GetBalanceResponse{Balance: balance}, nil
}

// GetPrice current price, optionally with daily history
func (t *Trading) GetPrice(ctx context.Context, request *pr.GetPriceRequest) (*pr.GetPriceResponse, error) {
	price, err := t.service.GetCurrentPrice(ctx)
	if err != nil {
		logrus.Errorf("trading - GetPrice - GetCurrentPrice: %v", err)
		return nil, toStatus(err)
	}
	response := &pr.GetPriceResponse{
		Price:         price.Price,
		Change:        price.Change,
		ChangePercent: price.ChangePercent,
		IsReal:        price.IsReal,
		Source:        price.Source,
	}
	if request.HistoryDays > 0 {
		points, err := t.service.GetPriceHistory(ctx, int(request.HistoryDays))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"HistoryDays": request.HistoryDays,
			}).Errorf("trading - GetPrice - GetPriceHistory: %v", err)
			return nil, toStatus(err)
		}
		response.History = make([]*pr.PricePoint, len(points))
		for i, p := range points {
			response.History[i] = &pr.PricePoint{Date: p.Date, Price: p.Price}
		}
	}
	return response, nil
}

// GetFundingInfo funding rate and funding of open positions of account
func (t *Trading) GetFundingInfo(ctx context.Context, request *pr.GetFundingInfoRequest) (*pr.GetFundingInfoResponse, error) {
	info, err := t.service.GetFundingInfo(ctx, request.Account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"Account": request.Account,
		}).Errorf("trading - GetFundingInfo - GetFundingInfo: %v", err)
		return nil, toStatus(err)
	}
	return &pr.GetFundingInfoResponse{
		Rate:     info.Rate,
		NextTime: info.NextTime.Unix(),
		Paid:     info.Paid,
		Received: info.Received,
	}, nil
}

// GetLeaderboard accounts ranked by winnings over settled positions
func (t *Trading) GetLeaderboard(ctx context.Context, request *pr.GetLeaderboardRequest) (*pr.GetLeaderboardResponse, error) {
	entries, err := t.service.GetLeaderboard(ctx, int(request.Limit))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"Limit": request.Limit,
		}).Errorf("trading - GetLeaderboard - GetLeaderboard: %v", err)
		return nil, toStatus(err)
	}
	response := &pr.GetLeaderboardResponse{Entries: make([]*pr.LeaderboardEntry, len(entries))}
	for i, e := range entries {
		response.Entries[i] = &pr.LeaderboardEntry{
			Account:       e.Account,
			TotalWinnings: e.TotalWinnings,
			TotalBets:     int64(e.TotalBets),
			WinCount:      int64(e.WinCount),
			WinRate:       e.WinRate,
		}
	}
	return response, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, calculator.ErrInvalidInput), errors.Is(err, calculator.ErrDegenerateLiquidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrPositionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrPositionNotOpen), errors.Is(err, model.ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrNoPrice):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}

func positionToGRPC(pos *model.Position) *pr.Position {
	prPos := &pr.Position{
		Id:               pos.ID,
		Account:          pos.Account,
		Direction:        string(pos.Direction),
		Status:           string(pos.Status),
		Result:           string(pos.Result),
		CloseReason:      string(pos.CloseReason),
		Leverage:         pos.Leverage,
		EntryPrice:       pos.EntryPrice,
		LiquidationPrice: pos.LiquidationPrice,
		Size:             pos.Size,
		Margin:           pos.Margin,
		Pnl:              pos.PnL,
		ExitPrice:        pos.ExitPrice,
		StopLoss:         pos.StopLoss,
		TakeProfit:       pos.TakeProfit,
		Created:          pos.Created.Unix(),
		Updated:          pos.Updated.Unix(),
	}
	if !pos.Closed.IsZero() {
		prPos.Closed = pos.Closed.Unix()
	}
	return prPos
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/OVantsevich/AurumTrust-Trading/internal/calculator"
	"github.com/OVantsevich/AurumTrust-Trading/internal/metrics"
	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/sirupsen/logrus"
)

// PriceSource one strategy of the price fallback chain
type PriceSource interface {
	Name() string
	CurrentPrice(ctx context.Context) (*model.PriceResult, error)
}

// HistorySource price source able to serve daily history
type HistorySource interface {
	History(ctx context.Context, days int) ([]*model.PricePoint, error)
}

// PriceRecorder keeps the last real price
type PriceRecorder interface {
	Record(ctx context.Context, result *model.PriceResult) error
}

// PriceChain asks sources in order, first valid price wins
type PriceChain struct {
	sources  []PriceSource
	recorder PriceRecorder
	metrics  *metrics.Metrics
}

// NewPriceChain constructor, recorder and m may be nil
func NewPriceChain(recorder PriceRecorder, m *metrics.Metrics, sources ...PriceSource) *PriceChain {
	return &PriceChain{sources: sources, recorder: recorder, metrics: m}
}

// GetCurrentPrice current price from the first source that answers with a valid price
func (c *PriceChain) GetCurrentPrice(ctx context.Context) (*model.PriceResult, error) {
	for _, src := range c.sources {
		result, err := src.CurrentPrice(ctx)
		if err == nil && !calculator.ValidPrice(result.Price) {
			err = fmt.Errorf("invalid price %v", result.Price)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, fmt.Errorf("priceChain - GetCurrentPrice: %w", err)
			}
			logrus.WithField("source", src.Name()).Debugf("priceChain - GetCurrentPrice - CurrentPrice: %v", err)
			c.metrics.PriceFallback(src.Name())
			continue
		}

		if result.Source == "" {
			result.Source = src.Name()
		}
		if result.IsReal && c.recorder != nil && result.Source != sourceCache {
			if err = c.recorder.Record(ctx, result); err != nil {
				logrus.Warnf("priceChain - GetCurrentPrice - Record: %v", err)
			}
		}
		c.metrics.ServedFrom(result.Source)
		return result, nil
	}
	return nil, fmt.Errorf("priceChain - GetCurrentPrice: %w", model.ErrNoPrice)
}

// GetHistory daily history from the first history capable source
func (c *PriceChain) GetHistory(ctx context.Context, days int) ([]*model.PricePoint, error) {
	if days <= 0 {
		return nil, fmt.Errorf("priceChain - GetHistory: days must be positive, got %d", days)
	}
	for _, src := range c.sources {
		hs, ok := src.(HistorySource)
		if !ok {
			continue
		}
		points, err := hs.History(ctx, days)
		if err != nil || len(points) == 0 {
			logrus.WithField("source", src.Name()).Debugf("priceChain - GetHistory - History: %v", err)
			continue
		}
		return points, nil
	}
	return nil, fmt.Errorf("priceChain - GetHistory: %w", model.ErrNoPrice)
}

package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/redis/go-redis/v9"
)

const sourceCache = "Redis Cache"

// PriceCache last real price in a redis hash "price:{asset}" with fields price, change, source and ts
type PriceCache struct {
	rdb    redis.Cmdable
	asset  string
	maxAge time.Duration
}

// NewPriceCache constructor, cached prices older than maxAge are not served
func NewPriceCache(rdb redis.Cmdable, asset string, maxAge time.Duration) *PriceCache {
	return &PriceCache{rdb: rdb, asset: asset, maxAge: maxAge}
}

func (pc *PriceCache) key() string {
	return "price:" + pc.asset
}

// Name source name
func (pc *PriceCache) Name() string {
	return sourceCache
}

// Record stores a real price
func (pc *PriceCache) Record(ctx context.Context, result *model.PriceResult) error {
	fields := map[string]interface{}{
		"price":  strconv.FormatFloat(result.Price, 'f', -1, 64),
		"change": strconv.FormatFloat(result.Change, 'f', -1, 64),
		"source": result.Source,
		"ts":     strconv.FormatInt(result.Time.UnixNano(), 10),
	}
	if err := pc.rdb.HSet(ctx, pc.key(), fields).Err(); err != nil {
		return fmt.Errorf("priceCache - Record - HSet: %w", err)
	}
	return nil
}

// CurrentPrice last recorded real price when it is fresh enough
func (pc *PriceCache) CurrentPrice(ctx context.Context) (*model.PriceResult, error) {
	vals, err := pc.rdb.HGetAll(ctx, pc.key()).Result()
	if err != nil {
		return nil, fmt.Errorf("priceCache - CurrentPrice - HGetAll: %w", err)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("priceCache - CurrentPrice: %w", model.ErrNoPrice)
	}

	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("priceCache - CurrentPrice - parse price: %w", err)
	}
	tsNano, err := strconv.ParseInt(vals["ts"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("priceCache - CurrentPrice - parse ts: %w", err)
	}
	ts := time.Unix(0, tsNano).UTC()
	if pc.maxAge > 0 && time.Since(ts) > pc.maxAge {
		return nil, fmt.Errorf("priceCache - CurrentPrice: cached price from %s is stale: %w", ts, model.ErrNoPrice)
	}

	result := &model.PriceResult{Price: price, IsReal: true, Source: sourceCache, Time: ts}
	if change, err := strconv.ParseFloat(vals["change"], 64); err == nil && price-change != 0 {
		result.Change = change
		result.ChangePercent = change / (price - change) * 100
	}
	return result, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	sourceCoinGecko = "CoinGecko"

	coinGeckoRetries   = 3
	coinGeckoRetryWait = 500 * time.Millisecond
)

// CoinGecko coins api client with rate limiting and retries
type CoinGecko struct {
	http    *http.Client
	base    string
	coinID  string
	limiter *rate.Limiter
	backoff time.Duration
}

type coinResponse struct {
	MarketData struct {
		CurrentPrice struct {
			USD float64 `json:"usd"`
		} `json:"current_price"`
		PriceChange24h struct {
			USD float64 `json:"usd"`
		} `json:"price_change_24h_in_currency"`
		PriceChangePercent24h struct {
			USD float64 `json:"usd"`
		} `json:"price_change_percentage_24h_in_currency"`
	} `json:"market_data"`
}

type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

// NewCoinGecko constructor, perSecond limits outgoing requests
func NewCoinGecko(base, coinID string, perSecond float64) *CoinGecko {
	return &CoinGecko{
		http:    &http.Client{Timeout: 10 * time.Second},
		base:    base,
		coinID:  coinID,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		backoff: coinGeckoRetryWait,
	}
}

// Name source name
func (c *CoinGecko) Name() string {
	return sourceCoinGecko
}

// CurrentPrice current usd price with 24h change
func (c *CoinGecko) CurrentPrice(ctx context.Context) (*model.PriceResult, error) {
	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")

	var resp coinResponse
	if err := c.get(ctx, "/coins/"+url.PathEscape(c.coinID)+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("coinGecko - CurrentPrice - get: %w", err)
	}
	return &model.PriceResult{
		Price:         resp.MarketData.CurrentPrice.USD,
		Change:        resp.MarketData.PriceChange24h.USD,
		ChangePercent: resp.MarketData.PriceChangePercent24h.USD,
		IsReal:        true,
		Source:        sourceCoinGecko,
		Time:          time.Now().UTC(),
	}, nil
}

// History daily usd prices of the last days
func (c *CoinGecko) History(ctx context.Context, days int) ([]*model.PricePoint, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("days", strconv.Itoa(days))

	var resp marketChartResponse
	if err := c.get(ctx, "/coins/"+url.PathEscape(c.coinID)+"/market_chart?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("coinGecko - History - get: %w", err)
	}
	points := make([]*model.PricePoint, 0, len(resp.Prices))
	for _, p := range resp.Prices {
		points = append(points, &model.PricePoint{
			Date:  time.UnixMilli(int64(p[0])).UTC().Format(time.DateOnly),
			Price: p[1],
		})
	}
	return points, nil
}

// get GET with rate limiting and exponential backoff on 429 and 5xx
func (c *CoinGecko) get(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 0; attempt <= coinGeckoRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(math.Pow(2, float64(attempt-1))) * c.backoff
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		retry, err := c.do(ctx, path, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			return err
		}
		logrus.WithField("attempt", attempt+1).Debugf("coinGecko - get: %v", err)
	}
	return fmt.Errorf("exhausted %d retries: %w", coinGeckoRetries, lastErr)
}

func (c *CoinGecko) do(ctx context.Context, path string, out any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, http.NoBody)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return true, fmt.Errorf("status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("client error %d: %s", resp.StatusCode, body)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}

package repository

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"
)

const sourceMock = "Mock Data"

// MockPrice synthetic random walk around base, bounded to [base*2/3, base*5/3]
type MockPrice struct {
	mu      sync.Mutex
	rng     *rand.Rand
	history *rand.Rand
	base    float64
	price   float64
}

// NewMockPrice constructor, equal seeds give equal walks whatever history is requested
func NewMockPrice(seed int64, base float64) *MockPrice {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // synthetic prices
	return &MockPrice{
		rng:     rng,
		history: rand.New(rand.NewSource(seed)), //nolint:gosec // synthetic prices
		base:    base,
		price:   base * (1 + rng.Float64()*0.15),
	}
}

// Name source name
func (m *MockPrice) Name() string {
	return sourceMock
}

// CurrentPrice next step of the walk
func (m *MockPrice) CurrentPrice(context.Context) (*model.PriceResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.price
	m.price = m.step(m.rng, m.price)
	change := m.price - prev
	return &model.PriceResult{
		Price:         m.price,
		Change:        change,
		ChangePercent: change / prev * 100,
		IsReal:        false,
		Source:        sourceMock,
		Time:          time.Now().UTC(),
	}, nil
}

// History synthetic daily history ending today
func (m *MockPrice) History(_ context.Context, days int) ([]*model.PricePoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	points := make([]*model.PricePoint, 0, days+1)
	price := m.base * (1 + m.history.Float64()*0.15)
	today := time.Now().UTC()
	for i := days; i >= 0; i-- {
		price = m.step(m.history, price)
		points = append(points, &model.PricePoint{
			Date:  today.AddDate(0, 0, -i).Format(time.DateOnly),
			Price: math.Round(price*10000) / 10000,
		})
	}
	return points, nil
}

// step mu must be held
func (m *MockPrice) step(rng *rand.Rand, price float64) float64 {
	price += (rng.Float64() - 0.5) * m.base * 0.033
	return math.Min(math.Max(price, m.base*2/3), m.base*5/3)
}

package calculator

import (
	"testing"
	"time"

	"github.com/OVantsevich/AurumTrust-Trading/internal/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())
	return gopter.NewProperties(parameters)
}

func directionOf(long bool) model.Direction {
	if long {
		return model.Long
	}
	return model.Short
}

func TestProperty_LiquidationOnLosingSide(t *testing.T) {
	properties := newProperties()

	properties.Property("liquidation price is strictly worse than entry", prop.ForAll(
		func(entry, leverage, fraction float64) bool {
			// maintenance margin somewhere in [0, 1/leverage)
			c, err := NewCalculator(fraction/leverage, 100)
			if err != nil {
				return false
			}
			long, err := c.LiquidationPrice(entry, leverage, model.Long)
			if err != nil {
				return false
			}
			short, err := c.LiquidationPrice(entry, leverage, model.Short)
			if err != nil {
				return false
			}
			return long < entry && short > entry
		},
		gen.Float64Range(0.0001, 1e6),
		gen.Float64Range(1, 100),
		gen.Float64Range(0, 0.99),
	))

	properties.TestingRun(t)
}

func TestProperty_PositionAtEntry(t *testing.T) {
	properties := newProperties()
	c, err := NewCalculator(0.05, 100)
	if err != nil {
		t.Fatal(err)
	}

	properties.Property("zero pnl at entry, pure pnl, liquidation boundary inclusive", prop.ForAll(
		func(entry, leverage, margin, price float64, long bool) bool {
			p, err := c.CreatePosition("acc", &model.OrderParams{
				Direction: directionOf(long),
				Margin:    margin,
				Leverage:  leverage,
			}, entry, time.Now())
			if err != nil {
				return false
			}
			return c.PnL(p, p.EntryPrice) == 0 &&
				c.PnL(p, price) == c.PnL(p, price) &&
				c.ShouldLiquidate(p, p.LiquidationPrice) &&
				p.Size == margin*leverage
		},
		gen.Float64Range(0.0001, 1e6),
		gen.Float64Range(1, 19),
		gen.Float64Range(0.01, 1e5),
		gen.Float64Range(0.0001, 1e6),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

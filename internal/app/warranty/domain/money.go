package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Money is an integer amount of cents. All catalog and contract prices are
// carried in cents; fractional results only appear transiently inside markup
// arithmetic and are rounded back to cents before leaving the cost model.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Subtract(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

func (m Money) Equals(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal currency string, e.g. "199.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, abs64(m.cents%100))
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// MarkupMin and MarkupMax bound a dealer markup percentage. Values outside
// the range are clamped both when stored and when used, since the stored
// value may have been written by an external update path.
const (
	MarkupMin = 0.0
	MarkupMax = 200.0
)

// ClampMarkup forces a markup percentage into [MarkupMin, MarkupMax].
// Non-finite input clamps to zero.
func ClampMarkup(pct float64) float64 {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return MarkupMin
	}
	if pct < MarkupMin {
		return MarkupMin
	}
	if pct > MarkupMax {
		return MarkupMax
	}
	return pct
}

// Retail converts a cost basis into the dealer-facing price:
// round(cost * (1 + pct/100)) with pct clamped. A zero markup returns the
// cost unchanged, which is also the fallback when no markup is configured.
func Retail(cost Money, markupPct float64) Money {
	pct := ClampMarkup(markupPct)
	if pct == 0 {
		return cost
	}
	factor := decimal.NewFromInt(100).Add(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100))
	cents := decimal.NewFromInt(cost.cents).Mul(factor).Round(0).IntPart()
	return Money{cents: cents}
}

// Margin is the dealer's gross margin: retail minus cost.
func Margin(cost, retail Money) Money {
	return retail.Subtract(cost)
}

// MarginPercent returns margin/cost*100, or ok=false when cost is not
// positive (the percentage is undefined, not zero).
func MarginPercent(cost, retail Money) (float64, bool) {
	if cost.cents <= 0 {
		return 0, false
	}
	pct, _ := decimal.NewFromInt(Margin(cost, retail).cents).
		Div(decimal.NewFromInt(cost.cents)).
		Mul(decimal.NewFromInt(100)).
		Float64()
	return pct, true
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampMarkup(t *testing.T) {
	assert.Equal(t, 0.0, ClampMarkup(-5))
	assert.Equal(t, 0.0, ClampMarkup(math.NaN()))
	assert.Equal(t, 0.0, ClampMarkup(math.Inf(1)))
	assert.Equal(t, 0.0, ClampMarkup(math.Inf(-1)))
	assert.Equal(t, 200.0, ClampMarkup(250))
	assert.Equal(t, 37.5, ClampMarkup(37.5))
}

func TestRetail(t *testing.T) {
	cost := NewMoney(10000) // $100.00

	// zero markup returns cost unchanged
	assert.Equal(t, int64(10000), Retail(cost, 0).Cents())

	// plain percentage
	assert.Equal(t, int64(12500), Retail(cost, 25).Cents())

	// fractional cents round half away from zero: 101 * 1.155 = 116.655
	assert.Equal(t, int64(117), Retail(NewMoney(101), 15.5).Cents())

	// out-of-range markups clamp rather than fail
	assert.Equal(t, int64(30000), Retail(cost, 999).Cents())
	assert.Equal(t, int64(10000), Retail(cost, -10).Cents())
	assert.Equal(t, int64(10000), Retail(cost, math.NaN()).Cents())
}

func TestMargin(t *testing.T) {
	cost := NewMoney(40000)
	retail := Retail(cost, 50)

	assert.Equal(t, int64(20000), Margin(cost, retail).Cents())

	pct, ok := MarginPercent(cost, retail)
	assert.True(t, ok)
	assert.InDelta(t, 50.0, pct, 0.0001)

	// undefined for non-positive cost
	_, ok = MarginPercent(NewMoney(0), retail)
	assert.False(t, ok)
	_, ok = MarginPercent(NewMoney(-100), retail)
	assert.False(t, ok)
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "199.99", NewMoney(19999).String())
	assert.Equal(t, "0.05", NewMoney(5).String())
}

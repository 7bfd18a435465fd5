package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVariant(t *testing.T, id string, minKm int64, maxKm *int64, isDefault bool) *PricingVariant {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pv, err := NewPricingVariant(
		id, "prod-1",
		TermOf(36), UnlimitedTerm(),
		minKm, maxKm,
		"",
		nil, 10000,
		nil, 50000,
		isDefault,
		now,
	)
	require.NoError(t, err)
	return pv
}

func TestNewPricingVariant_Validation(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewPricingVariant("v", "p", TermOf(36), UnsetTerm(), -1, nil, "", nil, 0, nil, 0, false, now)
	assert.ErrorIs(t, err, ErrNegativeMileage)

	_, err = NewPricingVariant("v", "p", TermOf(36), UnsetTerm(), 50000, km(40000), "", nil, 0, nil, 0, false, now)
	assert.ErrorIs(t, err, ErrInvalidMileageBand)

	_, err = NewPricingVariant("v", "p", TermOf(36), UnsetTerm(), 0, nil, "", nil, -1, nil, 0, false, now)
	assert.ErrorIs(t, err, ErrNegativePrice)

	neg := int64(-5)
	_, err = NewPricingVariant("v", "p", TermOf(36), UnsetTerm(), 0, nil, "", &neg, 0, nil, 0, false, now)
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestMatchesVehicle(t *testing.T) {
	pv := mustVariant(t, "v1", 20000, km(80000), false)

	assert.False(t, pv.MatchesVehicle(VehicleAttributes{}), "unknown mileage")
	assert.False(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(-1)}))
	assert.False(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(19999)}))
	assert.True(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(20000)}))
	assert.True(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(80000)}))
	assert.False(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(80001)}))
}

func TestMatchesVehicle_RequiredClass(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pv, err := NewPricingVariant("v1", "p", TermOf(36), UnsetTerm(), 0, nil, "SUV", nil, 0, nil, 0, false, now)
	require.NoError(t, err)

	assert.True(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(0), VehicleClass: "SUV"}))
	assert.False(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(0), VehicleClass: "suv"}), "class match is case-sensitive")
	assert.False(t, pv.MatchesVehicle(VehicleAttributes{MileageKm: km(0)}))
}

func TestSameTerms(t *testing.T) {
	a := mustVariant(t, "a", 0, nil, false)
	b := mustVariant(t, "b", 50000, km(120000), true) // band and flags differ, terms identical
	assert.True(t, a.SameTerms(b))

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := NewPricingVariant("c", "prod-1", TermOf(36), UnlimitedTerm(), 0, nil, "", nil, 20000, nil, 50000, false, now)
	require.NoError(t, err)
	assert.False(t, a.SameTerms(c), "deductible differs")

	d, err := NewPricingVariant("d", "prod-1", TermOf(36), TermOf(100000), 0, nil, "", nil, 10000, nil, 50000, false, now)
	require.NoError(t, err)
	assert.False(t, a.SameTerms(d), "km term differs")
}

func TestCostBasis(t *testing.T) {
	pv := mustVariant(t, "v1", 0, nil, false)
	cost, ok := pv.CostBasis()
	require.True(t, ok)
	assert.Equal(t, int64(50000), cost.Cents(), "falls back to base price")

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dealer := int64(42000)
	withCost, err := NewPricingVariant("v2", "prod-1", TermOf(36), UnsetTerm(), 0, nil, "", nil, 0, &dealer, 50000, false, now)
	require.NoError(t, err)
	cost, ok = withCost.CostBasis()
	require.True(t, ok)
	assert.Equal(t, int64(42000), cost.Cents())

	free, err := NewPricingVariant("v3", "prod-1", TermOf(36), UnsetTerm(), 0, nil, "", nil, 0, nil, 0, false, now)
	require.NoError(t, err)
	_, ok = free.CostBasis()
	assert.False(t, ok, "no dealer cost and zero base price")
}

func TestResolveVariant_TightestBandWins(t *testing.T) {
	catchAll := mustVariant(t, "catch-all", 0, nil, true)
	wide := mustVariant(t, "wide", 0, km(150000), false)
	tight := mustVariant(t, "tight", 0, km(60000), false)

	vehicle := VehicleAttributes{MileageKm: km(40000)}

	// the tightest finite band beats both the wider band and the default
	// catch-all, regardless of list position
	got := ResolveVariant([]*PricingVariant{catchAll, wide, tight}, vehicle, nil)
	require.NotNil(t, got)
	assert.Equal(t, "tight", got.ID())

	// outside the tight band the wider one takes over
	got = ResolveVariant([]*PricingVariant{catchAll, wide, tight}, VehicleAttributes{MileageKm: km(90000)}, nil)
	require.NotNil(t, got)
	assert.Equal(t, "wide", got.ID())

	// past every finite band only the catch-all remains
	got = ResolveVariant([]*PricingVariant{catchAll, wide, tight}, VehicleAttributes{MileageKm: km(200000)}, nil)
	require.NotNil(t, got)
	assert.Equal(t, "catch-all", got.ID())
}

func TestResolveVariant_DefaultThenStoredOrder(t *testing.T) {
	first := mustVariant(t, "first", 0, km(100000), false)
	second := mustVariant(t, "second", 0, km(100000), false)
	preferred := mustVariant(t, "preferred", 0, km(100000), true)

	vehicle := VehicleAttributes{MileageKm: km(50000)}

	got := ResolveVariant([]*PricingVariant{first, second, preferred}, vehicle, nil)
	require.NotNil(t, got)
	assert.Equal(t, "preferred", got.ID(), "default flag wins within equal bands")

	got = ResolveVariant([]*PricingVariant{first, second}, vehicle, nil)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.ID(), "stored order breaks the remaining tie")
}

func TestResolveVariant_NoMatch(t *testing.T) {
	tight := mustVariant(t, "tight", 0, km(60000), false)
	assert.Nil(t, ResolveVariant([]*PricingVariant{tight, nil}, VehicleAttributes{MileageKm: km(70000)}, nil))
	assert.Nil(t, ResolveVariant(nil, VehicleAttributes{MileageKm: km(70000)}, nil))
}

func TestResolveVariant_Constraints(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	short, err := NewPricingVariant("short", "p", TermOf(24), TermOf(40000), 0, km(60000), "", nil, 10000, nil, 40000, false, now)
	require.NoError(t, err)
	long, err := NewPricingVariant("long", "p", TermOf(48), UnlimitedTerm(), 0, km(150000), "", nil, 25000, nil, 70000, false, now)
	require.NoError(t, err)

	vehicle := VehicleAttributes{MileageKm: km(30000)}
	variants := []*PricingVariant{short, long}

	minMonths := int64(36)
	got := ResolveVariant(variants, vehicle, &VariantConstraints{MinTermMonths: &minMonths})
	require.NotNil(t, got)
	assert.Equal(t, "long", got.ID())

	maxDed := int64(15000)
	got = ResolveVariant(variants, vehicle, &VariantConstraints{MaxDeductibleCents: &maxDed})
	require.NotNil(t, got)
	assert.Equal(t, "short", got.ID())

	minKmTerm := int64(50000)
	maxDed = int64(15000)
	got = ResolveVariant(variants, vehicle, &VariantConstraints{MinTermKm: &minKmTerm, MaxDeductibleCents: &maxDed})
	assert.Nil(t, got, "jointly unsatisfiable constraints")
}

func TestTermRoundTrip(t *testing.T) {
	for _, term := range []Term{UnsetTerm(), UnlimitedTerm(), TermOf(0), TermOf(36)} {
		parsed, err := ParseTerm(term.Encode())
		require.NoError(t, err)
		assert.True(t, term.Equals(parsed), "term %s", term)
	}

	_, err := ParseTerm("-3")
	assert.Error(t, err)
	_, err = ParseTerm("lots")
	assert.Error(t, err)
}

func TestTermSatisfiesMin(t *testing.T) {
	assert.True(t, UnlimitedTerm().SatisfiesMin(1<<40))
	assert.False(t, UnsetTerm().SatisfiesMin(0), "unset has no data to compare")
	assert.True(t, TermOf(36).SatisfiesMin(36))
	assert.False(t, TermOf(36).SatisfiesMin(37))
}

package domain

import "time"

// PricingVariant is one priced configuration under a product. Variants are
// immutable once created: a quoted price must not silently change under an
// in-flight sale, so the only catalog operations are create and delete.
type PricingVariant struct {
	id        string
	productID string

	termMonths Term
	termKm     Term

	minKm         int64
	maxKm         *int64 // nil = unbounded band
	requiredClass string

	claimLimitCents *int64
	deductibleCents int64

	dealerCostCents *int64
	basePriceCents  int64

	isDefault bool
	createdAt time.Time
}

// NewPricingVariant validates and creates a variant.
func NewPricingVariant(
	id, productID string,
	termMonths, termKm Term,
	minKm int64, maxKm *int64,
	requiredClass string,
	claimLimitCents *int64,
	deductibleCents int64,
	dealerCostCents *int64,
	basePriceCents int64,
	isDefault bool,
	now time.Time,
) (*PricingVariant, error) {
	if minKm < 0 {
		return nil, ErrNegativeMileage
	}
	if maxKm != nil && *maxKm < minKm {
		return nil, ErrInvalidMileageBand
	}
	if deductibleCents < 0 || basePriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if dealerCostCents != nil && *dealerCostCents < 0 {
		return nil, ErrNegativePrice
	}
	if claimLimitCents != nil && *claimLimitCents < 0 {
		return nil, ErrNegativePrice
	}

	return &PricingVariant{
		id:              id,
		productID:       productID,
		termMonths:      termMonths,
		termKm:          termKm,
		minKm:           minKm,
		maxKm:           maxKm,
		requiredClass:   requiredClass,
		claimLimitCents: claimLimitCents,
		deductibleCents: deductibleCents,
		dealerCostCents: dealerCostCents,
		basePriceCents:  basePriceCents,
		isDefault:       isDefault,
		createdAt:       now,
	}, nil
}

// ReconstructPricingVariant rebuilds a variant from persisted state.
func ReconstructPricingVariant(
	id, productID string,
	termMonths, termKm Term,
	minKm int64, maxKm *int64,
	requiredClass string,
	claimLimitCents *int64,
	deductibleCents int64,
	dealerCostCents *int64,
	basePriceCents int64,
	isDefault bool,
	createdAt time.Time,
) *PricingVariant {
	return &PricingVariant{
		id:              id,
		productID:       productID,
		termMonths:      termMonths,
		termKm:          termKm,
		minKm:           minKm,
		maxKm:           maxKm,
		requiredClass:   requiredClass,
		claimLimitCents: claimLimitCents,
		deductibleCents: deductibleCents,
		dealerCostCents: dealerCostCents,
		basePriceCents:  basePriceCents,
		isDefault:       isDefault,
		createdAt:       createdAt,
	}
}

func (pv *PricingVariant) ID() string              { return pv.id }
func (pv *PricingVariant) ProductID() string       { return pv.productID }
func (pv *PricingVariant) TermMonths() Term        { return pv.termMonths }
func (pv *PricingVariant) TermKm() Term            { return pv.termKm }
func (pv *PricingVariant) MinKm() int64            { return pv.minKm }
func (pv *PricingVariant) MaxKm() *int64           { return pv.maxKm }
func (pv *PricingVariant) RequiredClass() string   { return pv.requiredClass }
func (pv *PricingVariant) ClaimLimitCents() *int64 { return pv.claimLimitCents }
func (pv *PricingVariant) DeductibleCents() int64  { return pv.deductibleCents }
func (pv *PricingVariant) DealerCostCents() *int64 { return pv.dealerCostCents }
func (pv *PricingVariant) BasePriceCents() int64   { return pv.basePriceCents }
func (pv *PricingVariant) IsDefault() bool         { return pv.isDefault }
func (pv *PricingVariant) CreatedAt() time.Time    { return pv.createdAt }

// CostBasis returns the dealer's cost: dealer cost when configured, else the
// base price. ok is false when neither is usable; pricing then fails closed
// rather than treating the cost as zero.
func (pv *PricingVariant) CostBasis() (Money, bool) {
	if pv.dealerCostCents != nil {
		return NewMoney(*pv.dealerCostCents), true
	}
	if pv.basePriceCents > 0 {
		return NewMoney(pv.basePriceCents), true
	}
	return Money{}, false
}

// SameTerms reports whether another variant carries the identical
// (term months, term km, deductible) tuple. Duplicate tuples under one
// product are a data-entry bug rejected at creation.
func (pv *PricingVariant) SameTerms(other *PricingVariant) bool {
	return pv.termMonths.Equals(other.termMonths) &&
		pv.termKm.Equals(other.termKm) &&
		pv.deductibleCents == other.deductibleCents
}

// MatchesVehicle is the hard vehicle-fit filter: mileage must be known,
// non-negative and inside the variant's band, and a declared class
// requirement must match the vehicle's class exactly (case-sensitive).
func (pv *PricingVariant) MatchesVehicle(v VehicleAttributes) bool {
	if !v.MileageKnown() {
		return false
	}
	km := *v.MileageKm
	if km < pv.minKm {
		return false
	}
	if pv.maxKm != nil && km > *pv.maxKm {
		return false
	}
	if pv.requiredClass != "" {
		if v.VehicleClass == "" || v.VehicleClass != pv.requiredClass {
			return false
		}
	}
	return true
}

// VariantConstraints are optional dealer-side search filters applied after
// the vehicle-fit stage. They are not used during plain sale-time resolution.
type VariantConstraints struct {
	MinTermMonths      *int64
	MinTermKm          *int64
	MaxDeductibleCents *int64
}

func (pv *PricingVariant) matchesConstraints(c *VariantConstraints) bool {
	if c == nil {
		return true
	}
	if c.MinTermMonths != nil && !pv.termMonths.SatisfiesMin(*c.MinTermMonths) {
		return false
	}
	if c.MinTermKm != nil && !pv.termKm.SatisfiesMin(*c.MinTermKm) {
		return false
	}
	if c.MaxDeductibleCents != nil && pv.deductibleCents > *c.MaxDeductibleCents {
		return false
	}
	return true
}

// ResolveVariant narrows a product's variants to those usable for the vehicle
// and selects exactly one primary variant, or nil when nothing matches.
//
// Tie-break: if any candidate has a finite mileage-band maximum, restrict to
// the candidates sharing the smallest such maximum first. The tightest band
// wins over a catch-all band that happens to overlap it; picking any matching
// row instead would silently mis-price vehicles inside the narrower band.
// Within the surviving set the variant flagged as default wins, else the
// first in stored order.
func ResolveVariant(variants []*PricingVariant, v VehicleAttributes, constraints *VariantConstraints) *PricingVariant {
	candidates := make([]*PricingVariant, 0, len(variants))
	for _, pv := range variants {
		if pv == nil {
			continue
		}
		if pv.MatchesVehicle(v) && pv.matchesConstraints(constraints) {
			candidates = append(candidates, pv)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	var tightest *int64
	for _, pv := range candidates {
		if pv.maxKm == nil {
			continue
		}
		if tightest == nil || *pv.maxKm < *tightest {
			tightest = pv.maxKm
		}
	}
	if tightest != nil {
		narrowed := candidates[:0]
		for _, pv := range candidates {
			if pv.maxKm != nil && *pv.maxKm == *tightest {
				narrowed = append(narrowed, pv)
			}
		}
		candidates = narrowed
	}

	for _, pv := range candidates {
		if pv.isDefault {
			return pv
		}
	}
	return candidates[0]
}

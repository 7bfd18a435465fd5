package services

import (
	"time"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
)

// CatalogEntry pairs a product with its pricing variants for quoting.
type CatalogEntry struct {
	Product  *domain.Product
	Variants []*domain.PricingVariant
}

// Offer is one quotable result: an eligible product, the resolved primary
// variant, and the dealer-facing prices derived from the cost model. Priced
// is false when the product passed the eligibility gate but no variant
// matched, or when the cost basis is undefined; the prices are then zero and
// must not be shown as such.
type Offer struct {
	Product *domain.Product
	Variant *domain.PricingVariant

	Priced        bool
	Cost          domain.Money
	Retail        domain.Money
	Margin        domain.Money
	MarginPercent float64
}

// OfferQuoter is a domain service running the full resolution pipeline:
// eligibility filter, variant resolution, cost basis, markup-adjusted retail.
// It is pure; all inputs are read-only and asOf pins every time-dependent
// decision.
type OfferQuoter struct{}

func NewOfferQuoter() *OfferQuoter {
	return &OfferQuoter{}
}

// Quote returns one Offer per eligible catalog entry. Products failing the
// eligibility gate are omitted entirely; eligible products with no matching
// variant are returned unpriced so the caller can distinguish "not offered"
// from "offered but no price available".
func (q *OfferQuoter) Quote(
	catalog []CatalogEntry,
	vehicle domain.VehicleAttributes,
	markupPct float64,
	constraints *domain.VariantConstraints,
	asOf time.Time,
) []Offer {
	offers := make([]Offer, 0, len(catalog))
	for _, entry := range catalog {
		if !domain.IsProductEligible(entry.Product, vehicle, asOf) {
			continue
		}

		offer := Offer{Product: entry.Product}
		variant := domain.ResolveVariant(entry.Variants, vehicle, constraints)
		if variant != nil {
			offer.Variant = variant
			if cost, ok := variant.CostBasis(); ok {
				offer.Priced = true
				offer.Cost = cost
				offer.Retail = domain.Retail(cost, markupPct)
				offer.Margin = domain.Margin(cost, offer.Retail)
				if pct, ok := domain.MarginPercent(cost, offer.Retail); ok {
					offer.MarginPercent = pct
				}
			}
		}
		offers = append(offers, offer)
	}
	return offers
}

// QuoteOne runs the pipeline for a single product and demands a price,
// surfacing the typed empty results instead of a zero-valued Offer. Used at
// offer-selection time where "no price" must abort the sale.
func (q *OfferQuoter) QuoteOne(
	entry CatalogEntry,
	vehicle domain.VehicleAttributes,
	markupPct float64,
	asOf time.Time,
) (Offer, error) {
	if !domain.IsProductEligible(entry.Product, vehicle, asOf) {
		if entry.Product != nil && !entry.Product.Published() {
			return Offer{}, domain.ErrProductNotPublished
		}
		return Offer{}, domain.ErrNoEligibleVariant
	}

	variant := domain.ResolveVariant(entry.Variants, vehicle, nil)
	if variant == nil {
		return Offer{}, domain.ErrNoEligibleVariant
	}
	cost, ok := variant.CostBasis()
	if !ok {
		return Offer{}, domain.ErrCostBasisUndefined
	}

	offer := Offer{
		Product: entry.Product,
		Variant: variant,
		Priced:  true,
		Cost:    cost,
		Retail:  domain.Retail(cost, markupPct),
	}
	offer.Margin = domain.Margin(cost, offer.Retail)
	if pct, ok := domain.MarginPercent(cost, offer.Retail); ok {
		offer.MarginPercent = pct
	}
	return offer, nil
}

package quote_offers

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain/services"
	"github.com/clearlane/warranty-service/internal/app/warranty/dto"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
)

// Request quotes the published catalog against one vehicle. The vehicle can
// arrive fully described or as a bare VIN plus mileage, in which case the
// decoder fills in the identity fields.
type Request struct {
	DealerID string
	Vehicle  domain.VehicleAttributes

	DecodeVIN bool

	// Constraints optionally narrow variant resolution.
	MinTermMonths    *int64
	MinTermKm        *int64
	MaxDeductibleCents *int64
}

type Handler struct {
	readModel  contracts.ReadModel
	vinDecoder contracts.VINDecoder
	quoter     *services.OfferQuoter
	clock      clock.Clock
}

func NewHandler(r contracts.ReadModel, decoder contracts.VINDecoder, clk clock.Clock) *Handler {
	return &Handler{
		readModel:  r,
		vinDecoder: decoder,
		quoter:     services.NewOfferQuoter(),
		clock:      clk,
	}
}

// Execute runs the full pipeline: eligibility over the published catalog,
// variant resolution, dealer-markup retail pricing. Eligible products with
// no resolvable price come back unpriced rather than disappearing.
func (h *Handler) Execute(ctx context.Context, req Request) ([]*dto.OfferDTO, error) {
	now := h.clock.Now()

	vehicle := req.Vehicle
	if req.DecodeVIN && vehicle.VIN != "" {
		decoded, err := h.vinDecoder.Decode(ctx, vehicle.VIN)
		if err != nil {
			return nil, err
		}
		decoded.MileageKm = vehicle.MileageKm
		if decoded.VehicleClass == "" {
			decoded.VehicleClass = vehicle.VehicleClass
		}
		vehicle = decoded
	}

	products, err := h.readModel.ListPublishedProducts(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]services.CatalogEntry, 0, len(products))
	for _, pd := range products {
		product, err := shared.ReconstructProduct(pd)
		if err != nil {
			return nil, err
		}
		vds, err := h.readModel.ListVariants(ctx, pd.ProductID)
		if err != nil {
			return nil, err
		}
		variants := make([]*domain.PricingVariant, 0, len(vds))
		for _, vd := range vds {
			v, err := shared.ReconstructVariant(vd)
			if err != nil {
				return nil, err
			}
			variants = append(variants, v)
		}
		catalog = append(catalog, services.CatalogEntry{Product: product, Variants: variants})
	}

	markupPct := 0.0
	if req.DealerID != "" {
		md, err := h.readModel.GetMarkup(ctx, req.DealerID)
		if err != nil {
			return nil, err
		}
		if md != nil {
			markupPct = shared.ReconstructMarkup(md).Percent()
		}
	}

	var constraints *domain.VariantConstraints
	if req.MinTermMonths != nil || req.MinTermKm != nil || req.MaxDeductibleCents != nil {
		constraints = &domain.VariantConstraints{
			MinTermMonths:      req.MinTermMonths,
			MinTermKm:          req.MinTermKm,
			MaxDeductibleCents: req.MaxDeductibleCents,
		}
	}

	offers := h.quoter.Quote(catalog, vehicle, markupPct, constraints, now)

	out := make([]*dto.OfferDTO, 0, len(offers))
	for _, offer := range offers {
		d := &dto.OfferDTO{
			ProductID:   offer.Product.ID(),
			ProductName: offer.Product.Name(),
			Priced:      offer.Priced,
		}
		if offer.Variant != nil {
			id := offer.Variant.ID()
			d.VariantID = &id
			d.TermMonths = offer.Variant.TermMonths().Encode()
			d.TermKm = offer.Variant.TermKm().Encode()
			d.DeductibleCents = offer.Variant.DeductibleCents()
		} else {
			d.TermMonths = offer.Product.TermMonths().Encode()
			d.TermKm = offer.Product.TermKm().Encode()
		}
		if offer.Priced {
			d.CostCents = offer.Cost.Cents()
			d.RetailCents = offer.Retail.Cents()
			d.MarginCents = offer.Margin.Cents()
			d.MarginPercent = offer.MarginPercent
		}
		out = append(out, d)
	}
	return out, nil
}

package select_offer

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain/services"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request attaches a chosen product to a DRAFT contract, re-running the
// resolution pipeline so the frozen snapshot always reflects a price that was
// actually quotable for this vehicle.
type Request struct {
	Actor      domain.Actor
	ContractID string `validate:"required"`
	ProductID  string `validate:"required"`
}

type Interactor struct {
	ContractRepo contracts.ContractRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Quoter       *services.OfferQuoter
	Clock        clock.Clock
}

func NewInteractor(contractRepo contracts.ContractRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ContractRepo: contractRepo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
		Quoter:       services.NewOfferQuoter(),
		Clock:        clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if err := shared.RequireActor(req.Actor); err != nil {
		return err
	}
	if err := shared.ValidateRequest(req); err != nil {
		return err
	}

	now := it.Clock.Now()

	cd, err := it.ReadModel.GetContract(ctx, req.ContractID)
	if err != nil {
		return err
	}
	contract, err := shared.ReconstructContract(cd)
	if err != nil {
		return err
	}
	if !contract.OwnedBy(req.Actor) {
		return domain.ErrNotAuthorized
	}

	pd, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}
	product, err := shared.ReconstructProduct(pd)
	if err != nil {
		return err
	}

	vds, err := it.ReadModel.ListVariants(ctx, req.ProductID)
	if err != nil {
		return err
	}
	variants := make([]*domain.PricingVariant, 0, len(vds))
	for _, vd := range vds {
		v, err := shared.ReconstructVariant(vd)
		if err != nil {
			return err
		}
		variants = append(variants, v)
	}

	markupPct := 0.0
	if md, err := it.ReadModel.GetMarkup(ctx, contract.DealerID()); err != nil {
		return err
	} else if md != nil {
		markupPct = shared.ReconstructMarkup(md).Percent()
	}

	offer, err := it.Quoter.QuoteOne(
		services.CatalogEntry{Product: product, Variants: variants},
		contract.Vehicle(),
		markupPct,
		now,
	)
	if err != nil {
		return err
	}

	if err := contract.SelectOffer(product, offer.Variant, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ContractRepo.UpdateMut(contract))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, contract.DomainEvents(), now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}

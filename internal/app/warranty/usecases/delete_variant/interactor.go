package delete_variant

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request removes a pricing variant. Contracts that already froze a snapshot
// of this variant are unaffected.
type Request struct {
	Actor     domain.Actor
	VariantID string `validate:"required"`
}

type Interactor struct {
	VariantRepo contracts.VariantRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(variantRepo contracts.VariantRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		VariantRepo: variantRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
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

	vd, err := it.ReadModel.GetVariant(ctx, req.VariantID)
	if err != nil {
		return err
	}
	pd, err := it.ReadModel.GetProduct(ctx, vd.ProductID)
	if err != nil {
		return err
	}
	product, err := shared.ReconstructProduct(pd)
	if err != nil {
		return err
	}
	if !product.OwnedBy(req.Actor) {
		return domain.ErrNotAuthorized
	}

	plan := commitplan.NewPlan()
	plan.Add(it.VariantRepo.DeleteMut(req.VariantID))

	events := []domain.DomainEvent{&domain.VariantDeletedEvent{
		VariantID: req.VariantID,
		ProductID: vd.ProductID,
		DeletedAt: now,
	}}
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, events, now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}

package publish_product

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request toggles a product's dealer visibility.
type Request struct {
	Actor     domain.Actor
	ProductID string `validate:"required"`
	Publish   bool
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(productRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: productRepo,
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

	d, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}
	product, err := shared.ReconstructProduct(d)
	if err != nil {
		return err
	}
	if !product.OwnedBy(req.Actor) {
		return domain.ErrNotAuthorized
	}

	if req.Publish {
		err = product.Publish(now)
	} else {
		err = product.Unpublish(now)
	}
	if err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}

package update_batch

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request replaces a batch's member list and totals. Every member must be a
// SOLD contract of the owning dealer; membership problems surface here at
// edit time rather than waiting for submission.
type Request struct {
	Actor   domain.Actor
	BatchID string `validate:"required"`

	ContractIDs   []string
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

type Interactor struct {
	BatchRepo  contracts.BatchRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	ReadModel  contracts.ReadModel
	Clock      clock.Clock
}

func NewInteractor(batchRepo contracts.BatchRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		BatchRepo:  batchRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		ReadModel:  readModel,
		Clock:      clk,
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

	d, err := it.ReadModel.GetBatch(ctx, req.BatchID)
	if err != nil {
		return err
	}
	batch, err := shared.ReconstructBatch(d)
	if err != nil {
		return err
	}
	if !batch.OwnedBy(req.Actor) {
		return domain.ErrNotAuthorized
	}

	for _, contractID := range req.ContractIDs {
		cd, err := it.ReadModel.GetContract(ctx, contractID)
		if err != nil {
			return err
		}
		if cd.DealerID != batch.DealerID() {
			return domain.ErrNotAuthorized
		}
		if cd.Status != string(domain.ContractStatusSold) {
			return domain.ErrMemberNotSold
		}
	}

	if err := batch.UpdateDetails(req.ContractIDs, req.SubtotalCents, req.TaxCents, req.TotalCents, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.BatchRepo.UpdateMut(batch))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, batch.DomainEvents(), now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}

package review_batch

import (
	"context"
	"errors"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request records the provider's verdict on a submitted batch. Rejection
// reopens the batch for the dealer to amend and resubmit.
type Request struct {
	Actor   domain.Actor
	BatchID string `validate:"required"`
	Approve bool
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
	if req.Actor.Role != domain.RoleProvider {
		return domain.ErrNotAuthorized
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

	previousRemit := batch.RemittanceStatus()
	if err := batch.Review(req.Approve, req.Actor, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.AddGuard(it.BatchRepo.RemitStatusGuard(batch.ID(), previousRemit))
	plan.Add(it.BatchRepo.UpdateMut(batch))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, batch.DomainEvents(), now); err != nil {
		return err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, commitplan.ErrStaleState) {
			return domain.ErrTransitionConflict
		}
		return err
	}
	return nil
}

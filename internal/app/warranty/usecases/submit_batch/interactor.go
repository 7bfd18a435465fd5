package submit_batch

import (
	"context"
	"errors"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request submits a batch for provider review. The batch closes, its
// remittance status moves to SUBMITTED, and every member contract advances
// SOLD to REMITTED in the same commit: either the whole submission lands or
// none of it does.
type Request struct {
	Actor   domain.Actor
	BatchID string `validate:"required"`
}

type Interactor struct {
	BatchRepo    contracts.BatchRepo
	ContractRepo contracts.ContractRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Clock        clock.Clock
}

func NewInteractor(batchRepo contracts.BatchRepo, contractRepo contracts.ContractRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		BatchRepo:    batchRepo,
		ContractRepo: contractRepo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		ReadModel:    readModel,
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

	previousRemit := batch.RemittanceStatus()
	if err := batch.Submit(req.Actor, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.AddGuard(it.BatchRepo.RemitStatusGuard(batch.ID(), previousRemit))
	plan.Add(it.BatchRepo.UpdateMut(batch))

	// Remit every member in the same plan, each guarded on its current status
	// so a member advanced by a concurrent writer fails the whole submission.
	// Members already REMITTED (a rejected batch being resubmitted) only get
	// the guard; they have nothing left to transition.
	for _, contractID := range batch.ContractIDs() {
		cd, err := it.ReadModel.GetContract(ctx, contractID)
		if err != nil {
			return err
		}
		contract, err := shared.ReconstructContract(cd)
		if err != nil {
			return err
		}
		switch contract.Status() {
		case domain.ContractStatusRemitted:
			plan.AddGuard(it.ContractRepo.StatusGuard(contract.ID(), domain.ContractStatusRemitted))
			continue
		case domain.ContractStatusSold:
		default:
			return domain.ErrMemberNotSold
		}
		if err := contract.Transition(domain.ContractStatusRemitted, req.Actor, now); err != nil {
			return err
		}
		plan.AddGuard(it.ContractRepo.StatusGuard(contract.ID(), domain.ContractStatusSold))
		plan.Add(it.ContractRepo.UpdateMut(contract))
		if err := shared.AddOutboxEvents(plan, it.OutboxRepo, contract.DomainEvents(), now); err != nil {
			return err
		}
	}

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

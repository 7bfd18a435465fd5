package delete_contract

import (
	"context"
	"errors"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request deletes a contract. Only DRAFT contracts may be deleted, and only
// by their creator.
type Request struct {
	Actor      domain.Actor
	ContractID string `validate:"required"`
}

type Interactor struct {
	ContractRepo contracts.ContractRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	ReadModel    contracts.ReadModel
	Clock        clock.Clock
}

func NewInteractor(contractRepo contracts.ContractRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
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

	d, err := it.ReadModel.GetContract(ctx, req.ContractID)
	if err != nil {
		return err
	}
	contract, err := shared.ReconstructContract(d)
	if err != nil {
		return err
	}
	if contract.CreatedByID() != req.Actor.ID {
		return domain.ErrNotAuthorized
	}
	if !contract.Deletable() {
		return domain.ErrContractLocked
	}

	plan := commitplan.NewPlan()
	// Guard on DRAFT so a concurrent sale cannot race the delete.
	plan.AddGuard(it.ContractRepo.StatusGuard(contract.ID(), domain.ContractStatusDraft))
	plan.Add(it.ContractRepo.DeleteMut(contract.ID()))

	events := []domain.DomainEvent{&domain.ContractDeletedEvent{
		ContractID: contract.ID(),
		ActorID:    req.Actor.ID,
		DeletedAt:  now,
	}}
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, events, now); err != nil {
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

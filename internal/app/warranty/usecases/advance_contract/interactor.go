package advance_contract

import (
	"context"
	"errors"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request advances a contract one step along DRAFT, SOLD, REMITTED, PAID.
// Desired carries the target status string so re-asserting the current
// status stays an observable no-op.
type Request struct {
	Actor      domain.Actor
	ContractID string `validate:"required"`
	Desired    string `validate:"required"`
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

// Execute performs the transition under a status guard: if a concurrent
// writer advanced the contract between our read and the commit, the guard
// fails and the caller sees a conflict instead of a silent double-advance.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if err := shared.RequireActor(req.Actor); err != nil {
		return err
	}
	if err := shared.ValidateRequest(req); err != nil {
		return err
	}

	desired, err := domain.ParseContractStatus(req.Desired)
	if err != nil {
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
	if !contract.OwnedBy(req.Actor) && req.Actor.Role != domain.RoleProvider {
		return domain.ErrNotAuthorized
	}

	previous := contract.Status()
	if err := contract.Transition(desired, req.Actor, now); err != nil {
		return err
	}
	if contract.Status() == previous {
		// idempotent re-assert, nothing to write
		return nil
	}

	plan := commitplan.NewPlan()
	plan.AddGuard(it.ContractRepo.StatusGuard(contract.ID(), previous))
	plan.Add(it.ContractRepo.UpdateMut(contract))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, contract.DomainEvents(), now); err != nil {
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

package update_contract

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request edits a contract's draft fields. Contracts past DRAFT are locked.
type Request struct {
	Actor      domain.Actor
	ContractID string `validate:"required"`

	ContractNumber string
	Customer       domain.Customer
	Vehicle        domain.VehicleAttributes
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
	if !contract.OwnedBy(req.Actor) {
		return domain.ErrNotAuthorized
	}

	if err := contract.UpdateDraft(req.ContractNumber, req.Customer, req.Vehicle, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ContractRepo.UpdateMut(contract))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, contract.DomainEvents(), now); err != nil {
		return err
	}
	if plan.IsEmpty() {
		return nil
	}
	return it.Committer.Apply(ctx, plan)
}

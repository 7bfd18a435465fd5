package pay_batch

import (
	"context"
	"errors"
	"time"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request records the payout of an approved batch. Member contracts advance
// REMITTED to PAID in the same commit, and the payment block freezes.
type Request struct {
	Actor   domain.Actor
	BatchID string `validate:"required"`

	PaymentMethod    string `validate:"required"`
	PaymentReference string
	PaymentDate      time.Time
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

	paidDate := req.PaymentDate
	if paidDate.IsZero() {
		paidDate = now
	}
	meta := domain.PaymentMeta{
		Method:    req.PaymentMethod,
		Reference: req.PaymentReference,
		PaidDate:  paidDate,
	}

	previousRemit := batch.RemittanceStatus()
	if err := batch.Pay(meta, req.Actor, now); err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.AddGuard(it.BatchRepo.RemitStatusGuard(batch.ID(), previousRemit))
	plan.Add(it.BatchRepo.UpdateMut(batch))

	// Pay out every member in the same plan, guarded on REMITTED.
	for _, contractID := range batch.ContractIDs() {
		cd, err := it.ReadModel.GetContract(ctx, contractID)
		if err != nil {
			return err
		}
		contract, err := shared.ReconstructContract(cd)
		if err != nil {
			return err
		}
		if contract.Status() == domain.ContractStatusPaid {
			continue
		}
		if err := contract.Transition(domain.ContractStatusPaid, req.Actor, now); err != nil {
			return err
		}
		plan.AddGuard(it.ContractRepo.StatusGuard(contract.ID(), domain.ContractStatusRemitted))
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

package create_batch

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request opens an empty remittance batch for a dealer.
type Request struct {
	Actor       domain.Actor
	DealerID    string `validate:"required"`
	BatchNumber string
}

type Interactor struct {
	BatchRepo  contracts.BatchRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	Clock      clock.Clock
}

func NewInteractor(batchRepo contracts.BatchRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		BatchRepo:  batchRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		Clock:      clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if err := shared.RequireActor(req.Actor); err != nil {
		return "", err
	}
	if err := shared.ValidateRequest(req); err != nil {
		return "", err
	}
	if req.Actor.Role == domain.RoleProvider {
		return "", domain.ErrNotAuthorized
	}

	now := it.Clock.Now()
	batch := domain.NewRemittanceBatch(uuid.New().String(), req.BatchNumber, req.DealerID, now)

	plan := commitplan.NewPlan()
	plan.Add(it.BatchRepo.InsertMut(batch))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, batch.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return batch.ID(), nil
}

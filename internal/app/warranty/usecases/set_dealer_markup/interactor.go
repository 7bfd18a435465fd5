package set_dealer_markup

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request sets a dealer's retail markup percentage. Out-of-range values are
// clamped, not rejected.
type Request struct {
	Actor    domain.Actor
	DealerID string `validate:"required"`
	Percent  float64
}

type Interactor struct {
	MarkupRepo contracts.MarkupRepo
	OutboxRepo contracts.OutboxRepo
	Committer  contracts.Committer
	ReadModel  contracts.ReadModel
	Clock      clock.Clock
}

func NewInteractor(markupRepo contracts.MarkupRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		MarkupRepo: markupRepo,
		OutboxRepo: outboxRepo,
		Committer:  committer,
		ReadModel:  readModel,
		Clock:      clk,
	}
}

// Execute upserts the markup. Only dealer admins of the dealer may change it.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	if err := shared.RequireActor(req.Actor); err != nil {
		return err
	}
	if err := shared.ValidateRequest(req); err != nil {
		return err
	}
	if req.Actor.Role != domain.RoleDealerAdmin {
		return domain.ErrNotAuthorized
	}

	now := it.Clock.Now()

	existing, err := it.ReadModel.GetMarkup(ctx, req.DealerID)
	if err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	var markup *domain.DealerMarkup
	if existing == nil {
		markup = domain.NewDealerMarkup(req.DealerID, req.Percent, req.Actor, now)
		plan.Add(it.MarkupRepo.InsertMut(markup))
	} else {
		markup = shared.ReconstructMarkup(existing)
		markup.SetPercent(req.Percent, req.Actor, now)
		plan.Add(it.MarkupRepo.UpdateMut(markup))
	}

	events := []domain.DomainEvent{&domain.MarkupChangedEvent{
		DealerID:  req.DealerID,
		Percent:   markup.Percent(),
		ActorID:   req.Actor.ID,
		ChangedAt: now,
	}}
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, events, now); err != nil {
		return err
	}
	return it.Committer.Apply(ctx, plan)
}

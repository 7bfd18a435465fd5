package create_variant

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request adds a pricing variant under a product the actor owns.
type Request struct {
	Actor     domain.Actor
	ProductID string `validate:"required"`

	TermMonths string
	TermKm     string

	MinKm         int64
	MaxKm         *int64
	RequiredClass string

	ClaimLimitCents *int64
	DeductibleCents int64
	DealerCostCents *int64
	BasePriceCents  int64

	IsDefault bool
}

type Interactor struct {
	VariantRepo contracts.VariantRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(variantRepo contracts.VariantRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		VariantRepo: variantRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
	}
}

// Execute validates the band and term tuple, rejects duplicates of an
// existing (term months, term km, deductible) combination, and inserts the
// variant.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if err := shared.RequireActor(req.Actor); err != nil {
		return "", err
	}
	if err := shared.ValidateRequest(req); err != nil {
		return "", err
	}

	now := it.Clock.Now()

	d, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return "", err
	}
	product, err := shared.ReconstructProduct(d)
	if err != nil {
		return "", err
	}
	if !product.OwnedBy(req.Actor) {
		return "", domain.ErrNotAuthorized
	}

	months, err := domain.ParseTerm(req.TermMonths)
	if err != nil {
		return "", err
	}
	km, err := domain.ParseTerm(req.TermKm)
	if err != nil {
		return "", err
	}

	variant, err := domain.NewPricingVariant(
		uuid.New().String(), product.ID(),
		months, km,
		req.MinKm, req.MaxKm,
		req.RequiredClass,
		req.ClaimLimitCents,
		req.DeductibleCents,
		req.DealerCostCents,
		req.BasePriceCents,
		req.IsDefault,
		now,
	)
	if err != nil {
		return "", err
	}

	existing, err := it.ReadModel.ListVariants(ctx, product.ID())
	if err != nil {
		return "", err
	}
	for _, ed := range existing {
		other, err := shared.ReconstructVariant(ed)
		if err != nil {
			return "", err
		}
		if variant.SameTerms(other) {
			return "", domain.ErrDuplicateVariantTerms
		}
	}

	plan := commitplan.NewPlan()
	plan.Add(it.VariantRepo.InsertMut(variant))

	events := []domain.DomainEvent{&domain.VariantCreatedEvent{
		VariantID: variant.ID(),
		ProductID: product.ID(),
		CreatedAt: now,
	}}
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, events, now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return variant.ID(), nil
}

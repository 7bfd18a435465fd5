package create_product

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request is the application-level create-product request. Terms arrive in
// the wire encoding: empty for unset, "unlimited", or a decimal bound.
type Request struct {
	Actor domain.Actor

	Name       string `validate:"required"`
	Coverage   string
	Exclusions string

	TermMonths      string
	TermKm          string
	DeductibleCents *int64

	MaxVehicleAgeYears *int64
	MaxMileageKm       *int64
	MakeAllowlist      []string
	ModelAllowlist     []string
	TrimAllowlist      []string

	BaseCostCents *int64
}

// Interactor implements the create-product usecase following the golden
// mutation pattern.
type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	Clock       clock.Clock
}

func NewInteractor(productRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: productRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		Clock:       clk,
	}
}

// Execute creates an unpublished product owned by the acting provider and
// persists it with its outbox events in a single commit.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	if err := shared.RequireActor(req.Actor); err != nil {
		return "", err
	}
	if req.Actor.Role != domain.RoleProvider {
		return "", domain.ErrNotAuthorized
	}
	if err := shared.ValidateRequest(req); err != nil {
		return "", err
	}

	now := it.Clock.Now()

	product, err := domain.NewProduct(uuid.New().String(), req.Actor.ID, req.Name, req.Coverage, req.Exclusions, now)
	if err != nil {
		return "", err
	}

	months, err := domain.ParseTerm(req.TermMonths)
	if err != nil {
		return "", err
	}
	km, err := domain.ParseTerm(req.TermKm)
	if err != nil {
		return "", err
	}
	if err := product.SetTerms(months, km, req.DeductibleCents, now); err != nil {
		return "", err
	}
	if err := product.SetEligibilityRules(req.MaxVehicleAgeYears, req.MaxMileageKm, req.MakeAllowlist, req.ModelAllowlist, req.TrimAllowlist, now); err != nil {
		return "", err
	}
	if req.BaseCostCents != nil {
		if err := product.SetBaseCost(req.BaseCostCents, now); err != nil {
			return "", err
		}
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.InsertMut(product))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return product.ID(), nil
}

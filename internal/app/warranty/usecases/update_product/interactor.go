package update_product

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request carries the full editable surface of a product. Nil section
// pointers mean "leave that section alone".
type Request struct {
	Actor     domain.Actor
	ProductID string `validate:"required"`

	Details     *Details
	Terms       *Terms
	Eligibility *Eligibility
	BaseCost    *BaseCost
}

type Details struct {
	Name       string `validate:"required"`
	Coverage   string
	Exclusions string
}

type Terms struct {
	TermMonths      string
	TermKm          string
	DeductibleCents *int64
}

type Eligibility struct {
	MaxVehicleAgeYears *int64
	MaxMileageKm       *int64
	MakeAllowlist      []string
	ModelAllowlist     []string
	TrimAllowlist      []string
}

type BaseCost struct {
	Cents *int64
}

type Interactor struct {
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Committer   contracts.Committer
	ReadModel   contracts.ReadModel
	Clock       clock.Clock
}

func NewInteractor(productRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, readModel contracts.ReadModel, clk clock.Clock) *Interactor {
	return &Interactor{
		ProductRepo: productRepo,
		OutboxRepo:  outboxRepo,
		Committer:   committer,
		ReadModel:   readModel,
		Clock:       clk,
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

	d, err := it.ReadModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return err
	}
	product, err := shared.ReconstructProduct(d)
	if err != nil {
		return err
	}
	if !product.OwnedBy(req.Actor) {
		return domain.ErrNotAuthorized
	}

	if req.Details != nil {
		if err := product.UpdateDetails(req.Details.Name, req.Details.Coverage, req.Details.Exclusions, now); err != nil {
			return err
		}
	}
	if req.Terms != nil {
		months, err := domain.ParseTerm(req.Terms.TermMonths)
		if err != nil {
			return err
		}
		km, err := domain.ParseTerm(req.Terms.TermKm)
		if err != nil {
			return err
		}
		if err := product.SetTerms(months, km, req.Terms.DeductibleCents, now); err != nil {
			return err
		}
	}
	if req.Eligibility != nil {
		e := req.Eligibility
		if err := product.SetEligibilityRules(e.MaxVehicleAgeYears, e.MaxMileageKm, e.MakeAllowlist, e.ModelAllowlist, e.TrimAllowlist, now); err != nil {
			return err
		}
	}
	if req.BaseCost != nil {
		if err := product.SetBaseCost(req.BaseCost.Cents, now); err != nil {
			return err
		}
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ProductRepo.UpdateMut(product))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, product.DomainEvents(), now); err != nil {
		return err
	}
	if plan.IsEmpty() {
		return nil
	}
	return it.Committer.Apply(ctx, plan)
}

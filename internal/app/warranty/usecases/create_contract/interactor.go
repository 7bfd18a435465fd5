package create_contract

import (
	"context"

	"github.com/google/uuid"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	shared "github.com/clearlane/warranty-service/internal/app/warranty/usecases/shared"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Request opens a DRAFT contract. When DecodeVIN is set the vehicle identity
// fields are filled from the decoder; the caller's mileage and class survive
// decoding since the decoder knows neither.
type Request struct {
	Actor          domain.Actor
	DealerID       string `validate:"required"`
	ContractNumber string

	Customer domain.Customer
	Vehicle  domain.VehicleAttributes

	DecodeVIN bool
}

type Interactor struct {
	ContractRepo contracts.ContractRepo
	OutboxRepo   contracts.OutboxRepo
	Committer    contracts.Committer
	VINDecoder   contracts.VINDecoder
	Clock        clock.Clock
}

func NewInteractor(contractRepo contracts.ContractRepo, outboxRepo contracts.OutboxRepo, committer contracts.Committer, decoder contracts.VINDecoder, clk clock.Clock) *Interactor {
	return &Interactor{
		ContractRepo: contractRepo,
		OutboxRepo:   outboxRepo,
		Committer:    committer,
		VINDecoder:   decoder,
		Clock:        clk,
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

	vehicle := req.Vehicle
	if req.DecodeVIN && vehicle.VIN != "" {
		decoded, err := it.VINDecoder.Decode(ctx, vehicle.VIN)
		if err != nil {
			return "", err
		}
		decoded.MileageKm = vehicle.MileageKm
		if decoded.VehicleClass == "" {
			decoded.VehicleClass = vehicle.VehicleClass
		}
		vehicle = decoded
	}

	contract, err := domain.NewContract(
		uuid.New().String(),
		req.ContractNumber,
		req.DealerID,
		req.Customer,
		vehicle,
		req.Actor,
		now,
	)
	if err != nil {
		return "", err
	}

	plan := commitplan.NewPlan()
	plan.Add(it.ContractRepo.InsertMut(contract))
	if err := shared.AddOutboxEvents(plan, it.OutboxRepo, contract.DomainEvents(), now); err != nil {
		return "", err
	}

	if err := it.Committer.Apply(ctx, plan); err != nil {
		return "", err
	}
	return contract.ID(), nil
}

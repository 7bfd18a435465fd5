package vindecode

import (
	"context"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
)

// Fake is a canned decoder for tests and local runs without network access.
type Fake struct {
	Vehicles map[string]domain.VehicleAttributes
	Err      error
}

func NewFake() *Fake {
	return &Fake{Vehicles: make(map[string]domain.VehicleAttributes)}
}

func (f *Fake) Decode(ctx context.Context, vin string) (domain.VehicleAttributes, error) {
	if f.Err != nil {
		return domain.VehicleAttributes{}, f.Err
	}
	v, ok := f.Vehicles[vin]
	if !ok {
		return domain.VehicleAttributes{}, &DecodeError{VIN: vin, Reason: "vin not recognized"}
	}
	return v, nil
}

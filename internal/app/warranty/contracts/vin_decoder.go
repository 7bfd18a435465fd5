package contracts

import (
	"context"

	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
)

// VINDecoder maps a VIN string to decoded vehicle attributes. Decoding is an
// external collaborator; failures surface as a decode error distinct from an
// eligibility failure, so callers can tell "we could not identify the
// vehicle" apart from "the vehicle is not covered".
type VINDecoder interface {
	Decode(ctx context.Context, vin string) (domain.VehicleAttributes, error)
}

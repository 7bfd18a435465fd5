package shared

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs struct-tag validation on a usecase request. Failures
// come back wrapped in domain.ErrInvalidRequest so callers can classify them
// with domain.IsValidation.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	return nil
}

// RequireActor rejects requests carrying no identity.
func RequireActor(actor domain.Actor) error {
	if actor.IsZero() {
		return fmt.Errorf("%w: missing actor", domain.ErrInvalidRequest)
	}
	return nil
}

package domain

import "errors"

// Validation errors: malformed or out-of-range input.
var (
	// ErrEmptyProductName indicates a product with no display name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductNameTooLong indicates the product name exceeds maximum length.
	ErrProductNameTooLong = errors.New("product name exceeds maximum length of 255 characters")

	// ErrNegativePrice indicates a negative cost or price input.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNegativeMileage indicates a negative mileage reading.
	ErrNegativeMileage = errors.New("mileage cannot be negative")

	// ErrInvalidMileageBand indicates a variant band whose maximum is below its minimum.
	ErrInvalidMileageBand = errors.New("mileage band maximum must not be below its minimum")

	// ErrInvalidAgeCap indicates a negative vehicle age cap.
	ErrInvalidAgeCap = errors.New("vehicle age cap cannot be negative")

	// ErrDuplicateVariantTerms indicates a pricing variant whose
	// (term months, term km, deductible) tuple already exists under the product.
	ErrDuplicateVariantTerms = errors.New("pricing variant duplicates an existing term/deductible combination")

	// ErrEmptyBatch indicates a remittance batch submitted with no member contracts.
	ErrEmptyBatch = errors.New("remittance batch must reference at least one contract")

	// ErrUnknownStatus indicates a status string outside the lifecycle vocabulary.
	ErrUnknownStatus = errors.New("unknown lifecycle status")

	// ErrInvalidRequest wraps structural request validation failures.
	ErrInvalidRequest = errors.New("invalid request")
)

// Resource lookup errors.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("pricing variant not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrBatchNotFound    = errors.New("remittance batch not found")
)

// ErrNotAuthorized indicates the actor does not own the resource being mutated.
var ErrNotAuthorized = errors.New("actor is not authorized for this resource")

// Lifecycle errors.
var (
	// ErrInvalidTransition indicates an illegal status jump: anything other
	// than the single next state in the sequence, or a backward move.
	ErrInvalidTransition = errors.New("illegal lifecycle transition")

	// ErrTransitionConflict indicates a concurrent writer advanced the entity
	// between the legality check and the write.
	ErrTransitionConflict = errors.New("lifecycle transition lost to a concurrent update")

	// ErrContractLocked indicates an edit of a contract field frozen by the
	// current lifecycle state.
	ErrContractLocked = errors.New("contract is locked for edits in its current status")

	// ErrBatchLocked indicates an edit of a remittance batch field frozen by
	// the current remittance status.
	ErrBatchLocked = errors.New("remittance batch is locked for edits in its current status")

	// ErrMemberNotSold indicates a batch member contract that is not in SOLD
	// status at submission time.
	ErrMemberNotSold = errors.New("batch member contract is not in sold status")
)

// Catalog state errors.
var (
	// ErrProductNotPublished indicates a sale-time operation against a
	// product dealers cannot see.
	ErrProductNotPublished = errors.New("product is not published")

	// ErrProductAlreadyPublished indicates publishing an already published product.
	ErrProductAlreadyPublished = errors.New("product is already published")

	// ErrNoEligibleVariant is the defined empty result of variant resolution:
	// no pricing row matches the vehicle. Callers must handle it explicitly
	// rather than defaulting to an arbitrary price.
	ErrNoEligibleVariant = errors.New("no pricing variant matches the vehicle")

	// ErrCostBasisUndefined indicates neither dealer cost nor base price is
	// usable; pricing fails closed instead of treating the cost as zero.
	ErrCostBasisUndefined = errors.New("cost basis is undefined")
)

// IsValidation reports whether err belongs to the malformed-input category.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyProductName) ||
		errors.Is(err, ErrProductNameTooLong) ||
		errors.Is(err, ErrNegativePrice) ||
		errors.Is(err, ErrNegativeMileage) ||
		errors.Is(err, ErrInvalidMileageBand) ||
		errors.Is(err, ErrInvalidAgeCap) ||
		errors.Is(err, ErrDuplicateVariantTerms) ||
		errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrUnknownStatus) ||
		errors.Is(err, ErrInvalidRequest)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrVariantNotFound) ||
		errors.Is(err, ErrContractNotFound) ||
		errors.Is(err, ErrBatchNotFound)
}

func IsNotAuthorized(err error) bool {
	return errors.Is(err, ErrNotAuthorized)
}

func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrMemberNotSold)
}

func IsLocked(err error) bool {
	return errors.Is(err, ErrContractLocked) || errors.Is(err, ErrBatchLocked)
}

// IsConflict reports a concurrent-transition race.
func IsConflict(err error) bool {
	return errors.Is(err, ErrTransitionConflict)
}

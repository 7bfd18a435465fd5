package domain

import (
	"strings"
	"time"
)

// ContractStatus is the lifecycle state of a contract. The sequence is
// strictly linear; there is no skipping and no backward transition.
type ContractStatus string

const (
	ContractStatusDraft    ContractStatus = "DRAFT"
	ContractStatusSold     ContractStatus = "SOLD"
	ContractStatusRemitted ContractStatus = "REMITTED"
	ContractStatusPaid     ContractStatus = "PAID"
)

// ParseContractStatus validates a status string from an external caller.
func ParseContractStatus(s string) (ContractStatus, error) {
	switch ContractStatus(s) {
	case ContractStatusDraft, ContractStatusSold, ContractStatusRemitted, ContractStatusPaid:
		return ContractStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// nextContractStatus returns the single legal successor, or "" for PAID.
func nextContractStatus(s ContractStatus) ContractStatus {
	switch s {
	case ContractStatusDraft:
		return ContractStatusSold
	case ContractStatusSold:
		return ContractStatusRemitted
	case ContractStatusRemitted:
		return ContractStatusPaid
	}
	return ""
}

// Contract field constants for change tracking
const (
	FieldContractNumber   = "contract_number"
	FieldCustomer         = "customer"
	FieldVehicle          = "vehicle"
	FieldSelectedOffer    = "selected_offer"
	FieldPricingSnapshot  = "pricing_snapshot"
	FieldContractStatus   = "status"
	FieldSoldStamp        = "sold_stamp"
	FieldRemittedStamp    = "remitted_stamp"
	FieldPaidStamp        = "paid_stamp"
)

// Customer is the buyer block on a contract.
type Customer struct {
	Name  string
	Email string
	Phone string
}

// PricingSnapshot is the frozen copy of the selected variant's terms and
// prices, taken at selection time and never re-derived afterwards.
type PricingSnapshot struct {
	TermMonths      Term
	TermKm          Term
	DeductibleCents int64
	BasePriceCents  int64
	DealerCostCents *int64
}

// TransitionStamp records who performed a lifecycle transition and when.
type TransitionStamp struct {
	ByID    string
	ByEmail string
	At      time.Time
}

func (s TransitionStamp) IsZero() bool {
	return s.ByID == "" && s.ByEmail == "" && s.At.IsZero()
}

// Contract is one customer sale. Created in DRAFT by a dealer actor; its
// pricing snapshot freezes at offer selection and every field except the
// advancing status locks once it leaves DRAFT.
type Contract struct {
	id             string
	contractNumber string
	dealerID       string
	createdByID    string

	customer Customer
	vehicle  VehicleAttributes

	productID *string
	variantID *string
	snapshot  *PricingSnapshot

	status   ContractStatus
	sold     TransitionStamp
	remitted TransitionStamp
	paid     TransitionStamp

	createdAt time.Time
	updatedAt time.Time
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewContract creates a DRAFT contract for the dealer the actor belongs to.
func NewContract(id, contractNumber, dealerID string, customer Customer, vehicle VehicleAttributes, actor Actor, now time.Time) (*Contract, error) {
	if vehicle.MileageKm != nil && *vehicle.MileageKm < 0 {
		return nil, ErrNegativeMileage
	}

	c := &Contract{
		id:             id,
		contractNumber: strings.TrimSpace(contractNumber),
		dealerID:       dealerID,
		createdByID:    actor.ID,
		customer:       customer,
		vehicle:        vehicle,
		status:         ContractStatusDraft,
		createdAt:      now,
		updatedAt:      now,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}

	c.events = append(c.events, &ContractCreatedEvent{
		ContractID: c.id,
		DealerID:   c.dealerID,
		CreatedBy:  actor.ID,
		CreatedAt:  now,
	})

	return c, nil
}

// ReconstructContract rebuilds a Contract from persisted state.
func ReconstructContract(
	id, contractNumber, dealerID, createdByID string,
	customer Customer,
	vehicle VehicleAttributes,
	productID, variantID *string,
	snapshot *PricingSnapshot,
	status ContractStatus,
	sold, remitted, paid TransitionStamp,
	createdAt, updatedAt time.Time,
) *Contract {
	return &Contract{
		id:             id,
		contractNumber: contractNumber,
		dealerID:       dealerID,
		createdByID:    createdByID,
		customer:       customer,
		vehicle:        vehicle,
		productID:      productID,
		variantID:      variantID,
		snapshot:       snapshot,
		status:         status,
		sold:           sold,
		remitted:       remitted,
		paid:           paid,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		changes:        NewChangeTracker(),
		events:         make([]DomainEvent, 0),
	}
}

func (c *Contract) ID() string                 { return c.id }
func (c *Contract) ContractNumber() string     { return c.contractNumber }
func (c *Contract) DealerID() string           { return c.dealerID }
func (c *Contract) CreatedByID() string        { return c.createdByID }
func (c *Contract) Customer() Customer         { return c.customer }
func (c *Contract) Vehicle() VehicleAttributes { return c.vehicle }
func (c *Contract) ProductID() *string         { return c.productID }
func (c *Contract) VariantID() *string         { return c.variantID }
func (c *Contract) Snapshot() *PricingSnapshot { return c.snapshot }
func (c *Contract) Status() ContractStatus     { return c.status }
func (c *Contract) SoldStamp() TransitionStamp { return c.sold }
func (c *Contract) RemittedStamp() TransitionStamp {
	return c.remitted
}
func (c *Contract) PaidStamp() TransitionStamp { return c.paid }
func (c *Contract) CreatedAt() time.Time       { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time       { return c.updatedAt }
func (c *Contract) Changes() *ChangeTracker    { return c.changes }
func (c *Contract) DomainEvents() []DomainEvent {
	return c.events
}

// WarrantyID is the human-readable id shown on documents, derived
// deterministically from the contract id.
func (c *Contract) WarrantyID() string {
	return DeriveWarrantyID(c.id)
}

// DeriveWarrantyID maps a contract id to its warranty id: "WTY-" plus the
// first ten alphanumeric characters of the id, upper-cased. The same contract
// id always yields the same warranty id.
func DeriveWarrantyID(contractID string) string {
	var b strings.Builder
	b.WriteString("WTY-")
	count := 0
	for _, r := range strings.ToUpper(contractID) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			count++
			if count == 10 {
				break
			}
		}
	}
	return b.String()
}

// OwnedBy reports whether the actor belongs to the owning dealer.
func (c *Contract) OwnedBy(actor Actor) bool {
	return actor.ID == c.createdByID ||
		((actor.Role == RoleDealer || actor.Role == RoleDealerAdmin) && actor.ID == c.dealerID)
}

// Editable reports whether business fields may still change.
func (c *Contract) Editable() bool {
	return c.status == ContractStatusDraft
}

// Deletable reports whether the contract may be hard-deleted. Sold contracts
// are kept forever.
func (c *Contract) Deletable() bool {
	return c.status == ContractStatusDraft
}

// UpdateDraft replaces the editable business fields. Outside DRAFT the whole
// call fails with the lock error; nothing is partially applied.
func (c *Contract) UpdateDraft(contractNumber string, customer Customer, vehicle VehicleAttributes, now time.Time) error {
	if !c.Editable() {
		return ErrContractLocked
	}
	if vehicle.MileageKm != nil && *vehicle.MileageKm < 0 {
		return ErrNegativeMileage
	}

	if n := strings.TrimSpace(contractNumber); n != c.contractNumber {
		c.contractNumber = n
		c.changes.MarkDirty(FieldContractNumber)
	}
	if customer != c.customer {
		c.customer = customer
		c.changes.MarkDirty(FieldCustomer)
	}
	c.vehicle = vehicle
	c.changes.MarkDirty(FieldVehicle)
	c.updatedAt = now

	c.events = append(c.events, &ContractUpdatedEvent{
		ContractID: c.id,
		UpdatedAt:  now,
		Fields:     c.changes.DirtyFields(),
	})
	return nil
}

// SelectOffer attaches the chosen product/variant and freezes the pricing
// snapshot. Permitted only while the contract is in DRAFT.
func (c *Contract) SelectOffer(product *Product, variant *PricingVariant, now time.Time) error {
	if !c.Editable() {
		return ErrContractLocked
	}
	if variant.ProductID() != product.ID() {
		return ErrVariantNotFound
	}

	productID := product.ID()
	variantID := variant.ID()
	c.productID = &productID
	c.variantID = &variantID

	snap := &PricingSnapshot{
		TermMonths:      variant.TermMonths(),
		TermKm:          variant.TermKm(),
		DeductibleCents: variant.DeductibleCents(),
		BasePriceCents:  variant.BasePriceCents(),
	}
	if dc := variant.DealerCostCents(); dc != nil {
		v := *dc
		snap.DealerCostCents = &v
	}
	c.snapshot = snap

	c.changes.MarkDirty(FieldSelectedOffer)
	c.changes.MarkDirty(FieldPricingSnapshot)
	c.updatedAt = now

	c.events = append(c.events, &OfferSelectedEvent{
		ContractID: c.id,
		ProductID:  productID,
		VariantID:  variantID,
		SelectedAt: now,
	})
	return nil
}

// Transition advances the contract to desired. Re-asserting the current
// status is a no-op; any target other than the single next state fails. Each
// forward move stamps the acting user into the transition-specific fields
// without touching the stamps of other transitions.
func (c *Contract) Transition(desired ContractStatus, actor Actor, now time.Time) error {
	if _, err := ParseContractStatus(string(desired)); err != nil {
		return err
	}
	if desired == c.status {
		return nil
	}
	if desired != nextContractStatus(c.status) {
		return ErrInvalidTransition
	}

	from := c.status
	c.status = desired
	c.changes.MarkDirty(FieldContractStatus)

	stamp := TransitionStamp{ByID: actor.ID, ByEmail: actor.Email, At: now}
	switch desired {
	case ContractStatusSold:
		c.sold = stamp
		c.changes.MarkDirty(FieldSoldStamp)
	case ContractStatusRemitted:
		c.remitted = stamp
		c.changes.MarkDirty(FieldRemittedStamp)
	case ContractStatusPaid:
		c.paid = stamp
		c.changes.MarkDirty(FieldPaidStamp)
	}
	c.updatedAt = now

	c.events = append(c.events, &ContractStatusChangedEvent{
		ContractID: c.id,
		From:       from,
		To:         desired,
		ActorID:    actor.ID,
		ChangedAt:  now,
	})
	return nil
}

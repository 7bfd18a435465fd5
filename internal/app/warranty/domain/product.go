package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking
const (
	FieldName          = "name"
	FieldCoverage      = "coverage"
	FieldExclusions    = "exclusions"
	FieldTermMonths    = "term_months"
	FieldTermKm        = "term_km"
	FieldDeductible    = "deductible_cents"
	FieldMaxAge        = "max_vehicle_age_years"
	FieldMaxMileage    = "max_mileage_km"
	FieldMakeAllowlist = "make_allowlist"
	FieldModelAllow    = "model_allowlist"
	FieldTrimAllowlist = "trim_allowlist"
	FieldBaseCost      = "base_cost_cents"
	FieldPublished     = "published"
)

const maxProductNameLength = 255

// Product is a coverage offering published by a provider. It is the aggregate
// root for catalog management; eligibility caps and allowlists on it form the
// coarse gate a vehicle must pass before any variant is considered.
type Product struct {
	id         string
	providerID string
	name       string
	coverage   string
	exclusions string

	termMonths      Term
	termKm          Term
	deductibleCents *int64

	maxVehicleAgeYears *int64
	maxMileageKm       *int64
	makeAllowlist      []string
	modelAllowlist     []string
	trimAllowlist      []string

	baseCostCents *int64
	published     bool

	createdAt time.Time
	updatedAt time.Time
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewProduct creates an unpublished product owned by providerID.
func NewProduct(id, providerID, name, coverage, exclusions string, now time.Time) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	p := &Product{
		id:         id,
		providerID: providerID,
		name:       strings.TrimSpace(name),
		coverage:   strings.TrimSpace(coverage),
		exclusions: strings.TrimSpace(exclusions),
		termMonths: UnsetTerm(),
		termKm:     UnsetTerm(),
		createdAt:  now,
		updatedAt:  now,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID:  p.id,
		ProviderID: p.providerID,
		Name:       p.name,
		CreatedAt:  now,
	})

	return p, nil
}

// ReconstructProduct rebuilds a Product from persisted state.
func ReconstructProduct(
	id, providerID, name, coverage, exclusions string,
	termMonths, termKm Term,
	deductibleCents, maxVehicleAgeYears, maxMileageKm *int64,
	makeAllowlist, modelAllowlist, trimAllowlist []string,
	baseCostCents *int64,
	published bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                 id,
		providerID:         providerID,
		name:               name,
		coverage:           coverage,
		exclusions:         exclusions,
		termMonths:         termMonths,
		termKm:             termKm,
		deductibleCents:    deductibleCents,
		maxVehicleAgeYears: maxVehicleAgeYears,
		maxMileageKm:       maxMileageKm,
		makeAllowlist:      makeAllowlist,
		modelAllowlist:     modelAllowlist,
		trimAllowlist:      trimAllowlist,
		baseCostCents:      baseCostCents,
		published:          published,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		changes:            NewChangeTracker(),
		events:             make([]DomainEvent, 0),
	}
}

func (p *Product) ID() string             { return p.id }
func (p *Product) ProviderID() string     { return p.providerID }
func (p *Product) Name() string           { return p.name }
func (p *Product) Coverage() string       { return p.coverage }
func (p *Product) Exclusions() string     { return p.exclusions }
func (p *Product) TermMonths() Term       { return p.termMonths }
func (p *Product) TermKm() Term           { return p.termKm }
func (p *Product) DeductibleCents() *int64 {
	return p.deductibleCents
}
func (p *Product) MaxVehicleAgeYears() *int64 { return p.maxVehicleAgeYears }
func (p *Product) MaxMileageKm() *int64       { return p.maxMileageKm }
func (p *Product) MakeAllowlist() []string    { return p.makeAllowlist }
func (p *Product) ModelAllowlist() []string   { return p.modelAllowlist }
func (p *Product) TrimAllowlist() []string    { return p.trimAllowlist }
func (p *Product) Published() bool            { return p.published }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
func (p *Product) UpdatedAt() time.Time       { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker    { return p.changes }
func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// BaseCost returns the product-level cost basis when one is configured.
func (p *Product) BaseCost() (Money, bool) {
	if p.baseCostCents == nil || *p.baseCostCents < 0 {
		return Money{}, false
	}
	return NewMoney(*p.baseCostCents), true
}

// OwnedBy reports whether the actor is the owning provider.
func (p *Product) OwnedBy(actor Actor) bool {
	return actor.Role == RoleProvider && actor.ID == p.providerID
}

// UpdateDetails updates display fields that are provided (non-empty name,
// any coverage/exclusion text).
func (p *Product) UpdateDetails(name, coverage, exclusions string, now time.Time) error {
	changed := false

	if name != "" {
		if err := validateProductName(name); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(name)
		if trimmed != p.name {
			p.name = trimmed
			p.changes.MarkDirty(FieldName)
			changed = true
		}
	}

	if coverage != p.coverage {
		p.coverage = strings.TrimSpace(coverage)
		p.changes.MarkDirty(FieldCoverage)
		changed = true
	}

	if exclusions != p.exclusions {
		p.exclusions = strings.TrimSpace(exclusions)
		p.changes.MarkDirty(FieldExclusions)
		changed = true
	}

	if changed {
		p.touch(now)
	}
	return nil
}

// SetTerms replaces the product-level term and deductible.
func (p *Product) SetTerms(months, km Term, deductibleCents *int64, now time.Time) error {
	if deductibleCents != nil && *deductibleCents < 0 {
		return ErrNegativePrice
	}
	p.termMonths = months
	p.termKm = km
	p.deductibleCents = deductibleCents
	p.changes.MarkDirty(FieldTermMonths)
	p.changes.MarkDirty(FieldTermKm)
	p.changes.MarkDirty(FieldDeductible)
	p.touch(now)
	return nil
}

// SetEligibilityRules replaces the eligibility caps and allowlists. A nil cap
// or empty allowlist removes the restriction on that axis.
func (p *Product) SetEligibilityRules(maxAgeYears, maxMileageKm *int64, makes, models, trims []string, now time.Time) error {
	if maxAgeYears != nil && *maxAgeYears < 0 {
		return ErrInvalidAgeCap
	}
	if maxMileageKm != nil && *maxMileageKm < 0 {
		return ErrNegativeMileage
	}

	p.maxVehicleAgeYears = maxAgeYears
	p.maxMileageKm = maxMileageKm
	p.makeAllowlist = makes
	p.modelAllowlist = models
	p.trimAllowlist = trims
	p.changes.MarkDirty(FieldMaxAge)
	p.changes.MarkDirty(FieldMaxMileage)
	p.changes.MarkDirty(FieldMakeAllowlist)
	p.changes.MarkDirty(FieldModelAllow)
	p.changes.MarkDirty(FieldTrimAllowlist)
	p.touch(now)
	return nil
}

// SetBaseCost replaces the optional product-level cost basis.
func (p *Product) SetBaseCost(cents *int64, now time.Time) error {
	if cents != nil && *cents < 0 {
		return ErrNegativePrice
	}
	p.baseCostCents = cents
	p.changes.MarkDirty(FieldBaseCost)
	p.touch(now)
	return nil
}

// Publish makes the product visible to dealers.
func (p *Product) Publish(now time.Time) error {
	if p.published {
		return ErrProductAlreadyPublished
	}
	p.published = true
	p.changes.MarkDirty(FieldPublished)
	p.updatedAt = now
	p.events = append(p.events, &ProductPublishedEvent{
		ProductID:   p.id,
		Published:   true,
		PublishedAt: now,
	})
	return nil
}

// Unpublish hides the product from dealers. Existing contracts keep their
// frozen snapshots.
func (p *Product) Unpublish(now time.Time) error {
	if !p.published {
		return ErrProductNotPublished
	}
	p.published = false
	p.changes.MarkDirty(FieldPublished)
	p.updatedAt = now
	p.events = append(p.events, &ProductPublishedEvent{
		ProductID:   p.id,
		Published:   false,
		PublishedAt: now,
	})
	return nil
}

func (p *Product) touch(now time.Time) {
	p.updatedAt = now
	p.events = append(p.events, &ProductUpdatedEvent{
		ProductID: p.id,
		UpdatedAt: now,
		Fields:    p.changes.DirtyFields(),
	})
}

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > maxProductNameLength {
		return ErrProductNameTooLong
	}
	return nil
}

package repo

import (
	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/models/m_product"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// ProductRepo builds product mutations. It returns backend-neutral mutations
// but never applies them.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion. Unexported
// so tests in this package can inspect the map without relying on mutation
// internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	return m_product.BuildInsertMap(
		p.ID(), p.ProviderID(), p.Name(), p.Coverage(), p.Exclusions(),
		p.TermMonths().Encode(), p.TermKm().Encode(),
		p.DeductibleCents(), p.MaxVehicleAgeYears(), p.MaxMileageKm(),
		allowlistOrEmpty(p.MakeAllowlist()),
		allowlistOrEmpty(p.ModelAllowlist()),
		allowlistOrEmpty(p.TrimAllowlist()),
		nil,
		p.Published(),
		p.CreatedAt().UTC(), p.UpdatedAt().UTC(),
	)
}

func allowlistOrEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func (r *ProductRepo) InsertMut(p *domain.Product) *commitplan.Mutation {
	if p == nil {
		return nil
	}
	values := buildInsertValues(p)
	if cost, ok := p.BaseCost(); ok {
		values[m_product.ColBaseCostCents] = cost.Cents()
	}
	return m_product.InsertMutation(values)
}

// UpdateMut builds an update mutation from the aggregate's ChangeTracker.
// Only dirty columns are written; updated_at is stamped whenever there are
// changes.
func (r *ProductRepo) UpdateMut(p *domain.Product) *commitplan.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldName) {
		updates[m_product.ColName] = p.Name()
	}
	if p.Changes().Dirty(domain.FieldCoverage) {
		updates[m_product.ColCoverage] = p.Coverage()
	}
	if p.Changes().Dirty(domain.FieldExclusions) {
		updates[m_product.ColExclusions] = p.Exclusions()
	}
	if p.Changes().Dirty(domain.FieldTermMonths) {
		updates[m_product.ColTermMonths] = p.TermMonths().Encode()
	}
	if p.Changes().Dirty(domain.FieldTermKm) {
		updates[m_product.ColTermKm] = p.TermKm().Encode()
	}
	if p.Changes().Dirty(domain.FieldDeductible) {
		updates[m_product.ColDeductibleCents] = nilOrInt(p.DeductibleCents())
	}
	if p.Changes().Dirty(domain.FieldMaxAge) {
		updates[m_product.ColMaxAgeYears] = nilOrInt(p.MaxVehicleAgeYears())
	}
	if p.Changes().Dirty(domain.FieldMaxMileage) {
		updates[m_product.ColMaxMileageKm] = nilOrInt(p.MaxMileageKm())
	}
	if p.Changes().Dirty(domain.FieldMakeAllowlist) {
		updates[m_product.ColMakeAllowlist] = allowlistOrEmpty(p.MakeAllowlist())
	}
	if p.Changes().Dirty(domain.FieldModelAllow) {
		updates[m_product.ColModelAllowlist] = allowlistOrEmpty(p.ModelAllowlist())
	}
	if p.Changes().Dirty(domain.FieldTrimAllowlist) {
		updates[m_product.ColTrimAllowlist] = allowlistOrEmpty(p.TrimAllowlist())
	}
	if p.Changes().Dirty(domain.FieldBaseCost) {
		if cost, ok := p.BaseCost(); ok {
			updates[m_product.ColBaseCostCents] = cost.Cents()
		} else {
			updates[m_product.ColBaseCostCents] = nil
		}
	}
	if p.Changes().Dirty(domain.FieldPublished) {
		updates[m_product.ColPublished] = p.Published()
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return m_product.UpdateMutation(p.ID(), updates)
}

func nilOrInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

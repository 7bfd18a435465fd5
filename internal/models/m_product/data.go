package m_product

import (
	"time"

	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// BuildInsertMap prepares the canonical column values for insertion.
// Nullable columns are always present, holding nil when unset, so inserts
// write a complete row.
func BuildInsertMap(
	productID, providerID, name, coverage, exclusions string,
	termMonths, termKm string,
	deductibleCents, maxAgeYears, maxMileageKm *int64,
	makeAllowlist, modelAllowlist, trimAllowlist []string,
	baseCostCents *int64,
	published bool,
	createdAt, updatedAt time.Time,
) map[string]interface{} {
	m := map[string]interface{}{
		ColProductID:      productID,
		ColProviderID:     providerID,
		ColName:           name,
		ColCoverage:       coverage,
		ColExclusions:     exclusions,
		ColTermMonths:     termMonths,
		ColTermKm:         termKm,
		ColMakeAllowlist:  makeAllowlist,
		ColModelAllowlist: modelAllowlist,
		ColTrimAllowlist:  trimAllowlist,
		ColPublished:      published,
		ColCreatedAt:      createdAt,
		ColUpdatedAt:      updatedAt,
	}

	m[ColDeductibleCents] = nilOrInt(deductibleCents)
	m[ColMaxAgeYears] = nilOrInt(maxAgeYears)
	m[ColMaxMileageKm] = nilOrInt(maxMileageKm)
	m[ColBaseCostCents] = nilOrInt(baseCostCents)

	return m
}

func nilOrInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// InsertMutation wraps the values map as an insert against the products table.
func InsertMutation(values map[string]interface{}) *commitplan.Mutation {
	key, _ := values[ColProductID].(string)
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpInsert,
		KeyColumn: ColProductID,
		Key:       key,
		Values:    values,
	}
}

// UpdateMutation builds an update for a product. The values map must not
// include the product_id column.
func UpdateMutation(productID string, values map[string]interface{}) *commitplan.Mutation {
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpUpdate,
		KeyColumn: ColProductID,
		Key:       productID,
		Values:    values,
	}
}

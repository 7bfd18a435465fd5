package m_variant

import (
	"time"

	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// BuildInsertMap prepares the canonical column values for a variant row.
func BuildInsertMap(
	variantID, productID string,
	termMonths, termKm string,
	minKm int64, maxKm *int64,
	requiredClass string,
	claimLimitCents *int64,
	deductibleCents int64,
	dealerCostCents *int64,
	basePriceCents int64,
	isDefault bool,
	createdAt time.Time,
) map[string]interface{} {
	m := map[string]interface{}{
		ColVariantID:       variantID,
		ColProductID:       productID,
		ColTermMonths:      termMonths,
		ColTermKm:          termKm,
		ColMinKm:           minKm,
		ColRequiredClass:   requiredClass,
		ColDeductibleCents: deductibleCents,
		ColBasePriceCents:  basePriceCents,
		ColIsDefault:       isDefault,
		ColCreatedAt:       createdAt,
	}

	if maxKm != nil {
		m[ColMaxKm] = *maxKm
	} else {
		m[ColMaxKm] = nil
	}
	if claimLimitCents != nil {
		m[ColClaimLimitCents] = *claimLimitCents
	} else {
		m[ColClaimLimitCents] = nil
	}
	if dealerCostCents != nil {
		m[ColDealerCostCents] = *dealerCostCents
	} else {
		m[ColDealerCostCents] = nil
	}

	return m
}

func InsertMutation(values map[string]interface{}) *commitplan.Mutation {
	key, _ := values[ColVariantID].(string)
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpInsert,
		KeyColumn: ColVariantID,
		Key:       key,
		Values:    values,
	}
}

func DeleteMutation(variantID string) *commitplan.Mutation {
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpDelete,
		KeyColumn: ColVariantID,
		Key:       variantID,
	}
}

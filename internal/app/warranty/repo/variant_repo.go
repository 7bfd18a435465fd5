package repo

import (
	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/models/m_variant"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// VariantRepo builds pricing-variant mutations. Variants are immutable so
// the only mutations are insert and delete.
type VariantRepo struct{}

func NewVariantRepo() *VariantRepo {
	return &VariantRepo{}
}

func buildVariantInsertValues(v *domain.PricingVariant) map[string]interface{} {
	return m_variant.BuildInsertMap(
		v.ID(), v.ProductID(),
		v.TermMonths().Encode(), v.TermKm().Encode(),
		v.MinKm(), v.MaxKm(),
		v.RequiredClass(),
		v.ClaimLimitCents(),
		v.DeductibleCents(),
		v.DealerCostCents(),
		v.BasePriceCents(),
		v.IsDefault(),
		v.CreatedAt().UTC(),
	)
}

func (r *VariantRepo) InsertMut(v *domain.PricingVariant) *commitplan.Mutation {
	if v == nil {
		return nil
	}
	return m_variant.InsertMutation(buildVariantInsertValues(v))
}

func (r *VariantRepo) DeleteMut(variantID string) *commitplan.Mutation {
	if variantID == "" {
		return nil
	}
	return m_variant.DeleteMutation(variantID)
}

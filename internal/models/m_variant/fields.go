package m_variant

// Field constants for the pricing_variants table.
const (
	TableName = "pricing_variants"

	ColVariantID       = "variant_id"
	ColProductID       = "product_id"
	ColTermMonths      = "term_months"
	ColTermKm          = "term_km"
	ColMinKm           = "min_km"
	ColMaxKm           = "max_km"
	ColRequiredClass   = "required_class"
	ColClaimLimitCents = "claim_limit_cents"
	ColDeductibleCents = "deductible_cents"
	ColDealerCostCents = "dealer_cost_cents"
	ColBasePriceCents  = "base_price_cents"
	ColIsDefault       = "is_default"
	ColCreatedAt       = "created_at"
)

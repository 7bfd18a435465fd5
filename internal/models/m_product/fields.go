package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID       = "product_id"
	ColProviderID      = "provider_id"
	ColName            = "name"
	ColCoverage        = "coverage"
	ColExclusions      = "exclusions"
	ColTermMonths      = "term_months"
	ColTermKm          = "term_km"
	ColDeductibleCents = "deductible_cents"
	ColMaxAgeYears     = "max_vehicle_age_years"
	ColMaxMileageKm    = "max_mileage_km"
	ColMakeAllowlist   = "make_allowlist"
	ColModelAllowlist  = "model_allowlist"
	ColTrimAllowlist   = "trim_allowlist"
	ColBaseCostCents   = "base_cost_cents"
	ColPublished       = "published"
	ColCreatedAt       = "created_at"
	ColUpdatedAt       = "updated_at"
)

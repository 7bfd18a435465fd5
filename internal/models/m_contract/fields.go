package m_contract

// Field constants for the contracts table.
const (
	TableName = "contracts"

	ColContractID     = "contract_id"
	ColContractNumber = "contract_number"
	ColDealerID       = "dealer_id"
	ColCreatedBy      = "created_by"

	ColCustomerName  = "customer_name"
	ColCustomerEmail = "customer_email"
	ColCustomerPhone = "customer_phone"

	ColVIN          = "vin"
	ColModelYear    = "model_year"
	ColMake         = "make"
	ColModel        = "model"
	ColTrim         = "trim"
	ColBodyClass    = "body_class"
	ColEngine       = "engine"
	ColTransmission = "transmission"
	ColMileageKm    = "mileage_km"
	ColVehicleClass = "vehicle_class"

	ColProductID = "product_id"
	ColVariantID = "variant_id"

	ColSnapTermMonths      = "snap_term_months"
	ColSnapTermKm          = "snap_term_km"
	ColSnapDeductibleCents = "snap_deductible_cents"
	ColSnapBasePriceCents  = "snap_base_price_cents"
	ColSnapDealerCostCents = "snap_dealer_cost_cents"

	ColStatus = "status"

	ColSoldBy      = "sold_by"
	ColSoldByEmail = "sold_by_email"
	ColSoldAt      = "sold_at"

	ColRemittedBy      = "remitted_by"
	ColRemittedByEmail = "remitted_by_email"
	ColRemittedAt      = "remitted_at"

	ColPaidBy      = "paid_by"
	ColPaidByEmail = "paid_by_email"
	ColPaidAt      = "paid_at"

	ColCreatedAt = "created_at"
	ColUpdatedAt = "updated_at"
)

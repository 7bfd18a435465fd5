package m_markup

// Field constants for the dealer_markups table.
const (
	TableName = "dealer_markups"

	ColDealerID  = "dealer_id"
	ColPercent   = "percent"
	ColUpdatedBy = "updated_by"
	ColUpdatedAt = "updated_at"
)

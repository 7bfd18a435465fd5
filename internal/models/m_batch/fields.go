package m_batch

// Field constants for the remittance_batches table.
const (
	TableName = "remittance_batches"

	ColBatchID     = "batch_id"
	ColBatchNumber = "batch_number"
	ColDealerID    = "dealer_id"

	ColContractIDs = "contract_ids"

	ColSubtotalCents = "subtotal_cents"
	ColTaxCents      = "tax_cents"
	ColTotalCents    = "total_cents"

	ColBatchStatus      = "batch_status"
	ColPaymentStatus    = "payment_status"
	ColRemittanceStatus = "remittance_status"

	ColPaymentMethod    = "payment_method"
	ColPaymentReference = "payment_reference"
	ColPaymentDate      = "payment_date"

	ColSubmittedBy      = "submitted_by"
	ColSubmittedByEmail = "submitted_by_email"
	ColSubmittedAt      = "submitted_at"

	ColReviewedBy      = "reviewed_by"
	ColReviewedByEmail = "reviewed_by_email"
	ColReviewedAt      = "reviewed_at"

	ColPaidBy      = "paid_by"
	ColPaidByEmail = "paid_by_email"
	ColPaidAt      = "paid_at"

	ColCreatedAt = "created_at"
	ColUpdatedAt = "updated_at"
)

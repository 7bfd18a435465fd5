package repo

import (
	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/models/m_batch"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// BatchRepo builds remittance-batch mutations and guards.
type BatchRepo struct{}

func NewBatchRepo() *BatchRepo {
	return &BatchRepo{}
}

func buildBatchInsertValues(b *domain.RemittanceBatch) map[string]interface{} {
	values := map[string]interface{}{
		m_batch.ColBatchID:     b.ID(),
		m_batch.ColBatchNumber: b.BatchNumber(),
		m_batch.ColDealerID:    b.DealerID(),

		m_batch.ColContractIDs: append([]string{}, b.ContractIDs()...),

		m_batch.ColSubtotalCents: b.SubtotalCents(),
		m_batch.ColTaxCents:      b.TaxCents(),
		m_batch.ColTotalCents:    b.TotalCents(),

		m_batch.ColBatchStatus:      string(b.BatchStatus()),
		m_batch.ColPaymentStatus:    string(b.PaymentStatus()),
		m_batch.ColRemittanceStatus: string(b.RemittanceStatus()),

		m_batch.ColCreatedAt: b.CreatedAt().UTC(),
		m_batch.ColUpdatedAt: b.UpdatedAt().UTC(),
	}

	setPaymentValues(values, b.Payment())
	setStampValues(values, m_batch.ColSubmittedBy, m_batch.ColSubmittedByEmail, m_batch.ColSubmittedAt, b.SubmittedStamp())
	setStampValues(values, m_batch.ColReviewedBy, m_batch.ColReviewedByEmail, m_batch.ColReviewedAt, b.ReviewedStamp())
	setStampValues(values, m_batch.ColPaidBy, m_batch.ColPaidByEmail, m_batch.ColPaidAt, b.PaidStamp())

	return values
}

func setPaymentValues(values map[string]interface{}, meta *domain.PaymentMeta) {
	if meta == nil {
		values[m_batch.ColPaymentMethod] = nil
		values[m_batch.ColPaymentReference] = nil
		values[m_batch.ColPaymentDate] = nil
		return
	}
	values[m_batch.ColPaymentMethod] = meta.Method
	values[m_batch.ColPaymentReference] = meta.Reference
	values[m_batch.ColPaymentDate] = meta.PaidDate.UTC()
}

func (r *BatchRepo) InsertMut(b *domain.RemittanceBatch) *commitplan.Mutation {
	if b == nil {
		return nil
	}
	return m_batch.InsertMutation(buildBatchInsertValues(b))
}

// UpdateMut builds an update mutation from the aggregate's ChangeTracker.
func (r *BatchRepo) UpdateMut(b *domain.RemittanceBatch) *commitplan.Mutation {
	if b == nil || b.Changes() == nil || !b.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if b.Changes().Dirty(domain.FieldBatchMembers) {
		updates[m_batch.ColContractIDs] = append([]string{}, b.ContractIDs()...)
	}
	if b.Changes().Dirty(domain.FieldBatchTotals) {
		updates[m_batch.ColSubtotalCents] = b.SubtotalCents()
		updates[m_batch.ColTaxCents] = b.TaxCents()
		updates[m_batch.ColTotalCents] = b.TotalCents()
	}
	if b.Changes().Dirty(domain.FieldBatchStatusCol) {
		updates[m_batch.ColBatchStatus] = string(b.BatchStatus())
	}
	if b.Changes().Dirty(domain.FieldPaymentStatusCol) {
		updates[m_batch.ColPaymentStatus] = string(b.PaymentStatus())
	}
	if b.Changes().Dirty(domain.FieldRemitStatusCol) {
		updates[m_batch.ColRemittanceStatus] = string(b.RemittanceStatus())
	}
	if b.Changes().Dirty(domain.FieldPaymentMeta) {
		setPaymentValues(updates, b.Payment())
	}
	if b.Changes().Dirty(domain.FieldSubmittedStamp) {
		setStampValues(updates, m_batch.ColSubmittedBy, m_batch.ColSubmittedByEmail, m_batch.ColSubmittedAt, b.SubmittedStamp())
	}
	if b.Changes().Dirty(domain.FieldReviewedStamp) {
		setStampValues(updates, m_batch.ColReviewedBy, m_batch.ColReviewedByEmail, m_batch.ColReviewedAt, b.ReviewedStamp())
	}
	if b.Changes().Dirty(domain.FieldBatchPaidStamp) {
		setStampValues(updates, m_batch.ColPaidBy, m_batch.ColPaidByEmail, m_batch.ColPaidAt, b.PaidStamp())
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_batch.ColUpdatedAt] = b.UpdatedAt().UTC()
	return m_batch.UpdateMutation(b.ID(), updates)
}

func (r *BatchRepo) RemitStatusGuard(batchID string, expect domain.RemittanceStatus) *commitplan.Guard {
	return m_batch.RemitStatusGuard(batchID, string(expect))
}

package domain

import "time"

// BatchStatus is the coarse open/closed state of a remittance batch.
type BatchStatus string

const (
	BatchStatusOpen   BatchStatus = "OPEN"
	BatchStatusClosed BatchStatus = "CLOSED"
)

// PaymentStatus tracks whether the batch has been paid out.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// RemittanceStatus is the finer review arc of a submitted batch.
type RemittanceStatus string

const (
	RemittanceStatusDraft     RemittanceStatus = "DRAFT"
	RemittanceStatusSubmitted RemittanceStatus = "SUBMITTED"
	RemittanceStatusApproved  RemittanceStatus = "APPROVED"
	RemittanceStatusRejected  RemittanceStatus = "REJECTED"
	RemittanceStatusPaid      RemittanceStatus = "PAID"
)

// ParseBatchStatus validates a batch status string from storage or a caller.
func ParseBatchStatus(s string) (BatchStatus, error) {
	switch BatchStatus(s) {
	case BatchStatusOpen, BatchStatusClosed:
		return BatchStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// ParsePaymentStatus validates a payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentStatusUnpaid, PaymentStatusPaid:
		return PaymentStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// ParseRemittanceStatus validates a remittance status string.
func ParseRemittanceStatus(s string) (RemittanceStatus, error) {
	switch RemittanceStatus(s) {
	case RemittanceStatusDraft, RemittanceStatusSubmitted, RemittanceStatusApproved,
		RemittanceStatusRejected, RemittanceStatusPaid:
		return RemittanceStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// Batch field constants for change tracking
const (
	FieldBatchMembers     = "contract_ids"
	FieldBatchTotals      = "totals"
	FieldBatchStatusCol   = "batch_status"
	FieldPaymentStatusCol = "payment_status"
	FieldRemitStatusCol   = "remittance_status"
	FieldPaymentMeta      = "payment_meta"
	FieldSubmittedStamp   = "submitted_stamp"
	FieldReviewedStamp    = "reviewed_stamp"
	FieldBatchPaidStamp   = "batch_paid_stamp"
)

// PaymentMeta is the method/reference/date block recorded when a batch is paid.
type PaymentMeta struct {
	Method    string
	Reference string
	PaidDate  time.Time
}

// RemittanceBatch is a dealer's bundled submission of SOLD contracts for
// payment. Its status arc mirrors the contract lifecycle: submission remits
// every member, review approves or rejects, payment closes it out.
type RemittanceBatch struct {
	id          string
	batchNumber string
	dealerID    string

	contractIDs []string

	subtotalCents int64
	taxCents      int64
	totalCents    int64

	batchStatus      BatchStatus
	paymentStatus    PaymentStatus
	remittanceStatus RemittanceStatus

	payment   *PaymentMeta
	submitted TransitionStamp
	reviewed  TransitionStamp
	paid      TransitionStamp

	createdAt time.Time
	updatedAt time.Time
	changes   *ChangeTracker
	events    []DomainEvent
}

// NewRemittanceBatch creates an open, unsubmitted batch for a dealer.
func NewRemittanceBatch(id, batchNumber, dealerID string, now time.Time) *RemittanceBatch {
	b := &RemittanceBatch{
		id:               id,
		batchNumber:      batchNumber,
		dealerID:         dealerID,
		contractIDs:      make([]string, 0),
		batchStatus:      BatchStatusOpen,
		paymentStatus:    PaymentStatusUnpaid,
		remittanceStatus: RemittanceStatusDraft,
		createdAt:        now,
		updatedAt:        now,
		changes:          NewChangeTracker(),
		events:           make([]DomainEvent, 0),
	}
	b.events = append(b.events, &BatchCreatedEvent{
		BatchID:   b.id,
		DealerID:  b.dealerID,
		CreatedAt: now,
	})
	return b
}

// ReconstructRemittanceBatch rebuilds a batch from persisted state.
func ReconstructRemittanceBatch(
	id, batchNumber, dealerID string,
	contractIDs []string,
	subtotalCents, taxCents, totalCents int64,
	batchStatus BatchStatus,
	paymentStatus PaymentStatus,
	remittanceStatus RemittanceStatus,
	payment *PaymentMeta,
	submitted, reviewed, paid TransitionStamp,
	createdAt, updatedAt time.Time,
) *RemittanceBatch {
	return &RemittanceBatch{
		id:               id,
		batchNumber:      batchNumber,
		dealerID:         dealerID,
		contractIDs:      contractIDs,
		subtotalCents:    subtotalCents,
		taxCents:         taxCents,
		totalCents:       totalCents,
		batchStatus:      batchStatus,
		paymentStatus:    paymentStatus,
		remittanceStatus: remittanceStatus,
		payment:          payment,
		submitted:        submitted,
		reviewed:         reviewed,
		paid:             paid,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		changes:          NewChangeTracker(),
		events:           make([]DomainEvent, 0),
	}
}

func (b *RemittanceBatch) ID() string                         { return b.id }
func (b *RemittanceBatch) BatchNumber() string                { return b.batchNumber }
func (b *RemittanceBatch) DealerID() string                   { return b.dealerID }
func (b *RemittanceBatch) ContractIDs() []string              { return b.contractIDs }
func (b *RemittanceBatch) SubtotalCents() int64               { return b.subtotalCents }
func (b *RemittanceBatch) TaxCents() int64                    { return b.taxCents }
func (b *RemittanceBatch) TotalCents() int64                  { return b.totalCents }
func (b *RemittanceBatch) BatchStatus() BatchStatus           { return b.batchStatus }
func (b *RemittanceBatch) PaymentStatus() PaymentStatus       { return b.paymentStatus }
func (b *RemittanceBatch) RemittanceStatus() RemittanceStatus { return b.remittanceStatus }
func (b *RemittanceBatch) Payment() *PaymentMeta              { return b.payment }
func (b *RemittanceBatch) SubmittedStamp() TransitionStamp    { return b.submitted }
func (b *RemittanceBatch) ReviewedStamp() TransitionStamp     { return b.reviewed }
func (b *RemittanceBatch) PaidStamp() TransitionStamp         { return b.paid }
func (b *RemittanceBatch) CreatedAt() time.Time               { return b.createdAt }
func (b *RemittanceBatch) UpdatedAt() time.Time               { return b.updatedAt }
func (b *RemittanceBatch) Changes() *ChangeTracker            { return b.changes }
func (b *RemittanceBatch) DomainEvents() []DomainEvent        { return b.events }

// OwnedBy reports whether the actor belongs to the submitting dealer.
func (b *RemittanceBatch) OwnedBy(actor Actor) bool {
	return (actor.Role == RoleDealer || actor.Role == RoleDealerAdmin) && actor.ID == b.dealerID
}

// detailsLocked reports whether member list and money fields are frozen.
func (b *RemittanceBatch) detailsLocked() bool {
	switch b.remittanceStatus {
	case RemittanceStatusSubmitted, RemittanceStatusApproved, RemittanceStatusPaid:
		return true
	}
	return false
}

// UpdateDetails replaces the member contract list and totals. Rejected
// batches reopen for editing; submitted, approved and paid batches are
// locked.
func (b *RemittanceBatch) UpdateDetails(contractIDs []string, subtotalCents, taxCents, totalCents int64, now time.Time) error {
	if b.detailsLocked() {
		return ErrBatchLocked
	}
	if subtotalCents < 0 || taxCents < 0 || totalCents < 0 {
		return ErrNegativePrice
	}

	b.contractIDs = contractIDs
	b.subtotalCents = subtotalCents
	b.taxCents = taxCents
	b.totalCents = totalCents
	b.changes.MarkDirty(FieldBatchMembers)
	b.changes.MarkDirty(FieldBatchTotals)
	b.updatedAt = now

	b.events = append(b.events, &BatchUpdatedEvent{
		BatchID:   b.id,
		UpdatedAt: now,
	})
	return nil
}

// Submit closes the batch and moves it into review. The caller is
// responsible for remitting every member contract in the same atomic commit;
// this method only validates and advances the batch itself.
func (b *RemittanceBatch) Submit(actor Actor, now time.Time) error {
	if len(b.contractIDs) == 0 {
		return ErrEmptyBatch
	}
	if b.batchStatus != BatchStatusOpen {
		return ErrInvalidTransition
	}
	if b.remittanceStatus != RemittanceStatusDraft && b.remittanceStatus != RemittanceStatusRejected {
		return ErrInvalidTransition
	}

	b.batchStatus = BatchStatusClosed
	b.remittanceStatus = RemittanceStatusSubmitted
	b.submitted = TransitionStamp{ByID: actor.ID, ByEmail: actor.Email, At: now}
	b.changes.MarkDirty(FieldBatchStatusCol)
	b.changes.MarkDirty(FieldRemitStatusCol)
	b.changes.MarkDirty(FieldSubmittedStamp)
	b.updatedAt = now

	b.events = append(b.events, &BatchSubmittedEvent{
		BatchID:     b.id,
		ContractIDs: append([]string(nil), b.contractIDs...),
		ActorID:     actor.ID,
		SubmittedAt: now,
	})
	return nil
}

// Review approves or rejects a submitted batch. Rejection reopens the batch
// so the dealer can amend and resubmit it.
func (b *RemittanceBatch) Review(approve bool, actor Actor, now time.Time) error {
	if b.remittanceStatus != RemittanceStatusSubmitted {
		return ErrInvalidTransition
	}

	if approve {
		b.remittanceStatus = RemittanceStatusApproved
	} else {
		b.remittanceStatus = RemittanceStatusRejected
		b.batchStatus = BatchStatusOpen
		b.changes.MarkDirty(FieldBatchStatusCol)
	}
	b.reviewed = TransitionStamp{ByID: actor.ID, ByEmail: actor.Email, At: now}
	b.changes.MarkDirty(FieldRemitStatusCol)
	b.changes.MarkDirty(FieldReviewedStamp)
	b.updatedAt = now

	b.events = append(b.events, &BatchReviewedEvent{
		BatchID:    b.id,
		Approved:   approve,
		ActorID:    actor.ID,
		ReviewedAt: now,
	})
	return nil
}

// Pay records the payout. Only approved batches can be paid, and payment
// metadata freezes afterwards: a second Pay fails with the lock error.
func (b *RemittanceBatch) Pay(meta PaymentMeta, actor Actor, now time.Time) error {
	if b.paymentStatus == PaymentStatusPaid {
		return ErrBatchLocked
	}
	if b.remittanceStatus != RemittanceStatusApproved {
		return ErrInvalidTransition
	}

	b.remittanceStatus = RemittanceStatusPaid
	b.paymentStatus = PaymentStatusPaid
	b.payment = &meta
	b.paid = TransitionStamp{ByID: actor.ID, ByEmail: actor.Email, At: now}
	b.changes.MarkDirty(FieldRemitStatusCol)
	b.changes.MarkDirty(FieldPaymentStatusCol)
	b.changes.MarkDirty(FieldPaymentMeta)
	b.changes.MarkDirty(FieldBatchPaidStamp)
	b.updatedAt = now

	b.events = append(b.events, &BatchPaidEvent{
		BatchID: b.id,
		ActorID: actor.ID,
		PaidAt:  now,
	})
	return nil
}

package domain

import "time"

// DomainEvent is a marker interface for all domain events. Events are
// enriched into outbox rows and committed in the same plan as the state they
// describe.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// Catalog events

type ProductCreatedEvent struct {
	ProductID  string
	ProviderID string
	Name       string
	CreatedAt  time.Time
}

func (e *ProductCreatedEvent) EventType() string     { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

type ProductUpdatedEvent struct {
	ProductID string
	UpdatedAt time.Time
	Fields    []string
}

func (e *ProductUpdatedEvent) EventType() string     { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// ProductPublishedEvent covers both publishing and unpublishing.
type ProductPublishedEvent struct {
	ProductID   string
	Published   bool
	PublishedAt time.Time
}

func (e *ProductPublishedEvent) EventType() string {
	if e.Published {
		return "product.published"
	}
	return "product.unpublished"
}
func (e *ProductPublishedEvent) AggregateID() string   { return e.ProductID }
func (e *ProductPublishedEvent) OccurredAt() time.Time { return e.PublishedAt }

type VariantCreatedEvent struct {
	VariantID string
	ProductID string
	CreatedAt time.Time
}

func (e *VariantCreatedEvent) EventType() string     { return "variant.created" }
func (e *VariantCreatedEvent) AggregateID() string   { return e.VariantID }
func (e *VariantCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

type VariantDeletedEvent struct {
	VariantID string
	ProductID string
	DeletedAt time.Time
}

func (e *VariantDeletedEvent) EventType() string     { return "variant.deleted" }
func (e *VariantDeletedEvent) AggregateID() string   { return e.VariantID }
func (e *VariantDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

type MarkupChangedEvent struct {
	DealerID  string
	Percent   float64
	ActorID   string
	ChangedAt time.Time
}

func (e *MarkupChangedEvent) EventType() string     { return "markup.changed" }
func (e *MarkupChangedEvent) AggregateID() string   { return e.DealerID }
func (e *MarkupChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

// Contract events

type ContractCreatedEvent struct {
	ContractID string
	DealerID   string
	CreatedBy  string
	CreatedAt  time.Time
}

func (e *ContractCreatedEvent) EventType() string     { return "contract.created" }
func (e *ContractCreatedEvent) AggregateID() string   { return e.ContractID }
func (e *ContractCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

type ContractUpdatedEvent struct {
	ContractID string
	UpdatedAt  time.Time
	Fields     []string
}

func (e *ContractUpdatedEvent) EventType() string     { return "contract.updated" }
func (e *ContractUpdatedEvent) AggregateID() string   { return e.ContractID }
func (e *ContractUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

type OfferSelectedEvent struct {
	ContractID string
	ProductID  string
	VariantID  string
	SelectedAt time.Time
}

func (e *OfferSelectedEvent) EventType() string     { return "contract.offer_selected" }
func (e *OfferSelectedEvent) AggregateID() string   { return e.ContractID }
func (e *OfferSelectedEvent) OccurredAt() time.Time { return e.SelectedAt }

type ContractStatusChangedEvent struct {
	ContractID string
	From       ContractStatus
	To         ContractStatus
	ActorID    string
	ChangedAt  time.Time
}

func (e *ContractStatusChangedEvent) EventType() string     { return "contract.status_changed" }
func (e *ContractStatusChangedEvent) AggregateID() string   { return e.ContractID }
func (e *ContractStatusChangedEvent) OccurredAt() time.Time { return e.ChangedAt }

type ContractDeletedEvent struct {
	ContractID string
	ActorID    string
	DeletedAt  time.Time
}

func (e *ContractDeletedEvent) EventType() string     { return "contract.deleted" }
func (e *ContractDeletedEvent) AggregateID() string   { return e.ContractID }
func (e *ContractDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// Batch events

type BatchCreatedEvent struct {
	BatchID   string
	DealerID  string
	CreatedAt time.Time
}

func (e *BatchCreatedEvent) EventType() string     { return "batch.created" }
func (e *BatchCreatedEvent) AggregateID() string   { return e.BatchID }
func (e *BatchCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

type BatchUpdatedEvent struct {
	BatchID   string
	UpdatedAt time.Time
}

func (e *BatchUpdatedEvent) EventType() string     { return "batch.updated" }
func (e *BatchUpdatedEvent) AggregateID() string   { return e.BatchID }
func (e *BatchUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

type BatchSubmittedEvent struct {
	BatchID     string
	ContractIDs []string
	ActorID     string
	SubmittedAt time.Time
}

func (e *BatchSubmittedEvent) EventType() string     { return "batch.submitted" }
func (e *BatchSubmittedEvent) AggregateID() string   { return e.BatchID }
func (e *BatchSubmittedEvent) OccurredAt() time.Time { return e.SubmittedAt }

type BatchReviewedEvent struct {
	BatchID    string
	Approved   bool
	ActorID    string
	ReviewedAt time.Time
}

func (e *BatchReviewedEvent) EventType() string {
	if e.Approved {
		return "batch.approved"
	}
	return "batch.rejected"
}
func (e *BatchReviewedEvent) AggregateID() string   { return e.BatchID }
func (e *BatchReviewedEvent) OccurredAt() time.Time { return e.ReviewedAt }

type BatchPaidEvent struct {
	BatchID string
	ActorID string
	PaidAt  time.Time
}

func (e *BatchPaidEvent) EventType() string     { return "batch.paid" }
func (e *BatchPaidEvent) AggregateID() string   { return e.BatchID }
func (e *BatchPaidEvent) OccurredAt() time.Time { return e.PaidAt }

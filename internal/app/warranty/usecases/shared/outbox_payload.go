package shared

import (
	"encoding/json"
	"fmt"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload
// suitable for the outbox.
//
// The domain layer intentionally avoids serialization concerns; this adapter
// extracts primitives so downstream consumers get stable shapes.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		return marshal(map[string]interface{}{
			"product_id":  e.ProductID,
			"provider_id": e.ProviderID,
			"name":        e.Name,
			"created_at":  e.CreatedAt,
		})

	case *domain.ProductUpdatedEvent:
		return marshal(map[string]interface{}{
			"product_id": e.ProductID,
			"fields":     e.Fields,
			"updated_at": e.UpdatedAt,
		})

	case *domain.ProductPublishedEvent:
		return marshal(map[string]interface{}{
			"product_id":   e.ProductID,
			"published":    e.Published,
			"published_at": e.PublishedAt,
		})

	case *domain.VariantCreatedEvent:
		return marshal(map[string]interface{}{
			"variant_id": e.VariantID,
			"product_id": e.ProductID,
			"created_at": e.CreatedAt,
		})

	case *domain.VariantDeletedEvent:
		return marshal(map[string]interface{}{
			"variant_id": e.VariantID,
			"product_id": e.ProductID,
			"deleted_at": e.DeletedAt,
		})

	case *domain.MarkupChangedEvent:
		return marshal(map[string]interface{}{
			"dealer_id":  e.DealerID,
			"percent":    e.Percent,
			"actor_id":   e.ActorID,
			"changed_at": e.ChangedAt,
		})

	case *domain.ContractCreatedEvent:
		return marshal(map[string]interface{}{
			"contract_id": e.ContractID,
			"dealer_id":   e.DealerID,
			"created_by":  e.CreatedBy,
			"created_at":  e.CreatedAt,
		})

	case *domain.ContractUpdatedEvent:
		return marshal(map[string]interface{}{
			"contract_id": e.ContractID,
			"fields":      e.Fields,
			"updated_at":  e.UpdatedAt,
		})

	case *domain.OfferSelectedEvent:
		return marshal(map[string]interface{}{
			"contract_id": e.ContractID,
			"product_id":  e.ProductID,
			"variant_id":  e.VariantID,
			"selected_at": e.SelectedAt,
		})

	case *domain.ContractStatusChangedEvent:
		return marshal(map[string]interface{}{
			"contract_id": e.ContractID,
			"warranty_id": domain.DeriveWarrantyID(e.ContractID),
			"from":        string(e.From),
			"to":          string(e.To),
			"actor_id":    e.ActorID,
			"changed_at":  e.ChangedAt,
		})

	case *domain.ContractDeletedEvent:
		return marshal(map[string]interface{}{
			"contract_id": e.ContractID,
			"actor_id":    e.ActorID,
			"deleted_at":  e.DeletedAt,
		})

	case *domain.BatchCreatedEvent:
		return marshal(map[string]interface{}{
			"batch_id":   e.BatchID,
			"dealer_id":  e.DealerID,
			"created_at": e.CreatedAt,
		})

	case *domain.BatchUpdatedEvent:
		return marshal(map[string]interface{}{
			"batch_id":   e.BatchID,
			"updated_at": e.UpdatedAt,
		})

	case *domain.BatchSubmittedEvent:
		return marshal(map[string]interface{}{
			"batch_id":     e.BatchID,
			"contract_ids": e.ContractIDs,
			"actor_id":     e.ActorID,
			"submitted_at": e.SubmittedAt,
		})

	case *domain.BatchReviewedEvent:
		return marshal(map[string]interface{}{
			"batch_id":    e.BatchID,
			"approved":    e.Approved,
			"actor_id":    e.ActorID,
			"reviewed_at": e.ReviewedAt,
		})

	case *domain.BatchPaidEvent:
		return marshal(map[string]interface{}{
			"batch_id": e.BatchID,
			"actor_id": e.ActorID,
			"paid_at":  e.PaidAt,
		})
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}

func marshal(payload map[string]interface{}) (string, error) {
	b, err := json.Marshal(payload)
	return string(b), err
}

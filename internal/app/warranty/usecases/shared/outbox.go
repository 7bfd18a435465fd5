package shared

import (
	"time"

	"github.com/google/uuid"

	"github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// AddOutboxEvents enriches domain events into outbox rows and appends their
// insert mutations to the plan.
func AddOutboxEvents(plan *commitplan.Plan, outboxRepo contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outboxRepo.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       "pending",
			CreatedAtUTC: now,
		}))
	}
	return nil
}

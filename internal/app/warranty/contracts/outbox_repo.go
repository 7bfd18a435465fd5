package contracts

import (
	"time"

	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// OutboxRepo is the write-side repository for the transactional outbox.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *commitplan.Mutation
}

// OutboxEvent is the application-level representation of an event persisted
// to the outbox table. Usecases enrich domain events into this structure.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}

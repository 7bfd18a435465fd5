package m_outbox

import (
	"time"

	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// BuildInsertMap prepares the canonical fields for an outbox row.
func BuildInsertMap(eventID, eventType, aggregateID, payload, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:     eventID,
		ColEventType:   eventType,
		ColAggregateID: aggregateID,
		ColPayload:     payload,
		ColStatus:      status,
		ColCreatedAt:   createdAt,
		ColProcessedAt: nil,
	}
}

func InsertMutation(values map[string]interface{}) *commitplan.Mutation {
	key, _ := values[ColEventID].(string)
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpInsert,
		KeyColumn: ColEventID,
		Key:       key,
		Values:    values,
	}
}

// MarkProcessedMutation flips an outbox row to processed.
func MarkProcessedMutation(eventID string, processedAt time.Time) *commitplan.Mutation {
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpUpdate,
		KeyColumn: ColEventID,
		Key:       eventID,
		Values: map[string]interface{}{
			ColStatus:      "processed",
			ColProcessedAt: processedAt,
		},
	}
}

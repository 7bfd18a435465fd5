package repo

import (
	"github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/models/m_outbox"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// OutboxRepo builds outbox mutations so event rows commit in the same plan
// as the aggregate change that produced them.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *commitplan.Mutation {
	if e == nil {
		return nil
	}
	values := m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		e.Status,
		e.CreatedAtUTC,
	)
	return m_outbox.InsertMutation(values)
}

package repo

import (
	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/models/m_markup"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// MarkupRepo builds dealer-markup mutations.
type MarkupRepo struct{}

func NewMarkupRepo() *MarkupRepo {
	return &MarkupRepo{}
}

func (r *MarkupRepo) InsertMut(m *domain.DealerMarkup) *commitplan.Mutation {
	if m == nil {
		return nil
	}
	values := m_markup.BuildInsertMap(m.DealerID(), m.Percent(), m.UpdatedBy(), m.UpdatedAt().UTC())
	return m_markup.InsertMutation(values)
}

func (r *MarkupRepo) UpdateMut(m *domain.DealerMarkup) *commitplan.Mutation {
	if m == nil || m.Changes() == nil || !m.Changes().HasChanges() {
		return nil
	}
	if !m.Changes().Dirty(domain.FieldMarkupPercent) {
		return nil
	}
	updates := map[string]interface{}{
		m_markup.ColPercent:   m.Percent(),
		m_markup.ColUpdatedBy: m.UpdatedBy(),
		m_markup.ColUpdatedAt: m.UpdatedAt().UTC(),
	}
	return m_markup.UpdateMutation(m.DealerID(), updates)
}

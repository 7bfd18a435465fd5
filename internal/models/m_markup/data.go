package m_markup

import (
	"time"

	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

func BuildInsertMap(dealerID string, percent float64, updatedBy string, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColDealerID:  dealerID,
		ColPercent:   percent,
		ColUpdatedBy: updatedBy,
		ColUpdatedAt: updatedAt,
	}
}

func InsertMutation(values map[string]interface{}) *commitplan.Mutation {
	key, _ := values[ColDealerID].(string)
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpInsert,
		KeyColumn: ColDealerID,
		Key:       key,
		Values:    values,
	}
}

func UpdateMutation(dealerID string, values map[string]interface{}) *commitplan.Mutation {
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpUpdate,
		KeyColumn: ColDealerID,
		Key:       dealerID,
		Values:    values,
	}
}

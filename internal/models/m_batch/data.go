package m_batch

import (
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

func InsertMutation(values map[string]interface{}) *commitplan.Mutation {
	key, _ := values[ColBatchID].(string)
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpInsert,
		KeyColumn: ColBatchID,
		Key:       key,
		Values:    values,
	}
}

// UpdateMutation builds an update for a batch. The values map must not
// include the batch_id column.
func UpdateMutation(batchID string, values map[string]interface{}) *commitplan.Mutation {
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpUpdate,
		KeyColumn: ColBatchID,
		Key:       batchID,
		Values:    values,
	}
}

// RemitStatusGuard asserts the stored remittance status at apply time.
func RemitStatusGuard(batchID, expect string) *commitplan.Guard {
	return &commitplan.Guard{
		Table:     TableName,
		KeyColumn: ColBatchID,
		Key:       batchID,
		Column:    ColRemittanceStatus,
		Expect:    expect,
	}
}

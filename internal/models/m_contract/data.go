package m_contract

import (
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// InsertMutation wraps a complete values map as an insert against the
// contracts table. The caller (repo) builds the map column by column from
// the aggregate; contracts have too many optional blocks for a positional
// builder to stay readable.
func InsertMutation(values map[string]interface{}) *commitplan.Mutation {
	key, _ := values[ColContractID].(string)
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpInsert,
		KeyColumn: ColContractID,
		Key:       key,
		Values:    values,
	}
}

// UpdateMutation builds an update for a contract. The values map must not
// include the contract_id column.
func UpdateMutation(contractID string, values map[string]interface{}) *commitplan.Mutation {
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpUpdate,
		KeyColumn: ColContractID,
		Key:       contractID,
		Values:    values,
	}
}

func DeleteMutation(contractID string) *commitplan.Mutation {
	return &commitplan.Mutation{
		Table:     TableName,
		Op:        commitplan.OpDelete,
		KeyColumn: ColContractID,
		Key:       contractID,
	}
}

// StatusGuard asserts the stored status column value at apply time.
func StatusGuard(contractID, expect string) *commitplan.Guard {
	return &commitplan.Guard{
		Table:     TableName,
		KeyColumn: ColContractID,
		Key:       contractID,
		Column:    ColStatus,
		Expect:    expect,
	}
}

package contracts

import (
	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// ContractRepo is the write-side repository for contracts.
type ContractRepo interface {
	InsertMut(c *domain.Contract) *commitplan.Mutation
	UpdateMut(c *domain.Contract) *commitplan.Mutation
	DeleteMut(contractID string) *commitplan.Mutation

	// StatusGuard returns a guard asserting the contract's stored status still
	// equals expect at apply time. Transition usecases attach one per entity
	// they advance so concurrent advances cannot both win.
	StatusGuard(contractID string, expect domain.ContractStatus) *commitplan.Guard
}

// BatchRepo is the write-side repository for remittance batches.
type BatchRepo interface {
	InsertMut(b *domain.RemittanceBatch) *commitplan.Mutation
	UpdateMut(b *domain.RemittanceBatch) *commitplan.Mutation

	// RemitStatusGuard asserts the batch's stored remittance status.
	RemitStatusGuard(batchID string, expect domain.RemittanceStatus) *commitplan.Guard
}

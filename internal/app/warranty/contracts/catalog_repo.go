package contracts

import (
	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// ProductRepo is the write-side repository for products. Methods return
// backend-neutral mutations; they never apply them.
type ProductRepo interface {
	// InsertMut returns a mutation that inserts the product (or nil if none).
	InsertMut(p *domain.Product) *commitplan.Mutation

	// UpdateMut returns a mutation that updates the product according to its
	// ChangeTracker (or nil when nothing changed).
	UpdateMut(p *domain.Product) *commitplan.Mutation
}

// VariantRepo is the write-side repository for pricing variants. Variants
// are immutable, so there is no update mutation.
type VariantRepo interface {
	InsertMut(v *domain.PricingVariant) *commitplan.Mutation
	DeleteMut(variantID string) *commitplan.Mutation
}

// MarkupRepo is the write-side repository for dealer markups.
type MarkupRepo interface {
	InsertMut(m *domain.DealerMarkup) *commitplan.Mutation
	UpdateMut(m *domain.DealerMarkup) *commitplan.Mutation
}

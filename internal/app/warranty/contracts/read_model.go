package contracts

import (
	"context"

	"github.com/clearlane/warranty-service/internal/app/warranty/dto"
)

// ReadModel is the read side of the storage backend. Implementations return
// the domain's NotFound sentinels for missing rows; GetMarkup returns
// (nil, nil) when a dealer simply has no markup configured.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	ListProductsByProvider(ctx context.Context, providerID string) ([]*dto.ProductDTO, error)
	ListPublishedProducts(ctx context.Context) ([]*dto.ProductDTO, error)

	// ListVariants returns a product's variants in creation order; resolver
	// tie-breaks depend on stored order being stable.
	ListVariants(ctx context.Context, productID string) ([]*dto.VariantDTO, error)
	GetVariant(ctx context.Context, variantID string) (*dto.VariantDTO, error)

	GetContract(ctx context.Context, contractID string) (*dto.ContractDTO, error)
	GetBatch(ctx context.Context, batchID string) (*dto.BatchDTO, error)
	GetMarkup(ctx context.Context, dealerID string) (*dto.MarkupDTO, error)
}

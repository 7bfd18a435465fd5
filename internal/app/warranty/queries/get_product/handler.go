package get_product

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Result pairs a product with its pricing variants in creation order.
type Result struct {
	Product  *dto.ProductDTO
	Variants []*dto.VariantDTO
}

func (h *Handler) Execute(ctx context.Context, productID string) (*Result, error) {
	p, err := h.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	vs, err := h.readModel.ListVariants(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &Result{Product: p, Variants: vs}, nil
}

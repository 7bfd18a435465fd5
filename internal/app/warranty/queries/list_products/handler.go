package list_products

import (
	"context"

	contracts "github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/app/warranty/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

// Execute lists the catalog visible to the actor: providers see their own
// products published or not, dealers see only the published catalog.
func (h *Handler) Execute(ctx context.Context, actor domain.Actor) ([]*dto.ProductDTO, error) {
	if actor.Role == domain.RoleProvider {
		return h.readModel.ListProductsByProvider(ctx, actor.ID)
	}
	return h.readModel.ListPublishedProducts(ctx)
}

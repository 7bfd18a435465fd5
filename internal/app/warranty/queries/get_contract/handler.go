package get_contract

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

// Execute fetches a contract. Providers see every contract; dealer-side
// actors only their own dealer's.
func (h *Handler) Execute(ctx context.Context, actor domain.Actor, contractID string) (*dto.ContractDTO, error) {
	d, err := h.readModel.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleProvider && d.CreatedBy != actor.ID && d.DealerID != actor.ID {
		return nil, domain.ErrNotAuthorized
	}
	return d, nil
}

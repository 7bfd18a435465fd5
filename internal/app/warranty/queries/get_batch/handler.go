package get_batch

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

// Result is the batch plus its member contracts.
type Result struct {
	Batch   *dto.BatchDTO
	Members []*dto.ContractDTO
}

func (h *Handler) Execute(ctx context.Context, actor domain.Actor, batchID string) (*Result, error) {
	b, err := h.readModel.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleProvider && b.DealerID != actor.ID {
		return nil, domain.ErrNotAuthorized
	}

	members := make([]*dto.ContractDTO, 0, len(b.ContractIDs))
	for _, contractID := range b.ContractIDs {
		c, err := h.readModel.GetContract(ctx, contractID)
		if err != nil {
			return nil, err
		}
		members = append(members, c)
	}
	return &Result{Batch: b, Members: members}, nil
}

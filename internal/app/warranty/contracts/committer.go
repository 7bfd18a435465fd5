package contracts

import (
	"context"

	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// Committer applies a collection of mutations and guards atomically. This is
// the storage-backend seam: the Spanner adapter and the in-memory store both
// satisfy it, and no usecase knows which one is active.
type Committer interface {
	// Apply atomically applies the provided mutation plan. Guards are
	// verified in the same atomic scope as the writes; a failed guard
	// surfaces commitplan.ErrStaleState and nothing is written.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}

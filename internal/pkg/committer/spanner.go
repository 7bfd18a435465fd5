package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// SpannerAdapter applies commit plans to Cloud Spanner. Guards are verified
// by re-reading the guarded rows inside the same read-write transaction that
// buffers the writes, so a concurrent transition aborts the whole plan.
type SpannerAdapter struct {
	client *spanner.Client
}

func NewSpannerAdapter(client *spanner.Client) *SpannerAdapter {
	return &SpannerAdapter{client: client}
}

func (a *SpannerAdapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		for _, g := range plan.Guards() {
			row, err := tx.ReadRow(ctx, g.Table, spanner.Key{g.Key}, []string{g.Column})
			if err != nil {
				return fmt.Errorf("committer: read guard %s/%s: %w", g.Table, g.Key, err)
			}
			var got string
			if err := row.Columns(&got); err != nil {
				return fmt.Errorf("committer: scan guard %s/%s: %w", g.Table, g.Key, err)
			}
			if got != g.Expect {
				return ErrStaleState
			}
		}
		return tx.BufferWrite(toSpannerMutations(plan.Mutations()))
	})
	return err
}

func toSpannerMutations(muts []*Mutation) []*spanner.Mutation {
	out := make([]*spanner.Mutation, 0, len(muts))
	for _, m := range muts {
		switch m.Op {
		case OpInsert:
			cols := make([]string, 0, len(m.Values))
			vals := make([]interface{}, 0, len(m.Values))
			for col, v := range m.Values {
				cols = append(cols, col)
				vals = append(vals, v)
			}
			out = append(out, spanner.Insert(m.Table, cols, vals))
		case OpUpdate:
			// key column first, then the update columns
			cols := []string{m.KeyColumn}
			vals := []interface{}{m.Key}
			for col, v := range m.Values {
				cols = append(cols, col)
				vals = append(vals, v)
			}
			out = append(out, spanner.Update(m.Table, cols, vals))
		case OpDelete:
			out = append(out, spanner.Delete(m.Table, spanner.Key{m.Key}))
		}
	}
	return out
}

package committer

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is the local storage backend: tables of rows keyed by their
// primary key, each row a column map shaped exactly like the values a plan
// writes. It backs both the memory committer and the memory read models.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]interface{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]map[string]map[string]interface{}),
	}
}

// Apply validates every guard and mutation, then applies the whole plan under
// one lock. Nothing is written if any guard fails or any insert collides, so
// a plan spanning several entities commits all-or-nothing.
func (s *MemoryStore) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range plan.Guards() {
		row, ok := s.tables[g.Table][g.Key]
		if !ok {
			return fmt.Errorf("committer: guard row %s/%s not found", g.Table, g.Key)
		}
		got, _ := row[g.Column].(string)
		if got != g.Expect {
			return ErrStaleState
		}
	}

	for _, m := range plan.Mutations() {
		rows := s.tables[m.Table]
		switch m.Op {
		case OpInsert:
			if _, exists := rows[m.Key]; exists {
				return fmt.Errorf("committer: row %s/%s already exists", m.Table, m.Key)
			}
		case OpUpdate:
			if _, exists := rows[m.Key]; !exists {
				return fmt.Errorf("committer: row %s/%s not found", m.Table, m.Key)
			}
		}
	}

	for _, m := range plan.Mutations() {
		rows, ok := s.tables[m.Table]
		if !ok {
			rows = make(map[string]map[string]interface{})
			s.tables[m.Table] = rows
		}
		switch m.Op {
		case OpInsert:
			row := make(map[string]interface{}, len(m.Values)+1)
			for col, v := range m.Values {
				row[col] = v
			}
			row[m.KeyColumn] = m.Key
			rows[m.Key] = row
		case OpUpdate:
			row := rows[m.Key]
			for col, v := range m.Values {
				row[col] = v
			}
		case OpDelete:
			delete(rows, m.Key)
		}
	}

	return nil
}

// Row returns a copy of a stored row, or nil when absent.
func (s *MemoryStore) Row(table, key string) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tables[table][key]
	if !ok {
		return nil
	}
	out := make(map[string]interface{}, len(row))
	for col, v := range row {
		out[col] = v
	}
	return out
}

// Rows returns copies of every row in a table, in unspecified order.
func (s *MemoryStore) Rows(table string) []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]map[string]interface{}, 0, len(s.tables[table]))
	for _, row := range s.tables[table] {
		cp := make(map[string]interface{}, len(row))
		for col, v := range row {
			cp[col] = v
		}
		out = append(out, cp)
	}
	return out
}

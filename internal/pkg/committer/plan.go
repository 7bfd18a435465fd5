package committer

import "errors"

// ErrStaleState is returned by Apply when a guard's expected value no longer
// matches the stored row. It signals a concurrent writer got there first; the
// whole plan is discarded.
var ErrStaleState = errors.New("committer: guarded row changed concurrently")

// Op identifies the kind of mutation.
type Op int

const (
	OpInsert Op = iota
	OpUpdate
	OpDelete
)

// Mutation is a backend-neutral write against a single row. Values holds
// column name to value pairs; for updates the key column is added by the
// applier, for deletes Values is ignored.
type Mutation struct {
	Table     string
	Op        Op
	KeyColumn string
	Key       string
	Values    map[string]interface{}
}

// Guard asserts that a row column still holds an expected string value at
// apply time. Guards let usecases make "read, decide, write" sequences safe
// against concurrent transitions on the same entity: the applier verifies
// every guard inside the same atomic scope as the writes.
type Guard struct {
	Table     string
	KeyColumn string
	Key       string
	Column    string
	Expect    string
}

// Plan is an ordered collection of mutations plus guards, applied
// all-or-nothing by a Committer implementation.
type Plan struct {
	mutations []*Mutation
	guards    []*Guard
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*Mutation, 0),
	}
}

func (p *Plan) Add(m *Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

// AddGuard registers a precondition checked atomically with the writes.
func (p *Plan) AddGuard(g *Guard) {
	if g == nil {
		return
	}
	p.guards = append(p.guards, g)
}

func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

func (p *Plan) Mutations() []*Mutation {
	return p.mutations
}

func (p *Plan) Guards() []*Guard {
	return p.guards
}

package console

import (
	"context"
	"fmt"

	api "github.com/campushub/admin-console/api/v1alpha1"
)

// Graph is the directed set of allowed status transitions for a
// review-lifecycle kind. Statuses only ever move forward; the console never
// requests a transition out of a terminal state.
type Graph struct {
	initial api.Status
	edges   map[api.Status][]api.Status
}

// AcceptanceGraph models pending -> accepted | rejected, both terminal.
func AcceptanceGraph() *Graph {
	return &Graph{
		initial: api.StatusPending,
		edges: map[api.Status][]api.Status{
			api.StatusPending: {api.StatusAccepted, api.StatusRejected},
		},
	}
}

// TicketGraph models new -> in-progress -> resolved. Resolving straight from
// new is deliberately not allowed: replying to an enquiry is a side channel,
// not a transition, so an operator marks it in progress first.
func TicketGraph() *Graph {
	return &Graph{
		initial: api.StatusNew,
		edges: map[api.Status][]api.Status{
			api.StatusNew:        {api.StatusInProgress},
			api.StatusInProgress: {api.StatusResolved},
		},
	}
}

// Initial is the state the backend assigns at creation.
func (g *Graph) Initial() api.Status {
	return g.initial
}

// Targets lists the states adjacent to from.
func (g *Graph) Targets(from api.Status) []api.Status {
	return g.edges[from]
}

// CanTransition reports whether from -> to is an edge of the graph.
func (g *Graph) CanTransition(from, to api.Status) bool {
	for _, t := range g.edges[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no edge leaves the state.
func (g *Graph) Terminal(s api.Status) bool {
	return len(g.edges[s]) == 0
}

// StatusPatcher is the narrow slice of the resource client the workflow
// needs.
type StatusPatcher interface {
	PatchStatus(ctx context.Context, id string, target api.Status) (*api.Entity, error)
}

// Transition requests a status change and patches the local copy
// optimistically: on success the entity's status becomes target without a
// reconciling re-fetch; on failure the entity is left exactly as it was and
// the error surfaces once. Illegal targets are rejected before any request
// is issued.
func Transition(ctx context.Context, p StatusPatcher, g *Graph, e *api.Entity, target api.Status) error {
	if g.Terminal(e.Status) {
		return fmt.Errorf("status %q is terminal, no transition offered", e.Status)
	}
	if !g.CanTransition(e.Status, target) {
		return fmt.Errorf("illegal transition %q -> %q", e.Status, target)
	}
	if _, err := p.PatchStatus(ctx, e.ID, target); err != nil {
		return err
	}
	e.Status = target
	return nil
}

package search

import "github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"

// UCS is uniform cost search: the frontier is ordered by accumulated path
// cost alone. With non-negative step costs the first goal dequeue is
// cost-optimal, so UCS doubles as the reference for CostOptimal.
type UCS struct{}

// NewUCS creates a uniform cost solver.
func NewUCS() *UCS {
	return &UCS{}
}

// Name returns the strategy name.
func (*UCS) Name() string { return "UCS" }

// Solve implements Solver.
func (*UCS) Solve(inst *world.Instance) (Result, error) {
	return bestFirst(inst, func(g int, _ world.State) int { return g })
}

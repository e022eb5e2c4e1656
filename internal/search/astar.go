package search

import "github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"

// AStar searches with frontier priority f = g + h. The heuristic is
// pluggable; the default NearestGoalManhattan trades optimality for far
// fewer expansions.
type AStar struct {
	h Heuristic
}

// NewAStar creates an A* solver guided by h. A nil h falls back to
// NearestGoalManhattan.
func NewAStar(h Heuristic) *AStar {
	if h == nil {
		h = NearestGoalManhattan
	}
	return &AStar{h: h}
}

// Name returns the strategy name.
func (*AStar) Name() string { return "A*" }

// Solve implements Solver.
func (a *AStar) Solve(inst *world.Instance) (Result, error) {
	return bestFirst(inst, func(g int, s world.State) int {
		return g + a.h(inst.Grid, s)
	})
}

package search

import "github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"

// Heuristic estimates the remaining cost from a state. The engine treats it
// as opaque: estimates must be non-negative, and nothing checks them against
// the true remaining cost.
type Heuristic func(g *world.Grid, s world.State) int

// NearestGoalManhattan estimates remaining cost as the Manhattan distance to
// the closest remaining banana, 0 once none remain. This is the original
// lab heuristic, kept with its known flaw: it only ever looks at one banana,
// so with several left it does not track the cost of the full remaining tour
// and A* guided by it is not guaranteed to return a minimum-cost plan. Use
// CostOptimal to check a result when optimality matters.
func NearestGoalManhattan(g *world.Grid, s world.State) int {
	best := -1
	for i := 0; i < g.NumGoals(); i++ {
		if !s.Remaining.Has(i) {
			continue
		}
		if d := world.Manhattan(s.Pos, g.Goal(i)); best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

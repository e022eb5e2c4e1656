package world

import (
	"math/bits"
	"strconv"
	"strings"
)

// GoalSet is the set of bananas not yet collected, packed as a bitmask over
// the owning Grid's goal bit indices.
type GoalSet uint64

// FullGoalSet returns the set holding the first n bananas.
func FullGoalSet(n int) GoalSet {
	if n >= MaxGoals {
		return ^GoalSet(0)
	}
	return GoalSet(1)<<n - 1
}

// Has checks whether bit i is still in the set.
func (s GoalSet) Has(i int) bool { return s&(GoalSet(1)<<i) != 0 }

// Without returns the set with bit i removed.
func (s GoalSet) Without(i int) GoalSet { return s &^ (GoalSet(1) << i) }

// Count returns the number of bananas in the set.
func (s GoalSet) Count() int { return bits.OnesCount64(uint64(s)) }

// Empty checks whether every banana has been collected.
func (s GoalSet) Empty() bool { return s == 0 }

// State is the search state: the agent's cell plus the bananas still
// uncollected. State is a comparable value, so it keys visited maps
// directly; two states are equal exactly when position and remaining
// set both match.
type State struct {
	Pos       Position
	Remaining GoalSet
}

// IsGoal checks whether the state has no bananas left to collect.
func (s State) IsGoal() bool { return s.Remaining.Empty() }

// RemainingGoals expands the mask into banana cells, in bit order.
func (s State) RemainingGoals(g *Grid) []Position {
	out := make([]Position, 0, s.Remaining.Count())
	for i := 0; i < g.NumGoals(); i++ {
		if s.Remaining.Has(i) {
			out = append(out, g.Goal(i))
		}
	}
	return out
}

func (s State) String() string {
	var b strings.Builder
	b.WriteString(s.Pos.String())
	b.WriteByte('{')
	n := 0
	for i := 0; i < MaxGoals; i++ {
		if !s.Remaining.Has(i) {
			continue
		}
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(i))
		n++
	}
	b.WriteByte('}')
	return b.String()
}

// Transition is the outcome of applying one action to a state.
type Transition struct {
	Action Action
	State  State
	Cost   int
}

// Apply executes a single action. A move into a blocked cell or off the grid
// bumps: the agent stays put, and the caller still pays StepCost. Arriving on
// a cell with a remaining banana collects it as part of the same transition.
func Apply(g *Grid, s State, a Action) State {
	dr, dc := a.Delta()
	target := Position{Row: s.Pos.Row + dr, Col: s.Pos.Col + dc}
	if !g.InBounds(target) || g.Blocked(target) {
		return s
	}
	next := State{Pos: target, Remaining: s.Remaining}
	if i, ok := g.GoalBit(target); ok && next.Remaining.Has(i) {
		next.Remaining = next.Remaining.Without(i)
	}
	return next
}

// Successors applies every action to s. The result always holds exactly four
// transitions in N, E, S, W order, each costing StepCost; bumps appear as
// transitions back to s itself.
func Successors(g *Grid, s State) []Transition {
	out := make([]Transition, 0, 4)
	for _, a := range Actions() {
		out = append(out, Transition{Action: a, State: Apply(g, s, a), Cost: StepCost})
	}
	return out
}

// Package world defines the hungry monkey domain: a bounded 2D grid with
// blocked cells, banana cells to collect, and a single agent.
package world

import "fmt"

// Cost model. Every move costs StepCost, including moves that bump into a
// wall or the grid edge. GoalReward is the reporting bonus per collected
// banana; it never enters path cost.
const (
	StepCost   = 1
	GoalReward = 10
)

// MaxGoals bounds the number of bananas per grid. GoalSet packs the
// remaining bananas into a 64-bit mask, so the bound is hard.
const MaxGoals = 64

// Position is a cell address. Row 0 is the top row, Col 0 the left column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance between two cells.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Action is one of the four cardinal moves.
type Action int

const (
	North Action = iota
	East
	South
	West
)

// Actions returns the four moves in canonical N, E, S, W order. Successor
// expansion and plan files both rely on this order.
func Actions() [4]Action {
	return [4]Action{North, East, South, West}
}

func (a Action) String() string {
	switch a {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction converts a one-letter action name back to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	default:
		return 0, fmt.Errorf("%w: unknown action %q", ErrInvalidWorld, s)
	}
}

// Delta returns the row/column offset of one unit move. North decreases the
// row, so plans render naturally on top-down map text.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Grid is an immutable world description: dimensions, blocked cells and
// banana cells. A Grid never changes after New, so one value can back any
// number of concurrent searches.
type Grid struct {
	width, height int
	blocked       map[Position]struct{}
	goals         []Position // index order defines the GoalSet bit layout
	goalBit       map[Position]int
}

// New validates the description and builds a Grid. Duplicate goal cells
// collapse to one banana. Errors wrap ErrInvalidWorld.
func New(width, height int, blocked, goals []Position) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: non-positive size %dx%d", ErrInvalidWorld, width, height)
	}
	g := &Grid{
		width:   width,
		height:  height,
		blocked: make(map[Position]struct{}, len(blocked)),
		goalBit: make(map[Position]int, len(goals)),
	}
	for _, p := range blocked {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: blocked cell %v outside %dx%d", ErrInvalidWorld, p, width, height)
		}
		g.blocked[p] = struct{}{}
	}
	for _, p := range goals {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: goal %v outside %dx%d", ErrInvalidWorld, p, width, height)
		}
		if g.Blocked(p) {
			return nil, fmt.Errorf("%w: goal %v on a blocked cell", ErrInvalidWorld, p)
		}
		if _, dup := g.goalBit[p]; dup {
			continue
		}
		if len(g.goals) == MaxGoals {
			return nil, fmt.Errorf("%w: more than %d goals", ErrInvalidWorld, MaxGoals)
		}
		g.goalBit[p] = len(g.goals)
		g.goals = append(g.goals, p)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds checks whether p lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Blocked checks whether p is a blocked cell.
func (g *Grid) Blocked(p Position) bool {
	_, ok := g.blocked[p]
	return ok
}

// NumGoals returns the number of banana cells.
func (g *Grid) NumGoals() int { return len(g.goals) }

// Goal returns the i-th banana cell in GoalSet bit order.
func (g *Grid) Goal(i int) Position { return g.goals[i] }

// Goals returns a copy of all banana cells in GoalSet bit order.
func (g *Grid) Goals() []Position {
	out := make([]Position, len(g.goals))
	copy(out, g.goals)
	return out
}

// GoalBit returns the GoalSet bit index of the banana at p, if any.
func (g *Grid) GoalBit(p Position) (int, bool) {
	i, ok := g.goalBit[p]
	return i, ok
}

// FreeCells counts cells that are neither blocked nor outside the grid.
func (g *Grid) FreeCells() int {
	return g.width*g.height - len(g.blocked)
}

package world

import (
	"fmt"
	"strings"
)

// Instance pairs a grid with the monkey's start cell.
type Instance struct {
	Grid  *Grid
	Start Position
}

// NewInstance builds and validates an instance.
func NewInstance(g *Grid, start Position) (*Instance, error) {
	inst := &Instance{Grid: g, Start: start}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Validate checks the start cell against the grid. Errors wrap
// ErrInvalidWorld.
func (inst *Instance) Validate() error {
	if inst.Grid == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidWorld)
	}
	if !inst.Grid.InBounds(inst.Start) {
		return fmt.Errorf("%w: start %v outside %dx%d", ErrInvalidWorld, inst.Start, inst.Grid.Width(), inst.Grid.Height())
	}
	if inst.Grid.Blocked(inst.Start) {
		return fmt.Errorf("%w: start %v on a blocked cell", ErrInvalidWorld, inst.Start)
	}
	return nil
}

// InitialState returns the root search state: the monkey on its start cell
// with every banana outstanding. A banana on the start cell itself counts as
// collected before the first move.
func (inst *Instance) InitialState() State {
	s := State{Pos: inst.Start, Remaining: FullGoalSet(inst.Grid.NumGoals())}
	if i, ok := inst.Grid.GoalBit(inst.Start); ok {
		s.Remaining = s.Remaining.Without(i)
	}
	return s
}

// String renders the instance as map text: '#' blocked, 'B' banana, 'M' the
// monkey, '.' free floor.
func (inst *Instance) String() string {
	var b strings.Builder
	for r := 0; r < inst.Grid.Height(); r++ {
		for c := 0; c < inst.Grid.Width(); c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == inst.Start:
				b.WriteByte(cellMonkey)
			case inst.Grid.Blocked(p):
				b.WriteByte(cellBlocked)
			case hasGoal(inst.Grid, p):
				b.WriteByte(cellGoal)
			default:
				b.WriteByte(cellFloor)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func hasGoal(g *Grid, p Position) bool {
	_, ok := g.GoalBit(p)
	return ok
}

package search

import "github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"

// IDS is iterative deepening search: a depth-limited DFS re-run under
// growing depth bounds 0, 1, 2, ... until a plan is found. MaxDepth caps the
// deepening loop; 0 means no cap, in which case an unsolvable world keeps
// the loop running forever. Callers that need a guaranteed stop set a cap.
type IDS struct {
	MaxDepth int
}

// NewIDS creates an iterative deepening solver. maxDepth 0 means unbounded.
func NewIDS(maxDepth int) *IDS {
	return &IDS{MaxDepth: maxDepth}
}

// Name returns the strategy name.
func (*IDS) Name() string { return "IDS" }

// Solve implements Solver. The expansion count accumulates across every
// depth iteration, so states revisited at deeper bounds count each time.
func (s *IDS) Solve(inst *world.Instance) (Result, error) {
	if err := inst.Validate(); err != nil {
		return Result{}, err
	}
	d := &dls{
		grid:   inst.Grid,
		onPath: make(map[world.State]bool),
	}
	for depth := 0; s.MaxDepth == 0 || depth <= s.MaxDepth; depth++ {
		if goal := d.search(&node{state: inst.InitialState()}, depth); goal != nil {
			return successResult(inst, goal, d.expanded), nil
		}
	}
	return Result{Expanded: d.expanded}, ErrNoSolution
}

// dls carries one solver run's depth-limited descents. The visited set is
// path-local: a state blocks re-entry only while it sits on the current
// branch, so distinct branches may legitimately expand the same state again
// within one iteration.
type dls struct {
	grid     *world.Grid
	onPath   map[world.State]bool // ancestor states of the current branch
	expanded int
}

// search visits n with limit moves left before the bound. It returns the
// goal node, or nil when the branch dead-ends or the bound cuts it. A node
// sitting exactly on the bound is still goal-tested, just never expanded.
func (d *dls) search(n *node, limit int) *node {
	d.expanded++
	if n.state.IsGoal() {
		return n
	}
	if limit == 0 {
		return nil
	}
	d.onPath[n.state] = true
	defer delete(d.onPath, n.state)

	for _, tr := range world.Successors(d.grid, n.state) {
		if d.onPath[tr.State] {
			continue
		}
		child := &node{
			state:  tr.State,
			action: tr.Action,
			parent: n,
			g:      n.g + tr.Cost,
		}
		if goal := d.search(child, limit-1); goal != nil {
			return goal
		}
	}
	return nil
}

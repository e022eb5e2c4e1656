// Package search implements offline planners for the hungry monkey problem:
// iterative deepening (IDS), uniform cost (UCS) and A*. All three are graph
// searches over world.State values; UCS and A* share one best-first engine
// and differ only in frontier priority.
package search

import (
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

// Solver is the interface for search strategies.
type Solver interface {
	// Solve searches inst for an action sequence that collects every
	// banana. On failure it returns ErrNoSolution together with a Result
	// that still carries the expansion count.
	Solve(inst *world.Instance) (Result, error)
	// Name returns the strategy name.
	Name() string
}

// Result is the outcome of one search run.
type Result struct {
	Actions  []world.Action // moves from the start cell, in execution order
	Cost     int            // total path cost, StepCost per action
	Expanded int            // states expanded during the search
	Reward   int            // bananas collected times GoalReward, minus Cost
}

// bestFirst is the shared engine behind UCS and A*: a priority frontier with
// lazy duplicate elimination. Duplicates are dropped when dequeued, not when
// enqueued, so a state may sit on the frontier several times but is expanded
// once. priority maps a node's accumulated cost and state to its f value.
func bestFirst(inst *world.Instance, priority func(g int, s world.State) int) (Result, error) {
	if err := inst.Validate(); err != nil {
		return Result{}, err
	}

	root := &node{state: inst.InitialState()}
	root.f = priority(0, root.state)

	var open frontier
	open.push(root)
	explored := make(map[world.State]bool)
	expanded := 0

	for !open.empty() {
		current := open.pop()
		if explored[current.state] {
			continue
		}
		expanded++
		if current.state.IsGoal() {
			return successResult(inst, current, expanded), nil
		}
		explored[current.state] = true

		for _, tr := range world.Successors(inst.Grid, current.state) {
			if explored[tr.State] {
				continue
			}
			child := &node{
				state:  tr.State,
				action: tr.Action,
				parent: current,
				g:      current.g + tr.Cost,
			}
			child.f = priority(child.g, child.state)
			open.push(child)
		}
	}
	return Result{Expanded: expanded}, ErrNoSolution
}

// successResult assembles the Result for a goal node. Reward counts the
// bananas outstanding at the initial state; one already under the monkey at
// the start is collected for free and earns nothing.
func successResult(inst *world.Instance, goal *node, expanded int) Result {
	collected := inst.InitialState().Remaining.Count()
	return Result{
		Actions:  goal.actions(),
		Cost:     goal.g,
		Expanded: expanded,
		Reward:   collected*world.GoalReward - goal.g,
	}
}

// CostOptimal reports whether res matches the cost a cost-ordered search
// finds on inst. It exists as a diagnostic for A*: the bundled heuristic is
// not trusted for optimality, so callers that need a verified-optimal cost
// compare against UCS. The error is UCS's own, ErrNoSolution included.
func CostOptimal(inst *world.Instance, res Result) (bool, error) {
	ref, err := NewUCS().Solve(inst)
	if err != nil {
		return false, err
	}
	return res.Cost == ref.Cost, nil
}

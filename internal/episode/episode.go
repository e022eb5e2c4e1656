// Package episode replays planned action sequences against a world, one
// step at a time, and accounts rewards the way the lab scores an episode:
// GoalReward per banana collected, StepCost per move.
package episode

import (
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

// Step records one executed action.
type Step struct {
	Action    world.Action   // the move taken
	Pos       world.Position // cell after the move; bumps keep the old cell
	Collected bool           // a banana was collected on arrival
	Reward    int            // GoalReward if collected, minus StepCost
}

// Report summarizes a replayed plan.
type Report struct {
	Steps     []Step
	Final     world.State
	Collected int  // bananas collected during the episode
	Reward    int  // sum of step rewards
	Complete  bool // no bananas left after the final step
}

// Run replays actions from the instance's initial state. horizon > 0 caps
// the number of executed steps; 0 replays the whole plan. Replay is
// deterministic: feeding a solver's result back through Run always produces
// the same trace.
func Run(inst *world.Instance, actions []world.Action, horizon int) (*Report, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	s := inst.InitialState()
	rep := &Report{}
	for i, a := range actions {
		if horizon > 0 && i >= horizon {
			break
		}
		next := world.Apply(inst.Grid, s, a)
		step := Step{Action: a, Pos: next.Pos, Reward: -world.StepCost}
		if next.Remaining != s.Remaining {
			step.Collected = true
			step.Reward += world.GoalReward
			rep.Collected++
		}
		rep.Reward += step.Reward
		rep.Steps = append(rep.Steps, step)
		s = next
	}
	rep.Final = s
	rep.Complete = s.IsGoal()
	return rep, nil
}

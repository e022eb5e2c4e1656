package episode

import (
	"errors"
	"testing"

	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/search"
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

func mustParse(t *testing.T, text string) *world.Instance {
	t.Helper()
	inst, err := world.ParseMap(text)
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	return inst
}

// Replaying a solver's plan reproduces its reward accounting exactly.
func TestRun_ReplaysSolverPlan(t *testing.T) {
	inst := mustParse(t, "B.M...B")
	res, err := search.NewUCS().Solve(inst)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	rep, err := Run(inst, res.Actions, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !rep.Complete {
		t.Error("Complete = false, want true")
	}
	if rep.Collected != 2 {
		t.Errorf("Collected = %d, want 2", rep.Collected)
	}
	if rep.Reward != res.Reward {
		t.Errorf("Reward = %d, want solver's %d", rep.Reward, res.Reward)
	}
	if len(rep.Steps) != len(res.Actions) {
		t.Fatalf("len(Steps) = %d, want %d", len(rep.Steps), len(res.Actions))
	}
	// The optimal plan grabs the near banana on step 2 and the far one on
	// the last step.
	for i, step := range rep.Steps {
		want := i == 1 || i == 7
		if step.Collected != want {
			t.Errorf("Steps[%d].Collected = %t, want %t", i, step.Collected, want)
		}
	}
	if want := (world.Position{Row: 0, Col: 6}); rep.Final.Pos != want {
		t.Errorf("Final.Pos = %v, want %v", rep.Final.Pos, want)
	}
}

func TestRun_HorizonCapsSteps(t *testing.T) {
	inst := mustParse(t, "B.M...B")
	plan := []world.Action{
		world.West, world.West,
		world.East, world.East, world.East, world.East, world.East, world.East,
	}

	rep, err := Run(inst, plan, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(rep.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(rep.Steps))
	}
	if rep.Complete {
		t.Error("Complete = true, want false")
	}
	if rep.Collected != 1 {
		t.Errorf("Collected = %d, want 1", rep.Collected)
	}
	if want := -2*world.StepCost + world.GoalReward; rep.Reward != want {
		t.Errorf("Reward = %d, want %d", rep.Reward, want)
	}
	if want := (world.Position{Row: 0, Col: 0}); rep.Final.Pos != want {
		t.Errorf("Final.Pos = %v, want %v", rep.Final.Pos, want)
	}
}

// A bumped move still costs a step but goes nowhere.
func TestRun_BumpKeepsPosition(t *testing.T) {
	inst := mustParse(t, "MB")

	rep, err := Run(inst, []world.Action{world.North, world.East}, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	bump := rep.Steps[0]
	if want := (world.Position{Row: 0, Col: 0}); bump.Pos != want {
		t.Errorf("bump Pos = %v, want %v", bump.Pos, want)
	}
	if bump.Collected {
		t.Error("bump Collected = true, want false")
	}
	if bump.Reward != -world.StepCost {
		t.Errorf("bump Reward = %d, want %d", bump.Reward, -world.StepCost)
	}
	if !rep.Complete || rep.Collected != 1 {
		t.Errorf("Complete = %t, Collected = %d, want true, 1", rep.Complete, rep.Collected)
	}
}

func TestRun_EmptyPlan(t *testing.T) {
	inst := mustParse(t, "M.B")

	rep, err := Run(inst, nil, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(rep.Steps) != 0 {
		t.Errorf("len(Steps) = %d, want 0", len(rep.Steps))
	}
	if rep.Complete {
		t.Error("Complete = true, want false")
	}
	if rep.Final != inst.InitialState() {
		t.Errorf("Final = %v, want initial state %v", rep.Final, inst.InitialState())
	}
}

func TestRun_InvalidInstance(t *testing.T) {
	grid, err := world.New(2, 1, []world.Position{{Row: 0, Col: 0}}, []world.Position{{Row: 0, Col: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	inst := &world.Instance{Grid: grid, Start: world.Position{Row: 0, Col: 0}}

	if _, err := Run(inst, nil, 0); !errors.Is(err, world.ErrInvalidWorld) {
		t.Errorf("Run error = %v, want ErrInvalidWorld", err)
	}
}

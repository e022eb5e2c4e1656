package search

import (
	"testing"

	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

func TestFrontier_PopsByPriority(t *testing.T) {
	var open frontier
	for _, f := range []int{7, 2, 9, 4} {
		open.push(&node{f: f})
	}

	want := []int{2, 4, 7, 9}
	for i, w := range want {
		if got := open.pop().f; got != w {
			t.Fatalf("pop %d: f = %d, want %d", i, got, w)
		}
	}
	if !open.empty() {
		t.Error("frontier not empty after draining")
	}
}

// Equal priorities come out in insertion order, so the engine expands
// same-cost states oldest first.
func TestFrontier_FIFOOnTies(t *testing.T) {
	var open frontier
	a := &node{state: world.State{Pos: world.Position{Col: 0}}, f: 5}
	b := &node{state: world.State{Pos: world.Position{Col: 1}}, f: 5}
	c := &node{state: world.State{Pos: world.Position{Col: 2}}, f: 5}
	d := &node{state: world.State{Pos: world.Position{Col: 3}}, f: 3}
	for _, n := range []*node{a, b, c, d} {
		open.push(n)
	}

	want := []*node{d, a, b, c}
	for i, w := range want {
		if got := open.pop(); got != w {
			t.Fatalf("pop %d: got node at %v, want %v", i, got.state.Pos, w.state.Pos)
		}
	}
}

func TestNode_Actions(t *testing.T) {
	root := &node{}
	if got := root.actions(); got == nil || len(got) != 0 {
		t.Errorf("root actions = %v, want empty non-nil slice", got)
	}

	first := &node{action: world.East, parent: root}
	second := &node{action: world.South, parent: first}
	got := second.actions()
	want := []world.Action{world.East, world.South}
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("actions[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

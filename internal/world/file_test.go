package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWorldFile_Instance(t *testing.T) {
	wf := &WorldFile{
		Width:   3,
		Height:  2,
		Start:   Position{Row: 0, Col: 0},
		Blocked: []Position{{Row: 1, Col: 1}},
		Goals:   []Position{{Row: 0, Col: 2}},
	}
	inst, err := wf.Instance()
	if err != nil {
		t.Fatalf("Instance: %v", err)
	}
	if !inst.Grid.Blocked(Position{Row: 1, Col: 1}) {
		t.Error("blocked cell lost")
	}
	if inst.Grid.NumGoals() != 1 {
		t.Errorf("NumGoals() = %d, want 1", inst.Grid.NumGoals())
	}

	wf.Start = Position{Row: 9, Col: 9}
	if _, err := wf.Instance(); !errors.Is(err, ErrInvalidWorld) {
		t.Errorf("Instance() with bad start: error = %v, want ErrInvalidWorld", err)
	}
}

func TestWorldFile_SaveLoadRoundTrip(t *testing.T) {
	orig, err := ParseMap(labMap)
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.json")
	wf := NewWorldFile("roundtrip", orig)
	if err := wf.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Start != orig.Start {
		t.Errorf("Start = %v, want %v", loaded.Start, orig.Start)
	}
	if loaded.Grid.NumGoals() != orig.Grid.NumGoals() {
		t.Errorf("NumGoals() = %d, want %d", loaded.Grid.NumGoals(), orig.Grid.NumGoals())
	}
	for r := 0; r < orig.Grid.Height(); r++ {
		for c := 0; c < orig.Grid.Width(); c++ {
			p := Position{Row: r, Col: c}
			if loaded.Grid.Blocked(p) != orig.Grid.Blocked(p) {
				t.Errorf("Blocked(%v) changed across save/load", p)
			}
		}
	}
}

func TestLoadFile_JSON(t *testing.T) {
	inst, err := LoadFile(filepath.Join("testdata", "world1.json"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if inst.Grid.Width() != 5 || inst.Grid.Height() != 4 {
		t.Errorf("size = %dx%d, want 5x4", inst.Grid.Width(), inst.Grid.Height())
	}
	if inst.Grid.NumGoals() != 2 {
		t.Errorf("NumGoals() = %d, want 2", inst.Grid.NumGoals())
	}
	if !inst.Grid.Blocked(Position{Row: 1, Col: 2}) {
		t.Error("Blocked((1,2)) = false, want true")
	}
}

func TestLoadFile_MapText(t *testing.T) {
	inst, err := LoadFile(filepath.Join("testdata", "world0.txt"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if inst.Start != (Position{Row: 1, Col: 1}) {
		t.Errorf("Start = %v, want (1,1)", inst.Start)
	}
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.xml")
	if err := os.WriteFile(path, []byte("<world/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() on broken JSON: want error")
	}
}

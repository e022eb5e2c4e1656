package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WorldFile is the on-disk JSON description of a world, as written by
// tools/gen_worlds.
type WorldFile struct {
	Name      string     `json:"name,omitempty"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Start     Position   `json:"start"`
	Blocked   []Position `json:"blocked,omitempty"`
	Goals     []Position `json:"goals"`
	Seed      int64      `json:"seed,omitempty"`
	Generated string     `json:"generated,omitempty"`
}

// NewWorldFile captures an instance for serialization.
func NewWorldFile(name string, inst *Instance) *WorldFile {
	g := inst.Grid
	wf := &WorldFile{
		Name:   name,
		Width:  g.Width(),
		Height: g.Height(),
		Start:  inst.Start,
		Goals:  g.Goals(),
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if p := (Position{Row: r, Col: c}); g.Blocked(p) {
				wf.Blocked = append(wf.Blocked, p)
			}
		}
	}
	return wf
}

// Instance builds a validated instance from the file.
func (wf *WorldFile) Instance() (*Instance, error) {
	g, err := New(wf.Width, wf.Height, wf.Blocked, wf.Goals)
	if err != nil {
		return nil, err
	}
	return NewInstance(g, wf.Start)
}

// Save writes the world as indented JSON.
func (wf *WorldFile) Save(path string) error {
	data, err := json.MarshalIndent(wf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal world: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write world file: %w", err)
	}
	return nil
}

// LoadFile loads a world from path, dispatching on the extension: .json for
// generator output, .txt and .map for map text. Unknown extensions return
// ErrUnsupportedFormat.
func LoadFile(path string) (*Instance, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read world file: %w", err)
		}
		var wf WorldFile
		if err := json.Unmarshal(data, &wf); err != nil {
			return nil, fmt.Errorf("parse world file %s: %w", path, err)
		}
		inst, err := wf.Instance()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return inst, nil
	case ".txt", ".map":
		return LoadMapFile(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

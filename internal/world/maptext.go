package world

import (
	"fmt"
	"os"
	"strings"
)

// Map text cell markers.
const (
	cellBlocked = '#'
	cellGoal    = 'B'
	cellMonkey  = 'M'
	cellFloor   = '.'
	cellSpace   = ' '
)

// ParseMap builds an instance from ASCII map text. '#' marks a blocked cell,
// 'B' a banana, 'M' the monkey's start cell; '.' and ' ' are free floor.
// Leading and trailing blank lines are ignored, short rows are padded with
// floor, and the grid width is the longest row. Exactly one 'M' is required.
// Errors wrap ErrInvalidMap.
func ParseMap(text string) (*Instance, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty map", ErrInvalidMap)
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}

	var blocked, goals []Position
	var start Position
	haveStart := false
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			p := Position{Row: r, Col: c}
			switch line[c] {
			case cellBlocked:
				blocked = append(blocked, p)
			case cellGoal:
				goals = append(goals, p)
			case cellMonkey:
				if haveStart {
					return nil, fmt.Errorf("%w: second monkey at %v", ErrInvalidMap, p)
				}
				start = p
				haveStart = true
			case cellFloor, cellSpace:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %v", ErrInvalidMap, line[c], p)
			}
		}
	}
	if !haveStart {
		return nil, fmt.Errorf("%w: no monkey cell", ErrInvalidMap)
	}

	g, err := New(width, len(lines), blocked, goals)
	if err != nil {
		return nil, err
	}
	return NewInstance(g, start)
}

// LoadMapFile reads and parses a map text file.
func LoadMapFile(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}
	inst, err := ParseMap(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// Package config loads benchmark suite configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound reports a missing suite file.
	ErrNotFound = errors.New("suite file not found")
	// ErrInvalidFormat reports suite data that cannot be parsed.
	ErrInvalidFormat = errors.New("invalid suite format")
	// ErrUnsupportedFormat reports a suite file extension with no parser.
	ErrUnsupportedFormat = errors.New("unsupported suite format")
	// ErrInvalidSuite reports a parsed suite that fails validation.
	ErrInvalidSuite = errors.New("invalid suite")
)

// Suite configures a benchmark run: which worlds to load, which solvers to
// race, and where the CSV goes.
type Suite struct {
	// Name labels the run in logs and output rows.
	Name string `yaml:"name" json:"name"`

	// WorldsDir is globbed for *.json, *.txt and *.map world files.
	WorldsDir string `yaml:"worlds_dir" json:"worlds_dir"`

	// Worlds lists explicit world files, added after the directory glob.
	Worlds []string `yaml:"worlds,omitempty" json:"worlds,omitempty"`

	// Solvers names the strategies to run: ids, ucs, astar.
	Solvers []string `yaml:"solvers" json:"solvers"`

	// MaxDepth caps IDS deepening so unsolvable worlds terminate.
	// 0 removes the cap.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// Verify re-checks every A* result against UCS and records whether
	// the cost was optimal.
	Verify bool `yaml:"verify" json:"verify"`

	// Output is the CSV results path.
	Output string `yaml:"output" json:"output"`
}

// Default returns the suite used when no config file is given.
func Default() Suite {
	return Suite{
		Name:      "hungrymonkey",
		WorldsDir: "testdata",
		Solvers:   []string{"ids", "ucs", "astar"},
		MaxDepth:  64,
		Verify:    true,
		Output:    "evidence/benchmark_results.csv",
	}
}

// Load reads a suite file, dispatching on extension (.yaml, .yml or .json).
// Missing keys keep their Default values.
func Load(path string) (Suite, error) {
	suite := Default()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return suite, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return suite, fmt.Errorf("access suite file: %w", err)
	}
	if info.IsDir() {
		return suite, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return suite, fmt.Errorf("read suite file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return suite, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &suite); err != nil {
			return suite, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return suite, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := suite.Validate(); err != nil {
		return suite, err
	}
	return suite, nil
}

// Validate checks the suite for structural problems. Solver names are
// resolved by the caller, not here.
func (s *Suite) Validate() error {
	if s.WorldsDir == "" && len(s.Worlds) == 0 {
		return fmt.Errorf("%w: no worlds_dir and no worlds", ErrInvalidSuite)
	}
	if len(s.Solvers) == 0 {
		return fmt.Errorf("%w: no solvers", ErrInvalidSuite)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max_depth %d", ErrInvalidSuite, s.MaxDepth)
	}
	if s.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidSuite)
	}
	return nil
}

package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/config"
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/logging"
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/search"
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

// benchOptions holds options for the bench command.
type benchOptions struct {
	configPath string
	worldsDir  string
	output     string
	solvers    string
	maxDepth   int
	verify     bool
}

// newBenchCmd creates the bench command.
func (a *App) newBenchCmd() *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run every solver over a directory of worlds and write a CSV",
		Long: `Bench races the selected solvers across a set of world files, records
runtime, cost and expansion counts per run, writes the rows as CSV and
prints a per-solver summary. Flags override the suite file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Suite file (.yaml or .json)")
	cmd.Flags().StringVar(&opts.worldsDir, "worlds", "", "Directory of world files")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output CSV path")
	cmd.Flags().StringVarP(&opts.solvers, "solver", "s", "", "Solvers to run (comma-separated)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "IDS deepening cap (0 = unbounded)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Record cost optimality against uniform cost search")

	return cmd
}

// benchRow is one solver-on-world measurement.
type benchRow struct {
	RunID     string
	Timestamp string
	GoVersion string
	OS        string
	Arch      string
	Suite     string
	World     string
	GridSize  string
	Goals     int
	Solver    string
	RuntimeMs float64
	Success   bool
	Cost      int
	Expanded  int
	Reward    int
	Optimal   string // "true"/"false", empty when unverified or failed
}

func (a *App) runBench(cmd *cobra.Command, opts *benchOptions) error {
	suite := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		suite = loaded
	}
	if cmd.Flags().Changed("worlds") {
		suite.WorldsDir = opts.worldsDir
	}
	if cmd.Flags().Changed("output") {
		suite.Output = opts.output
	}
	if cmd.Flags().Changed("solver") {
		suite.Solvers = strings.Split(opts.solvers, ",")
	}
	if cmd.Flags().Changed("max-depth") {
		suite.MaxDepth = opts.maxDepth
	}
	if cmd.Flags().Changed("verify") {
		suite.Verify = opts.verify
	}
	if err := suite.Validate(); err != nil {
		return err
	}

	files, err := discoverWorlds(suite)
	if err != nil {
		return err
	}
	solvers, err := buildSolvers(strings.Join(suite.Solvers, ","), suite.MaxDepth)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logging.Get().Info().
		Str("run_id", runID).
		Str("suite", suite.Name).
		Int("worlds", len(files)).
		Int("solvers", len(solvers)).
		Msg("benchmark started")

	totalRuns := len(files) * len(solvers)
	fmt.Fprintf(a.stdout, "Running benchmarks: %d worlds x %d solvers = %d runs\n\n",
		len(files), len(solvers), totalRuns)

	var rows []benchRow
	currentRun := 0
	for _, file := range files {
		inst, err := world.LoadFile(file)
		if err != nil {
			logging.Get().Warn().Str("world", file).Err(err).Msg("skipping world")
			continue
		}
		gridSize := fmt.Sprintf("%dx%d", inst.Grid.Width(), inst.Grid.Height())

		for _, solver := range solvers {
			currentRun++
			start := time.Now()
			res, serr := solver.Solve(inst)
			elapsed := time.Since(start)

			row := benchRow{
				RunID:     runID,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				GoVersion: runtime.Version(),
				OS:        runtime.GOOS,
				Arch:      runtime.GOARCH,
				Suite:     suite.Name,
				World:     filepath.Base(file),
				GridSize:  gridSize,
				Goals:     inst.Grid.NumGoals(),
				Solver:    solver.Name(),
				RuntimeMs: float64(elapsed.Microseconds()) / 1000.0,
				Success:   serr == nil,
				Cost:      res.Cost,
				Expanded:  res.Expanded,
				Reward:    res.Reward,
			}
			if serr == nil && suite.Verify {
				optimal, verr := search.CostOptimal(inst, res)
				if verr != nil {
					return fmt.Errorf("verify %s on %s: %w", solver.Name(), file, verr)
				}
				row.Optimal = fmt.Sprintf("%t", optimal)
			}
			rows = append(rows, row)

			if serr == nil {
				fmt.Fprintf(a.stdout, "[%d/%d] %s / %s: cost=%d expanded=%d (%.2fms)\n",
					currentRun, totalRuns, row.World, row.Solver, row.Cost, row.Expanded, row.RuntimeMs)
			} else {
				fmt.Fprintf(a.stdout, "[%d/%d] %s / %s: FAILED: %v\n",
					currentRun, totalRuns, row.World, row.Solver, serr)
			}
		}
	}

	if err := writeBenchCSV(rows, suite.Output); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "\nResults written to: %s\n", suite.Output)
	a.printBenchSummary(rows)
	return nil
}

// discoverWorlds globs the suite directory and appends explicit world files.
func discoverWorlds(suite config.Suite) ([]string, error) {
	var files []string
	if suite.WorldsDir != "" {
		for _, pattern := range []string{"*.json", "*.txt", "*.map"} {
			matches, err := filepath.Glob(filepath.Join(suite.WorldsDir, pattern))
			if err != nil {
				return nil, err
			}
			files = append(files, matches...)
		}
	}
	files = append(files, suite.Worlds...)
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("no world files found in %q", suite.WorldsDir)
	}
	return files, nil
}

func writeBenchCSV(rows []benchRow, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"run_id", "timestamp", "go_version", "os", "arch",
		"suite", "world", "grid_size", "goals", "solver",
		"runtime_ms", "success", "cost", "expanded", "reward", "optimal",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.RunID, r.Timestamp, r.GoVersion, r.OS, r.Arch,
			r.Suite, r.World, r.GridSize, fmt.Sprintf("%d", r.Goals), r.Solver,
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprintf("%t", r.Success),
			fmt.Sprintf("%d", r.Cost), fmt.Sprintf("%d", r.Expanded),
			fmt.Sprintf("%d", r.Reward), r.Optimal,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// solverSummary holds per-solver aggregated metrics.
type solverSummary struct {
	Name          string
	Runs          int
	Solved        int
	TotalTimeMs   float64
	TotalCost     int
	TotalExpanded int
	Optimal       int
}

func (a *App) printBenchSummary(rows []benchRow) {
	summaries := make(map[string]*solverSummary)
	for _, r := range rows {
		s, ok := summaries[r.Solver]
		if !ok {
			s = &solverSummary{Name: r.Solver}
			summaries[r.Solver] = s
		}
		s.Runs++
		if r.Success {
			s.Solved++
			s.TotalTimeMs += r.RuntimeMs
			s.TotalCost += r.Cost
			s.TotalExpanded += r.Expanded
			if r.Optimal == "true" {
				s.Optimal++
			}
		}
	}

	fmt.Fprintln(a.stdout, "\n=== BENCHMARK SUMMARY ===")
	fmt.Fprintf(a.stdout, "%-8s %6s %8s %12s %10s %12s %9s\n",
		"Solver", "Runs", "Solved", "Avg Time(ms)", "Avg Cost", "Avg Expanded", "Optimal")
	fmt.Fprintln(a.stdout, strings.Repeat("-", 72))

	var names []string
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := summaries[name]
		avgTime, avgCost, avgExpanded := 0.0, 0.0, 0.0
		if s.Solved > 0 {
			avgTime = s.TotalTimeMs / float64(s.Solved)
			avgCost = float64(s.TotalCost) / float64(s.Solved)
			avgExpanded = float64(s.TotalExpanded) / float64(s.Solved)
		}
		fmt.Fprintf(a.stdout, "%-8s %6d %8d %12.2f %10.1f %12.1f %6d/%2d\n",
			s.Name, s.Runs, s.Solved, avgTime, avgCost, avgExpanded, s.Optimal, s.Solved)
	}
}

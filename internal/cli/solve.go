package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/episode"
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/logging"
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/search"
	"github.com/giannpelle/AI-lab1-HungryMonkey/internal/world"
)

// solveOptions holds options for the solve command.
type solveOptions struct {
	solvers  string
	maxDepth int
	verify   bool
	replay   bool
	horizon  int
	showMap  bool
	jsonOut  bool
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <world-file>",
		Short: "Plan a banana-collecting path for one world",
		Long: `Solve loads a world file (.json, .txt or .map) and runs the selected
planners on it, printing the plan, its cost and the number of states each
planner expanded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.solvers, "solver", "s", "all", "Solvers to run: ids, ucs, astar, or a comma-separated list ('all' runs every one)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "IDS deepening cap (0 = unbounded)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Check each result against uniform cost search for optimality")
	cmd.Flags().BoolVar(&opts.replay, "replay", false, "Replay the plan step by step")
	cmd.Flags().IntVar(&opts.horizon, "horizon", 0, "Replay step cap (0 = whole plan)")
	cmd.Flags().BoolVar(&opts.showMap, "map", false, "Print the world as map text before solving")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit one JSON object per solver instead of text")

	return cmd
}

// solveOutput is the JSON shape emitted with --json.
type solveOutput struct {
	World     string   `json:"world"`
	Solver    string   `json:"solver"`
	Success   bool     `json:"success"`
	Actions   []string `json:"actions,omitempty"`
	Cost      int      `json:"cost"`
	Expanded  int      `json:"expanded"`
	Reward    int      `json:"reward"`
	RuntimeMs float64  `json:"runtime_ms"`
	Optimal   *bool    `json:"optimal,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func (a *App) runSolve(path string, opts *solveOptions) error {
	inst, err := world.LoadFile(path)
	if err != nil {
		return err
	}
	logging.Get().Info().
		Str("world", path).
		Int("width", inst.Grid.Width()).
		Int("height", inst.Grid.Height()).
		Int("goals", inst.Grid.NumGoals()).
		Msg("world loaded")

	solvers, err := buildSolvers(opts.solvers, opts.maxDepth)
	if err != nil {
		return err
	}

	if opts.showMap && !opts.jsonOut {
		fmt.Fprint(a.stdout, inst.String())
		fmt.Fprintln(a.stdout)
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")

	for _, solver := range solvers {
		start := time.Now()
		res, err := solver.Solve(inst)
		elapsed := time.Since(start)

		logging.Get().Debug().
			Str("solver", solver.Name()).
			Int("expanded", res.Expanded).
			Int64("runtime_us", elapsed.Microseconds()).
			Bool("success", err == nil).
			Msg("solver finished")

		out := solveOutput{
			World:     path,
			Solver:    solver.Name(),
			Success:   err == nil,
			Cost:      res.Cost,
			Expanded:  res.Expanded,
			Reward:    res.Reward,
			RuntimeMs: float64(elapsed.Microseconds()) / 1000.0,
		}
		if err != nil {
			out.Error = err.Error()
		} else {
			out.Actions = actionNames(res.Actions)
			if opts.verify {
				optimal, verr := search.CostOptimal(inst, res)
				if verr != nil {
					return fmt.Errorf("verify %s: %w", solver.Name(), verr)
				}
				out.Optimal = &optimal
			}
		}

		if opts.jsonOut {
			if err := enc.Encode(out); err != nil {
				return err
			}
			continue
		}

		a.printSolve(solver.Name(), res, err, elapsed, out.Optimal)
		if err == nil && opts.replay {
			rep, rerr := episode.Run(inst, res.Actions, opts.horizon)
			if rerr != nil {
				return rerr
			}
			a.printReplay(rep)
		}
	}
	return nil
}

func (a *App) printSolve(name string, res search.Result, err error, elapsed time.Duration, optimal *bool) {
	fmt.Fprintf(a.stdout, "=== %s ===\n", name)
	if err != nil {
		fmt.Fprintf(a.stdout, "No plan: %v (expanded %d states in %v)\n\n", err, res.Expanded, elapsed.Round(time.Microsecond))
		return
	}
	fmt.Fprintf(a.stdout, "Plan:     %s\n", strings.Join(actionNames(res.Actions), " "))
	fmt.Fprintf(a.stdout, "Cost:     %d\n", res.Cost)
	fmt.Fprintf(a.stdout, "Expanded: %d\n", res.Expanded)
	fmt.Fprintf(a.stdout, "Reward:   %d\n", res.Reward)
	fmt.Fprintf(a.stdout, "Time:     %v\n", elapsed.Round(time.Microsecond))
	if optimal != nil {
		fmt.Fprintf(a.stdout, "Optimal:  %t\n", *optimal)
	}
	fmt.Fprintln(a.stdout)
}

func (a *App) printReplay(rep *episode.Report) {
	fmt.Fprintln(a.stdout, "Replay:")
	for i, st := range rep.Steps {
		mark := ""
		if st.Collected {
			mark = "  banana!"
		}
		fmt.Fprintf(a.stdout, "  %3d. %s -> %v%s\n", i+1, st.Action, st.Pos, mark)
	}
	fmt.Fprintf(a.stdout, "Collected %d bananas, reward %d, complete=%t\n\n",
		rep.Collected, rep.Reward, rep.Complete)
}

// buildSolvers resolves a comma-separated solver list. "all" expands to every
// strategy in the lab's canonical order.
func buildSolvers(names string, maxDepth int) ([]search.Solver, error) {
	if strings.EqualFold(strings.TrimSpace(names), "all") {
		names = "ids,ucs,astar"
	}
	var solvers []search.Solver
	for _, name := range strings.Split(names, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "ids":
			solvers = append(solvers, search.NewIDS(maxDepth))
		case "ucs":
			solvers = append(solvers, search.NewUCS())
		case "astar", "a*":
			solvers = append(solvers, search.NewAStar(nil))
		default:
			return nil, fmt.Errorf("unknown solver %q (want ids, ucs or astar)", name)
		}
	}
	return solvers, nil
}

// actionNames renders actions as their one-letter names.
func actionNames(actions []world.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	return out
}

package app

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/pitcher"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/waypoint"
)

type compareConfig struct {
	Scenario  string
	Data      string
	Threshold float64
	Policy    string
	Diag      bool
	Workers   int
}

var compareCfg compareConfig

func Compare(cmd *commander.Command, args []string) error {
	_, log := session()
	return runCompare(compareCfg, log, stdout)
}

func CompareCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Compare,
		UsageLine: "compare [-scenario grid|maze -data <file> | -scenario pitchers] [options]",
		Short:     "run every strategy on one scenario side by side",
		Long: `
run every strategy on one scenario side by side

	$ ./lvsearch compare -data waypoints.csv
	$ ./lvsearch compare -scenario maze -data maze.txt -diag
	$ ./lvsearch compare -scenario pitchers

Strategies run concurrently; they share only the read-only scenario.
`,
		Flag: *flag.NewFlagSet("compare", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&compareCfg.Scenario, "scenario", "grid", "Scenario: grid, maze or pitchers")
	cmd.Flag.StringVar(&compareCfg.Data, "data", "", "Waypoint CSV or maze file")
	cmd.Flag.Float64Var(&compareCfg.Threshold, "threshold", waypoint.DefaultThreshold, "Adjacency threshold")
	cmd.Flag.BoolVar(&compareCfg.Diag, "diag", false, "Allow diagonal moves in the maze scenario")
	cmd.Flag.StringVar(&compareCfg.Policy, "policy", search.KeepFirst.String(), "Duplicate policy: keep-first or reopen")
	cmd.Flag.IntVar(&compareCfg.Workers, "workers", 0, "Concurrent searches; 0 = number of CPUs")
	return cmd
}

func runCompare(cfg compareConfig, log *logging.Logger, w io.Writer) error {
	policy, err := search.ParseDuplicatePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var rows []report.Summary
	switch cfg.Scenario {
	case "grid":
		if cfg.Data == "" {
			return fmt.Errorf("missing -data")
		}
		points, err := waypoint.Load(cfg.Data)
		if err != nil {
			return err
		}
		nw, err := waypoint.NewNetwork(points, waypoint.WithThreshold(cfg.Threshold))
		if err != nil {
			return err
		}
		rows, err = compareAll("grid", nw.Solve, pointLabel(nw), policy, workers, log)
		if err != nil {
			return err
		}
	case "pitchers":
		p, err := pitcher.New()
		if err != nil {
			return err
		}
		rows, err = compareAll("pitchers", p.Solve, pitcher.State.String, policy, workers, log)
		if err != nil {
			return err
		}
	case "maze":
		if cfg.Data == "" {
			return fmt.Errorf("missing -data")
		}
		m, err := loadMaze(cfg.Data, cfg.Diag)
		if err != nil {
			return err
		}
		rows, err = compareAll("maze", m.Solve, maze.Cell.String, policy, workers, log)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}

	return report.WriteComparison(w, rows)
}

// compareAll runs solve once per strategy with at most workers searches in
// flight. Rows keep the order of search.Strategies.
func compareAll[S comparable](
	scenario string,
	solve func(search.Strategy, ...search.Option) (*search.Result[S], error),
	label func(S) string,
	policy search.DuplicatePolicy,
	workers int,
	log *logging.Logger,
) ([]report.Summary, error) {
	strategies := search.Strategies()
	rows := make([]report.Summary, len(strategies))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, s := range strategies {
		g.Go(func() error {
			l := log.WithStrategy(string(s))
			res, err := solve(s, search.WithDuplicatePolicy(policy), search.WithLogger(l))
			if err != nil && !errors.Is(err, search.ErrExpansionLimit) {
				return fmt.Errorf("%s: %w", s, err)
			}
			rows[i] = report.Summarize(scenario, s, res, label)
			rows[i].Err = err
			l.Info("compare", "outcome", rows[i].Outcome, "expanded", rows[i].Expanded)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

package app

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/waypoint"
)

type gridConfig struct {
	searchConfig
	Data      string
	Threshold float64
	SVG       string
}

var gridCfg gridConfig

func Grid(cmd *commander.Command, args []string) error {
	if gridCfg.Data == "" {
		return fmt.Errorf("missing -data")
	}
	runID, log := session()
	return runGrid(gridCfg, runID, log, stdout)
}

func GridCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Grid,
		UsageLine: "grid -data <file.csv> [options]",
		Short:     "route from the first to the last waypoint of a dataset",
		Long: `
route from the first to the last waypoint of a dataset

	$ ./lvsearch grid -data waypoints.csv -mode greedy -threshold 1.3 [-svg route.svg]

Waypoints closer than the threshold are adjacent; edge cost is the
straight-line distance.
`,
		Flag: *flag.NewFlagSet("grid", flag.ExitOnError),
	}
	gridCfg.register(&cmd.Flag, "greedy")
	cmd.Flag.StringVar(&gridCfg.Data, "data", "", "Waypoint CSV file (x,y per line)")
	cmd.Flag.Float64Var(&gridCfg.Threshold, "threshold", waypoint.DefaultThreshold, "Adjacency threshold")
	cmd.Flag.StringVar(&gridCfg.SVG, "svg", "", "Write the route plot to this SVG file")
	return cmd
}

func pointLabel(nw *waypoint.Network) func(int) string {
	return func(i int) string { return "(" + nw.Point(i).String() + ")" }
}

func runGrid(cfg gridConfig, runID string, log *logging.Logger, w io.Writer) error {
	points, err := waypoint.Load(cfg.Data)
	if err != nil {
		return err
	}
	nw, err := waypoint.NewNetwork(points, waypoint.WithThreshold(cfg.Threshold))
	if err != nil {
		return err
	}
	strategy, opts, err := cfg.options(log)
	if err != nil {
		return err
	}
	log.Info("grid", "points", nw.Len(), "edges", len(nw.Edges()), "threshold", nw.Threshold())

	res, err := nw.Solve(strategy, opts...)
	sum, err := finish("grid", runID, strategy, res, err, pointLabel(nw))
	if err != nil {
		return err
	}
	if err = report.WriteSummary(w, sum); err != nil {
		return err
	}
	if cfg.Trace && res != nil {
		if err = writeTrace(w, res.Order, pointLabel(nw)); err != nil {
			return err
		}
	}
	if cfg.SVG == "" {
		return nil
	}

	o := report.DefaultPlotOptions()
	o.Title = fmt.Sprintf("%s: %s", strategy, sum.Outcome)
	var route []waypoint.Point
	if res.Found() {
		route = nw.Coordinates(res.Path())
	}
	return writeFile(cfg.SVG, func(f io.Writer) error {
		return report.PlotPath(f, points, route, o)
	})
}

// writeFile creates path and hands it to fill, reporting the first error
// of fill or Close.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fill(f)
}

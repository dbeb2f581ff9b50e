package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/waypoint"
)

type netConfig struct {
	Data      string
	Threshold float64
	SVG       string
}

var netCfg netConfig

func Net(cmd *commander.Command, args []string) error {
	if netCfg.Data == "" {
		return fmt.Errorf("missing -data")
	}
	_, log := session()
	return runNet(netCfg, log, stdout)
}

func NetCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Net,
		UsageLine: "net -data <file.csv> [options]",
		Short:     "inspect the adjacency network of a waypoint dataset",
		Long: `
inspect the adjacency network of a waypoint dataset

	$ ./lvsearch net -data waypoints.csv -threshold 1.3 [-svg network.svg]

Prints the degree of every waypoint and optionally plots every adjacency.
`,
		Flag: *flag.NewFlagSet("net", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&netCfg.Data, "data", "", "Waypoint CSV file (x,y per line)")
	cmd.Flag.Float64Var(&netCfg.Threshold, "threshold", waypoint.DefaultThreshold, "Adjacency threshold")
	cmd.Flag.StringVar(&netCfg.SVG, "svg", "", "Write the network plot to this SVG file")
	return cmd
}

func runNet(cfg netConfig, log *logging.Logger, w io.Writer) error {
	points, err := waypoint.Load(cfg.Data)
	if err != nil {
		return err
	}
	nw, err := waypoint.NewNetwork(points, waypoint.WithThreshold(cfg.Threshold))
	if err != nil {
		return err
	}
	edges := nw.Edges()
	log.Info("net", "points", nw.Len(), "edges", len(edges), "threshold", nw.Threshold())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "points:\t%d\n", nw.Len())
	fmt.Fprintf(tw, "edges:\t%d\n", len(edges))
	isolated := 0
	for i := 0; i < nw.Len(); i++ {
		d := nw.Degree(i)
		if d == 0 {
			isolated++
		}
		fmt.Fprintf(tw, "%d\t(%s)\tdegree %d\n", i, nw.Point(i), d)
	}
	fmt.Fprintf(tw, "isolated:\t%d\n", isolated)
	if err = tw.Flush(); err != nil {
		return err
	}
	if cfg.SVG == "" {
		return nil
	}

	o := report.DefaultPlotOptions()
	o.Title = fmt.Sprintf("threshold %g: %d edges", nw.Threshold(), len(edges))
	return writeFile(cfg.SVG, func(f io.Writer) error {
		return report.PlotNetwork(f, nw, o)
	})
}

package app

import (
	"fmt"
	"io"
	"slices"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/pitcher"
	"github.com/katalvlaran/lvsearch/report"
)

type pitchersConfig struct {
	searchConfig
	Small, Large int
	Target       int
	Reverse      bool
}

var pitchersCfg pitchersConfig

func Pitchers(cmd *commander.Command, args []string) error {
	runID, log := session()
	return runPitchers(pitchersCfg, runID, log, stdout)
}

func PitchersCmd() *commander.Command {
	def := pitcher.DefaultOptions()
	cmd := &commander.Command{
		Run:       Pitchers,
		UsageLine: "pitchers [options]",
		Short:     "solve the two-pitcher measuring puzzle",
		Long: `
solve the two-pitcher measuring puzzle

	$ ./lvsearch pitchers -mode breadth -target 4 [-small 3 -large 5]

Both pitchers start empty; the goal is the target amount in the large one.
`,
		Flag: *flag.NewFlagSet("pitchers", flag.ExitOnError),
	}
	pitchersCfg.register(&cmd.Flag, "breadth")
	cmd.Flag.IntVar(&pitchersCfg.Small, "small", def.Caps.Small, "Capacity of the small pitcher")
	cmd.Flag.IntVar(&pitchersCfg.Large, "large", def.Caps.Large, "Capacity of the large pitcher")
	cmd.Flag.IntVar(&pitchersCfg.Target, "target", def.Target, "Amount wanted in the large pitcher")
	cmd.Flag.BoolVar(&pitchersCfg.Reverse, "reverse", false, "Try actions from empty-large down to fill-small")
	return cmd
}

func (c pitchersConfig) puzzle() (*pitcher.Puzzle, error) {
	order := pitcher.AllActions()
	if c.Reverse {
		slices.Reverse(order)
	}
	return pitcher.New(
		pitcher.WithCapacities(c.Small, c.Large),
		pitcher.WithTarget(c.Target),
		pitcher.WithActionOrder(order...),
	)
}

func runPitchers(cfg pitchersConfig, runID string, log *logging.Logger, w io.Writer) error {
	p, err := cfg.puzzle()
	if err != nil {
		return err
	}
	strategy, opts, err := cfg.options(log)
	if err != nil {
		return err
	}
	caps := p.Capacities()
	log.Info("pitchers", "small", caps.Small, "large", caps.Large, "target", p.Target())

	res, err := p.Solve(strategy, opts...)
	sum, err := finish("pitchers", runID, strategy, res, err, pitcher.State.String)
	if err != nil {
		return err
	}
	if err = report.WriteSummary(w, sum); err != nil {
		return err
	}
	if res.Found() {
		actions, err := p.Actions(res.Path())
		if err != nil {
			return err
		}
		for i, a := range actions {
			fmt.Fprintf(w, "%4d  %s\n", i+1, a)
		}
	}
	if cfg.Trace && res != nil {
		return writeTrace(w, res.Order, pitcher.State.String)
	}
	return nil
}

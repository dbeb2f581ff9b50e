// Package app holds the lvsearch subcommands.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
)

const (
	VERBOSE_FLAG  = "v"
	JSON_LOG_FLAG = "json-log"
)

var (
	Verbose bool
	JSONLog bool

	// stdout receives reports; tests swap it for a buffer.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// AppCommands lists every lvsearch subcommand.
func AppCommands() []*commander.Command {
	return []*commander.Command{
		GridCmd(),
		NetCmd(),
		PitchersCmd(),
		MazeCmd(),
		CompareCmd(),
		GenerateCmd(),
	}
}

// AllCommands returns the root command. Every subcommand shares the logging
// flags.
func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   "lvsearch <command> [flags]",
		Short:       "best-first search over waypoint maps and pitcher puzzles",
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet("lvsearch", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.BoolVar(&Verbose, VERBOSE_FLAG, false, "Log every expansion at debug level")
		app.Flag.BoolVar(&JSONLog, JSON_LOG_FLAG, false, "Emit logs as JSON instead of text")
	}
	return cmd
}

// NewAppWrapCommand prefixes subcommand errors with the subcommand name.
func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	return func(cmd *commander.Command, args []string) error {
		if err := f(cmd, args); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		return nil
	}
}

// newLogger builds the process logger from the shared flags.
func newLogger() *logging.Logger {
	level := slog.LevelInfo
	if Verbose {
		level = slog.LevelDebug
	}
	if JSONLog {
		return logging.NewJSONLogger(stderr, level)
	}
	return logging.NewTextLogger(stderr, level)
}

// session starts a run: a fresh run ID and a logger tagged with it.
func session() (string, *logging.Logger) {
	id := report.NewRunID()
	return id, newLogger().WithRun(id)
}

// searchConfig carries the engine flags common to the grid and pitchers
// commands.
type searchConfig struct {
	Mode   string
	Policy string
	Early  bool
	Max    int
	Trace  bool
}

func (c *searchConfig) register(fs *flag.FlagSet, mode string) {
	fs.StringVar(&c.Mode, "mode", mode, "Strategy: greedy, uniform, actions, astar, breadth, depth")
	fs.StringVar(&c.Policy, "policy", search.KeepFirst.String(), "Duplicate policy: keep-first or reopen")
	fs.BoolVar(&c.Early, "early", false, "Test the goal on discovery instead of on selection")
	fs.IntVar(&c.Max, "max", 0, "Stop after this many expansions; 0 = no limit")
	fs.BoolVar(&c.Trace, "trace", false, "Print the selection order")
}

// options resolves the flags into a strategy and engine options.
func (c searchConfig) options(log *logging.Logger) (search.Strategy, []search.Option, error) {
	strategy, err := search.ParseStrategy(c.Mode)
	if err != nil {
		return "", nil, err
	}
	policy, err := search.ParseDuplicatePolicy(c.Policy)
	if err != nil {
		return "", nil, err
	}
	opts := []search.Option{
		search.WithDuplicatePolicy(policy),
		search.WithMaxExpansions(c.Max),
		search.WithLogger(log.WithStrategy(string(strategy))),
	}
	if c.Early {
		opts = append(opts, search.WithEarlyGoalTest())
	}
	if c.Trace {
		opts = append(opts, search.WithTrace())
	}
	return strategy, opts, nil
}

// finish turns a search return into a summary. Hitting the expansion cap is
// reported, not fatal.
func finish[S comparable](scenario, runID string, strategy search.Strategy, res *search.Result[S], err error, label func(S) string) (report.Summary, error) {
	if err != nil && !errors.Is(err, search.ErrExpansionLimit) {
		return report.Summary{}, err
	}
	s := report.Summarize(scenario, strategy, res, label)
	s.RunID = runID
	s.Err = err
	return s, nil
}

// writeTrace prints the selection order, one state per line.
func writeTrace[S comparable](w io.Writer, order []S, label func(S) string) error {
	for i, st := range order {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", i+1, label(st)); err != nil {
			return err
		}
	}
	return nil
}

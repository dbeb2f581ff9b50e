package app

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/report"
)

type mazeConfig struct {
	searchConfig
	Data string
	Diag bool
}

var mazeCfg mazeConfig

func Maze(cmd *commander.Command, args []string) error {
	if mazeCfg.Data == "" {
		return fmt.Errorf("missing -data")
	}
	runID, log := session()
	return runMaze(mazeCfg, runID, log, stdout)
}

func MazeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Maze,
		UsageLine: "maze -data <file.txt> [options]",
		Short:     "route through a character maze",
		Long: `
route through a character maze

	$ ./lvsearch maze -data maze.txt -mode astar [-diag]

'#' is a wall, '.' open floor, 'S' the start and 'G' the goal. The route is
drawn with '*'.
`,
		Flag: *flag.NewFlagSet("maze", flag.ExitOnError),
	}
	mazeCfg.register(&cmd.Flag, "astar")
	cmd.Flag.StringVar(&mazeCfg.Data, "data", "", "Maze file, one row per line")
	cmd.Flag.BoolVar(&mazeCfg.Diag, "diag", false, "Allow diagonal moves")
	return cmd
}

func loadMaze(path string, diag bool) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	conn := maze.Conn4
	if diag {
		conn = maze.Conn8
	}
	m, err := maze.Parse(f, maze.WithConnectivity(conn))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func runMaze(cfg mazeConfig, runID string, log *logging.Logger, w io.Writer) error {
	m, err := loadMaze(cfg.Data, cfg.Diag)
	if err != nil {
		return err
	}
	strategy, opts, err := cfg.options(log)
	if err != nil {
		return err
	}
	log.Info("maze", "width", m.Width, "height", m.Height, "connectivity", m.Conn.String(),
		"regions", len(m.Components()), "connected", m.Connected())

	res, err := m.Solve(strategy, opts...)
	sum, err := finish("maze", runID, strategy, res, err, maze.Cell.String)
	if err != nil {
		return err
	}
	if err = report.WriteSummary(w, sum); err != nil {
		return err
	}
	if _, err = io.WriteString(w, m.Render(res.Path())); err != nil {
		return err
	}
	if cfg.Trace && res != nil {
		return writeTrace(w, res.Order, maze.Cell.String)
	}
	return nil
}

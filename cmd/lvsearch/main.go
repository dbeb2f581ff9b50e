// Command lvsearch runs best-first searches over waypoint datasets and the
// two-pitcher puzzle.
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"

	"github.com/katalvlaran/lvsearch/app"
)

var cmd *commander.Command

func init() {
	cmd = app.AllCommands()
}

func main() {
	err := cmd.Flag.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}

	args := cmd.Flag.Args()
	err = cmd.Dispatch(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

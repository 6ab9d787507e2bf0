package main

import (
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "league",
		Usage:     "golf league handicaps, event results and season standings",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			newProcessCommand(),
			newHandicapCommand(),
			newTeamsCommand(),
			newCoursesCommand(),
		},
	}
}

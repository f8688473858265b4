package app

import (
	"bufio"
	"fmt"

	urfave "github.com/urfave/cli/v2"

	"blastnh/internal/cli"
	"blastnh/internal/matrix"
	"blastnh/internal/writers"
)

func matrixCommand() *urfave.Command {
	return &urfave.Command{
		Name:      "matrix",
		Usage:     "print the resolved scoring matrix and its enumeration alphabet",
		UsageText: "blastnh matrix --matrix blosum62\n   blastnh matrix --list",
		Flags: flags(cli.MatrixFlags(), []urfave.Flag{
			&urfave.BoolFlag{Name: "list", Usage: "list builtin matrices"},
		}),
		Action: matrixAction,
	}
}

func matrixAction(c *urfave.Context) error {
	e, err := setup(c)
	if err != nil {
		return e.fail(err)
	}
	w := bufio.NewWriter(c.App.Writer)
	if c.Bool("list") {
		for _, n := range matrix.Names() {
			_, _ = fmt.Fprintln(w, n)
		}
	} else {
		m, err := e.matrix()
		if err != nil {
			return e.fail(err)
		}
		if err := m.Format(w); err != nil && !writers.IsBrokenPipe(err) {
			return e.fail(err)
		}
	}
	if err := w.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return e.fail(err)
	}
	return nil
}

package app

import (
	"context"

	urfave "github.com/urfave/cli/v2"

	"blastnh/internal/appcore"
	"blastnh/internal/cli"
	"blastnh/internal/neighborhood"
	"blastnh/internal/output"
)

func neighborsCommand() *urfave.Command {
	return &urfave.Command{
		Name:      "neighbors",
		Usage:     "list every word scoring at least --threshold against each query word",
		UsageText: "blastnh neighbors --query AHIKV -T 13\n   blastnh neighbors --query-fasta q.fa -o jsonl",
		Flags:     flags(cli.QueryFlags(), cli.SearchFlags(), cli.OutputFlags()),
		Action:    neighborsAction,
	}
}

func neighborsAction(c *urfave.Context) error {
	e, err := setup(c)
	if err != nil {
		return e.fail(err)
	}
	o := e.opts
	// e.queries validates the query flags.
	for _, v := range []func() error{o.ValidateSearch, o.ValidateOutput} {
		if err := v(); err != nil {
			return e.fail(err)
		}
	}
	m, err := e.matrix()
	if err != nil {
		return e.fail(err)
	}
	gen, err := neighborhood.New(m, neighborhood.Config{
		WordSize: o.WordSize, Threshold: o.Threshold, Threads: o.Threads, Logger: e.logger,
	})
	if err != nil {
		return e.fail(err)
	}
	queries, err := e.queries(c.Context)
	if err != nil {
		return e.fail(err)
	}

	produce := func(ctx context.Context, emit func(output.Block) error) (int, error) {
		n := 0
		for _, q := range queries {
			results, err := gen.Generate(ctx, string(q.Seq))
			if err != nil {
				return n, err
			}
			for _, b := range output.Blocks(q.ID, results) {
				if err := emit(b); err != nil {
					return n, err
				}
				n++
			}
		}
		return n, nil
	}
	code := appcore.Run[output.Block](c.Context, c.App.Writer,
		appcore.Options{NoMatchExitCode: appcore.ExitOK, Logger: e.logger},
		produce, appcore.NewNeighborhoodWriterFactory(o.Output, o.Header))
	return exit(code)
}

func flags(groups ...[]urfave.Flag) []urfave.Flag {
	var out []urfave.Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

package app

import (
	"context"
	"fmt"

	urfave "github.com/urfave/cli/v2"

	"blastnh/internal/appcore"
	"blastnh/internal/cli"
	"blastnh/internal/cliutil"
	"blastnh/internal/pipeline"
	"blastnh/internal/seedindex"
)

func scanCommand() *urfave.Command {
	return &urfave.Command{
		Name:      "scan",
		Usage:     "report every subject word that is in the query neighborhood",
		ArgsUsage: "[subject.fa ...]",
		UsageText: "blastnh scan --query AHIKVW --subjects db.fa\n   blastnh scan --db q.idx -o jsonl 'genomes/*.fa'",
		Flags: flags(cli.QueryFlags(), cli.SearchFlags(), cli.OutputFlags(), []urfave.Flag{
			&urfave.StringFlag{Name: cli.FlagDB, Aliases: []string{"d"}, Usage: "load a seed index built by 'blastnh index' instead of a query"},
			&urfave.StringSliceFlag{Name: cli.FlagSubjects, Aliases: []string{"s"}, Usage: "subject FASTA file(s) (repeatable or '-')"},
			&urfave.IntFlag{Name: cli.FlagNoMatchExitCode, Usage: "exit code when no seed hits are found", Value: appcore.ExitNoMatch},
		}),
		Action: scanAction,
	}
}

func scanAction(c *urfave.Context) error {
	e, err := setup(c)
	if err != nil {
		return e.fail(err)
	}
	o := e.opts
	if err := o.ValidateSearch(); err != nil {
		return e.fail(err)
	}
	if err := o.ValidateOutput(); err != nil {
		return e.fail(err)
	}
	pos, err := cliutil.ExpandPositionals(c.Args().Slice())
	if err != nil {
		return e.fail(fmt.Errorf("%w: %v", cli.ErrUsage, err))
	}
	subjects := append(append([]string(nil), o.Subjects...), pos...)
	if len(subjects) == 0 {
		return e.fail(fmt.Errorf("%w: at least one subject file is required (--subjects or positional)", cli.ErrUsage))
	}

	ix, err := e.scanIndex(c)
	if err != nil {
		return e.fail(err)
	}
	e.logger.Debug("scanning", "subjects", len(subjects), "words", ix.Len(), "word_size", ix.WordSize())

	produce := func(ctx context.Context, emit func(pipeline.Hit) error) (int, error) {
		n := 0
		err := pipeline.ForEachHit(ctx, pipeline.Config{Threads: o.Threads}, subjects, ix, func(h pipeline.Hit) error {
			n++
			return emit(h)
		})
		return n, err
	}
	code := appcore.Run[pipeline.Hit](c.Context, c.App.Writer,
		appcore.Options{NoMatchExitCode: o.NoMatchExitCode, Logger: e.logger},
		produce, appcore.NewSeedHitWriterFactory(o.Output, o.Header))
	return exit(code)
}

// scanIndex loads --db, or builds the index from the query when no --db is given.
func (e env) scanIndex(c *urfave.Context) (*seedindex.Index, error) {
	o := e.opts
	if o.DB == "" {
		return e.buildIndex(c)
	}
	if o.Query != "" || o.QueryFasta != "" {
		return nil, fmt.Errorf("%w: --db conflicts with --query/--query-fasta", cli.ErrUsage)
	}
	ix, err := seedindex.Load(o.DB, e.logger)
	if err != nil {
		return nil, err
	}
	meta := ix.Meta()
	e.logger.Info("index loaded", "db", o.DB, "query", meta.QueryID, "matrix", meta.Matrix, "word_size", meta.WordSize, "threshold", meta.Threshold)
	return ix, nil
}

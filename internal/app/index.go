package app

import (
	"bufio"
	"fmt"
	"time"

	urfave "github.com/urfave/cli/v2"

	"blastnh/internal/cli"
	"blastnh/internal/neighborhood"
	"blastnh/internal/seedindex"
	"blastnh/internal/writers"
)

func indexCommand() *urfave.Command {
	return &urfave.Command{
		Name:      "index",
		Usage:     "build the query's neighborhood seed index and store it in --db",
		UsageText: "blastnh index --query-fasta q.fa --db q.idx",
		Flags: flags(cli.QueryFlags(), cli.SearchFlags(), []urfave.Flag{
			&urfave.StringFlag{Name: cli.FlagDB, Aliases: []string{"d"}, Usage: "index directory (badger)", Required: true},
		}),
		Action: indexAction,
	}
}

// buildIndex computes the neighborhood of one query and indexes it.
func (e env) buildIndex(c *urfave.Context) (*seedindex.Index, error) {
	o := e.opts
	if err := o.ValidateSearch(); err != nil {
		return nil, err
	}
	m, err := e.matrix()
	if err != nil {
		return nil, err
	}
	q, err := e.singleQuery(c.Context)
	if err != nil {
		return nil, err
	}
	gen, err := neighborhood.New(m, neighborhood.Config{
		WordSize: o.WordSize, Threshold: o.Threshold, Threads: o.Threads, Logger: e.logger,
	})
	if err != nil {
		return nil, err
	}
	results, err := gen.Generate(c.Context, string(q.Seq))
	if err != nil {
		return nil, err
	}
	return seedindex.Build(results, seedindex.Meta{
		WordSize:  o.WordSize,
		Threshold: o.Threshold,
		Matrix:    m.Name(),
		QueryID:   q.ID,
		QueryLen:  len(q.Seq),
	})
}

func indexAction(c *urfave.Context) error {
	e, err := setup(c)
	if err != nil {
		return e.fail(err)
	}
	start := time.Now()
	ix, err := e.buildIndex(c)
	if err != nil {
		return e.fail(err)
	}
	if err := seedindex.Save(e.opts.DB, ix, e.logger); err != nil {
		return e.fail(err)
	}
	e.logger.Info("index saved", "db", e.opts.DB, "words", ix.Len(), "hits", ix.HitCount(), "elapsed", time.Since(start))

	w := bufio.NewWriter(c.App.Writer)
	_, _ = fmt.Fprintf(w, "%s\t%s\t%d words\t%d hits\n", e.opts.DB, ix.Meta().QueryID, ix.Len(), ix.HitCount())
	if err := w.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		return e.fail(err)
	}
	return nil
}

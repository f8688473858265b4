package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	urfave "github.com/urfave/cli/v2"

	"blastnh/internal/appcore"
	"blastnh/internal/cli"
	"blastnh/internal/cliutil"
	"blastnh/internal/fasta"
	"blastnh/internal/logger"
	"blastnh/internal/matrix"
)

// inlineQueryID names a sequence given with --query.
const inlineQueryID = "query"

// env is what every action needs once flags are resolved.
type env struct {
	opts   cli.Options
	logger *log.Logger
}

func setup(c *urfave.Context) (env, error) {
	o, err := cli.Resolve(c)
	if err != nil {
		return env{logger: logger.New(c.App.ErrWriter, "blastnh", log.ErrorLevel)}, err
	}
	level, err := logger.ParseLevel(o.LogLevel)
	if err != nil {
		err = fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	if o.Quiet {
		level = log.ErrorLevel
	}
	return env{opts: o, logger: logger.New(c.App.ErrWriter, "blastnh", level)}, err
}

// fail logs err and returns it as an exit code carrier.
func (e env) fail(err error) error {
	code := appcore.ExitCode(err)
	if code != appcore.ExitCancelled {
		e.logger.Error(err)
	}
	return urfave.Exit("", code)
}

func exit(code int) error {
	if code == appcore.ExitOK {
		return nil
	}
	return urfave.Exit("", code)
}

func (e env) matrix() (*matrix.Matrix, error) {
	m, err := matrix.Resolve(e.opts.Matrix, e.opts.Alphabet)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("matrix resolved", "name", m.Name(), "alphabet", string(m.Alphabet()))
	return m, nil
}

// queries returns the --query sequence or the records of --query-fasta.
func (e env) queries(ctx context.Context) ([]fasta.Record, error) {
	if err := e.opts.ValidateQuery(); err != nil {
		return nil, err
	}
	if e.opts.Query != "" {
		return []fasta.Record{{ID: inlineQueryID, Seq: []byte(cliutil.NormalizeSequence(e.opts.Query))}}, nil
	}
	recs, err := fasta.ReadAll(ctx, e.opts.QueryFasta)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no query sequences in %s", cli.ErrUsage, e.opts.QueryFasta)
	}
	return recs, nil
}

// singleQuery is queries restricted to exactly one record.
func (e env) singleQuery(ctx context.Context) (fasta.Record, error) {
	recs, err := e.queries(ctx)
	if err != nil {
		return fasta.Record{}, err
	}
	if len(recs) > 1 {
		return fasta.Record{}, fmt.Errorf("%w: %s holds %d records, expected one query", cli.ErrUsage, e.opts.QueryFasta, len(recs))
	}
	return recs[0], nil
}

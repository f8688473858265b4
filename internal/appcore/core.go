// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"blastnh/internal/cli"
	"blastnh/internal/matrix"
	"blastnh/internal/neighborhood"
	"blastnh/internal/seedindex"
	"blastnh/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK        = 0
	ExitNoMatch   = 1
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

type Options struct {
	BufSize         int // writer channel capacity (0 = 64)
	NoMatchExitCode int
	Logger          *log.Logger
}

// Producer generates values and hands each to emit. It returns how many
// values it produced.
type Producer[T any] func(ctx context.Context, emit func(T) error) (int, error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run drives produce into the writer started by wf and maps the outcome to an
// exit code. Broken pipes on stdout count as success.
func Run[T any](
	parent context.Context,
	stdout io.Writer,
	o Options,
	produce Producer[T],
	wf WriterFactory[T],
) int {
	logger := o.Logger
	if logger == nil {
		logger = log.Default()
	}
	outw := bufio.NewWriter(stdout)

	inCh, writeErr := wf.Start(outw, o.BufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := produce(ctx, func(x T) error {
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		logger.Error("write failed", "err", werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		logger.Error("flush failed", "err", e)
		return ExitRuntime
	}

	if perr != nil {
		code := ExitCode(perr)
		if code != ExitCancelled {
			logger.Error(perr)
		}
		return code
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// ExitCode classifies an error returned by a command.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, cli.ErrUsage),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, neighborhood.ErrInvalidArgument),
		errors.Is(err, matrix.ErrLookupMiss),
		errors.Is(err, matrix.ErrUnknownMatrix),
		errors.Is(err, matrix.ErrMalformedMatrix),
		errors.Is(err, matrix.ErrDuplicateSymbol),
		errors.Is(err, matrix.ErrEmptyAlphabet),
		errors.Is(err, seedindex.ErrIndexNotFound),
		errors.Is(err, seedindex.ErrWordSizeMismatch):
		return ExitUsage
	default:
		return ExitRuntime
	}
}

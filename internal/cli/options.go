// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"blastnh/internal/config"
	"blastnh/internal/output"
)

// Options holds the resolved settings of one command invocation: defaults,
// then the --config file, then explicitly set flags.
type Options struct {
	// Query input
	Query      string
	QueryFasta string

	// Search parameters
	Matrix    string
	Alphabet  string
	WordSize  int
	Threshold int
	Threads   int

	// Scan / index
	DB              string
	Subjects        []string
	NoMatchExitCode int

	// Output
	Output string
	Header bool // true unless --no-header

	// Logging
	LogLevel string
	Quiet    bool
}

// FromConfig seeds Options from a loaded configuration file. A threads
// value of 0 selects every CPU.
func FromConfig(c config.Config) Options {
	thr := c.Search.Threads
	if thr == 0 {
		thr = runtime.NumCPU()
	}
	return Options{
		Matrix:    c.Search.Matrix,
		Alphabet:  c.Search.Alphabet,
		WordSize:  c.Search.WordSize,
		Threshold: c.Search.Threshold,
		Threads:   thr,
		Output:    c.Output.Format,
		Header:    c.Output.Header,
		LogLevel:  c.Log.Level,
	}
}

// ErrUsage marks option errors; callers map it to exit code 2.
var ErrUsage = errors.New("usage")

func usagef(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}

// ValidateSearch checks the parameters every command shares.
func (o Options) ValidateSearch() error {
	if o.WordSize < 1 {
		return usagef("--word-size must be ≥ 1, got %d", o.WordSize)
	}
	if o.Threads < 1 {
		return usagef("--threads must be ≥ 1, got %d", o.Threads)
	}
	if strings.TrimSpace(o.Matrix) == "" {
		return usagef("--matrix must not be empty")
	}
	return nil
}

// ValidateQuery requires exactly one query source.
func (o Options) ValidateQuery() error {
	switch {
	case o.Query != "" && o.QueryFasta != "":
		return usagef("--query conflicts with --query-fasta")
	case o.Query == "" && o.QueryFasta == "":
		return usagef("provide --query or --query-fasta")
	}
	return nil
}

// ValidateOutput checks --output against the registered formats.
func (o Options) ValidateOutput() error {
	if !output.ValidFormat(o.Output) {
		return usagef("invalid --output %q (want %s)", o.Output, strings.Join(output.Formats, " | "))
	}
	return nil
}

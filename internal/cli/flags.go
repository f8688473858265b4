package cli

import (
	"fmt"
	"strings"

	urfave "github.com/urfave/cli/v2"

	"blastnh/internal/config"
	"blastnh/internal/output"
)

// Flag names shared between definitions and lookups.
const (
	FlagConfig          = "config"
	FlagLogLevel        = "log-level"
	FlagQuiet           = "quiet"
	FlagMatrix          = "matrix"
	FlagAlphabet        = "alphabet"
	FlagWordSize        = "word-size"
	FlagThreshold       = "threshold"
	FlagThreads         = "threads"
	FlagOutput          = "output"
	FlagNoHeader        = "no-header"
	FlagQuery           = "query"
	FlagQueryFasta      = "query-fasta"
	FlagDB              = "db"
	FlagSubjects        = "subjects"
	FlagNoMatchExitCode = "no-match-exit-code"
)

// GlobalFlags apply to every command.
func GlobalFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{Name: FlagConfig, Usage: "TOML configuration file"},
		&urfave.StringFlag{Name: FlagLogLevel, Usage: "log level: debug | info | warn | error", Value: "warn"},
		&urfave.BoolFlag{Name: FlagQuiet, Aliases: []string{"q"}, Usage: "only log errors"},
	}
}

// MatrixFlags select the scoring matrix and enumeration alphabet.
func MatrixFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{Name: FlagMatrix, Aliases: []string{"m"}, Usage: "builtin matrix (blosum62 | dna) or NCBI matrix file", Value: "blosum62"},
		&urfave.StringFlag{Name: FlagAlphabet, Usage: "enumeration alphabet override (default: the matrix's own)"},
	}
}

// SearchFlags add the neighborhood parameters to MatrixFlags.
func SearchFlags() []urfave.Flag {
	return append(MatrixFlags(),
		&urfave.IntFlag{Name: FlagWordSize, Aliases: []string{"w"}, Usage: "word length", Value: 3},
		&urfave.IntFlag{Name: FlagThreshold, Aliases: []string{"T"}, Usage: "minimum neighbor score", Value: 11},
		&urfave.IntFlag{Name: FlagThreads, Aliases: []string{"t"}, Usage: "worker goroutines (default: all CPUs)"},
	)
}

// QueryFlags select the query sequence.
func QueryFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{Name: FlagQuery, Usage: "query sequence"},
		&urfave.StringFlag{Name: FlagQueryFasta, Usage: "FASTA file of query sequences ('-' for STDIN)"},
	}
}

// OutputFlags select the output format.
func OutputFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{Name: FlagOutput, Aliases: []string{"o"}, Usage: "output format: " + strings.Join(output.Formats, " | "), Value: output.FormatText},
		&urfave.BoolFlag{Name: FlagNoHeader, Usage: "suppress header line in text/TSV"},
	}
}

// Resolve merges defaults, the --config file and explicitly set flags into
// Options. Flags win over the file; the file wins over flag defaults.
func Resolve(c *urfave.Context) (Options, error) {
	cfg := config.Default()
	if path := c.String(FlagConfig); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		cfg = loaded
	}
	o := FromConfig(cfg)

	str := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	num := func(name string, dst *int) {
		if c.IsSet(name) {
			*dst = c.Int(name)
		}
	}
	str(FlagLogLevel, &o.LogLevel)
	str(FlagMatrix, &o.Matrix)
	str(FlagAlphabet, &o.Alphabet)
	num(FlagWordSize, &o.WordSize)
	num(FlagThreshold, &o.Threshold)
	num(FlagThreads, &o.Threads)
	str(FlagOutput, &o.Output)
	if c.IsSet(FlagNoHeader) {
		o.Header = !c.Bool(FlagNoHeader)
	}
	o.Quiet = c.Bool(FlagQuiet)

	o.Query = c.String(FlagQuery)
	o.QueryFasta = c.String(FlagQueryFasta)
	o.DB = c.String(FlagDB)
	o.Subjects = c.StringSlice(FlagSubjects)
	o.NoMatchExitCode = c.Int(FlagNoMatchExitCode)
	return o, nil
}

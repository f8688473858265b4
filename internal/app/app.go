// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	urfave "github.com/urfave/cli/v2"

	"blastnh/internal/appcore"
	"blastnh/internal/cli"
	"blastnh/internal/version"
)

// New assembles the blastnh command tree writing to stdout and stderr.
func New(stdout, stderr io.Writer) *urfave.App {
	return &urfave.App{
		Name:      "blastnh",
		Usage:     "BLAST word neighborhoods: generate, index and scan",
		Version:   version.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     cli.GlobalFlags(),
		Commands: []*urfave.Command{
			neighborsCommand(),
			indexCommand(),
			scanCommand(),
			matrixCommand(),
		},
		// Exit codes are mapped by RunContext, never by os.Exit.
		ExitErrHandler: func(*urfave.Context, error) {},
	}
}

// RunContext runs blastnh with argv (without the program name) and returns the
// process exit code. Cancelling parent stops the command with exit code 130.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	err := New(stdout, stderr).RunContext(parent, append([]string{"blastnh"}, argv...))
	if err == nil {
		return appcore.ExitOK
	}
	var ec urfave.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	// Flag parsing and unknown commands.
	_, _ = fmt.Fprintln(stderr, "error:", err)
	return appcore.ExitUsage
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"digamma-core/ball"

	"digamma/internal/cli"
	"digamma/internal/cmdutil"
	"digamma/internal/version"
	"digamma/internal/writers"
)

// Tool is one command-line utility: parse its decimal arguments at Prec bits,
// evaluate, and print each result with Digits significant digits on its own
// line.
type Tool struct {
	cli.Command

	Prec   uint
	Digits int

	// Eval receives one ball per cli.Command argument. A non-nil error still
	// comes with the values to print (the non-finite enclosures).
	Eval func(args []*ball.Real) ([]*ball.Real, error)
}

// Exit statuses.
const (
	ExitOK          = 0
	ExitNonFinite   = 1
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

// RunContext runs t with argv, writing results to stdout and diagnostics to
// stderr, and returns the process exit status.
func RunContext(ctx context.Context, t Tool, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(t.Name)
	fs.SetOutput(io.Discard)
	cli.UsageCommon(fs, t.Command)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, t.Command, argv)
	if err != nil {
		code := ExitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			code = ExitUsage
		}
		fs.SetOutput(outw)
		fs.Usage()
		return flushWith(outw, stderr, code)
	}

	// Version
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", t.Name, version.Version)
		return flushWith(outw, stderr, ExitOK)
	}

	log := cmdutil.NewLogger(stderr, t.Name)

	args := make([]*ball.Real, len(opts.Args))
	for i, s := range opts.Args {
		x, err := ball.ParseReal(s, t.Prec)
		if err != nil {
			log.Error("cannot parse argument", "arg", t.Args[i].Name, "value", s, "err", err)
			return ExitUsage
		}
		args[i] = x
	}
	if ctx.Err() != nil {
		return ExitInterrupted
	}

	vals, evalErr := t.Eval(args)
	lines := make([]string, len(vals))
	for i, v := range vals {
		lines[i] = v.Text(t.Digits)
	}
	if ctx.Err() != nil {
		return ExitInterrupted
	}

	if err := writers.WriteLines(outw, lines...); err != nil && !writers.IsBrokenPipe(err) {
		log.Error("write failed", "err", err)
		return ExitWrite
	}
	code := flushWith(outw, stderr, ExitOK)
	if code == ExitOK && evalErr != nil {
		log.Warn("result is not finite", slog.Any("args", opts.Args), "err", evalErr)
		return ExitNonFinite
	}
	return code
}

// flushWith flushes outw and returns code, or the write failure status.
func flushWith(outw *bufio.Writer, stderr io.Writer, code int) int {
	if c, err := writers.Flush(outw); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return c
	}
	return code
}

// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"digamma/internal/cliutil"
)

// ErrUsage marks a command line with the wrong number of positional arguments.
var ErrUsage = errors.New("usage error")

// Options holds the parsed command line of one tool.
type Options struct {
	Args    []string // positional decimal strings, in Command.Args order
	Version bool
}

// ParseArgs registers the shared flags on fs, parses argv and checks that it
// carries exactly one positional per cmd.Args entry. -h/--help returns
// flag.ErrHelp. With -v/--version the positionals are not checked.
func ParseArgs(fs *flag.FlagSet, cmd Command, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	// Anything flag.Parse stopped at is positional too.
	posArgs = append(fs.Args(), posArgs...)

	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if len(posArgs) != len(cmd.Args) {
		return opt, fmt.Errorf("%w: %s takes %d arguments (%s), got %d",
			ErrUsage, cmd.Name, len(cmd.Args), cmd.ArgNames(), len(posArgs))
	}
	opt.Args = posArgs
	return opt, nil
}

// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"digamma/internal/version"
)

// Command describes one tool for its usage text and argument checks.
type Command struct {
	Name     string
	Title    string // one line, shown after the name
	About    string // what is evaluated and how it is printed
	Args     []Arg
	Examples []string
}

// Arg is one positional argument.
type Arg struct {
	Name string
	Help string
}

// ArgNames joins the positional names, e.g. "d m".
func (c Command) ArgNames() string {
	names := make([]string, len(c.Args))
	for i, a := range c.Args {
		names[i] = a.Name
	}
	return strings.Join(names, " ")
}

// UsageCommon installs the shared Usage() handler on fs.
func UsageCommon(fs *flag.FlagSet, cmd Command) {
	fs.Usage = func() { WriteUsage(fs.Output(), cmd) }
}

// WriteUsage prints the help text for cmd.
func WriteUsage(out io.Writer, cmd Command) {
	// Header
	fmt.Fprintf(out, "%s – %s\n\n", cmd.Name, cmd.Title)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s [flags] %s\n", cmd.Name, cmd.ArgNames())
	if cmd.About != "" {
		fmt.Fprintf(out, "\n%s\n", strings.TrimSpace(cmd.About))
	}

	fmt.Fprintln(out, "\nArguments:")
	for _, a := range cmd.Args {
		fmt.Fprintf(out, "  %-28s%s\n", a.Name, a.Help)
	}
	fmt.Fprintln(out, "  Negative numbers are read as arguments, not flags.")

	if len(cmd.Examples) > 0 {
		fmt.Fprintln(out, "\nExamples:")
		for _, ex := range cmd.Examples {
			fmt.Fprintf(out, "  %s\n", ex)
		}
	}

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}

// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testCmd = Command{
	Name:  "general-digamma",
	Title: "digamma of a real argument",
	Args:  []Arg{{"d", "first number"}, {"m", "second number"}},
}

func parse(argv ...string) (Options, error) {
	fs := NewFlagSet(testCmd.Name)
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, testCmd, argv)
}

func TestParseArgs(t *testing.T) {
	cases := []struct {
		argv []string
		want Options
	}{
		{[]string{"1", "2"}, Options{Args: []string{"1", "2"}}},
		{[]string{"-0.5", "-3e2"}, Options{Args: []string{"-0.5", "-3e2"}}},
		{[]string{"--", "-1", "4"}, Options{Args: []string{"-1", "4"}}},
		{[]string{"-v"}, Options{Version: true}},
		{[]string{"--version", "1"}, Options{Version: true}},
	}
	for _, c := range cases {
		got, err := parse(c.argv...)
		if err != nil {
			t.Fatalf("%v: %v", c.argv, err)
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%v (-want +got):\n%s", c.argv, d)
		}
	}
}

func TestParseArgsHelp(t *testing.T) {
	for _, h := range []string{"-h", "--help", "-help"} {
		if _, err := parse(h); !errors.Is(err, flag.ErrHelp) {
			t.Errorf("%s: got %v, want flag.ErrHelp", h, err)
		}
	}
}

func TestParseArgsWrongCount(t *testing.T) {
	for _, argv := range [][]string{{}, {"1"}, {"1", "2", "3"}} {
		_, err := parse(argv...)
		if !errors.Is(err, ErrUsage) {
			t.Fatalf("%v: got %v, want ErrUsage", argv, err)
		}
		if !strings.Contains(err.Error(), "(d m)") {
			t.Errorf("message should name the arguments: %v", err)
		}
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := parse("--precision", "200", "1", "2")
	if err == nil || errors.Is(err, ErrUsage) || errors.Is(err, flag.ErrHelp) {
		t.Fatalf("unknown flag should be a parse error, got %v", err)
	}
}

func TestWriteUsage(t *testing.T) {
	var buf bytes.Buffer
	cmd := testCmd
	cmd.Examples = []string{"general-digamma 1 1"}
	WriteUsage(&buf, cmd)
	out := buf.String()
	for _, want := range []string{
		"general-digamma – digamma of a real argument",
		"general-digamma [flags] d m",
		"Version: ",
		"--version",
		"general-digamma 1 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
}

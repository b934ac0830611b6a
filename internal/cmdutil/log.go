// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewLogger returns a logger that writes human-readable records to dst
// (normally stderr). Records carry the tool name and no timestamp; colour is
// only used when dst is a terminal.
func NewLogger(dst io.Writer, tool string) *slog.Logger {
	h := tint.NewHandler(dst, &tint.Options{
		Level:   slog.LevelInfo,
		NoColor: !IsTerminal(dst),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h).With("tool", tool)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

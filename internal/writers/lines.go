// internal/writers/lines.go
package writers

import (
	"io"
	"strings"
)

// WriteLines writes lines joined by '\n', without a trailing newline.
func WriteLines(w io.Writer, lines ...string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Flush flushes w and maps the outcome to an exit status: 0 on success or a
// broken pipe, 3 on any other write failure. The failure is returned for
// logging.
func Flush(w interface{ Flush() error }) (int, error) {
	err := w.Flush()
	switch {
	case err == nil, IsBrokenPipe(err):
		return 0, nil
	default:
		return 3, err
	}
}

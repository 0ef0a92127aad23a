// Package term answers terminal capability questions for the logger: whether
// a stream is interactive and whether the environment opted out of color.
package term

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTerminal reports whether w is backed by an interactive terminal. Writers
// that are not *os.File (buffers, pipes wrapped in custom types) are never
// terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NoColorRequested reports whether the environment explicitly disables
// colored output, honoring the NO_COLOR and CLICOLOR conventions.
func NoColorRequested() bool {
	return termenv.EnvNoColor()
}

//go:build !unix

package surface

import (
	"errors"
	"os"
)

// TerminalSize is only supported on unix terminals.
func TerminalSize(f *os.File) (width, height int, err error) {
	return 0, 0, errors.New("terminal size is not supported on this platform")
}

// WatchResize does nothing on this platform.
func WatchResize(f *os.File, onResize func(width, height int)) (stop func()) {
	return func() {}
}

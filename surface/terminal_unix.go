//go:build unix

package surface

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// TerminalSize returns the size of the terminal on f in cells.
func TerminalSize(f *os.File) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get terminal size: %w", err)
	}
	if ws.Row == 0 || ws.Col == 0 {
		return 0, 0, errors.New("invalid terminal dimensions")
	}
	return int(ws.Col), int(ws.Row), nil
}

// WatchResize calls onResize with the new terminal size each time the
// terminal on f is resized, until the returned stop function is called.
func WatchResize(f *os.File, onResize func(width, height int)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(doneCh)
		for {
			select {
			case <-stopCh:
				return
			case <-sigCh:
				if w, h, err := TerminalSize(f); err == nil {
					onResize(w, h)
				}
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(stopCh)
		<-doneCh
	}
}

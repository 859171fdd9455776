//go:build linux

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

// SetupTerminal puts the terminal file into a mode suitable for the line
// editor: canonical input processing, echoing and signal generation are
// turned off, and reads return as soon as one byte is available. It returns
// a function that restores the previous mode.
func SetupTerminal(file *os.File) (func() error, error) {
	fd := int(file.Fd())
	saved, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}
	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, err
	}
	return func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETS, saved)
	}, nil
}

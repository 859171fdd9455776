//go:build linux

// Package sys wraps the small set of system facilities the line editor
// needs: waiting for terminal input and switching terminal modes.
package sys

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// WaitForRead blocks until any of the given files is ready to be read, or
// until the timeout elapses. A negative timeout means no timeout. It returns
// a boolean slice indicating which files are ready to be read, and any
// error from the underlying select call.
func WaitForRead(timeout time.Duration, files ...*os.File) ([]bool, error) {
	maxfd := 0
	var fdset unix.FdSet
	for _, file := range files {
		fd := int(file.Fd())
		if maxfd < fd {
			maxfd = fd
		}
		fdset.Set(fd)
	}
	var tv *unix.Timeval
	if timeout >= 0 {
		t := unix.NsecToTimeval(int64(timeout))
		tv = &t
	}
	_, err := unix.Select(maxfd+1, &fdset, nil, nil, tv)
	if err != nil {
		return nil, err
	}
	ready := make([]bool, len(files))
	for i, file := range files {
		ready[i] = fdset.IsSet(int(file.Fd()))
	}
	return ready, nil
}

// Package logutil keeps a process-wide registry of loggers that share one
// output. Logging is off (discarded) until SetOutput or SetOutputFile is
// called, typically in response to a -log flag.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix, registered so that
// future SetOutput calls apply to it.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	lg := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, lg)
	return lg
}

// SetOutput redirects the output of all registered loggers, and of loggers
// created later, to the given writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	out = w
	for _, lg := range loggers {
		lg.SetOutput(out)
	}
}

// SetOutputFile is like SetOutput with a file opened for appending. An empty
// name discards future output. The previously opened file, if any, is
// closed.
func SetOutputFile(name string) error {
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	if name == "" {
		out = io.Discard
	} else {
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		outFile = f
		out = f
	}
	for _, lg := range loggers {
		lg.SetOutput(out)
	}
	return nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}

// Corvid is an interactive Unix shell with inline suggestions drawn from
// command history and completion.
package main

import (
	"flag"
	"fmt"
	"os"

	"corvid.sh/pkg/logutil"
	"corvid.sh/pkg/shell"
)

var (
	help    = flag.Bool("help", false, "show usage help and quit")
	logpath = flag.String("log", "", "a file to write debug log to")
	rcpath  = flag.String("rc", "", "path to the rc file")
)

func usage() {
	fmt.Println("usage: corvid [flags]")
	fmt.Println("flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		usage()
		os.Exit(2)
	}

	if *logpath != "" {
		err := logutil.SetOutputFile(*logpath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	p := shell.Program{RC: *rcpath}
	os.Exit(p.Run([3]*os.File{os.Stdin, os.Stdout, os.Stderr}))
}

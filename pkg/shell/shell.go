// Package shell is the entry point for the terminal interface of Corvid.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"corvid.sh/pkg/cli"
	"corvid.sh/pkg/cli/term"
	"corvid.sh/pkg/edit"
	"corvid.sh/pkg/logutil"
	"corvid.sh/pkg/shell/config"
	"corvid.sh/pkg/store"
	"corvid.sh/pkg/store/storedefs"
	"corvid.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell program.
type Program struct {
	// RC overrides the rc file path. An empty value means the default path.
	RC string
}

// Run runs the shell with the three standard files, and returns the exit
// status. If stdin is not a terminal it reads commands line by line without
// the editor.
func (p Program) Run(fds [3]*os.File) int {
	rcPath := p.RC
	if rcPath == "" {
		rcPath = config.DefaultPath()
	}
	cfg, err := config.Load(rcPath)
	if err != nil {
		fmt.Fprintln(fds[2], "warning:", err)
	}

	if !isatty.IsTerminal(fds[0].Fd()) {
		return interactBatch(fds, cfg)
	}
	return interact(fds, cfg)
}

// interactBatch reads commands from a non-terminal stdin, one per line.
func interactBatch(fds [3]*os.File, cfg config.Config) int {
	ex := newExecer(fds, cfg.Aliases)
	scanner := bufio.NewScanner(fds[0])
	for scanner.Scan() {
		ex.run(scanner.Text())
		if ex.exited {
			return ex.lastStatus
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(fds[2], "read stdin:", err)
		return 2
	}
	return ex.lastStatus
}

func interact(fds [3]*os.File, cfg config.Config) int {
	db := openDB(fds[2], cfg.History.Path)
	if db != nil {
		defer db.Close()
	}

	restore, err := sys.SetupTerminal(fds[0])
	if err != nil {
		fmt.Fprintln(fds[2], "set up terminal:", err)
		return 2
	}
	defer restore()

	reader, err := term.NewReader(fds[0])
	if err != nil {
		fmt.Fprintln(fds[2], "set up terminal reader:", err)
		return 2
	}

	caps := newShellCaps(cfg, db)
	tracker := cli.NewTracker(term.NewWriter(fds[1]))
	editor := cli.NewEditor(tracker, edit.NewSuggester(caps))
	app := cli.NewApp(reader, editor)
	defer app.Close()

	ex := newExecer(fds, cfg.Aliases)
	for {
		fmt.Fprint(fds[1], cfg.Prompt)
		editor.Reset(cfg.Prompt)
		line, err := app.ReadLine()
		fmt.Fprintln(fds[1])
		switch err {
		case nil:
			if line != "" {
				caps.addCmd(line)
				restore()
				ex.run(line)
				if ex.exited {
					return ex.lastStatus
				}
				if _, err := sys.SetupTerminal(fds[0]); err != nil {
					fmt.Fprintln(fds[2], "set up terminal:", err)
					return 2
				}
			}
		case cli.ErrCancelled:
			// Start over with a fresh prompt.
		case io.EOF:
			return 0
		default:
			fmt.Fprintln(fds[2], "editor error:", err)
			return 2
		}
	}
}

func openDB(stderr *os.File, path string) storedefs.Store {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			fmt.Fprintln(stderr, "warning: no history:", err)
			return nil
		}
		path = filepath.Join(dir, "corvid", "db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		fmt.Fprintln(stderr, "warning: no history:", err)
		return nil
	}
	db, err := store.NewStore(path)
	if err != nil {
		fmt.Fprintln(stderr, "warning: no history:", err)
		return nil
	}
	return db
}

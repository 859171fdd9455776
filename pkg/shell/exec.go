package shell

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// execer runs committed command lines. It understands aliases and the cd and
// exit builtins; everything else is run as an external command.
type execer struct {
	fds     [3]*os.File
	aliases map[string]string

	lastStatus int
	exited     bool
}

func newExecer(fds [3]*os.File, aliases map[string]string) *execer {
	return &execer{fds: fds, aliases: aliases}
}

func (ex *execer) run(line string) {
	words := strings.Fields(expandAlias(line, ex.aliases))
	if len(words) == 0 {
		return
	}
	switch words[0] {
	case "cd":
		ex.cd(words[1:])
	case "exit":
		ex.exit(words[1:])
	default:
		ex.external(words)
	}
}

func (ex *execer) cd(args []string) {
	var dir string
	switch len(args) {
	case 0:
		var err error
		dir, err = os.UserHomeDir()
		if err != nil {
			ex.fail("cd:", err)
			return
		}
	case 1:
		dir = args[0]
	default:
		ex.fail("cd: too many arguments")
		return
	}
	if err := os.Chdir(dir); err != nil {
		ex.fail("cd:", err)
		return
	}
	ex.lastStatus = 0
}

func (ex *execer) exit(args []string) {
	status := ex.lastStatus
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			ex.fail("exit:", err)
			return
		}
		status = n
	}
	ex.lastStatus = status
	ex.exited = true
}

func (ex *execer) external(words []string) {
	cmd := exec.Command(words[0], words[1:]...)
	cmd.Stdin = ex.fds[0]
	cmd.Stdout = ex.fds[1]
	cmd.Stderr = ex.fds[2]
	err := cmd.Run()
	if err == nil {
		ex.lastStatus = 0
		return
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		ex.lastStatus = exitErr.ExitCode()
		return
	}
	ex.fail(err)
}

func (ex *execer) fail(args ...any) {
	fmt.Fprintln(ex.fds[2], args...)
	ex.lastStatus = 2
}

// expandAlias rewrites the first word of line if it names an alias. Aliases
// are expanded once, not recursively.
func expandAlias(line string, aliases map[string]string) string {
	trimmed := strings.TrimLeft(line, " \t")
	first, rest, _ := strings.Cut(trimmed, " ")
	if expansion, ok := aliases[first]; ok {
		if rest == "" {
			return expansion
		}
		return expansion + " " + rest
	}
	return line
}

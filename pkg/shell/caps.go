package shell

import (
	"os"
	"path/filepath"
	"strings"

	"corvid.sh/pkg/cli/histutil"
	"corvid.sh/pkg/edit/complete"
	"corvid.sh/pkg/shell/config"
	"corvid.sh/pkg/store/storedefs"
)

// shellCaps implements edit.Capabilities over the shell's configuration,
// command inventory and history database.
type shellCaps struct {
	cfg       config.Config
	db        storedefs.Store
	completer *complete.Completer
	hist      histutil.Store
}

func newShellCaps(cfg config.Config, db storedefs.Store) *shellCaps {
	caps := &shellCaps{
		cfg:       cfg,
		db:        db,
		completer: complete.NewCompleter(commandsOnPath(), cfg.Aliases),
	}
	caps.refreshHistory()
	return caps
}

func (c *shellCaps) GetCompletions(prefix string) []string {
	return c.completer.Complete(prefix)
}

func (c *shellCaps) History() histutil.Store    { return c.hist }
func (c *shellCaps) CompletionEnabled() bool    { return c.cfg.Completion.Enabled }
func (c *shellCaps) Aliases() map[string]string { return c.cfg.Aliases }

// addCmd records a committed line and refreshes the history snapshot so the
// next session can suggest it.
func (c *shellCaps) addCmd(text string) {
	if c.db == nil {
		return
	}
	if _, err := c.db.AddCmd(text); err != nil {
		logger.Println("add command to history:", err)
		return
	}
	c.refreshHistory()
}

func (c *shellCaps) refreshHistory() {
	if c.db == nil {
		return
	}
	hist, err := histutil.NewDBStore(c.db)
	if err != nil {
		logger.Println("snapshot history:", err)
		return
	}
	c.hist = hist
}

// commandsOnPath returns the names of all executables found on PATH.
func commandsOnPath() []string {
	var names []string
	seen := make(map[string]bool)
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, file := range files {
			name := file.Name()
			if seen[name] || strings.HasPrefix(name, ".") {
				continue
			}
			info, err := file.Info()
			if err != nil || info.IsDir() || info.Mode()&0o111 == 0 {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

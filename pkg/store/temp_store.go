package store

import (
	"fmt"
	"os"
	"path/filepath"

	"corvid.sh/pkg/store/storedefs"
)

// MustTempStore returns a Store backed by a file in a temporary directory,
// and a cleanup function that should be called when the Store is no longer
// used.
func MustTempStore() (storedefs.Store, func()) {
	dir, err := os.MkdirTemp("", "corvid.test")
	if err != nil {
		panic(fmt.Sprintf("create temp dir: %v", err))
	}
	st, err := NewStore(filepath.Join(dir, "db"))
	if err != nil {
		os.RemoveAll(dir)
		panic(fmt.Sprintf("create store: %v", err))
	}
	return st, func() {
		st.Close()
		os.RemoveAll(dir)
	}
}

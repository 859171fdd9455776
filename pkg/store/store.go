// Package store abstracts the persistent storage used by the shell.
package store

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"corvid.sh/pkg/logutil"
	"corvid.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const bucketCmd = "cmd"

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a command history store backed by a bolt database at the
// given path, creating the file and the schema as needed.
func NewStore(dbname string) (storedefs.Store, error) {
	db, err := bolt.Open(dbname, 0o644,
		&bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	logger.Println("opened database", dbname)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

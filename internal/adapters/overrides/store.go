// Package overrides persists manual settings-URL overrides in a bolt file.
// The database is opened per call so short-lived CLI invocations and a
// running watch session never fight over the file lock.
package overrides

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"
	"go.trai.ch/slink/internal/core/domain"
	"go.trai.ch/zerr"
)

var bucketOverrides = []byte("overrides")

// Store implements ports.OverrideStore on a bolt database file. Keys are
// plugin basenames, values JSON arrays of settings URLs.
type Store struct {
	path string
}

// NewStore creates a store over the bolt file at path. The file is created
// lazily on first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the full override mapping. A store that has never been written
// yields an empty mapping.
func (s *Store) Load(_ context.Context) (domain.Overrides, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return domain.Overrides{}, nil
	}

	db, err := bolt.Open(s.path, 0o600, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "opening override store"), "path", s.path)
	}
	defer db.Close()

	overrides := domain.Overrides{}
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOverrides)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var urls []string
			if err := json.Unmarshal(v, &urls); err != nil {
				return zerr.With(zerr.Wrap(err, "decoding override entry"), "basename", string(k))
			}
			overrides[string(k)] = urls
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

// Save replaces the stored mapping with the given one.
func (s *Store) Save(_ context.Context, overrides domain.Overrides) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "creating override store directory"), "path", s.path)
	}

	db, err := bolt.Open(s.path, 0o600, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "opening override store"), "path", s.path)
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		// Replace semantics: drop the bucket and rewrite it.
		if tx.Bucket(bucketOverrides) != nil {
			if err := tx.DeleteBucket(bucketOverrides); err != nil {
				return zerr.Wrap(err, "clearing override store")
			}
		}
		b, err := tx.CreateBucket(bucketOverrides)
		if err != nil {
			return zerr.Wrap(err, "creating override bucket")
		}
		for basename, urls := range overrides {
			data, err := json.Marshal(urls)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "encoding override entry"), "basename", basename)
			}
			if err := b.Put([]byte(basename), data); err != nil {
				return zerr.With(zerr.Wrap(err, "writing override entry"), "basename", basename)
			}
		}
		return nil
	})
}

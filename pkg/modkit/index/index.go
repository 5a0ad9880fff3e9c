// Package index tracks recently opened workspaces in an embedded
// key-value store so the editor can offer a "recent projects" list
// across sessions.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a workspace has no index entry.
var ErrNotFound = errors.New("workspace not indexed")

// keyPrefix namespaces workspace records in the store.
var keyPrefix = []byte("ws:")

// Workspace is one recent-workspace record.
type Workspace struct {
	// Path is the absolute workspace root.
	Path string `json:"path"`

	// LastOpened is when the workspace was last opened.
	LastOpened time.Time `json:"last_opened"`

	// Files and Bytes are the totals from the most recent open.
	Files int64 `json:"files"`
	Bytes int64 `json:"bytes"`
}

// Index wraps Badger for recent-workspace operations.
type Index struct {
	db *badger.DB
}

// Open opens or creates an index at the given path.
func Open(path string) (*Index, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable badger logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening workspace index: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the index.
func (i *Index) Close() error {
	return i.db.Close()
}

// Touch records that a workspace was opened, overwriting any previous
// record for the same path.
func (i *Index) Touch(ws Workspace) error {
	if ws.Path == "" {
		return errors.New("workspace path cannot be empty")
	}
	if ws.LastOpened.IsZero() {
		ws.LastOpened = time.Now().UTC()
	}

	value, err := json.Marshal(ws)
	if err != nil {
		return fmt.Errorf("marshaling workspace record: %w", err)
	}

	return i.db.Update(func(txn *badger.Txn) error {
		return txn.Set(makeKey(ws.Path), value)
	})
}

// Get retrieves the record for a workspace path.
func (i *Index) Get(path string) (*Workspace, error) {
	var ws Workspace

	err := i.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(makeKey(path))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ws)
		})
	})
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// Recent returns up to limit workspaces ordered by last-opened time,
// newest first. A limit of 0 or less returns all records.
func (i *Index) Recent(limit int) ([]Workspace, error) {
	var records []Workspace

	err := i.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
			var ws Workspace
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &ws)
			})
			if err != nil {
				// Skip records that can't be decoded
				continue
			}
			records = append(records, ws)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(a, b int) bool {
		return records[a].LastOpened.After(records[b].LastOpened)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Forget removes the record for a workspace path. Removing a path that
// was never indexed is not an error.
func (i *Index) Forget(path string) error {
	return i.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(makeKey(path))
	})
}

func makeKey(path string) []byte {
	return append(append([]byte{}, keyPrefix...), path...)
}

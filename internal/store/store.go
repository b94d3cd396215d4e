// Package store persists raw AAS JSON documents in an embedded Badger
// database, keyed by machine name. It replaces an external document database
// so the planner runs self-contained.
package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// ErrDocumentNotFound is returned when no document exists under a name.
var ErrDocumentNotFound = errors.New("store: document not found")

type Store struct {
	db *badger.DB
}

// Open opens (or creates) the document store at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores the raw document under name, overwriting any previous version.
func (s *Store) Put(name string, doc []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(name), doc)
	})
	if err != nil {
		return fmt.Errorf("store: put %q: %w", name, err)
	}
	return nil
}

// Get returns the raw document stored under name.
func (s *Store) Get(name string) ([]byte, error) {
	var doc []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(name))
		if err != nil {
			return err
		}
		doc, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrDocumentNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %q: %w", name, err)
	}
	return doc, nil
}

// ForEach calls fn for every stored document in key order. An error from fn
// stops the iteration and is returned unchanged.
func (s *Store) ForEach(fn func(name string, doc []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			doc, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("store: read %q: %w", item.Key(), err)
			}
			if err := fn(string(item.Key()), doc); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of stored documents.
func (s *Store) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return count, nil
}

// Reset drops every stored document.
func (s *Store) Reset() error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("store: reset: %w", err)
	}
	return nil
}

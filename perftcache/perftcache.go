// Package perftcache memoizes perft node counts keyed by FEN and depth, in
// a BadgerDB database, so repeat runs of the audit driver against the same
// published scenarios don't re-walk the move tree.
package perftcache

import (
	"encoding/binary"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a BadgerDB handle scoped to perft memoization.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a BadgerDB database at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func cacheKey(fen string, depth int) []byte {
	return []byte(fen + "|" + strconv.Itoa(depth))
}

// Get returns a previously cached node count for (fen, depth), if present.
func (s *Store) Get(fen string, depth int) (int64, bool, error) {
	var count int64
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			count = int64(binary.BigEndian.Uint64(val))
			return nil
		})
	})
	if err != nil {
		return 0, false, err
	}
	return count, found, nil
}

// Put stores the node count for (fen, depth).
func (s *Store) Put(fen string, depth int, count int64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(count))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(fen, depth), buf)
	})
}

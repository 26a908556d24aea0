// Package magicstore persists discovered magic-bitboard multipliers in a
// BadgerDB database, so a second process on the same machine can skip the
// randomized search that produced them.
package magicstore

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
)

const key = "magics/v1"

// Record is the persisted form of one square's magic entry: just enough to
// rebuild the full lookup table (mask, magic multiplier, shift width) —
// the table itself is cheap to regenerate from these three values.
type Record struct {
	Mask  uint64 `json:"mask"`
	Magic uint64 `json:"magic"`
	Shift uint8  `json:"shift"`
}

// Snapshot is the full set of rook and bishop records for all 64 squares.
type Snapshot struct {
	Rook   [64]Record `json:"rook"`
	Bishop [64]Record `json:"bishop"`
}

// Store wraps a BadgerDB handle scoped to magic-number persistence.
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

// Load returns the persisted snapshot, if one exists.
func (s *Store) Load() (Snapshot, bool, error) {
	var snapshot Snapshot
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snapshot)
		})
	})
	if err != nil {
		return Snapshot{}, false, err
	}
	return snapshot, found, nil
}

// Save persists snapshot, overwriting any previous value.
func (s *Store) Save(snapshot Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

package magicstore

import (
	"os"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "magicstore-test-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, found, err := store.Load(); err != nil || found {
		t.Fatalf("Load on empty store: found=%v err=%v", found, err)
	}

	var snapshot Snapshot
	snapshot.Rook[0] = Record{Mask: 0x0101010101017E, Magic: 0x123456789ABCDEF0, Shift: 52}
	snapshot.Bishop[63] = Record{Mask: 0x40201008040200, Magic: 0xDEADBEEFCAFEBABE, Shift: 58}

	if err := store.Save(snapshot); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatalf("expected a snapshot to be found after Save")
	}
	if got.Rook[0] != snapshot.Rook[0] {
		t.Fatalf("Rook[0] = %+v, want %+v", got.Rook[0], snapshot.Rook[0])
	}
	if got.Bishop[63] != snapshot.Bishop[63] {
		t.Fatalf("Bishop[63] = %+v, want %+v", got.Bishop[63], snapshot.Bishop[63])
	}
}

package storage

import "testing"

func TestDefaultStorePathsAreCreated(t *testing.T) {
	magicPath, err := DefaultMagicStorePath()
	if err != nil {
		t.Fatalf("DefaultMagicStorePath: %v", err)
	}
	if magicPath == "" {
		t.Fatalf("DefaultMagicStorePath returned an empty path")
	}

	perftPath, err := DefaultPerftCachePath()
	if err != nil {
		t.Fatalf("DefaultPerftCachePath: %v", err)
	}
	if perftPath == "" {
		t.Fatalf("DefaultPerftCachePath returned an empty path")
	}

	if magicPath == perftPath {
		t.Fatalf("magic store and perft cache should not share a directory")
	}
}

package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustInsert inserts a contact and fails the test on error.
func mustInsert(t *testing.T, s *Store, name, phoneNo string) int64 {
	t.Helper()
	id, err := s.Insert(context.Background(), name, phoneNo)
	if err != nil {
		t.Fatalf("Insert(%q, %q) failed: %v", name, phoneNo, err)
	}
	return id
}

// mustCount returns the row count and fails the test on error.
func mustCount(t *testing.T, s *Store) int {
	t.Helper()
	n, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	return n
}

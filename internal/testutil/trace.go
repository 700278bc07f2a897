package testutil

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
)

// FixedTraceID returns a trace id generator that yields token on every call.
// If token is empty it yields "test-trace-default".
func FixedTraceID(token string) func() string {
	if token == "" {
		token = "test-trace-default"
	}
	return func() string { return token }
}

// SequentialTraceIDs returns a generator yielding prefix-1, prefix-2, ...
// Safe for concurrent use.
func SequentialTraceIDs(prefix string) func() string {
	var (
		mu  sync.Mutex
		seq int64
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("%s-%d", prefix, seq)
	}
}

// TempDBPath returns a database path inside a per-test temp directory.
// The file itself is not created.
func TempDBPath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "contacts.db")
}

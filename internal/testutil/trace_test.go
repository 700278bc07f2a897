package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedTraceID_ReturnsSameToken(t *testing.T) {
	gen := FixedTraceID("trace-123")

	assert.Equal(t, "trace-123", gen())
	assert.Equal(t, "trace-123", gen())
}

func TestFixedTraceID_EmptyTokenDefault(t *testing.T) {
	assert.Equal(t, "test-trace-default", FixedTraceID("")())
}

func TestSequentialTraceIDs_Increments(t *testing.T) {
	gen := SequentialTraceIDs("run")

	assert.Equal(t, "run-1", gen())
	assert.Equal(t, "run-2", gen())
	assert.Equal(t, "run-3", gen())
}

func TestSequentialTraceIDs_ThreadSafe(t *testing.T) {
	gen := SequentialTraceIDs("t")

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[string]bool{}
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := gen()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 1000, "every id should be unique")
}

func TestTempDBPath(t *testing.T) {
	path := TempDBPath(t)

	assert.Equal(t, "contacts.db", filepath.Base(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

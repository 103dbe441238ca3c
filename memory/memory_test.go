package memory

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes", "data.txt")
	s := NewFileStore(path)

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("buy milk"))

	note, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "buy milk", note)
}

func TestFileStore_OverwriteWholesale(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.txt"))

	require.NoError(t, s.Save("first note"))
	require.NoError(t, s.Save("second"))

	note, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", note)
}

func TestFileStore_WhitespaceOnlyIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data.txt"))
	require.NoError(t, s.Save("   \n"))

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryStore(t *testing.T) {
	s := NewInMemoryStore()

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("remember me"))
	note, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "remember me", note)

	require.NoError(t, s.Save("replaced"))
	note, _, _ = s.Load()
	assert.Equal(t, "replaced", note)
}

package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	t.Parallel()
	s := NewMemoryTokenStore()

	_, ok := s.Token()
	assert.False(t, ok, "fresh store should be empty")

	require.NoError(t, s.Save("tok-1"))
	for i := 0; i < 3; i++ {
		tok, ok := s.Token()
		require.True(t, ok)
		assert.Equal(t, "tok-1", tok, "repeated reads must return the last saved token")
	}

	require.NoError(t, s.Save("tok-2"))
	tok, _ := s.Token()
	assert.Equal(t, "tok-2", tok)

	require.NoError(t, s.Clear())
	_, ok = s.Token()
	assert.False(t, ok)
	require.NoError(t, s.Clear(), "clearing an empty store is a no-op")
}

func TestFileTokenStore_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "token")

	s1 := NewFileTokenStore(path)
	_, ok := s1.Token()
	assert.False(t, ok, "missing file means no session")

	require.NoError(t, s1.Save("tok-file"))

	s2 := NewFileTokenStore(path)
	tok, ok := s2.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-file", tok)

	require.NoError(t, s2.Clear())
	_, ok = s1.Token()
	assert.False(t, ok)
	require.NoError(t, s2.Clear(), "clearing twice is a no-op")
}

package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePut(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	s := New(dir)
	data := []byte("<kml/>")

	p1, err := s.Put("/somewhere/parcels.kml", data)
	require.NoError(t, err)
	p2, err := s.Put("/somewhere/parcels.kml", data)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.Equal(t, dir, filepath.Dir(p1))
	assert.True(t, strings.HasSuffix(p1, "-parcels.kml"))

	got, err := os.ReadFile(p1)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStoreDisabled(t *testing.T) {
	t.Parallel()

	var s *Store
	assert.False(t, s.Enabled())
	p, err := s.Put("x.kml", []byte("x"))
	require.NoError(t, err)
	assert.Empty(t, p)

	p, err = New("").Put("x.kml", []byte("x"))
	require.NoError(t, err)
	assert.Empty(t, p)
}

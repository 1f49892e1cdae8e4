package kml

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name, body string
}

func buildKMZ(t *testing.T, entries ...entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("plain kml passes through", func(t *testing.T) {
		t.Parallel()
		got, err := ReadDocument([]byte("<kml/>"), "Parcels.KML")
		require.NoError(t, err)
		assert.Equal(t, "<kml/>", got)
	})

	t.Run("doc.kml wins over other entries", func(t *testing.T) {
		t.Parallel()
		data := buildKMZ(t,
			entry{"a.kml", "first"},
			entry{"images/icon.png", "png"},
			entry{"doc.kml", "doc"},
			entry{"z.kml", "last"},
		)
		got, err := ReadDocument(data, "bundle.kmz")
		require.NoError(t, err)
		assert.Equal(t, "doc", got)
	})

	t.Run("single other kml entry", func(t *testing.T) {
		t.Parallel()
		data := buildKMZ(t, entry{"readme.txt", "x"}, entry{"files/Layer.KML", "layer"})
		got, err := ReadDocument(data, "bundle.kmz")
		require.NoError(t, err)
		assert.Equal(t, "layer", got)
	})

	t.Run("no kml entry", func(t *testing.T) {
		t.Parallel()
		data := buildKMZ(t, entry{"readme.txt", "x"})
		_, err := ReadDocument(data, "bundle.kmz")
		assert.ErrorIs(t, err, ErrMissingKMLEntry)
	})

	t.Run("not a zip", func(t *testing.T) {
		t.Parallel()
		_, err := ReadDocument([]byte("definitely not a zip"), "bundle.kmz")
		assert.ErrorIs(t, err, ErrCorruptArchive)
	})

	t.Run("unknown extension is treated as archive", func(t *testing.T) {
		t.Parallel()
		data := buildKMZ(t, entry{"doc.kml", "doc"})
		got, err := ReadDocument(data, "download")
		require.NoError(t, err)
		assert.Equal(t, "doc", got)
	})
}

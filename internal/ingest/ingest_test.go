package ingest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geolayers/internal/cache"
	"geolayers/internal/geom"
	"geolayers/internal/kml"
	"geolayers/internal/layer"
)

const pointsKML = `<kml><Document>
  <Placemark><name>A</name><Point><coordinates>10,20</coordinates></Point></Placemark>
  <Placemark><name>B</name><Point><coordinates>30,40</coordinates></Point></Placemark>
</Document></kml>`

const lineKML = `<kml><Placemark><LineString><coordinates>-1,-2 -3,-4</coordinates></LineString></Placemark></kml>`

func kmz(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestIngest(t *testing.T) {
	t.Parallel()

	reg := layer.NewRegistry()
	in := New(reg, nil, 0)

	l, err := in.Ingest(Source{Path: "wells.kml", Data: []byte(pointsKML), Visible: true})
	require.NoError(t, err)
	assert.Equal(t, "wells", l.Name)
	assert.Equal(t, layer.Red, l.Color)

	markers := reg.VisibleMarkers()
	require.Len(t, markers, 2)
	assert.Equal(t, "wells_marker_0", markers[0].ID)

	b, err := reg.Frame()
	require.NoError(t, err)
	assert.Equal(t, geom.Coordinate{Lat: 20, Lon: 10}, b.SouthWest)
	assert.Equal(t, geom.Coordinate{Lat: 40, Lon: 30}, b.NorthEast)
}

func TestIngestMissingEntryLeavesLayerEmpty(t *testing.T) {
	t.Parallel()

	reg := layer.NewRegistry()
	in := New(reg, nil, 0)

	data := kmz(t, map[string]string{"notes.txt": "nothing here"})
	l, err := in.Ingest(Source{Name: "empty", Path: "empty.kmz", Data: data, Visible: true})
	require.ErrorIs(t, err, kml.ErrMissingKMLEntry)
	require.NotNil(t, l)

	got := reg.Layers()
	require.Len(t, got, 1)
	assert.True(t, got[0].Features.Empty())
	assert.ErrorIs(t, got[0].Err, kml.ErrMissingKMLEntry)
	assert.False(t, got[0].Visible)
}

func TestIngestSameContentTwice(t *testing.T) {
	t.Parallel()

	reg := layer.NewRegistry()
	in := New(reg, nil, 0)

	a, err := in.Ingest(Source{Name: "dup", Path: "dup.kml", Data: []byte(pointsKML)})
	require.NoError(t, err)
	b, err := in.Ingest(Source{Name: "dup", Path: "dup.kml", Data: []byte(pointsKML)})
	require.NoError(t, err)

	layers := reg.Layers()
	require.Len(t, layers, 2)
	assert.ElementsMatch(t, layers[0].Features.Markers[0:1], []geom.Marker{
		{ID: "dup_marker_0", Position: geom.Coordinate{Lat: 20, Lon: 10}, Label: "A", Layer: "dup", Hue: a.MarkerHue()},
	})
	// ids match; only the layer color (and so the hue) differs
	for i := range layers[0].Features.Markers {
		assert.Equal(t, layers[0].Features.Markers[i].ID, layers[1].Features.Markers[i].ID)
	}
	assert.NotEqual(t, a.Color, b.Color)
}

func TestIngestAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	reqs := []Request{
		{Path: writeFile(t, dir, "points.kml", []byte(pointsKML)), Visible: true},
		{Path: writeFile(t, dir, "broken.kmz", []byte("not a zip")), Visible: true},
		{Path: filepath.Join(dir, "missing.kml"), Visible: true},
		{Path: writeFile(t, dir, "lines.kmz", kmz(t, map[string]string{"doc.kml": lineKML, "other.kml": pointsKML})), Name: "Lines", Visible: true},
		{Path: writeFile(t, dir, "bad.kml", []byte("<kml><Placemark>")), Visible: true},
	}

	reg := layer.NewRegistry()
	in := New(reg, cache.New(cacheDir), 2)
	results := in.IngestAll(context.Background(), reqs)
	require.Len(t, results, len(reqs))

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, kml.ErrCorruptArchive)
	assert.ErrorIs(t, results[2].Err, ErrIO)
	assert.Nil(t, results[2].Layer)
	require.NoError(t, results[3].Err)
	assert.Equal(t, "Lines", results[3].Layer.Name)
	assert.ErrorIs(t, results[4].Err, kml.ErrMalformedXML)

	assert.Equal(t, 4, reg.Len(), "unreadable files get no layer")
	assert.Len(t, reg.VisibleMarkers(), 2)
	lines := reg.VisiblePolylines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Lines_polyline_0", lines[0].ID)

	// sources point at cached copies
	assert.Equal(t, cacheDir, filepath.Dir(results[0].Layer.Source))
	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	// every layer got its own color
	seen := map[geom.Color]bool{}
	for _, l := range reg.Layers() {
		assert.False(t, seen[l.Color])
		seen[l.Color] = true
	}
}

func TestIngestFileCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reg := layer.NewRegistry()
	_, err := New(reg, nil, 1).IngestFile(ctx, Request{Path: "whatever.kml"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, reg.Len())
}

func TestLayerName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "parcels", LayerName("/data/parcels.kmz"))
	assert.Equal(t, "a.b", LayerName("a.b.kml"))
	assert.Equal(t, "noext", LayerName("noext"))
}

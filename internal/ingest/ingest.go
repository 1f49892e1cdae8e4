// Package ingest turns source files into populated layers.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"geolayers/internal/cache"
	"geolayers/internal/geom"
	"geolayers/internal/kml"
	"geolayers/internal/layer"
)

// ErrIO is returned when a source cannot be read.
var ErrIO = errors.New("source unreadable")

// Source is one document to ingest. Path is used for extension sniffing
// and as the layer's source identifier.
type Source struct {
	Name    string
	Path    string
	Data    []byte
	Visible bool
}

// Request names a file to ingest from disk.
type Request struct {
	Path    string
	Name    string
	Visible bool
}

// Result is the outcome of one request. Layer is nil when the file could
// not be read at all.
type Result struct {
	Path  string
	Layer *layer.Layer
	Err   error
}

type Ingester struct {
	Registry    *layer.Registry
	Cache       *cache.Store
	Concurrency int
}

func New(reg *layer.Registry, store *cache.Store, concurrency int) *Ingester {
	return &Ingester{Registry: reg, Cache: store, Concurrency: concurrency}
}

// LayerName derives a display name from a file path.
func LayerName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadFile loads path into a Source.
func ReadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return Source{Name: LayerName(path), Path: path, Data: data}, nil
}

// Ingest creates a layer for src, extracts its features and publishes
// them in one step. On failure the layer is kept with empty features and
// the error recorded on it.
func (in *Ingester) Ingest(src Source) (*layer.Layer, error) {
	if src.Name == "" {
		src.Name = LayerName(src.Path)
	}
	l := in.Registry.NewLayer(src.Name, src.Path)
	fs, err := extract(src, l)
	in.Registry.Publish(l, fs, err)
	if err != nil {
		log.Warn().Err(err).Str("layer", l.Name).Str("source", src.Path).Msg("Ingestion failed")
		return l, err
	}
	if src.Visible {
		in.Registry.SetVisible(l, true)
	}
	log.Info().
		Str("layer", l.Name).
		Str("color", l.Color.Hex()).
		Int("polygons", len(fs.Polygons)).
		Int("polylines", len(fs.Polylines)).
		Int("markers", len(fs.Markers)).
		Msg("Layer loaded")
	return l, nil
}

func extract(src Source, l *layer.Layer) (geom.FeatureSet, error) {
	text, err := kml.ReadDocument(src.Data, src.Path)
	if err != nil {
		return geom.FeatureSet{}, err
	}
	return kml.Parse(text, l)
}

// IngestFile reads req.Path, keeps a cached copy when a cache is
// configured, and ingests it.
func (in *Ingester) IngestFile(ctx context.Context, req Request) (*layer.Layer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := ReadFile(req.Path)
	if err != nil {
		log.Warn().Err(err).Str("source", req.Path).Msg("Cannot read source")
		return nil, err
	}
	if req.Name != "" {
		src.Name = req.Name
	}
	src.Visible = req.Visible
	if p, err := in.Cache.Put(req.Path, src.Data); err != nil {
		log.Warn().Err(err).Str("source", req.Path).Msg("Cannot cache source, using original")
	} else if p != "" {
		src.Path = p
	}
	return in.Ingest(src)
}

// IngestAll ingests every request concurrently. Failures are reported per
// request and never stop the others. Results are in request order.
func (in *Ingester) IngestAll(ctx context.Context, reqs []Request) []Result {
	results := make([]Result, len(reqs))
	var g errgroup.Group
	if in.Concurrency > 0 {
		g.SetLimit(in.Concurrency)
	}
	for i, req := range reqs {
		g.Go(func() error {
			l, err := in.IngestFile(ctx, req)
			results[i] = Result{Path: req.Path, Layer: l, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

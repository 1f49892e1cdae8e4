package layer

import (
	"fmt"
	"sync"

	"geolayers/internal/geom"
)

// Registry is an ordered, concurrency-safe collection of layers. Order is
// insertion order and only matters for display.
type Registry struct {
	mu     sync.RWMutex
	layers []*Layer
}

func NewRegistry() *Registry {
	return &Registry{}
}

// NewLayer creates a hidden layer with the first unused palette color and
// appends it. Allocation and append happen under one lock so concurrent
// callers never share a color.
func (r *Registry) NewLayer(name, source string) *Layer {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := &Layer{Name: name, Source: source, Color: UnusedColor(r.layers)}
	r.layers = append(r.layers, l)
	return l
}

// Add appends l as-is.
func (r *Registry) Add(l *Layer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layers = append(r.layers, l)
}

// Publish replaces l's feature sets in one step and records err.
func (r *Registry) Publish(l *Layer, fs geom.FeatureSet, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.Features = fs
	l.Err = err
}

// ToggleVisibility flips the visibility of the layer at i and returns the
// new state.
func (r *Registry) ToggleVisibility(i int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.layers) {
		return false, fmt.Errorf("layer index %d out of range", i)
	}
	r.layers[i].Visible = !r.layers[i].Visible
	return r.layers[i].Visible, nil
}

// SetVisible sets the visibility of l.
func (r *Registry) SetVisible(l *Layer, v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.Visible = v
}

// Remove drops the layer at i.
func (r *Registry) Remove(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i < 0 || i >= len(r.layers) {
		return fmt.Errorf("layer index %d out of range", i)
	}
	r.layers = append(r.layers[:i:i], r.layers[i+1:]...)
	return nil
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layers = nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.layers)
}

// Layers returns a copy of every layer in order.
func (r *Registry) Layers() []Layer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Layer, len(r.layers))
	for i, l := range r.layers {
		out[i] = *l
	}
	return out
}

// Visible returns the union of every visible layer's features, read under
// one lock so a concurrent Publish is seen either entirely or not at all.
func (r *Registry) Visible() geom.FeatureSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out geom.FeatureSet
	for _, l := range r.layers {
		if !l.Visible {
			continue
		}
		out.Polygons = append(out.Polygons, l.Features.Polygons...)
		out.Polylines = append(out.Polylines, l.Features.Polylines...)
		out.Markers = append(out.Markers, l.Features.Markers...)
	}
	return out
}

func (r *Registry) VisiblePolygons() []geom.Polygon   { return r.Visible().Polygons }
func (r *Registry) VisiblePolylines() []geom.Polyline { return r.Visible().Polylines }
func (r *Registry) VisibleMarkers() []geom.Marker     { return r.Visible().Markers }

// VisibleCoordinates flattens every coordinate of every visible layer.
func (r *Registry) VisibleCoordinates() []geom.Coordinate {
	return r.Visible().Coordinates()
}

// Frame returns the bounds of everything currently visible.
func (r *Registry) Frame() (geom.Bounds, error) {
	return geom.Frame(r.VisibleCoordinates())
}

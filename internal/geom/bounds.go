package geom

import "errors"

// ErrNoVisibleFeatures is returned by Frame when there is nothing to frame.
var ErrNoVisibleFeatures = errors.New("no visible features")

const (
	// FramePadding is the padding, in pixels, a map view should keep
	// around framed bounds.
	FramePadding = 50
	// FallbackZoom is the zoom level used to center on degenerate bounds.
	FallbackZoom = 15
)

// Bounds is an axis-aligned lat/lon rectangle.
type Bounds struct {
	SouthWest Coordinate
	NorthEast Coordinate
}

// Center returns the midpoint of b.
func (b Bounds) Center() Coordinate {
	return Coordinate{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lon: (b.SouthWest.Lon + b.NorthEast.Lon) / 2,
	}
}

// IsDegenerate reports whether b has zero width or height.
func (b Bounds) IsDegenerate() bool {
	return !(b.NorthEast.Lat > b.SouthWest.Lat && b.NorthEast.Lon > b.SouthWest.Lon)
}

func (b Bounds) Width() float64  { return b.NorthEast.Lon - b.SouthWest.Lon }
func (b Bounds) Height() float64 { return b.NorthEast.Lat - b.SouthWest.Lat }

// Frame returns the smallest rectangle enclosing coords. A single point
// yields zero-area bounds; callers decide how to display that.
func Frame(coords []Coordinate) (Bounds, error) {
	if len(coords) == 0 {
		return Bounds{}, ErrNoVisibleFeatures
	}
	b := Bounds{SouthWest: coords[0], NorthEast: coords[0]}
	for _, c := range coords[1:] {
		if c.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = c.Lat
		}
		if c.Lon < b.SouthWest.Lon {
			b.SouthWest.Lon = c.Lon
		}
		if c.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = c.Lat
		}
		if c.Lon > b.NorthEast.Lon {
			b.NorthEast.Lon = c.Lon
		}
	}
	return b, nil
}

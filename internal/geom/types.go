package geom

import "fmt"

const (
	PolygonStrokeWidth = 2
	PolylineWidth      = 3
	fillAlpha          = 0x40
)

// Coordinate is a WGS84 position. Ranges are not enforced.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Color is a 32-bit ARGB value.
type Color uint32

// RGBA splits c into its channels.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// Hex returns the "#RRGGBB" form of c, dropping alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// Alpha returns the alpha channel as a fraction in [0,1].
func (c Color) Alpha() float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 255
}

type Polygon struct {
	ID          string
	Ring        []Coordinate // outer boundary only
	FillColor   Color
	StrokeColor Color
	StrokeWidth int
}

// NewPolygon styles ring with the layer color: translucent fill, opaque stroke.
func NewPolygon(id string, ring []Coordinate, c Color) Polygon {
	return Polygon{
		ID:          id,
		Ring:        ring,
		FillColor:   c.WithAlpha(fillAlpha),
		StrokeColor: c,
		StrokeWidth: PolygonStrokeWidth,
	}
}

type Polyline struct {
	ID    string
	Path  []Coordinate
	Color Color
	Width int
}

func NewPolyline(id string, path []Coordinate, c Color) Polyline {
	return Polyline{ID: id, Path: path, Color: c, Width: PolylineWidth}
}

// Marker is a labelled point. Layer carries the owning layer's name for display.
type Marker struct {
	ID       string
	Position Coordinate
	Label    string
	Layer    string
	Hue      float64
}

// FeatureSet is everything extracted from one document. It is published
// to a layer as a unit and never mutated afterwards.
type FeatureSet struct {
	Polygons  []Polygon
	Polylines []Polyline
	Markers   []Marker
}

// Empty reports whether fs holds no features at all.
func (fs FeatureSet) Empty() bool {
	return len(fs.Polygons) == 0 && len(fs.Polylines) == 0 && len(fs.Markers) == 0
}

// Coordinates flattens every vertex and marker position in fs, in
// polygon, polyline, marker order. Duplicates are kept.
func (fs FeatureSet) Coordinates() []Coordinate {
	var out []Coordinate
	for _, p := range fs.Polygons {
		out = append(out, p.Ring...)
	}
	for _, l := range fs.Polylines {
		out = append(out, l.Path...)
	}
	for _, m := range fs.Markers {
		out = append(out, m.Position)
	}
	return out
}

// Package layer groups extracted features into named, colored layers and
// tracks which of them are visible.
package layer

import "geolayers/internal/geom"

// Layer is the features extracted from one source. Name, Source and Color
// are fixed at creation; the rest is only changed through a Registry.
type Layer struct {
	Name    string
	Source  string
	Color   geom.Color
	Visible bool

	Features geom.FeatureSet
	// Err is the terminal ingestion error, if any.
	Err error
}

// MarkerHue is the hue the layer's markers are tinted with.
func (l *Layer) MarkerHue() float64 { return MarkerHue(l.Color) }

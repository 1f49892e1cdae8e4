// Package kml extracts polygon, line and point features from KML and KMZ
// documents.
package kml

import (
	"fmt"
	"strings"

	"geolayers/internal/geom"
	"geolayers/internal/layer"
)

const unnamed = "Unnamed"

// parser holds the per-call state of Parse. Counters are never shared
// between calls, so ids depend only on document order.
type parser struct {
	layer    string
	color    geom.Color
	hue      float64
	out      geom.FeatureSet
	polygons int
	lines    int
	markers  int
}

// Parse extracts every Placemark geometry in text, styled for l. Geometries
// without a usable coordinate are skipped silently; only a document that is
// not well-formed fails. The caller publishes the result to l.
func Parse(text string, l *layer.Layer) (geom.FeatureSet, error) {
	root, err := Decode(strings.NewReader(text))
	if err != nil {
		return geom.FeatureSet{}, err
	}
	p := &parser{layer: l.Name, color: l.Color, hue: layer.MarkerHue(l.Color)}
	// the root itself may be a Placemark in a bare fragment
	if root.Name == "Placemark" {
		p.placemark(root)
	}
	for _, pm := range root.FindAll("Placemark") {
		p.placemark(pm)
	}
	return p.out, nil
}

func (p *parser) placemark(pm *Node) {
	label := unnamed
	if n := pm.Child("name"); n != nil {
		if s := strings.TrimSpace(n.Text); s != "" {
			label = s
		}
	}
	for _, g := range pm.FindAllOutside("Polygon", "Placemark") {
		if poly, ok := p.polygon(g); ok {
			p.out.Polygons = append(p.out.Polygons, poly)
		}
	}
	for _, g := range pm.FindAllOutside("LineString", "Placemark") {
		if line, ok := p.polyline(g); ok {
			p.out.Polylines = append(p.out.Polylines, line)
		}
	}
	for _, g := range pm.FindAllOutside("Point", "Placemark") {
		if m, ok := p.marker(g, label); ok {
			p.out.Markers = append(p.out.Markers, m)
		}
	}
}

// Inner boundaries are not extracted.
func (p *parser) polygon(g *Node) (geom.Polygon, bool) {
	ring := coordinatesOf(g.FindPath("outerBoundaryIs", "LinearRing", "coordinates"))
	if len(ring) == 0 {
		return geom.Polygon{}, false
	}
	id := fmt.Sprintf("%s_polygon_%d", p.layer, p.polygons)
	p.polygons++
	return geom.NewPolygon(id, ring, p.color), true
}

func (p *parser) polyline(g *Node) (geom.Polyline, bool) {
	path := coordinatesOf(g.Find("coordinates"))
	if len(path) == 0 {
		return geom.Polyline{}, false
	}
	id := fmt.Sprintf("%s_polyline_%d", p.layer, p.lines)
	p.lines++
	return geom.NewPolyline(id, path, p.color), true
}

func (p *parser) marker(g *Node, label string) (geom.Marker, bool) {
	pts := coordinatesOf(g.Find("coordinates"))
	if len(pts) == 0 {
		return geom.Marker{}, false
	}
	id := fmt.Sprintf("%s_marker_%d", p.layer, p.markers)
	p.markers++
	return geom.Marker{
		ID:       id,
		Position: pts[0],
		Label:    label,
		Layer:    p.layer,
		Hue:      p.hue,
	}, true
}

func coordinatesOf(n *Node) []geom.Coordinate {
	if n == nil {
		return nil
	}
	return geom.ParseCoordinates(n.Text)
}

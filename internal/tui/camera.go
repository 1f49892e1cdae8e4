package tui

import (
	"errors"
	"math"

	"geolayers/internal/geom"
)

// fitFrame turns framing bounds into the rectangle shown by a map of
// wMic x hMic braille dots. Padding is geom.FramePadding dots, reduced on
// small maps so features keep at least half the view. Zero-area bounds
// are centered at geom.FallbackZoom instead.
func fitFrame(b geom.Bounds, wMic, hMic int) geom.Bounds {
	if b.IsDegenerate() {
		span := 360 / math.Pow(2, geom.FallbackZoom)
		c := b.Center()
		halfW := math.Max(span, b.Width()) / 2
		halfH := math.Max(span, b.Height()) / 2
		b = geom.Bounds{
			SouthWest: geom.Coordinate{Lat: c.Lat - halfH, Lon: c.Lon - halfW},
			NorthEast: geom.Coordinate{Lat: c.Lat + halfH, Lon: c.Lon + halfW},
		}
	}
	padX := min(geom.FramePadding, wMic/4)
	padY := min(geom.FramePadding, hMic/4)
	grow := func(size float64, total, pad int) float64 {
		if total-2*pad <= 0 {
			return 0
		}
		return size * float64(pad) / float64(total-2*pad)
	}
	dx := grow(b.Width(), wMic, padX)
	dy := grow(b.Height(), hMic, padY)
	return geom.Bounds{
		SouthWest: geom.Coordinate{Lat: b.SouthWest.Lat - dy, Lon: b.SouthWest.Lon - dx},
		NorthEast: geom.Coordinate{Lat: b.NorthEast.Lat + dy, Lon: b.NorthEast.Lon + dx},
	}
}

// fitVisible moves the camera onto the visible layers. With nothing
// visible the camera stays where it is.
func (m *Model) fitVisible() {
	b, err := m.reg.Frame()
	if errors.Is(err, geom.ErrNoVisibleFeatures) {
		if m.reg.Len() > 0 {
			m.status += "  (no visible features)"
		}
		return
	}
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	m.frame = fitFrame(b, w*2, h*4)
	m.framed = true
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
}

// screenXYMicro maps a coordinate into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(c geom.Coordinate, w, h int) (int, int, bool) {
	if !m.framed || m.frame.IsDegenerate() {
		return 0, 0, false
	}
	nx := (c.Lon - m.frame.SouthWest.Lon) / m.frame.Width()
	ny := (c.Lat - m.frame.SouthWest.Lat) / m.frame.Height()
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// cellToLonLat converts a map cell back to lon/lat using frame, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.framed || m.frame.IsDegenerate() {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.frame.SouthWest.Lon + nx*m.frame.Width()
	lat := m.frame.SouthWest.Lat + ny*m.frame.Height()
	return lon, lat, true
}

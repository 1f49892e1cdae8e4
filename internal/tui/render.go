package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geolayers/internal/geom"
)

func (m Model) renderMap(w, h int) string {
	if !m.framed {
		msg := "no visible features"
		if m.reg.Len() == 0 {
			msg = "no layers loaded  (Tab: files, p: paste KML)"
		}
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render(msg))
	}
	// High-resolution braille buffer for crisp lines/edges
	br := newBrailleBuf(w, h)
	vis := m.reg.Visible()

	if m.showPolys {
		for _, p := range vis.Polygons {
			m.drawPolygon(br, p, w, h)
		}
	}

	if m.showLines {
		for _, ls := range vis.Polylines {
			color := ls.Color.Hex()
			var prev *[2]int
			for _, c := range ls.Path {
				mx, my, ok := m.screenXYMicro(c, w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my, color)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	if m.showPoints {
		for _, mk := range vis.Markers {
			mx, my, ok := m.screenXYMicro(mk.Position, w, h)
			if !ok {
				continue
			}
			br.setGlyph(mx/2, my/4, '●', hueColor(mk.Hue))
		}
	}

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		br.setGlyph(m.hoverMicX/2, m.hoverMicY/4, '◯', "#FFA500")
	}
	return strings.Join(br.toLines(), "\n")
}

// drawPolygon fills the ring with its blended fill color using the
// even-odd rule per micro scanline, then strokes the edges.
func (m Model) drawPolygon(br *brailleBuf, p geom.Polygon, w, h int) {
	var ring [][2]int
	for _, c := range p.Ring {
		mx, my, ok := m.screenXYMicro(c, w, h)
		if !ok {
			continue
		}
		ring = append(ring, [2]int{mx, my})
	}
	if len(ring) < 3 {
		// too few vertices to enclose anything; still show them
		for i := 0; i+1 < len(ring); i++ {
			br.drawLineMicro(ring[i][0], ring[i][1], ring[i+1][0], ring[i+1][1], p.StrokeColor.Hex())
		}
		return
	}
	fill := fillColor(p.FillColor)
	hMic := h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xstart, xend := xs[i], xs[i+1]
			for xMic := max(0, xstart); xMic <= min(xend, w*2-1); xMic++ {
				br.setPixel(xMic, yMic, fill)
			}
		}
	}
	stroke := p.StrokeColor.Hex()
	for i := 0; i < len(ring); i++ {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		br.drawLineMicro(a[0], a[1], b[0], b[1], stroke)
	}
}

// nearestVertex finds the visible vertex or marker closest to micro point
// (hx, hy).
func (m Model) nearestVertex(hx, hy, w, h int) (int, int, bool) {
	best := 1<<31 - 1
	bx, by := hx, hy
	found := false
	consider := func(c geom.Coordinate) {
		mx, my, ok := m.screenXYMicro(c, w, h)
		if !ok {
			return
		}
		dx := mx - hx
		dy := my - hy
		if d := dx*dx + dy*dy; d < best {
			best = d
			bx, by = mx, my
			found = true
		}
	}
	for _, c := range m.reg.Visible().Coordinates() {
		consider(c)
	}
	return bx, by, found
}

// inspectNearest finds the visible marker closest to the viewport center.
func (m Model) inspectNearest() (geom.Marker, bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w, h*2
	bestD := 1<<31 - 1
	var best geom.Marker
	for _, mk := range m.reg.VisibleMarkers() {
		sx, sy, ok := m.screenXYMicro(mk.Position, w, h)
		if !ok {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = mk
		}
	}
	return best, bestD != 1<<31-1
}

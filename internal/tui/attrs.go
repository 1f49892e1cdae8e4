package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"geolayers/internal/geom"
	"geolayers/internal/layer"
)

// refreshAttrs fills the feature table from the selected layer.
func (m *Model) refreshAttrs() {
	l, _, ok := m.selectedLayer()
	if !ok {
		m.showAttrs = false
		m.status = "no layer selected"
		return
	}
	rows := featureRows(l)
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no features in " + l.Name
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 24},
		{Title: "kind", Width: 8},
		{Title: "label", Width: 16},
		{Title: "vertices", Width: 8},
		{Title: "first (lat, lon)", Width: 24},
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func featureRows(l layer.Layer) []table.Row {
	var rows []table.Row
	add := func(id, kind, label string, coords []geom.Coordinate) {
		first := ""
		if len(coords) > 0 {
			first = fmt.Sprintf("%.5f, %.5f", coords[0].Lat, coords[0].Lon)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", len(rows)+1), id, kind, label, fmt.Sprintf("%d", len(coords)), first,
		})
	}
	fs := l.Features
	for _, p := range fs.Polygons {
		add(p.ID, "polygon", "", p.Ring)
	}
	for _, p := range fs.Polylines {
		add(p.ID, "line", "", p.Path)
	}
	for _, mk := range fs.Markers {
		add(mk.ID, "marker", mk.Label, []geom.Coordinate{mk.Position})
	}
	return rows
}

package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"geolayers/internal/layer"
)

type layerItem struct {
	l layer.Layer
}

func (i layerItem) Title() string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(i.l.Color.Hex())).Render("■")
	check := "[ ]"
	if i.l.Visible {
		check = "[x]"
	}
	return fmt.Sprintf("%s %s %s", check, swatch, i.l.Name)
}

func (i layerItem) Description() string {
	if i.l.Err != nil {
		return "error: " + i.l.Err.Error()
	}
	fs := i.l.Features
	return fmt.Sprintf("poly=%d ls=%d pts=%d", len(fs.Polygons), len(fs.Polylines), len(fs.Markers))
}

func (i layerItem) FilterValue() string { return i.l.Name }

// refreshLayers rebuilds the layer list from the registry, keeping the cursor.
func (m *Model) refreshLayers() {
	idx := m.layers.Index()
	layers := m.reg.Layers()
	items := make([]list.Item, len(layers))
	for i, l := range layers {
		items[i] = layerItem{l: l}
	}
	m.layers.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.layers.Select(idx)
	}
}

func (m *Model) selectedLayer() (layer.Layer, int, bool) {
	idx := m.layers.Index()
	it, ok := m.layers.SelectedItem().(layerItem)
	if !ok {
		return layer.Layer{}, -1, false
	}
	return it.l, idx, true
}

func (m *Model) toggleSelected() {
	l, idx, ok := m.selectedLayer()
	if !ok {
		m.status = "no layer selected"
		return
	}
	on, err := m.reg.ToggleVisibility(idx)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.refreshLayers()
	m.status = fmt.Sprintf("%s: %v", l.Name, on)
	m.fitVisible()
}

func (m *Model) removeSelected() {
	l, idx, ok := m.selectedLayer()
	if !ok {
		return
	}
	if err := m.reg.Remove(idx); err != nil {
		m.status = err.Error()
		return
	}
	m.refreshLayers()
	m.status = "removed " + l.Name
	m.fitVisible()
}

func (m *Model) clearLayers() {
	m.reg.Clear()
	m.refreshLayers()
	m.framed = false
	m.status = "all layers cleared"
}

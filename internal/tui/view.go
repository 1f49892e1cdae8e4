package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" geolayers ─ KML/KMZ layer viewer ")
	header = lipgloss.NewStyle().Width(lo.contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if l := m.activeList(); l != nil {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(lo.contentHeight).Render(l.View())
	}

	mapW, mapH := max(8, lo.mapWidth), max(4, lo.mapHeight)
	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.mapHeight-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapWidth, lo.mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(mapW)
		m.ta.SetHeight(min(mapH, 12))
		mapView = lipgloss.NewStyle().Width(lo.mapWidth).Height(lo.mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(lo.mapWidth).Height(lo.mapHeight).Render(m.renderMap(mapW, mapH))
	}

	// Inspect popup (center-left overlay, not in map column)
	popup := ""
	if m.inspectPopup != "" && !m.showAttrs {
		maxPopupW := max(20, min(48, lo.contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(lo.contentWidth, lo.contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	body := mapView
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lat=%.5f lon=%.5f  ", m.hoverLat, m.hoverLon))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(lo.contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab panes",
		"Space toggle",
		"f fit",
		"Enter open",
		"x/X remove",
		"p paste",
		"a features",
		"i inspect",
		"1/2/3 kinds",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

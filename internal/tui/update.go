package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	sidebarWidth = 32
	headerHeight = 1
	footerHeight = 2
)

type layout struct {
	contentWidth  int
	contentHeight int
	mapOriginX    int
	mapOriginY    int
	mapWidth      int
	mapHeight     int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentHeight = max(4, m.height-headerHeight-footerHeight)
	lo.contentWidth = max(10, m.width)
	side := 0
	if m.sidebar != paneHidden {
		side = sidebarWidth + 1
	}
	lo.mapOriginX = side
	lo.mapOriginY = headerHeight
	lo.mapWidth = max(10, lo.contentWidth-side)
	lo.mapHeight = lo.contentHeight
	return lo
}

func (m *Model) activeList() *list.Model {
	switch m.sidebar {
	case paneLayers:
		return &m.layers
	case paneFiles:
		return &m.files
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.layers.SetSize(sidebarWidth, lo.contentHeight)
		m.files.SetSize(sidebarWidth, lo.contentHeight)
		first := m.mapW == 0
		m.mapW, m.mapH = max(8, lo.mapWidth), max(4, lo.mapHeight)
		if first {
			m.fitVisible()
		}
	case ingestedMsg:
		m.handleIngested(msg)
		return m, nil
	case tea.KeyMsg:
		// If the file list is filtering, send keys to it and ignore global commands
		if m.sidebar == paneFiles && m.files.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.files, cmd = m.files.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "ctrl+s":
				text := strings.TrimSpace(m.ta.Value())
				if text == "" {
					m.status = "paste: empty"
					return m, nil
				}
				m.loadPasted(text)
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showAttrs {
			switch msg.String() {
			case "esc", "a":
				m.showAttrs = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPoints = !m.showPoints
			m.status = fmt.Sprintf("markers: %v", m.showPoints)
		case "2":
			m.showLines = !m.showLines
			m.status = fmt.Sprintf("lines: %v", m.showLines)
		case "3":
			m.showPolys = !m.showPolys
			m.status = fmt.Sprintf("polys: %v", m.showPolys)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.sidebar = (m.sidebar + 1) % 3
			if m.sidebar == paneFiles {
				m.refreshDir()
			}
			lo := m.layout()
			m.mapW, m.mapH = max(8, lo.mapWidth), max(4, lo.mapHeight)
		case " ":
			if m.sidebar == paneLayers {
				m.toggleSelected()
			}
		case "x":
			if m.sidebar == paneLayers {
				m.removeSelected()
			}
		case "X":
			m.clearLayers()
		case "f":
			m.status = "fit to visible layers"
			m.fitVisible()
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = true
			m.refreshAttrs()
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			if mk, ok := m.inspectNearest(); ok {
				m.inspectPopup = strings.Join([]string{
					fmt.Sprintf("label: %s", mk.Label),
					fmt.Sprintf("layer: %s", mk.Layer),
					fmt.Sprintf("id: %s", mk.ID),
					fmt.Sprintf("lat=%.6f lon=%.6f", mk.Position.Lat, mk.Position.Lon),
					fmt.Sprintf("hue: %.0f°", mk.Hue),
				}, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no marker nearby"
				m.status = m.inspectPopup
			}
		case "enter":
			if m.sidebar == paneFiles {
				if it, ok := m.files.SelectedItem().(fileItem); ok {
					m.status = "loading " + it.title
					return m, m.ingestCmd(ingestRequest(it.path))
				}
			}
		case "up":
			// the sidebar list owns up/down while it is open
			if m.sidebar != paneHidden {
				return m.forwardToList(msg)
			}
			m.offsetY--
		case "down":
			if m.sidebar != paneHidden {
				return m.forwardToList(msg)
			}
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		default:
			return m.forwardToList(msg)
		}
		return m, nil
	case tea.MouseMsg:
		lo := m.layout()
		cx, cy := msg.X, msg.Y
		if cx >= lo.mapOriginX && cx < lo.mapOriginX+lo.mapWidth && cy >= lo.mapOriginY && cy < lo.mapOriginY+lo.mapHeight {
			m.hovering = true
			m.hoverCellX = cx - lo.mapOriginX
			m.hoverCellY = cy - lo.mapOriginY
			if lon, lat, ok := m.cellToLonLat(m.hoverCellX, m.hoverCellY, lo.mapWidth, lo.mapHeight); ok {
				m.hoverHasGeo = true
				m.hoverLon = lon
				m.hoverLat = lat
			} else {
				m.hoverHasGeo = false
			}
			bx, by, found := m.nearestVertex(m.hoverCellX*2, m.hoverCellY*4, lo.mapWidth, lo.mapHeight)
			m.hovering = found
			m.hoverMicX, m.hoverMicY = bx, by
		} else {
			m.hovering = false
			m.hoverHasGeo = false
		}
	}
	return m.forwardToList(msg)
}

// forwardToList passes msg to the open sidebar list, if any.
func (m Model) forwardToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if l := m.activeList(); l != nil {
		var cmd tea.Cmd
		*l, cmd = l.Update(msg)
		return m, cmd
	}
	return m, nil
}

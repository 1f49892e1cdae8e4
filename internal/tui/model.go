package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geolayers/internal/geom"
	"geolayers/internal/ingest"
	"geolayers/internal/layer"
)

type pane int

const (
	paneHidden pane = iota
	paneLayers
	paneFiles
)

type Model struct {
	width  int
	height int

	sidebar     pane
	helpVisible bool

	// camera: frame is the fitted rectangle, zoom/offset apply on top
	frame   geom.Bounds
	framed  bool
	zoom    float64
	offsetX int
	offsetY int

	status string

	reg      *layer.Registry
	ingester *ingest.Ingester
	initial  []ingest.Request
	pasted   int

	// Layer list
	layers list.Model

	// File explorer
	cwd   string
	files list.Model

	// last rendered map size (for inspect and fit)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// feature kind filters, applied on top of layer visibility
	showPoints bool
	showLines  bool
	showPolys  bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// feature table
	showAttrs bool
	tbl       table.Model
}

// New builds a viewer over reg. Requests in initial are ingested
// concurrently once the program starts.
func New(reg *layer.Registry, ing *ingest.Ingester, initial []ingest.Request) Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "geolayers ready",
		reg:         reg,
		ingester:    ing,
		initial:     initial,
		showPoints:  true,
		showLines:   true,
		showPolys:   true,
		sidebar:     paneLayers,
	}
	m.cwd, _ = os.Getwd()

	ld := list.NewDefaultDelegate()
	m.layers = list.New(nil, ld, 0, 0)
	m.layers.Title = "Layers"
	m.layers.SetShowHelp(false)
	m.layers.SetShowStatusBar(false)
	m.layers.SetFilteringEnabled(false)

	fd := list.NewDefaultDelegate()
	fd.ShowDescription = false
	m.files = list.New(nil, fd, 0, 0)
	m.files.Title = "Files"
	m.files.SetShowHelp(false)
	m.files.SetShowStatusBar(false)
	m.files.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste KML here. Press Ctrl+S to load it as a layer; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)

	m.refreshDir()
	m.refreshLayers()
	if len(initial) > 0 {
		m.status = "loading layers…"
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.initial))
	for _, req := range m.initial {
		cmds = append(cmds, m.ingestCmd(req))
	}
	return tea.Batch(cmds...)
}

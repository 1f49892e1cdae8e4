package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geolayers/internal/ingest"
	"geolayers/internal/layer"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// ingestedMsg reports one finished ingestion. layer is nil when the
// source could not be read.
type ingestedMsg struct {
	path  string
	layer *layer.Layer
	err   error
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".kml" || ext == ".kmz" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.files.SetItems(items)
	if len(items) == 0 && m.sidebar == paneFiles {
		m.status = "no .kml or .kmz files in current directory"
	}
}

// ingestCmd runs one ingestion off the update loop.
func (m Model) ingestCmd(req ingest.Request) tea.Cmd {
	ing := m.ingester
	return func() tea.Msg {
		l, err := ing.IngestFile(context.Background(), req)
		return ingestedMsg{path: req.Path, layer: l, err: err}
	}
}

func (m *Model) handleIngested(msg ingestedMsg) {
	m.refreshLayers()
	if msg.err != nil {
		m.status = fmt.Sprintf("load error: %s: %v", filepath.Base(msg.path), msg.err)
		return
	}
	fs := msg.layer.Features
	m.status = fmt.Sprintf("loaded: %s  counts: poly=%d ls=%d pts=%d",
		msg.layer.Name, len(fs.Polygons), len(fs.Polylines), len(fs.Markers))
	m.fitVisible()
}

// loadPasted ingests KML text typed or pasted into the textarea.
func (m *Model) loadPasted(text string) {
	m.pasted++
	name := fmt.Sprintf("pasted-%d", m.pasted)
	l, err := m.ingester.Ingest(ingest.Source{Name: name, Path: name + ".kml", Data: []byte(text), Visible: true})
	m.refreshLayers()
	if err != nil {
		m.status = "kml error: " + err.Error()
		return
	}
	fs := l.Features
	m.status = fmt.Sprintf("rendered %s  counts: poly=%d ls=%d pts=%d", name, len(fs.Polygons), len(fs.Polylines), len(fs.Markers))
	m.fitVisible()
}

// ingestRequest is a user-picked file: shown as soon as it loads.
func ingestRequest(path string) ingest.Request {
	return ingest.Request{Path: path, Visible: true}
}

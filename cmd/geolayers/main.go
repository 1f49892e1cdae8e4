package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"geolayers/internal/cache"
	"geolayers/internal/config"
	"geolayers/internal/geom"
	"geolayers/internal/ingest"
	"geolayers/internal/layer"
	"geolayers/internal/logger"
	"geolayers/internal/tui"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string `short:"c" long:"config"      env:"GEOLAYERS_CONFIG"    description:"Path to configuration file" default:"geolayers.yaml"`
	CacheDir    string `long:"cache-dir"             env:"GEOLAYERS_CACHE_DIR" description:"Keep copies of opened files here"`
	Concurrency int    `short:"j" long:"concurrency" env:"GEOLAYERS_JOBS"      description:"Files ingested in parallel"`
	Summary     bool   `short:"s" long:"summary"     description:"Ingest, print layer counts and framing bounds, then exit"`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"KML or KMZ files to open"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup(opts.Summary)

	explicit := parser.FindOptionByLongName("config").IsSet()
	cfg, err := config.Load(opts.ConfigFile, explicit)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.ConfigFile).Msg("Failed to load configuration")
	}
	if opts.CacheDir != "" {
		cfg.CacheDir = opts.CacheDir
	}
	if opts.Concurrency > 0 {
		cfg.Concurrency = opts.Concurrency
	}

	reqs := make([]ingest.Request, 0, len(cfg.Layers)+len(opts.Args.Files))
	for _, l := range cfg.Layers {
		reqs = append(reqs, ingest.Request{Path: l.Path, Name: l.Name, Visible: l.Visible})
	}
	for _, f := range opts.Args.Files {
		reqs = append(reqs, ingest.Request{Path: f, Visible: true})
	}

	reg := layer.NewRegistry()
	ing := ingest.New(reg, cache.New(cfg.CacheDir), cfg.Concurrency)

	log.Info().
		Int("sources", len(reqs)).
		Str("cache_dir", cfg.CacheDir).
		Int("concurrency", cfg.Concurrency).
		Msg("Starting")

	if opts.Summary {
		if failed := summarize(ing, reqs); failed > 0 {
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(tui.New(reg, ing, reqs), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("Viewer failed")
	}
}

// summarize ingests everything up front and prints one line per layer
// plus the framing bounds of the visible ones. It returns the number of
// sources that failed.
func summarize(ing *ingest.Ingester, reqs []ingest.Request) int {
	failed := 0
	for _, res := range ing.IngestAll(context.Background(), reqs) {
		if res.Err != nil {
			failed++
			log.Error().Err(res.Err).Str("source", res.Path).Msg("Source failed")
		}
	}
	for _, l := range ing.Registry.Layers() {
		fs := l.Features
		fmt.Printf("%-24s %s visible=%-5v polygons=%d polylines=%d markers=%d\n",
			l.Name, l.Color.Hex(), l.Visible, len(fs.Polygons), len(fs.Polylines), len(fs.Markers))
	}
	b, err := ing.Registry.Frame()
	switch {
	case errors.Is(err, geom.ErrNoVisibleFeatures):
		fmt.Println("bounds: no visible features")
	case b.IsDegenerate():
		c := b.Center()
		fmt.Printf("bounds: point %.6f,%.6f (zoom %d)\n", c.Lat, c.Lon, geom.FallbackZoom)
	default:
		fmt.Printf("bounds: sw=%.6f,%.6f ne=%.6f,%.6f padding=%d\n",
			b.SouthWest.Lat, b.SouthWest.Lon, b.NorthEast.Lat, b.NorthEast.Lon, geom.FramePadding)
	}
	return failed
}

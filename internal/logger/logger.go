// Package logger configures the global zerolog logger from CLI options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger holds logging options; embed it in a go-flags options struct.
type Logger struct {
	Level      string `long:"log-level"       env:"LOG_LEVEL"       description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	File       string `long:"log-file"        env:"LOG_FILE"        description:"Log file; the viewer never logs to the terminal" default:"geolayers.log"`
	MaxSize    int    `long:"log-max-size"    env:"LOG_MAX_SIZE"    description:"Rotate the log file after this many megabytes" default:"10"`
	MaxBackups int    `long:"log-max-backups" env:"LOG_MAX_BACKUPS" description:"Rotated log files to keep" default:"3"`
}

// Setup installs the global logger. With console set, output goes to
// stderr in human-readable form; otherwise it goes to the rotating log
// file, or nowhere if no file is configured.
func (l Logger) Setup(console bool) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(l.writer(console)).With().Timestamp().Logger()
}

func (l Logger) writer(console bool) io.Writer {
	switch {
	case console:
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	case l.File != "":
		return &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    l.MaxSize,
			MaxBackups: l.MaxBackups,
		}
	default:
		return io.Discard
	}
}

// Package cache keeps private copies of ingested source files.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store writes source bytes under Dir. A zero Store (empty Dir) is disabled.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Enabled reports whether s will write anything.
func (s *Store) Enabled() bool { return s != nil && s.Dir != "" }

// Put copies data into the cache and returns the path of the copy. The
// original base name is kept after a random prefix so repeated imports of
// the same file never collide.
func (s *Store) Put(name string, data []byte) (string, error) {
	if !s.Enabled() {
		return "", nil
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("cache dir: %w", err)
	}
	p := filepath.Join(s.Dir, uuid.NewString()+"-"+filepath.Base(name))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("cache write: %w", err)
	}
	log.Debug().Str("source", name).Str("copy", p).Int("bytes", len(data)).Msg("Cached source")
	return p, nil
}

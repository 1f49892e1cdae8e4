package kml

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

const docEntry = "doc.kml"

// IsPlainKML reports whether filename names an uncompressed KML document.
func IsPlainKML(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".kml")
}

// ReadDocument returns the KML text held in data. Files named *.kml are
// returned as-is; anything else is opened as a KMZ archive, preferring
// doc.kml over the first other .kml entry.
func ReadDocument(data []byte, filename string) (string, error) {
	if IsPlainKML(filename) {
		return string(data), nil
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	f := selectEntry(zr.File)
	if f == nil {
		return "", ErrMissingKMLEntry
	}
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrCorruptArchive, f.Name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrCorruptArchive, f.Name, err)
	}
	return string(b), nil
}

func selectEntry(files []*zip.File) *zip.File {
	var first *zip.File
	for _, f := range files {
		if f.Name == docEntry {
			return f
		}
		if first == nil && strings.HasSuffix(strings.ToLower(f.Name), ".kml") {
			first = f
		}
	}
	return first
}

package kml

import "errors"

var (
	ErrCorruptArchive  = errors.New("corrupt archive")
	ErrMissingKMLEntry = errors.New("no .kml entry in archive")
	ErrMalformedXML    = errors.New("malformed xml")
)

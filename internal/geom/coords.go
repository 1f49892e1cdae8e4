package geom

import (
	"math"
	"strconv"
	"strings"
)

// ParseCoordinates parses the body of a KML <coordinates> element.
// Tuples are "lon,lat[,alt]" separated by whitespace; altitude is dropped
// and the result is (lat, lon). Malformed tuples are skipped.
func ParseCoordinates(text string) []Coordinate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var out []Coordinate
	// KML allows tuples to wrap across lines, so any whitespace separates.
	for _, tok := range strings.Fields(text) {
		if c, ok := ParseTuple(tok); ok {
			out = append(out, c)
		}
	}
	return out
}

// ParseTuple parses one "lon,lat[,alt]" token. Only finite decimal values
// are accepted.
func ParseTuple(tok string) (Coordinate, bool) {
	parts := strings.Split(tok, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Coordinate{}, false
	}
	lon, ok1 := parseDecimal(parts[0])
	lat, ok2 := parseDecimal(parts[1])
	if !ok1 || !ok2 {
		return Coordinate{}, false
	}
	return Coordinate{Lat: lat, Lon: lon}, true
}

// parseDecimal rejects what ParseFloat allows beyond plain decimals:
// NaN, infinities and hex floats.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

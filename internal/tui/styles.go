package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"geolayers/internal/geom"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	mapBg     = lipgloss.Color("#0B0F14")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

func toColorful(c geom.Color) colorful.Color {
	r, g, b, _ := c.RGBA()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// fillColor flattens a translucent fill onto the map background, since
// terminal cells have no alpha.
func fillColor(c geom.Color) string {
	bg, err := colorful.Hex(string(mapBg))
	if err != nil {
		return c.Hex()
	}
	return bg.BlendRgb(toColorful(c), c.Alpha()).Hex()
}

// hueColor renders a marker hue in degrees as a saturated color.
func hueColor(hue float64) string {
	return colorful.Hsv(hue, 0.9, 1).Hex()
}

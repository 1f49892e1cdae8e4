package layer

import "geolayers/internal/geom"

const (
	Red     geom.Color = 0xFFFF0000
	Blue    geom.Color = 0xFF0000FF
	Green   geom.Color = 0xFF00FF00
	Yellow  geom.Color = 0xFFFFFF00
	Cyan    geom.Color = 0xFF00FFFF
	Magenta geom.Color = 0xFFFF00FF
	Orange  geom.Color = 0xFFFFA500
	Purple  geom.Color = 0xFF800080
	Brown   geom.Color = 0xFFA52A2A
	Pink    geom.Color = 0xFFFFC0CB

	// FallbackColor is handed out once every palette color is taken.
	FallbackColor geom.Color = 0xFF808080
)

// Palette is the allocation order for layer colors.
var Palette = []geom.Color{Red, Blue, Green, Yellow, Cyan, Magenta, Orange, Purple, Brown, Pink}

// Marker hues in degrees.
const (
	HueRed     = 0.0
	HueOrange  = 30.0
	HueYellow  = 60.0
	HueGreen   = 120.0
	HueCyan    = 180.0
	HueBlue    = 240.0
	HueMagenta = 300.0
)

// Only part of the palette has a dedicated marker hue. Purple, brown and
// pink fall through to HueRed along with anything else.
var markerHues = map[geom.Color]float64{
	Red:     HueRed,
	Orange:  HueOrange,
	Yellow:  HueYellow,
	Green:   HueGreen,
	Cyan:    HueCyan,
	Blue:    HueBlue,
	Magenta: HueMagenta,
}

// UnusedColor returns the first palette color no layer holds, or
// FallbackColor when the palette is exhausted.
func UnusedColor(layers []*Layer) geom.Color {
	for _, c := range Palette {
		used := false
		for _, l := range layers {
			if l.Color == c {
				used = true
				break
			}
		}
		if !used {
			return c
		}
	}
	return FallbackColor
}

// MarkerHue maps a layer color to the hue used to tint its markers.
func MarkerHue(c geom.Color) float64 {
	if h, ok := markerHues[c.WithAlpha(0xFF)]; ok {
		return h
	}
	return HueRed
}

package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"geolayers/internal/geom"
)

func TestUnusedColor(t *testing.T) {
	t.Parallel()

	t.Run("empty registry gets first palette color", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Palette[0], UnusedColor(nil))
	})

	t.Run("skips taken colors", func(t *testing.T) {
		t.Parallel()
		layers := []*Layer{{Color: Red}, {Color: Green}}
		assert.Equal(t, Blue, UnusedColor(layers))
	})

	t.Run("reuses a color once its layer is gone", func(t *testing.T) {
		t.Parallel()
		layers := []*Layer{{Color: Blue}}
		assert.Equal(t, Red, UnusedColor(layers))
	})

	t.Run("exhausted palette falls back", func(t *testing.T) {
		t.Parallel()
		var layers []*Layer
		for _, c := range Palette {
			layers = append(layers, &Layer{Color: c})
		}
		assert.Equal(t, FallbackColor, UnusedColor(layers))
	})
}

func TestMarkerHue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		color geom.Color
		want  float64
	}{
		{Red, HueRed},
		{Blue, HueBlue},
		{Green, HueGreen},
		{Yellow, HueYellow},
		{Cyan, HueCyan},
		{Magenta, HueMagenta},
		{Orange, HueOrange},
		// palette colors without a hue of their own
		{Purple, HueRed},
		{Brown, HueRed},
		{Pink, HueRed},
		{FallbackColor, HueRed},
		{Blue.WithAlpha(0x40), HueBlue},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MarkerHue(tc.color), tc.color.Hex())
	}
}

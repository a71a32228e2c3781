package viz

import (
	"github.com/lucasb-eyer/go-colorful"
)

var black = colorful.Color{}

// parseHex falls back to white for anything that is not a #rrggbb colour.
func parseHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// dimHex blends a hex colour towards black; f=1 keeps it, f=0 is black.
func dimHex(hex string, f float64) string {
	return shade(parseHex(hex), f).Hex()
}

func shade(c colorful.Color, f float64) colorful.Color {
	return black.BlendRgb(c, f).Clamped()
}

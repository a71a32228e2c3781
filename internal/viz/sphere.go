package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orrery/internal/assets"
	"github.com/san-kum/orrery/internal/detail"
)

// light direction in view space, normalised at init
var light = normalize(-0.45, 0.55, 0.7)

func normalize(x, y, z float64) [3]float64 {
	l := math.Sqrt(x*x + y*y + z*z)
	return [3]float64{x / l, y / l, z / l}
}

// Surface returns the shaded colour of the unit sphere at view-space pixel
// (nx, ny), or false outside the disc. yaw and elev are in degrees.
func Surface(nx, ny, yaw, elev float64, tex *assets.Texture, flat colorful.Color) (colorful.Color, bool) {
	d := nx*nx + ny*ny
	if d > 1 {
		return colorful.Color{}, false
	}
	nz := math.Sqrt(1 - d)

	// undo the camera tilt to get body-fixed coordinates
	e := elev * math.Pi / 180
	ce, se := math.Cos(e), math.Sin(e)
	by := ny*ce + nz*se
	bz := -ny*se + nz*ce
	bx := nx

	base := flat
	if tex != nil {
		lon := math.Atan2(bx, bz) + yaw*math.Pi/180
		lat := math.Asin(math.Max(-1, math.Min(1, by)))
		base = tex.Sample(lon/(2*math.Pi), 0.5-lat/math.Pi)
	}

	lambert := nx*light[0] + ny*light[1] + nz*light[2]
	return shade(base, 0.25+0.75*math.Max(0, lambert)), true
}

// RenderSphere draws the view's body as a w×h cell block. Each cell carries
// two vertical pixels via the upper half block.
func RenderSphere(v *detail.View, w, h int) string {
	flat := parseHex(v.Body.Color)
	ph := h * 2
	// half blocks make each pixel roughly square
	radius := math.Min(float64(w)/2, float64(ph)/2) - 0.5

	var b strings.Builder
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			nx := (float64(col) + 0.5 - float64(w)/2) / radius
			top, tOK := Surface(nx, -(float64(2*row)+0.5-float64(ph)/2)/radius, v.Yaw, detail.Elevation, v.Texture, flat)
			bot, bOK := Surface(nx, -(float64(2*row+1)+0.5-float64(ph)/2)/radius, v.Yaw, detail.Elevation, v.Texture, flat)
			switch {
			case tOK && bOK:
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top.Hex())).
					Background(lipgloss.Color(bot.Hex())).
					Render("▀"))
			case tOK:
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(top.Hex())).Render("▀"))
			case bOK:
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(bot.Hex())).Render("▄"))
			default:
				b.WriteByte(' ')
			}
		}
		if row < h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

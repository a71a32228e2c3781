package assets

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// TextureSize is the edge length every texture is resampled to.
const TextureSize = 50

// Texture is an equirectangular surface map. Row 0 is the north pole.
type Texture struct {
	W, H int
	pix  []colorful.Color
}

// Resample builds a w×h texture from img by nearest-neighbour lookup.
func Resample(img image.Image, w, h int) *Texture {
	b := img.Bounds()
	t := &Texture{W: w, H: h, pix: make([]colorful.Color, w*h)}
	for y := 0; y < h; y++ {
		sy := b.Min.Y + y*b.Dy()/h
		for x := 0; x < w; x++ {
			sx := b.Min.X + x*b.Dx()/w
			c, ok := colorful.MakeColor(img.At(sx, sy))
			if !ok {
				// fully transparent pixel
				c = colorful.Color{}
			}
			t.pix[y*w+x] = c
		}
	}
	return t
}

func (t *Texture) At(x, y int) colorful.Color {
	return t.pix[y*t.W+x]
}

// Sample looks up the texel at longitude fraction u (wrapping) and latitude
// fraction v (clamped, 0 at the north pole).
func (t *Texture) Sample(u, v float64) colorful.Color {
	u -= math.Floor(u)
	x := int(u * float64(t.W))
	if x >= t.W {
		x = t.W - 1
	}
	y := int(math.Max(0, math.Min(1, v)) * float64(t.H))
	if y >= t.H {
		y = t.H - 1
	}
	return t.At(x, y)
}

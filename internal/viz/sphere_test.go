package viz

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orrery/internal/assets"
	"github.com/san-kum/orrery/internal/detail"
	"github.com/san-kum/orrery/internal/solar"
)

func TestSurfaceOutsideDisc(t *testing.T) {
	if _, ok := Surface(0.9, 0.9, 0, 30, nil, colorful.Color{R: 1}); ok {
		t.Error("corner pixel reported inside the disc")
	}
	c, ok := Surface(0, 0, 0, 30, nil, colorful.Color{R: 1})
	if !ok || c.R <= 0 || c.G != 0 {
		t.Errorf("centre = %v, %v", c, ok)
	}
}

func TestSurfaceRotatesTexture(t *testing.T) {
	// two hemispheres: red for u < 0.5, blue otherwise
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})
	tex := assets.Resample(img, 2, 1)

	probe := func(yaw float64) colorful.Color {
		c, _ := Surface(0.3, 0, yaw, 0, tex, colorful.Color{})
		return c
	}
	a, b := probe(0), probe(180)
	if (a.R > a.B) == (b.R > b.B) {
		t.Errorf("half a turn did not change the visible face: %v %v", a, b)
	}
}

func TestRenderSphereShape(t *testing.T) {
	body, _ := solar.DefaultCatalog().Body("Earth")
	out := RenderSphere(&detail.View{Body: body}, 10, 5)
	if out == "" {
		t.Fatal("empty render")
	}
}

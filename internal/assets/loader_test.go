package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orrery/internal/solar"
)

func writePNG(t *testing.T, path string, w, h int, fill func(x, y int) color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill(x, y))
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestLoadResamples(t *testing.T) {
	dir := t.TempDir()
	// left half red, right half blue
	writePNG(t, filepath.Join(dir, "mars.png"), 200, 100, func(x, _ int) color.Color {
		if x < 100 {
			return color.RGBA{R: 255, A: 255}
		}
		return color.RGBA{B: 255, A: 255}
	})

	tex, err := NewLoader(dir, quiet()).Load("Mars")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tex.W != TextureSize || tex.H != TextureSize {
		t.Fatalf("size = %dx%d", tex.W, tex.H)
	}
	if r, _, b := tex.At(0, 0).RGB255(); r != 255 || b != 0 {
		t.Errorf("left texel = %v", tex.At(0, 0))
	}
	if r, _, b := tex.At(TextureSize-1, TextureSize-1).RGB255(); r != 0 || b != 255 {
		t.Errorf("right texel = %v", tex.At(TextureSize-1, TextureSize-1))
	}
}

func TestLoadLowerCaseName(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "earth.png"), 4, 4, func(_, _ int) color.Color {
		return color.RGBA{G: 255, A: 255}
	})

	l := NewLoader(dir, quiet())
	if got, want := l.Path("Earth"), filepath.Join(dir, "earth.png"); got != want {
		t.Errorf("Path() = %s, want %s", got, want)
	}
	tex, err := l.Load("Earth")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, g, _ := tex.At(0, 0).RGB255(); g != 255 {
		t.Errorf("texel = %v", tex.At(0, 0))
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "venus.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		dir  string
		body solar.BodyID
	}{
		{"missing file", dir, "Earth"},
		{"corrupt file", dir, "Venus"},
		{"missing dir", filepath.Join(dir, "nope"), "Mars"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(tt.dir, quiet()).Load(tt.body)
			if !errors.Is(err, ErrNoTexture) {
				t.Errorf("err = %v, want ErrNoTexture", err)
			}
		})
	}
}

func TestSampleWraps(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	tex := Resample(img, 2, 1)

	tests := []struct {
		u, v float64
		red  bool
	}{
		{0.1, 0.5, true},
		{0.6, 0.5, false},
		{1.1, 0.5, true},
		{-0.4, 2, false},
		{1.0, -1, true},
	}
	for _, tt := range tests {
		r, _, _ := tex.Sample(tt.u, tt.v).RGB255()
		if (r == 255) != tt.red {
			t.Errorf("Sample(%v, %v) = %v", tt.u, tt.v, tex.Sample(tt.u, tt.v))
		}
	}
}

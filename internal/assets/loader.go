package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/orrery/internal/solar"
)

var ErrNoTexture = errors.New("assets: texture unavailable")

// Loader reads body textures from <dir>/<body>.png, body lower-cased.
type Loader struct {
	dir string
	log *slog.Logger
}

func NewLoader(dir string, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{dir: dir, log: log}
}

func (l *Loader) Dir() string { return l.dir }

func (l *Loader) Path(id solar.BodyID) string {
	return filepath.Join(l.dir, strings.ToLower(string(id))+".png")
}

// Load decodes and resamples the texture for id. Every failure wraps
// ErrNoTexture so callers can fall back to a flat colour.
func (l *Loader) Load(id solar.BodyID) (*Texture, error) {
	path := l.Path(id)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTexture, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrNoTexture, path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoTexture, path)
	}
	l.log.Debug("texture loaded", "body", id, "path", path)
	return Resample(img, TextureSize, TextureSize), nil
}

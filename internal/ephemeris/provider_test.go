package ephemeris

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/orrery/internal/solar"
)

func mustLoad(t *testing.T) *Provider {
	t.Helper()
	p, err := Load("jpl-approx")
	if err != nil {
		t.Fatalf("load embedded dataset: %v", err)
	}
	return p
}

func TestLoadEmbedded(t *testing.T) {
	p := mustLoad(t)

	if p.Name() != "jpl-approx" {
		t.Errorf("unexpected name %q", p.Name())
	}
	if got := len(p.Bodies()); got != 8 {
		t.Errorf("expected 8 bodies, got %d", got)
	}
	for _, id := range solar.DefaultCatalog().Planets() {
		if !p.Has(id) {
			t.Errorf("dataset missing catalog body %s", id)
		}
	}
}

func TestEarthDistanceThrough2025(t *testing.T) {
	p := mustLoad(t)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for day := 0; day <= 365; day += 5 {
		pos, err := p.Position("Earth", start.AddDate(0, 0, day))
		if err != nil {
			t.Fatal(err)
		}
		if r := pos.Length(); r < 0.98 || r > 1.02 {
			t.Errorf("day %d: earth distance %.4f AU out of range", day, r)
		}
	}
}

func TestEarthLongitudeAtNewYear(t *testing.T) {
	p := mustLoad(t)
	pos, err := p.Position("Earth", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	lon := math.Atan2(pos.Y, pos.X) * 180 / math.Pi
	if lon < 98 || lon > 103 {
		t.Errorf("expected heliocentric longitude near 100.5 deg, got %.2f", lon)
	}
}

func TestOuterPlanetDistances(t *testing.T) {
	p := mustLoad(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		id       solar.BodyID
		min, max float64
	}{
		{"Mercury", 0.30, 0.47},
		{"Jupiter", 4.9, 5.5},
		{"Saturn", 9.0, 10.1},
		{"Neptune", 29.7, 30.4},
	}
	for _, tt := range tests {
		pos, err := p.Position(tt.id, now)
		if err != nil {
			t.Fatal(err)
		}
		if r := pos.Length(); r < tt.min || r > tt.max {
			t.Errorf("%s: distance %.3f outside [%.2f, %.2f]", tt.id, r, tt.min, tt.max)
		}
	}
}

func TestPositionUnknownBody(t *testing.T) {
	p := mustLoad(t)
	_, err := p.Position("Pluto", time.Now())
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
	if !errors.Is(err, solar.ErrUnknownBody) {
		t.Error("ErrUnknownBody should match the solar sentinel")
	}
}

func TestLoadUnavailable(t *testing.T) {
	dir := t.TempDir()
	badElements := filepath.Join(dir, "hyperbolic.yaml")
	os.WriteFile(badElements, []byte(`name: bad
bodies:
  - id: Comet
    elements: {a: 1, e: 1.2, i: 0, l: 0, peri: 0, node: 0}
    rates: {a: 0, e: 0, i: 0, l: 0, peri: 0, node: 0}
`), 0644)
	sunEntry := filepath.Join(dir, "sun.yaml")
	os.WriteFile(sunEntry, []byte(`name: sun
bodies:
  - id: Sun
    elements: {a: 1, e: 0, i: 0, l: 0, peri: 0, node: 0}
    rates: {a: 0, e: 0, i: 0, l: 0, peri: 0, node: 0}
`), 0644)
	garbage := filepath.Join(dir, "garbage.yaml")
	os.WriteFile(garbage, []byte("::: not yaml"), 0644)

	tests := []struct {
		name string
		id   string
	}{
		{"empty id", ""},
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"eccentricity out of range", badElements},
		{"sun in dataset", sunEntry},
		{"garbage", garbage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.id)
			if !errors.Is(err, ErrDataUnavailable) {
				t.Errorf("expected ErrDataUnavailable, got %v", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.yaml")
	data := `name: single
valid_from: "2000-01-01"
valid_to: "2001-01-01"
bodies:
  - id: Earth
    elements: {a: 1, e: 0, i: 0, l: 0, peri: 0, node: 0}
    rates: {a: 0, e: 0, i: 0, l: 36000, peri: 0, node: 0}
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !p.Covers(time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected window to cover mid-2000")
	}
	if p.Covers(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected window to exclude 2030")
	}
}

func TestEmbedded(t *testing.T) {
	names := Embedded()
	if len(names) == 0 || names[0] != "jpl-approx" {
		t.Errorf("unexpected embedded datasets %v", names)
	}
}

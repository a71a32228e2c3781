package ephemeris

import (
	"fmt"
	"time"

	"github.com/san-kum/orrery/internal/solar"
)

type bodyElements struct {
	elements Elements
	rates    Elements
}

// Provider answers position queries for the bodies of one dataset.
// It is immutable after Load and safe for concurrent use.
type Provider struct {
	name      string
	validFrom time.Time
	validTo   time.Time
	order     []solar.BodyID
	bodies    map[solar.BodyID]bodyElements
}

func (p *Provider) Name() string { return p.name }

// Bodies returns the dataset's ids in file order.
func (p *Provider) Bodies() []solar.BodyID {
	return append([]solar.BodyID(nil), p.order...)
}

func (p *Provider) Has(id solar.BodyID) bool {
	_, ok := p.bodies[id]
	return ok
}

// Position returns the heliocentric position of id at t in AU.
func (p *Provider) Position(id solar.BodyID, t time.Time) (solar.Vec3, error) {
	b, ok := p.bodies[id]
	if !ok {
		return solar.Vec3{}, fmt.Errorf("%w: %q not in dataset %s", ErrUnknownBody, id, p.name)
	}
	T := centuriesSinceJ2000(t)
	return heliocentric(b.elements.at(b.rates, T)), nil
}

// Covers reports whether t lies inside the dataset's stated validity window.
// Datasets without a window cover every time.
func (p *Provider) Covers(t time.Time) bool {
	if !p.validFrom.IsZero() && t.Before(p.validFrom) {
		return false
	}
	if !p.validTo.IsZero() && t.After(p.validTo) {
		return false
	}
	return true
}

func (p *Provider) Window() (time.Time, time.Time) { return p.validFrom, p.validTo }

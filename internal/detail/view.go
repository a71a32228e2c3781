package detail

import (
	"math"

	"github.com/san-kum/orrery/internal/assets"
	"github.com/san-kum/orrery/internal/solar"
)

const (
	// YawStep is the rotation per detail tick, in degrees.
	YawStep = 2.0
	// Elevation is the fixed camera tilt above the body's equator, in degrees.
	Elevation = 30.0
)

// View is one open inspector. Info rows and texture are captured at open
// time and never refreshed.
type View struct {
	ID      string
	Body    solar.Body
	Yaw     float64
	Rows    []solar.InfoRow
	Texture *assets.Texture
	Ticks   int
}

// Fallback reports whether the view renders the flat body colour.
func (v *View) Fallback() bool { return v.Texture == nil }

// Tick advances the rotation by YawStep, wrapping at 360.
func (v *View) Tick() float64 {
	v.Yaw = math.Mod(v.Yaw+YawStep, 360)
	v.Ticks++
	return v.Yaw
}

func (v *View) Title() string { return string(v.Body.ID) + " Details" }

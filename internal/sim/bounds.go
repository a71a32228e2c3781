package sim

import "github.com/san-kum/orrery/internal/solar"

const (
	boundMargin = 1.0
	emptyBound  = 2.0
)

// SceneBound returns the symmetric half-extent used for all three axes:
// the largest absolute coordinate of the plotted positions plus one AU, or 2
// when nothing is plotted. The Sun sits at the origin and never widens it.
// There is no smoothing; consecutive frames may jump.
func SceneBound(positions []solar.Vec3) float64 {
	if len(positions) == 0 {
		return emptyBound
	}
	m := 0.0
	for _, p := range positions {
		if a := p.MaxAbs(); a > m {
			m = a
		}
	}
	return m + boundMargin
}

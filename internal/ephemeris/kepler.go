package ephemeris

import (
	"math"
	"time"

	"github.com/san-kum/orrery/internal/solar"
)

const (
	j2000JD        = 2451545.0
	unixEpochJD    = 2440587.5
	daysPerCentury = 36525.0
	secondsPerDay  = 86400.0

	keplerTolerance = 1e-12
	keplerMaxIter   = 30
)

// Elements are J2000 osculating elements; angles in degrees, a in AU.
type Elements struct {
	A    float64 `yaml:"a" json:"a"`
	E    float64 `yaml:"e" json:"e"`
	I    float64 `yaml:"i" json:"i"`
	L    float64 `yaml:"l" json:"l"`
	Peri float64 `yaml:"peri" json:"peri"`
	Node float64 `yaml:"node" json:"node"`
}

// at returns the elements propagated by T Julian centuries.
func (el Elements) at(rates Elements, T float64) Elements {
	return Elements{
		A:    el.A + rates.A*T,
		E:    el.E + rates.E*T,
		I:    el.I + rates.I*T,
		L:    el.L + rates.L*T,
		Peri: el.Peri + rates.Peri*T,
		Node: el.Node + rates.Node*T,
	}
}

// JulianDate converts t to a Julian date (UTC scale; the TT offset is below
// the accuracy of the approximate elements).
func JulianDate(t time.Time) float64 {
	return unixEpochJD + float64(t.UTC().UnixNano())/1e9/secondsPerDay
}

func centuriesSinceJ2000(t time.Time) float64 {
	return (JulianDate(t) - j2000JD) / daysPerCentury
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// normalizeDegrees maps an angle to [-180, 180).
func normalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle+180.0, 360.0)
	if angle < 0 {
		angle += 360.0
	}
	return angle - 180.0
}

// solveKepler returns the eccentric anomaly E (radians) for M - E + e sin E = 0.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for i := 0; i < keplerMaxIter; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < keplerTolerance {
			break
		}
	}
	return E
}

// heliocentric computes the ecliptic J2000 position of a body with the given elements.
func heliocentric(el Elements) solar.Vec3 {
	w := degToRad(el.Peri - el.Node)
	M := degToRad(normalizeDegrees(el.L - el.Peri))
	node := degToRad(el.Node)
	inc := degToRad(el.I)
	e := el.E

	E := solveKepler(M, e)

	// orbital plane, x toward perihelion
	xp := el.A * (math.Cos(E) - e)
	yp := el.A * math.Sqrt(1-e*e) * math.Sin(E)

	cw, sw := math.Cos(w), math.Sin(w)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(inc), math.Sin(inc)

	return solar.Vec3{
		X: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		Y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		Z: (sw*si)*xp + (cw*si)*yp,
	}
}

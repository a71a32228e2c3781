package sim

import (
	"strings"

	"github.com/san-kum/orrery/internal/solar"
)

const (
	MinSpeed     = 0.1
	MaxSpeed     = 5.0
	DefaultSpeed = 1.0
	SpeedStep    = 0.1

	// MaxTrailLength is the default trail capacity per body.
	MaxTrailLength = 100
)

// Focus selects the plotted bodies: every body (the zero value) or exactly one.
type Focus struct {
	body solar.BodyID
}

var FocusAll = Focus{}

const allLabel = "ALL"

func FocusOn(id solar.BodyID) Focus { return Focus{body: id} }

// ParseFocus maps "ALL" (any case) to FocusAll and anything else to a body id.
func ParseFocus(s string) Focus {
	if s == "" || strings.EqualFold(s, allLabel) {
		return FocusAll
	}
	return FocusOn(solar.BodyID(s))
}

func (f Focus) All() bool { return f.body == "" }

func (f Focus) Body() (solar.BodyID, bool) { return f.body, f.body != "" }

func (f Focus) String() string {
	if f.All() {
		return allLabel
	}
	return string(f.body)
}

func (f Focus) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// State is the whole mutable simulation state.
type State struct {
	ElapsedDays float64
	Speed       float64
	Paused      bool
	Focus       Focus
}

func NewState(speed float64, focus Focus) *State {
	return &State{Speed: clampSpeed(speed), Focus: focus}
}

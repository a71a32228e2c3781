package sim

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Clock advances simulated time on the shared State.
type Clock struct {
	state *State
	start time.Time
}

func NewClock(state *State, start time.Time) *Clock {
	state.Speed = clampSpeed(state.Speed)
	return &Clock{state: state, start: start}
}

// Advance adds Speed days unless paused and reports whether time moved.
func (c *Clock) Advance() bool {
	if c.state.Paused {
		return false
	}
	c.state.ElapsedDays += c.state.Speed
	return true
}

// Now is the start epoch plus the elapsed (fractional) days. Whole days go
// through AddDate so long runs cannot overflow time.Duration.
func (c *Clock) Now() time.Time {
	whole, frac := math.Modf(c.state.ElapsedDays)
	return c.start.AddDate(0, 0, int(whole)).Add(time.Duration(frac * float64(day)))
}

func (c *Clock) Start() time.Time { return c.start }

func (c *Clock) Elapsed() float64 { return c.state.ElapsedDays }

// SetSpeed stores v clamped to [MinSpeed, MaxSpeed] and returns the stored value.
func (c *Clock) SetSpeed(v float64) float64 {
	c.state.Speed = clampSpeed(v)
	return c.state.Speed
}

func (c *Clock) Speed() float64 { return c.state.Speed }

// TogglePause flips the pause flag and returns the new value.
func (c *Clock) TogglePause() bool {
	c.state.Paused = !c.state.Paused
	return c.state.Paused
}

func (c *Clock) Paused() bool { return c.state.Paused }

func clampSpeed(v float64) float64 {
	if math.IsNaN(v) || v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}

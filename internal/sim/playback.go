package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/orrery/internal/solar"
)

// Playback is the control surface over the shared State.
type Playback struct {
	state   *State
	clock   *Clock
	options []Focus
	log     *slog.Logger
}

// NewPlayback takes the focusable bodies in selector order; ALL is prepended.
func NewPlayback(state *State, clock *Clock, bodies []solar.BodyID, log *slog.Logger) *Playback {
	if log == nil {
		log = slog.Default()
	}
	opts := make([]Focus, 0, len(bodies)+1)
	opts = append(opts, FocusAll)
	for _, id := range bodies {
		opts = append(opts, FocusOn(id))
	}
	return &Playback{state: state, clock: clock, options: opts, log: log}
}

// PauseToggle flips pause and returns the new value. Elapsed time is untouched.
func (p *Playback) PauseToggle() bool {
	paused := p.clock.TogglePause()
	p.log.Info("playback toggled", "paused", paused, "elapsed_days", p.state.ElapsedDays)
	return paused
}

// SetSpeed clamps v to [MinSpeed, MaxSpeed] even when the caller already did.
func (p *Playback) SetSpeed(v float64) float64 {
	s := p.clock.SetSpeed(v)
	p.log.Debug("speed set", "requested", v, "speed", s)
	return s
}

// StepSpeed nudges the speed by delta, snapped to the 0.1 selector grid.
func (p *Playback) StepSpeed(delta float64) float64 {
	return p.SetSpeed(math.Round((p.state.Speed+delta)*10) / 10)
}

// SetFocus switches the plotted set. Trails are never cleared; bodies that
// leave focus just stop receiving samples.
func (p *Playback) SetFocus(f Focus) error {
	if !p.valid(f) {
		return fmt.Errorf("focus %s: %w", f, solar.ErrUnknownBody)
	}
	p.state.Focus = f
	p.log.Info("focus changed", "focus", f.String())
	return nil
}

// CycleFocus moves step entries through {ALL} ∪ bodies, wrapping.
func (p *Playback) CycleFocus(step int) Focus {
	cur := 0
	for i, f := range p.options {
		if f == p.state.Focus {
			cur = i
			break
		}
	}
	n := len(p.options)
	next := p.options[((cur+step)%n+n)%n]
	p.state.Focus = next
	p.log.Info("focus changed", "focus", next.String())
	return next
}

func (p *Playback) FocusOptions() []Focus {
	return append([]Focus(nil), p.options...)
}

// State returns a copy of the current state.
func (p *Playback) State() State { return *p.state }

func (p *Playback) valid(f Focus) bool {
	for _, o := range p.options {
		if o == f {
			return true
		}
	}
	return false
}

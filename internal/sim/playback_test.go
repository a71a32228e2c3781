package sim

import (
	"errors"
	"testing"

	"github.com/san-kum/orrery/internal/solar"
)

func newTestPlayback() (*Playback, *State) {
	st := NewState(DefaultSpeed, FocusAll)
	c := NewClock(st, epoch)
	return NewPlayback(st, c, solar.DefaultCatalog().Planets(), quietLog), st
}

func TestPlaybackSetFocus(t *testing.T) {
	tests := []struct {
		name    string
		focus   Focus
		wantErr error
	}{
		{"all", FocusAll, nil},
		{"planet", FocusOn("Saturn"), nil},
		{"parsed all", ParseFocus("all"), nil},
		{"sun", FocusOn(solar.SunID), ErrUnknownBody},
		{"unknown", FocusOn("Pluto"), ErrUnknownBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, st := newTestPlayback()
			err := p.SetFocus(tt.focus)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SetFocus() err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && st.Focus != tt.focus {
				t.Errorf("focus = %v, want %v", st.Focus, tt.focus)
			}
			if tt.wantErr != nil && !st.Focus.All() {
				t.Errorf("failed SetFocus changed focus to %v", st.Focus)
			}
		})
	}
}

func TestPlaybackCycleFocus(t *testing.T) {
	p, _ := newTestPlayback()
	opts := p.FocusOptions()
	if len(opts) != 9 || !opts[0].All() {
		t.Fatalf("options = %v", opts)
	}

	if got := p.CycleFocus(1); got.String() != "Mercury" {
		t.Errorf("next = %s, want Mercury", got)
	}
	if got := p.CycleFocus(-2); got.String() != "Neptune" {
		t.Errorf("wrap back = %s, want Neptune", got)
	}
	if got := p.CycleFocus(1); !got.All() {
		t.Errorf("wrap forward = %s, want ALL", got)
	}
}

func TestPlaybackStepSpeed(t *testing.T) {
	tests := []struct {
		start, delta, want float64
	}{
		{1.0, 0.1, 1.1},
		{1.0, -0.1, 0.9},
		{0.1, -0.1, 0.1},
		{4.95, 0.1, 5.0},
	}

	for _, tt := range tests {
		p, _ := newTestPlayback()
		p.SetSpeed(tt.start)
		if got := p.StepSpeed(tt.delta); got != tt.want {
			t.Errorf("StepSpeed(%v) from %v = %v, want %v", tt.delta, tt.start, got, tt.want)
		}
	}
}

func TestPlaybackPauseToggle(t *testing.T) {
	p, st := newTestPlayback()
	st.ElapsedDays = 12
	if !p.PauseToggle() || !p.State().Paused {
		t.Fatal("expected paused")
	}
	if p.PauseToggle() {
		t.Fatal("expected resumed")
	}
	if st.ElapsedDays != 12 {
		t.Errorf("toggle moved elapsed days to %v", st.ElapsedDays)
	}
}

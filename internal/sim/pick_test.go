package sim

import (
	"testing"

	"github.com/san-kum/orrery/internal/solar"
)

type countingPickObserver struct{ resolved, dropped int }

func (c *countingPickObserver) OnPick(_ PickEvent, resolved bool) {
	if resolved {
		c.resolved++
	} else {
		c.dropped++
	}
}

func TestPickDispatcher(t *testing.T) {
	tests := []struct {
		name   string
		ev     PickEvent
		opened bool
	}{
		{"planet", PickHit("Mars"), true},
		{"sun", PickHit(solar.SunID), true},
		{"miss on trail", PickMiss(), false},
		{"hit flag without target", PickEvent{Hit: true}, false},
		{"unknown body", PickHit("Pluto"), false},
		{"target without hit", PickEvent{Target: "Mars"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &recordingOpener{}
			obs := &countingPickObserver{}
			d := NewPickDispatcher(solar.DefaultCatalog(), op, quietLog)
			d.AddObserver(obs)

			handle, ok := d.Dispatch(tt.ev)
			if ok != tt.opened {
				t.Fatalf("Dispatch() ok = %v, want %v", ok, tt.opened)
			}
			if tt.opened {
				if len(op.opened) != 1 || op.opened[0] != tt.ev.Target {
					t.Errorf("opened = %v", op.opened)
				}
				if handle == "" {
					t.Error("empty view handle")
				}
				if obs.resolved != 1 {
					t.Errorf("observer resolved = %d", obs.resolved)
				}
				return
			}
			if len(op.opened) != 0 || handle != "" {
				t.Errorf("miss changed opener state: %v %q", op.opened, handle)
			}
			if obs.dropped != 1 {
				t.Errorf("observer dropped = %d", obs.dropped)
			}
		})
	}
}

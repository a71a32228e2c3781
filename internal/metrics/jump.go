package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/sim"
)

// BoundJump tracks how often the scene bound moves by more than threshold
// AU between consecutive frames. The bound is recomputed without damping, so
// this is the visible camera jitter.
type BoundJump struct {
	threshold float64
	last      float64
	seen      bool
	jumps     int
	samples   int
}

func NewBoundJump(threshold float64) *BoundJump {
	return &BoundJump{threshold: threshold}
}

// Observe returns whether this frame counted as a jump.
func (b *BoundJump) Observe(f sim.Frame) bool {
	defer func() { b.last, b.seen = f.Bound, true }()
	if !b.seen {
		return false
	}
	b.samples++
	if math.Abs(f.Bound-b.last) > b.threshold {
		b.jumps++
		return true
	}
	return false
}

// Value is the fraction of steady frames, 1 when nothing was observed.
func (b *BoundJump) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.jumps)/float64(b.samples)
}

func (b *BoundJump) Jumps() int { return b.jumps }

func (b *BoundJump) Reset() {
	b.jumps = 0
	b.samples = 0
	b.seen = false
}

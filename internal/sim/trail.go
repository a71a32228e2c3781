package sim

import (
	"time"

	"github.com/san-kum/orrery/internal/solar"
)

// Sample is one sampled position of a body.
type Sample struct {
	Body solar.BodyID `json:"body"`
	Pos  solar.Vec3   `json:"pos"`
	Time time.Time    `json:"time"`
}

// TrailBuffer is a fixed-capacity FIFO of samples kept in insertion order.
type TrailBuffer struct {
	buf   []Sample
	start int
	n     int
}

func NewTrailBuffer(capacity int) *TrailBuffer {
	if capacity <= 0 {
		capacity = MaxTrailLength
	}
	return &TrailBuffer{buf: make([]Sample, capacity)}
}

// Push appends s, evicting the single oldest sample when full.
func (b *TrailBuffer) Push(s Sample) {
	capacity := len(b.buf)
	if b.n < capacity {
		b.buf[(b.start+b.n)%capacity] = s
		b.n++
		return
	}
	b.buf[b.start] = s
	b.start = (b.start + 1) % capacity
}

func (b *TrailBuffer) Len() int { return b.n }
func (b *TrailBuffer) Cap() int { return len(b.buf) }

// Snapshot returns the samples oldest first. The buffer is not modified.
func (b *TrailBuffer) Snapshot() []Sample {
	out := make([]Sample, b.n)
	for i := range out {
		out[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	return out
}

// Points returns the sampled positions oldest first.
func (b *TrailBuffer) Points() []solar.Vec3 {
	out := make([]solar.Vec3, b.n)
	for i := range out {
		out[i] = b.buf[(b.start+i)%len(b.buf)].Pos
	}
	return out
}

func (b *TrailBuffer) Last() (Sample, bool) {
	if b.n == 0 {
		return Sample{}, false
	}
	return b.buf[(b.start+b.n-1)%len(b.buf)], true
}

package sim

import (
	"testing"

	"github.com/san-kum/orrery/internal/solar"
)

func TestTrailBufferKeepsLastPushes(t *testing.T) {
	for _, m := range []int{0, 1, 50, 99, 100, 101, 250} {
		b := NewTrailBuffer(MaxTrailLength)
		for i := 0; i < m; i++ {
			b.Push(Sample{Body: testPlanet, Pos: solar.Vec3{X: float64(i)}})
		}

		want := min(m, MaxTrailLength)
		if b.Len() != want {
			t.Fatalf("m=%d: Len() = %d, want %d", m, b.Len(), want)
		}
		pts := b.Points()
		for i, p := range pts {
			if exp := float64(m - want + i); p.X != exp {
				t.Fatalf("m=%d: point %d = %v, want %v", m, i, p.X, exp)
			}
		}
	}
}

func TestTrailBufferSnapshotIsCopy(t *testing.T) {
	b := NewTrailBuffer(3)
	b.Push(Sample{Pos: solar.Vec3{X: 1}})
	b.Push(Sample{Pos: solar.Vec3{X: 2}})

	snap := b.Snapshot()
	snap[0].Pos.X = 99

	if b.Snapshot()[0].Pos.X != 1 {
		t.Error("Snapshot exposed internal storage")
	}
	last, ok := b.Last()
	if !ok || last.Pos.X != 2 {
		t.Errorf("Last() = %v, %v", last, ok)
	}
}

func TestTrailBufferDefaultCapacity(t *testing.T) {
	if got := NewTrailBuffer(0).Cap(); got != MaxTrailLength {
		t.Errorf("Cap() = %d, want %d", got, MaxTrailLength)
	}
	if _, ok := NewTrailBuffer(5).Last(); ok {
		t.Error("empty buffer reported a last sample")
	}
}

package sim

import (
	"time"

	"github.com/san-kum/orrery/internal/solar"
)

// Marker is a pickable point primitive. Pick is the typed target a backend
// reports back when the marker is hit.
type Marker struct {
	Pick  solar.BodyID `json:"pick"`
	Label string       `json:"label"`
	Pos   solar.Vec3   `json:"pos"`
	Color string       `json:"color"`
	Size  float64      `json:"size"`
}

func (m Marker) Pickable() bool { return m.Pick != "" }

// BodyFrame is one plotted body: its marker plus its trail polyline.
// Trails carry no pick target.
type BodyFrame struct {
	Marker
	Trail []solar.Vec3 `json:"trail"`
}

// Frame is the per-tick snapshot handed to a rendering backend.
type Frame struct {
	Time        time.Time   `json:"time"`
	ElapsedDays float64     `json:"elapsed_days"`
	Speed       float64     `json:"speed"`
	Paused      bool        `json:"paused"`
	Focus       Focus       `json:"focus"`
	Sun         Marker      `json:"sun"`
	Bodies      []BodyFrame `json:"bodies"`
	Bound       float64     `json:"bound"`
}

// Date is the YYYY-MM-DD readout for the frame's time.
func (f Frame) Date() string { return f.Time.UTC().Format("2006-01-02") }

// Markers returns every pickable marker, Sun first.
func (f Frame) Markers() []Marker {
	out := make([]Marker, 0, len(f.Bodies)+1)
	out = append(out, f.Sun)
	for _, b := range f.Bodies {
		out = append(out, b.Marker)
	}
	return out
}

// Plot is the input for one body: where it is now and its trail.
type Plot struct {
	ID    solar.BodyID
	Pos   solar.Vec3
	Trail []solar.Vec3
}

type FrameBuilder struct {
	catalog *solar.Catalog
}

func NewFrameBuilder(catalog *solar.Catalog) *FrameBuilder {
	return &FrameBuilder{catalog: catalog}
}

// Build assembles a frame. The bound is computed from the current positions
// in plots only, never from trail history.
func (b *FrameBuilder) Build(t time.Time, st State, plots []Plot) Frame {
	sun := b.catalog.Sun()
	f := Frame{
		Time:        t,
		ElapsedDays: st.ElapsedDays,
		Speed:       st.Speed,
		Paused:      st.Paused,
		Focus:       st.Focus,
		Sun:         b.marker(sun, solar.Vec3{}),
		Bodies:      make([]BodyFrame, 0, len(plots)),
	}
	positions := make([]solar.Vec3, 0, len(plots))
	for _, p := range plots {
		body, ok := b.catalog.Body(p.ID)
		if !ok {
			continue
		}
		f.Bodies = append(f.Bodies, BodyFrame{Marker: b.marker(body, p.Pos), Trail: p.Trail})
		positions = append(positions, p.Pos)
	}
	f.Bound = SceneBound(positions)
	return f
}

func (b *FrameBuilder) marker(body solar.Body, pos solar.Vec3) Marker {
	return Marker{
		Pick:  body.ID,
		Label: string(body.ID),
		Pos:   pos,
		Color: body.Color,
		Size:  body.Size,
	}
}

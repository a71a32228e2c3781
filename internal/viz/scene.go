package viz

import (
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
)

// Scene draws frames onto a canvas and remembers which cells belong to which
// marker so pointer events can be turned into picks.
type Scene struct {
	Canvas *Canvas
	Camera *Camera
	Theme  Theme
	hits   map[cellKey]hit
}

type cellKey struct{ col, row int }

type hit struct {
	id    solar.BodyID
	depth float64
}

func NewScene(w, h int, theme Theme) *Scene {
	return &Scene{
		Canvas: NewCanvas(w, h),
		Camera: NewCamera(),
		Theme:  theme,
		hits:   make(map[cellKey]hit),
	}
}

// Resize replaces the canvas when the cell size changes.
func (s *Scene) Resize(w, h int) {
	if w < 1 || h < 1 || (w == s.Canvas.Width && h == s.Canvas.Height) {
		return
	}
	s.Canvas = NewCanvas(w, h)
}

// markerRadius maps a catalog size (scatter area) to a dot radius.
func markerRadius(size float64) int {
	return max(1, int(math.Sqrt(size)/6))
}

// Draw renders f: bound box, trails, then markers nearest last. Only markers
// register pick cells.
func (s *Scene) Draw(f sim.Frame) {
	c := s.Canvas
	c.Clear()
	clear(s.hits)
	sw, sh := c.SubWidth(), c.SubHeight()

	Render3D(c, CreateCubeWireframe(2, string(s.Theme.Muted)), s.Camera)

	for _, b := range f.Bodies {
		s.drawTrail(b.Trail, f.Bound, dimHex(b.Color, 0.55))
	}

	type placed struct {
		m     sim.Marker
		x, y  int
		depth float64
	}
	var ms []placed
	for _, m := range f.Markers() {
		x, y, d, ok := s.Camera.ProjectScene(m.Pos, f.Bound, sw, sh)
		if ok {
			ms = append(ms, placed{m, x, y, d})
		}
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].depth < ms[j].depth })
	for _, p := range ms {
		r := markerRadius(p.m.Size)
		c.FillDisc(p.x, p.y, r, p.m.Color)
		s.register(p.m.Pick, p.x, p.y, r, p.depth)
		if p.m.Pick != solar.SunID {
			c.PutText(p.x/2+r/2+1, p.y/4, shortLabel(p.m.Label), p.m.Color)
		}
	}
}

func (s *Scene) drawTrail(pts []solar.Vec3, bound float64, color string) {
	if len(pts) == 0 {
		return
	}
	sw, sh := s.Canvas.SubWidth(), s.Canvas.SubHeight()
	px, py, _, pv := s.Camera.ProjectScene(pts[0], bound, sw, sh)
	for _, p := range pts[1:] {
		x, y, _, v := s.Camera.ProjectScene(p, bound, sw, sh)
		if pv && v {
			s.Canvas.DrawLine(px, py, x, y, color)
		}
		px, py, pv = x, y, v
	}
}

// register claims the cells covered by a marker, plus one cell of slack.
// A nearer marker keeps a contested cell.
func (s *Scene) register(id solar.BodyID, x, y, r int, depth float64) {
	c0, r0 := (x-r)/2-1, (y-r)/4-1
	c1, r1 := (x+r)/2+1, (y+r)/4+1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if col < 0 || row < 0 || col >= s.Canvas.Width || row >= s.Canvas.Height {
				continue
			}
			k := cellKey{col, row}
			if prev, ok := s.hits[k]; ok && prev.depth > depth {
				continue
			}
			s.hits[k] = hit{id, depth}
		}
	}
}

// Pick resolves a canvas cell. Cells covered only by trails or empty space
// produce a miss.
func (s *Scene) Pick(col, row int) sim.PickEvent {
	if h, ok := s.hits[cellKey{col, row}]; ok {
		return sim.PickHit(h.id)
	}
	return sim.PickMiss()
}

func shortLabel(s string) string {
	r := []rune(s)
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}

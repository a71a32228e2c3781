package viz

import (
	"math"
	"sort"

	"github.com/san-kum/orrery/internal/solar"
)

const (
	defaultTilt = -1.05 // about 60 degrees, ecliptic seen from above and to the side
	rotateStep  = 0.1
)

// Camera projects scene coordinates normalised to [-1, 1] onto the canvas.
type Camera struct {
	Distance   float64
	Near       float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 6, Near: 0.1, RotX: defaultTilt, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) Reset() {
	c.RotX, c.RotY, c.Zoom = defaultTilt, 0, 1.0
}

// RotatePoint rotates p about the x axis then the y axis.
func (c *Camera) RotatePoint(p solar.Vec3) solar.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project maps a normalised point to dot coordinates on a sw×sh surface.
// Returns x, y, depth (larger is nearer) and visibility.
func (c *Camera) Project(p solar.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Distance
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	pScale := float64(min(sw, sh)) / 3.5
	sx := int(math.Round(rot.X*scale*pScale)) + sw/2
	sy := int(math.Round(-rot.Y*scale*pScale)) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// ProjectScene normalises an AU position by the scene bound before projecting.
func (c *Camera) ProjectScene(p solar.Vec3, bound float64, sw, sh int) (int, int, float64, bool) {
	if bound <= 0 {
		bound = 1
	}
	return c.Project(p.Scale(1/bound), sw, sh)
}

type Edge struct {
	Start, End solar.Vec3
	Color      string
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                         { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e solar.Vec3, c string) { w.Edges = append(w.Edges, Edge{s, e, c}) }
func (w *Wireframe) AddPoint(p solar.Vec3, c string)   { w.Edges = append(w.Edges, Edge{p, p, c}) }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	color          string
}

// Render3D draws the wireframe far to near.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.SubWidth(), c.SubHeight()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2, e.color)
	}
}

// CreateCubeWireframe is the [-s/2, s/2]³ box that frames the scene bound.
func CreateCubeWireframe(size float64, color string) *Wireframe {
	w, s := NewWireframe(), size/2
	v := []solar.Vec3{{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s}}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	for _, e := range ei {
		w.AddEdge(v[e[0]], v[e[1]], color)
	}
	return w
}

func CreateAxesWireframe(l float64, color string) *Wireframe {
	w, o := NewWireframe(), solar.Vec3{}
	w.AddEdge(o, solar.Vec3{X: l}, color)
	w.AddEdge(o, solar.Vec3{Y: l}, color)
	w.AddEdge(o, solar.Vec3{Z: l}, color)
	return w
}

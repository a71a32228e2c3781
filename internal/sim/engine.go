package sim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/orrery/internal/solar"
)

var ErrUnknownBody = solar.ErrUnknownBody

// Ephemeris yields heliocentric positions in AU.
type Ephemeris interface {
	Position(id solar.BodyID, t time.Time) (solar.Vec3, error)
}

// Observer sees every frame the engine builds. advanced is false for ticks
// that did not move the clock.
type Observer interface {
	OnTick(f Frame, advanced bool)
}

type Options struct {
	Start       time.Time
	Speed       float64
	Focus       Focus
	TrailLength int
	Logger      *slog.Logger
}

// Engine is the main tick handler: clock, ephemeris, trails, bound, frame.
type Engine struct {
	catalog   *solar.Catalog
	eph       Ephemeris
	state     *State
	clock     *Clock
	playback  *Playback
	builder   *FrameBuilder
	trails    map[solar.BodyID]*TrailBuffer
	frame     Frame
	observers []Observer
	log       *slog.Logger
}

// NewEngine samples every planet once at the start epoch so a source that
// cannot serve the catalog fails here rather than mid-run.
func NewEngine(catalog *solar.Catalog, eph Ephemeris, opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.TrailLength <= 0 {
		opts.TrailLength = MaxTrailLength
	}

	state := NewState(opts.Speed, FocusAll)
	clock := NewClock(state, opts.Start)
	planets := catalog.Planets()

	e := &Engine{
		catalog:  catalog,
		eph:      eph,
		state:    state,
		clock:    clock,
		playback: NewPlayback(state, clock, planets, opts.Logger),
		builder:  NewFrameBuilder(catalog),
		trails:   make(map[solar.BodyID]*TrailBuffer, catalog.Len()),
		log:      opts.Logger,
	}
	for _, id := range catalog.IDs() {
		e.trails[id] = NewTrailBuffer(opts.TrailLength)
	}
	if err := e.playback.SetFocus(opts.Focus); err != nil {
		return nil, err
	}
	for _, id := range planets {
		if _, err := eph.Position(id, opts.Start); err != nil {
			return nil, fmt.Errorf("probe %s: %w", id, err)
		}
	}

	f, err := e.build(false)
	if err != nil {
		return nil, err
	}
	e.frame = f
	return e, nil
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Tick advances the clock and rebuilds the frame. While paused the frame is
// still rebuilt but no trail receives a sample.
func (e *Engine) Tick() (Frame, error) {
	advanced := e.clock.Advance()
	f, err := e.build(advanced)
	if err != nil {
		return Frame{}, err
	}
	e.frame = f
	for _, o := range e.observers {
		o.OnTick(f, advanced)
	}
	return f, nil
}

// Frame returns the most recently built frame.
func (e *Engine) Frame() Frame { return e.frame }

func (e *Engine) Playback() *Playback { return e.playback }

func (e *Engine) Clock() *Clock { return e.clock }

func (e *Engine) Catalog() *solar.Catalog { return e.catalog }

// Trail returns an ordered copy of a body's trail.
func (e *Engine) Trail(id solar.BodyID) []Sample {
	tb, ok := e.trails[id]
	if !ok {
		return nil
	}
	return tb.Snapshot()
}

func (e *Engine) build(push bool) (Frame, error) {
	t := e.clock.Now()
	plotted := e.plotted()
	plots := make([]Plot, 0, len(plotted))
	for _, id := range plotted {
		pos, err := e.eph.Position(id, t)
		if err != nil {
			return Frame{}, fmt.Errorf("sample at %s: %w", t.Format(time.DateOnly), err)
		}
		trail := e.trails[id]
		if push {
			trail.Push(Sample{Body: id, Pos: pos, Time: t})
		}
		plots = append(plots, Plot{ID: id, Pos: pos, Trail: trail.Points()})
	}
	return e.builder.Build(t, *e.state, plots), nil
}

func (e *Engine) plotted() []solar.BodyID {
	if id, ok := e.state.Focus.Body(); ok {
		return []solar.BodyID{id}
	}
	return e.catalog.Planets()
}

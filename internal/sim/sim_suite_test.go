package sim_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
)

var (
	epoch     = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	errNoData = errors.New("no data")
	quietLog  = slog.New(slog.NewTextHandler(io.Discard, nil))
	earth     = solar.BodyID("Earth")
)

// stubEphemeris puts planet i at radius i+1 on the x axis, drifting along y.
type stubEphemeris struct {
	radius map[solar.BodyID]float64
	fail   map[solar.BodyID]bool
}

func newStubEphemeris(c *solar.Catalog) *stubEphemeris {
	s := &stubEphemeris{radius: map[solar.BodyID]float64{}, fail: map[solar.BodyID]bool{}}
	for i, id := range c.Planets() {
		s.radius[id] = float64(i + 1)
	}
	return s
}

func (s *stubEphemeris) Position(id solar.BodyID, t time.Time) (solar.Vec3, error) {
	if s.fail[id] {
		return solar.Vec3{}, errNoData
	}
	return solar.Vec3{X: s.radius[id], Y: t.Sub(epoch).Hours() / 24 * 0.001}, nil
}

type recordingOpener struct{ opened []solar.BodyID }

func (o *recordingOpener) Open(id solar.BodyID) string {
	o.opened = append(o.opened, id)
	return string(id)
}

func TestSimSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sim Suite")
}

var _ = Describe("Engine", func() {
	var (
		engine *sim.Engine
		eph    *stubEphemeris
	)

	tickN := func(n int) {
		for i := 0; i < n; i++ {
			_, err := engine.Tick()
			Expect(err).NotTo(HaveOccurred())
		}
	}

	BeforeEach(func() {
		c := solar.DefaultCatalog()
		eph = newStubEphemeris(c)
		var err error
		engine, err = sim.NewEngine(c, eph, sim.Options{Start: epoch, Speed: 2, Logger: quietLog})
		Expect(err).NotTo(HaveOccurred())
	})

	It("accumulates, holds while paused and resumes from the held value", func() {
		tickN(5)
		Expect(engine.Clock().Elapsed()).To(BeNumerically("~", 10, 1e-9))

		engine.Playback().PauseToggle()
		tickN(3)
		Expect(engine.Clock().Elapsed()).To(BeNumerically("~", 10, 1e-9))

		engine.Playback().PauseToggle()
		tickN(2)
		Expect(engine.Clock().Elapsed()).To(BeNumerically("~", 14, 1e-9))
	})

	It("starts with empty trails and an initial frame", func() {
		Expect(engine.Trail(earth)).To(BeEmpty())
		f := engine.Frame()
		Expect(f.Bodies).To(HaveLen(8))
		Expect(f.ElapsedDays).To(BeZero())
		Expect(f.Bound).To(Equal(9.0))
	})

	Context("while paused", func() {
		It("rebuilds the frame without pushing to any trail", func() {
			tickN(2)
			engine.Playback().PauseToggle()

			f, err := engine.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Paused).To(BeTrue())
			Expect(f.Bodies).To(HaveLen(8))
			for _, id := range engine.Catalog().Planets() {
				Expect(engine.Trail(id)).To(HaveLen(2), string(id))
			}
		})
	})

	Context("when focus changes", func() {
		It("keeps deselected trails intact and resumes them on ALL", func() {
			tickN(4)
			before := engine.Trail("Mars")
			Expect(before).To(HaveLen(4))

			Expect(engine.Playback().SetFocus(sim.FocusOn(earth))).To(Succeed())
			tickN(3)

			Expect(engine.Trail("Mars")).To(Equal(before))
			Expect(engine.Trail(earth)).To(HaveLen(7))
			f := engine.Frame()
			Expect(f.Bodies).To(HaveLen(1))
			Expect(f.Bodies[0].Pick).To(Equal(earth))
			Expect(f.Bound).To(Equal(4.0))

			Expect(engine.Playback().SetFocus(sim.FocusAll)).To(Succeed())
			tickN(1)
			Expect(engine.Trail("Mars")).To(HaveLen(5))
			Expect(engine.Trail("Mars")[:4]).To(Equal(before))
		})

		It("rejects the Sun and unknown bodies", func() {
			Expect(engine.Playback().SetFocus(sim.FocusOn(solar.SunID))).To(MatchError(solar.ErrUnknownBody))
			Expect(engine.Playback().SetFocus(sim.FocusOn("Pluto"))).To(MatchError(solar.ErrUnknownBody))
		})
	})

	It("caps trails at the configured length", func() {
		tickN(sim.MaxTrailLength + 20)
		trail := engine.Trail(earth)
		Expect(trail).To(HaveLen(sim.MaxTrailLength))
		Expect(trail[0].Time).To(BeTemporally("<", trail[len(trail)-1].Time))
	})

	It("fails the tick when the ephemeris cannot serve a body", func() {
		eph.fail["Jupiter"] = true
		_, err := engine.Tick()
		Expect(err).To(MatchError(errNoData))
	})

	It("notifies observers of every tick", func() {
		obs := &tickRecorder{}
		engine.AddObserver(obs)
		tickN(2)
		engine.Playback().PauseToggle()
		tickN(1)
		Expect(obs.advanced).To(Equal([]bool{true, true, false}))
	})
})

var _ = Describe("NewEngine", func() {
	It("fails fast when a planet cannot be sampled", func() {
		c := solar.DefaultCatalog()
		eph := newStubEphemeris(c)
		eph.fail["Neptune"] = true
		_, err := sim.NewEngine(c, eph, sim.Options{Start: epoch, Logger: quietLog})
		Expect(err).To(MatchError(errNoData))
	})

	It("rejects an unknown starting focus", func() {
		c := solar.DefaultCatalog()
		_, err := sim.NewEngine(c, newStubEphemeris(c), sim.Options{Start: epoch, Focus: sim.FocusOn("Vulcan"), Logger: quietLog})
		Expect(err).To(MatchError(solar.ErrUnknownBody))
	})
})

var _ = Describe("PickDispatcher", func() {
	It("leaves the opener untouched for a trail-only region", func() {
		op := &recordingOpener{}
		d := sim.NewPickDispatcher(solar.DefaultCatalog(), op, quietLog)
		_, ok := d.Dispatch(sim.PickMiss())
		Expect(ok).To(BeFalse())
		Expect(op.opened).To(BeEmpty())
	})
})

type tickRecorder struct{ advanced []bool }

func (r *tickRecorder) OnTick(_ sim.Frame, advanced bool) { r.advanced = append(r.advanced, advanced) }

package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
)

// DefaultJumpThreshold is the bound change, in AU, counted as a jump.
const DefaultJumpThreshold = 0.25

// Collector exports viewer activity. It observes engine ticks, picks and
// inspector opens. It registers on its own registry so tests and multiple
// instances never collide.
type Collector struct {
	registry      *prometheus.Registry
	ticks         *prometheus.CounterVec
	picks         *prometheus.CounterVec
	detailsOpened *prometheus.CounterVec
	bound         prometheus.Gauge
	elapsed       prometheus.Gauge
	boundJumps    prometheus.Counter
	boundSteady   prometheus.Gauge
	jump          *BoundJump
	focus         sim.Focus
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_ticks_total",
				Help: "Main loop ticks, by whether the clock advanced",
			},
			[]string{"advanced"},
		),
		picks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_picks_total",
				Help: "Pick events, by whether they resolved to a body",
			},
			[]string{"resolved"},
		),
		detailsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_detail_views_opened_total",
				Help: "Inspector views opened, by body and texture fallback",
			},
			[]string{"body", "fallback"},
		),
		bound: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_scene_bound_au",
			Help: "Current half-extent of the scene",
		}),
		elapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_elapsed_days",
			Help: "Simulated days since the start epoch",
		}),
		boundJumps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_scene_bound_jumps_total",
			Help: "Frames whose bound moved by more than the jump threshold",
		}),
		boundSteady: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_scene_bound_steady_ratio",
			Help: "Fraction of frames whose bound stayed within the jump threshold",
		}),
		jump: NewBoundJump(DefaultJumpThreshold),
	}

	c.registry.MustRegister(c.ticks, c.picks, c.detailsOpened, c.bound, c.elapsed, c.boundJumps, c.boundSteady)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) OnTick(f sim.Frame, advanced bool) {
	c.ticks.WithLabelValues(strconv.FormatBool(advanced)).Inc()
	c.bound.Set(f.Bound)
	c.elapsed.Set(f.ElapsedDays)
	// a focus change moves the bound on purpose; start a new run
	if f.Focus != c.focus {
		c.jump.Reset()
		c.focus = f.Focus
	}
	if c.jump.Observe(f) {
		c.boundJumps.Inc()
	}
	c.boundSteady.Set(c.jump.Value())
}


func (c *Collector) OnPick(_ sim.PickEvent, resolved bool) {
	c.picks.WithLabelValues(strconv.FormatBool(resolved)).Inc()
}

func (c *Collector) OnOpen(id solar.BodyID, fallback bool) {
	c.detailsOpened.WithLabelValues(string(id), strconv.FormatBool(fallback)).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	log.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

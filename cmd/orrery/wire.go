package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/assets"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/detail"
	"github.com/san-kum/orrery/internal/ephemeris"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
)

// loadConfig starts from defaults (or the preset), layers the config file over
// them, re-applies the preset on top of the file, then applies explicitly set
// flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (have %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
		if preset != "" {
			config.Presets[preset](cfg)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Dataset = dataset
	}
	if flags.Changed("catalog") {
		cfg.Catalog = catalogFile
	}
	if flags.Changed("assets") {
		cfg.AssetsDir = assetsDir
	}
	if flags.Changed("start") {
		cfg.StartDate = startDate
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("focus") {
		cfg.Focus = focus
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// wiring holds everything one run needs.
type wiring struct {
	catalog  *solar.Catalog
	provider *ephemeris.Provider
	engine   *sim.Engine
	details  *detail.Controller
	picks    *sim.PickDispatcher
	log      *slog.Logger
	closer   io.Closer
}

func (w *wiring) Close() error { return w.closer.Close() }

// advance runs n ticks and returns the last frame.
func (w *wiring) advance(n int) (sim.Frame, error) {
	f := w.engine.Frame()
	for i := 0; i < n; i++ {
		var err error
		if f, err = w.engine.Tick(); err != nil {
			return sim.Frame{}, err
		}
	}
	return f, nil
}

// build loads the catalog and ephemeris and assembles the core. Any failure
// here is fatal. The interactive viewer logs to the configured file since it
// owns the terminal; headless commands log to stderr.
func build(ctx context.Context, cfg *config.Config, interactive bool) (*wiring, error) {
	var (
		log    *slog.Logger
		closer io.Closer = io.NopCloser(nil)
		err    error
	)
	if interactive {
		log, closer, err = logging.Open(cfg.LogFile, cfg.LogLevel)
	} else {
		log, err = logging.New(os.Stderr, cfg.LogLevel)
	}
	if err != nil {
		return nil, err
	}
	ctx = logging.NewContext(ctx, log)

	catalog := solar.DefaultCatalog()
	if cfg.Catalog != "" {
		if catalog, err = solar.LoadCatalog(cfg.Catalog); err != nil {
			closer.Close()
			return nil, err
		}
	}

	provider, err := ephemeris.Load(cfg.Dataset)
	if err != nil {
		closer.Close()
		return nil, err
	}
	start, err := cfg.Start()
	if err != nil {
		closer.Close()
		return nil, err
	}
	if !provider.Covers(start) {
		from, to := provider.Window()
		log.Warn("start date outside dataset window", "start", start, "valid_from", from, "valid_to", to)
	}

	engine, err := sim.NewEngine(catalog, provider, sim.Options{
		Start:       start,
		Speed:       cfg.Speed,
		Focus:       sim.ParseFocus(cfg.Focus),
		TrailLength: cfg.TrailLength,
		Logger:      log,
	})
	if err != nil {
		closer.Close()
		return nil, err
	}
	details := detail.NewController(catalog, assets.NewLoader(cfg.AssetsDir, log), log)
	picks := sim.NewPickDispatcher(catalog, details, log)

	if cfg.MetricsAddr != "" {
		collector := metrics.NewCollector()
		engine.AddObserver(collector)
		picks.AddObserver(collector)
		details.AddObserver(collector)
		go func() {
			if err := collector.Serve(ctx, cfg.MetricsAddr, logging.FromContext(ctx)); err != nil {
				log.Error("metrics server stopped", "err", err)
			}
		}()
	}

	log.Info("orrery ready",
		"dataset", provider.Name(),
		"start", cfg.StartDate,
		"speed", cfg.Speed,
		"focus", cfg.Focus,
		"bodies", len(catalog.Planets()))
	return &wiring{
		catalog:  catalog,
		provider: provider,
		engine:   engine,
		details:  details,
		picks:    picks,
		log:      log,
		closer:   closer,
	}, nil
}

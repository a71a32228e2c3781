package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/ephemeris"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viz"
)

var (
	configFile  string
	preset      string
	dataset     string
	catalogFile string
	assetsDir   string
	startDate   string
	speed       float64
	focus       string
	theme       string
	logFile     string
	logLevel    string
	metricsAddr string
	// headless commands
	ticks     int
	outFile   string
	projected bool
	svgSize   int
	days      int
)

// main registers commands and flags and runs the viewer when no subcommand
// is given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "terminal solar system viewer",
		SilenceUsage: true,
		RunE:         runViewer,
	}

	registerGlobalFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the interactive viewer",
		RunE:  runViewer,
	}

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list bodies and their positions at the start date",
		RunE:  listBodies,
	}

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "run headless and print the last frame as JSON",
		RunE:  printFrame,
	}
	frameCmd.Flags().IntVar(&ticks, "ticks", 0, "ticks to run before printing")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and write the last frame as SVG",
		RunE:  writeSnapshot,
	}
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 0, "ticks to run before rendering")
	snapshotCmd.Flags().StringVar(&outFile, "out", "orrery.svg", "output file, - for stdout")
	snapshotCmd.Flags().BoolVar(&projected, "projected", false, "use the terminal camera instead of a top-down view")
	snapshotCmd.Flags().IntVar(&svgSize, "size", 600, "image size in pixels (top-down)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [body]",
		Short: "show a body's info and heliocentric distance",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectBody,
	}
	inspectCmd.Flags().IntVar(&days, "days", 365, "days of distance to plot")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	datasetsCmd := &cobra.Command{
		Use:   "datasets",
		Short: "list embedded ephemeris datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range ephemeris.Embedded() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, bodiesCmd, frameCmd, snapshotCmd, inspectCmd, presetsCmd, datasetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// registerGlobalFlags adds the flags every command shares. loadConfig only
// applies the ones the user actually set.
func registerGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&dataset, "dataset", config.DefaultDataset, "embedded dataset id or dataset file path")
	pf.StringVar(&catalogFile, "catalog", "", "body catalog file (default: built in)")
	pf.StringVar(&assetsDir, "assets", config.DefaultAssetsDir, "texture directory")
	pf.StringVar(&startDate, "start", config.DefaultStartDate, "start date (YYYY-MM-DD)")
	pf.Float64Var(&speed, "speed", config.DefaultSpeed, "days per tick")
	pf.StringVar(&focus, "focus", config.DefaultFocus, "ALL or a body id")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "colour theme")
	pf.StringVar(&logFile, "log-file", config.DefaultLogFile, "log file (empty discards)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	pf.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	w, err := build(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer w.Close()

	app := viz.NewApp(w.engine, w.picks, w.details, viz.Options{
		TickInterval:   cfg.TickInterval(),
		DetailInterval: cfg.DetailInterval(),
		Theme:          cfg.Theme,
		Logger:         w.log,
	})
	return viz.Run(ctx, app)
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, err := build(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer w.Close()

	f := w.engine.Frame()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tCOLOR\tSIZE\tX (AU)\tY (AU)\tZ (AU)\tR (AU)")
	for i, m := range f.Markers() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.0f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			i+1, m.Pick, m.Color, m.Size, m.Pos.X, m.Pos.Y, m.Pos.Z, m.Pos.Length())
	}
	tw.Flush()
	fmt.Printf("\ndate %s, dataset %s, bound %.2f AU\n", f.Date(), w.provider.Name(), f.Bound)
	return nil
}

func printFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, err := build(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer w.Close()

	f, err := w.advance(ticks)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

func writeSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, err := build(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer w.Close()

	f, err := w.advance(ticks)
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)
	svg := export.FrameToSVG(f, svgSize)
	if projected {
		svg = export.ProjectedSVG(f, 100, 40, 3)
	}
	if err := export.WriteFile(outFile, os.Stdout, svg); err != nil {
		return err
	}
	if outFile != "-" {
		fmt.Printf("wrote %s (%s, %d ticks)\n", outFile, f.Date(), ticks)
	}
	return nil
}

func inspectBody(cmd *cobra.Command, args []string) error {
	if days < 0 {
		return fmt.Errorf("--days must be non-negative, got %d", days)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, err := build(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer w.Close()

	id := solar.BodyID(args[0])
	body, ok := w.catalog.Body(id)
	if !ok {
		return fmt.Errorf("inspect %s: %w", id, solar.ErrUnknownBody)
	}

	fmt.Printf("%s (%s)\n\n", body.ID, body.Color)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range body.Info {
		fmt.Fprintf(tw, "%s\t%s\n", r.Key, r.Value)
	}
	tw.Flush()

	if id == solar.SunID {
		return nil
	}
	start := w.engine.Clock().Start()
	dist := make([]float64, 0, days)
	for d := 0; d < days; d++ {
		p, err := w.provider.Position(id, start.AddDate(0, 0, d))
		if err != nil {
			return err
		}
		dist = append(dist, p.Length())
	}
	if len(dist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(dist,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("distance from Sun (AU), %d days from %s", days, start.Format(time.DateOnly)))))
	}
	return nil
}

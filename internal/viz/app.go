package viz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/reflow/wordwrap"

	"github.com/san-kum/orrery/internal/detail"
	"github.com/san-kum/orrery/internal/sim"
)

const (
	defaultCanvasW = 60
	defaultCanvasH = 22
	statsWidth     = 40
	boundHistory   = 100
	sphereW        = 24
	sphereH        = 12

	// canvas origin on screen: header plus its rule, then the canvas padding
	canvasOffsetX = 2
	canvasOffsetY = 3
)

type tickMsg time.Time

// detailTickMsg drives one inspector. Each open view has its own chain.
type detailTickMsg struct{ id string }

type Options struct {
	TickInterval   time.Duration
	DetailInterval time.Duration
	Theme          string
	Logger         *slog.Logger
}

// App is the bubbletea model for the interactive viewer.
type App struct {
	engine  *sim.Engine
	picks   *sim.PickDispatcher
	details *detail.Controller
	scene   *Scene
	styles  styles
	help    help.Model
	opts    Options
	log     *slog.Logger

	width, height int
	bounds        []float64
	showHelp      bool
	err           error
}

func NewApp(engine *sim.Engine, picks *sim.PickDispatcher, details *detail.Controller, opts Options) App {
	if opts.TickInterval <= 0 {
		opts.TickInterval = 50 * time.Millisecond
	}
	if opts.DetailInterval <= 0 {
		opts.DetailInterval = 50 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	SetTheme(opts.Theme)

	a := App{
		engine:  engine,
		picks:   picks,
		details: details,
		scene:   NewScene(defaultCanvasW, defaultCanvasH, CurrentTheme),
		styles:  newStyles(CurrentTheme),
		help:    help.New(),
		opts:    opts,
		log:     opts.Logger,
		bounds:  make([]float64, 0, boundHistory),
	}
	a.scene.Draw(engine.Frame())
	return a
}

// Err is the error that stopped the program, if any.
func (a App) Err() error { return a.err }

func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.opts.TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a App) detailTick(id string) tea.Cmd {
	return tea.Tick(a.opts.DetailInterval, func(time.Time) tea.Msg { return detailTickMsg{id: id} })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.scene.Resize(max(20, msg.Width-statsWidth-8), max(8, msg.Height-canvasOffsetY-4))
		a.scene.Draw(a.engine.Frame())

	case tickMsg:
		f, err := a.engine.Tick()
		if err != nil {
			a.log.Error("tick failed", "err", err)
			a.err = err
			return a, tea.Quit
		}
		a.bounds = append(a.bounds, f.Bound)
		if len(a.bounds) > boundHistory {
			a.bounds = a.bounds[1:]
		}
		a.scene.Draw(f)
		return a, a.tick()

	case detailTickMsg:
		if _, ok := a.details.Tick(msg.id); !ok {
			return a, nil
		}
		return a, a.detailTick(msg.id)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			ev := a.scene.Pick(msg.X-canvasOffsetX, msg.Y-canvasOffsetY)
			return a, a.dispatch(ev)
		}

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pb := a.engine.Playback()
	cam := a.scene.Camera
	redraw := true

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Pause):
		pb.PauseToggle()
	case key.Matches(msg, keys.Faster):
		pb.StepSpeed(sim.SpeedStep)
	case key.Matches(msg, keys.Slower):
		pb.StepSpeed(-sim.SpeedStep)
	case key.Matches(msg, keys.FocusNext):
		pb.CycleFocus(1)
	case key.Matches(msg, keys.FocusPrev):
		pb.CycleFocus(-1)
	case key.Matches(msg, keys.RotX):
		cam.RotateX(rotateStep)
	case key.Matches(msg, keys.RotXBack):
		cam.RotateX(-rotateStep)
	case key.Matches(msg, keys.RotY):
		cam.RotateY(rotateStep)
	case key.Matches(msg, keys.RotYBack):
		cam.RotateY(-rotateStep)
	case key.Matches(msg, keys.ZoomIn):
		cam.ZoomIn()
	case key.Matches(msg, keys.ZoomOut):
		cam.ZoomOut()
	case key.Matches(msg, keys.ResetCam):
		cam.Reset()
	case key.Matches(msg, keys.Inspect):
		return a, a.dispatch(a.markerPick(int(msg.String()[0] - '1')))
	case key.Matches(msg, keys.NextView):
		a.details.Raise()
		redraw = false
	case key.Matches(msg, keys.CloseView):
		if v, ok := a.details.Front(); ok {
			_ = a.details.Close(v.ID)
		}
		redraw = false
	case key.Matches(msg, keys.Theme):
		t := NextTheme()
		a.styles = newStyles(t)
		a.scene.Theme = t
	case key.Matches(msg, keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		redraw = false
	default:
		redraw = false
	}
	if redraw {
		a.scene.Draw(a.engine.Frame())
	}
	return a, nil
}

// markerPick is the keyboard path to a pick: the n-th marker of the current
// frame, Sun first.
func (a App) markerPick(n int) sim.PickEvent {
	ms := a.engine.Frame().Markers()
	if n < 0 || n >= len(ms) {
		return sim.PickMiss()
	}
	return sim.PickHit(ms[n].Pick)
}

// dispatch forwards a pick and, when it opened a view, starts that view's
// tick chain.
func (a App) dispatch(ev sim.PickEvent) tea.Cmd {
	handle, ok := a.picks.Dispatch(ev)
	if !ok {
		return nil
	}
	return a.detailTick(handle)
}

func (a App) View() string {
	f := a.engine.Frame()
	s := a.styles

	header := s.Header.Render(fmt.Sprintf("ORRERY  Date: %s", f.Date()))
	canvas := s.Canvas.Render(a.scene.Canvas.Render())

	right := a.statsView(f)
	if v, ok := a.details.Front(); ok {
		right = lipgloss.JoinVertical(lipgloss.Left, right, a.detailView(v))
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvas, right)

	out := header + "\n" + main + "\n" + a.help.View(keys)
	if a.err != nil {
		out += "\n" + s.Error.Render(wordwrap.String(a.err.Error(), max(20, a.width-2)))
	}
	return out
}

func (a App) statsView(f sim.Frame) string {
	s := a.styles
	var b strings.Builder

	status := s.StatusRunning.Render("RUNNING")
	if f.Paused {
		status = s.StatusPaused.Render("PAUSED")
	}
	b.WriteString(status + "\n\n")
	row := func(label, value string) {
		b.WriteString(s.Label.Render(label) + s.Value.Render(value) + "\n")
	}
	row("Date", f.Date())
	row("Day", fmt.Sprintf("%.1f", f.ElapsedDays))
	row("Speed", fmt.Sprintf("%.1f d/tick", f.Speed))
	row("Focus", f.Focus.String())
	row("Bound", fmt.Sprintf("%.2f AU", f.Bound))
	row("Views", fmt.Sprintf("%d open", a.details.Len()))

	if len(a.bounds) > 1 {
		chart := asciigraph.Plot(a.bounds,
			asciigraph.Height(4),
			asciigraph.Width(statsWidth-12),
			asciigraph.Caption("bound (AU)"))
		b.WriteString(s.Graph.Render(chart) + "\n")
	}

	b.WriteString(s.Separator(statsWidth-6) + "\n")
	for i, m := range f.Markers() {
		b.WriteString(fmt.Sprintf("%d %s %s\n", i+1, swatch(m.Color), m.Label))
	}
	return s.Stats.Render(strings.TrimRight(b.String(), "\n"))
}

func (a App) detailView(v *detail.View) string {
	s := a.styles

	rows := make([]table.Row, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, table.Row{r.Key, r.Value})
	}
	t := table.New(
		table.WithColumns([]table.Column{{Title: "", Width: 9}, {Title: "", Width: statsWidth - 18}}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	ts := table.DefaultStyles()
	ts.Selected = ts.Cell
	t.SetStyles(ts)

	var b strings.Builder
	b.WriteString(s.DetailTitle.Render(v.Title()) + "\n")
	b.WriteString(RenderSphere(v, sphereW, sphereH) + "\n")
	if v.Fallback() {
		b.WriteString(s.Subtle.Render("no texture, flat colour") + "\n")
	}
	b.WriteString(t.View() + "\n")
	footer := fmt.Sprintf("yaw %3.0f°  %d inspector(s), tab to cycle, esc to close", v.Yaw, a.details.Len())
	b.WriteString(s.Subtle.Render(wordwrap.String(footer, statsWidth-4)))
	return s.Detail.Render(b.String())
}

// Run drives the app until quit. A tick error ends the program and is
// returned here.
func Run(ctx context.Context, app App) error {
	p := tea.NewProgram(app,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if a, ok := final.(App); ok {
		return a.Err()
	}
	return nil
}

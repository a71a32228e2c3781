package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause     key.Binding
	Faster    key.Binding
	Slower    key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	RotX      key.Binding
	RotXBack  key.Binding
	RotY      key.Binding
	RotYBack  key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ResetCam  key.Binding
	Inspect   key.Binding
	NextView  key.Binding
	CloseView key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Pause:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "speed +0.1")),
	Slower:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "speed -0.1")),
	FocusNext: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next focus")),
	FocusPrev: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "prev focus")),
	RotX:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x/X", "tilt")),
	RotXBack:  key.NewBinding(key.WithKeys("X")),
	RotY:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y/Y", "turn")),
	RotYBack:  key.NewBinding(key.WithKeys("Y")),
	ZoomIn:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "zoom in")),
	ZoomOut:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "zoom out")),
	ResetCam:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset camera")),
	Inspect:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "inspect body")),
	NextView:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next inspector")),
	CloseView: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close inspector")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.FocusNext, k.Inspect, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Faster, k.Slower, k.FocusNext, k.FocusPrev},
		{k.RotX, k.RotY, k.ZoomIn, k.ZoomOut, k.ResetCam},
		{k.Inspect, k.NextView, k.CloseView, k.Theme, k.Help, k.Quit},
	}
}

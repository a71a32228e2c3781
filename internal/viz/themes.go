package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour scheme for the TUI. Body colours always come from
// the catalog; a theme only styles the chrome around them.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeSpace = Theme{
		Name:       "space",
		Primary:    lipgloss.Color("#FFD700"), // Sun gold
		Secondary:  lipgloss.Color("#7aa2f7"),
		Accent:     lipgloss.Color("#E27B58"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#e6e6f0"),
		Muted:      lipgloss.Color("#3b3b58"),
		Success:    lipgloss.Color("#7bd88f"),
		Warning:    lipgloss.Color("#ffb454"),
		Error:      lipgloss.Color("#ff5c57"),
	}

	ThemeNebula = Theme{
		Name:       "nebula",
		Primary:    lipgloss.Color("#ff79c6"),
		Secondary:  lipgloss.Color("#bd93f9"),
		Accent:     lipgloss.Color("#8be9fd"),
		Background: lipgloss.Color("#1a1026"),
		Text:       lipgloss.Color("#f8f8f2"),
		Muted:      lipgloss.Color("#5a4a78"),
		Success:    lipgloss.Color("#50fa7b"),
		Warning:    lipgloss.Color("#f1fa8c"),
		Error:      lipgloss.Color("#ff5555"),
	}

	ThemePhosphor = Theme{
		Name:       "phosphor",
		Primary:    lipgloss.Color("#00ff00"),
		Secondary:  lipgloss.Color("#00cc00"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Success:    lipgloss.Color("#88ff88"),
		Warning:    lipgloss.Color("#ffff00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#999999"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#555555"),
		Success:    lipgloss.Color("#ffffff"),
		Warning:    lipgloss.Color("#bbbbbb"),
		Error:      lipgloss.Color("#ffffff"),
	}

	// Default theme
	CurrentTheme = ThemeSpace

	Themes = []Theme{ThemeSpace, ThemeNebula, ThemePhosphor, ThemeMono}
)

// GetTheme returns a theme by name, falling back to space.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSpace
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() Theme {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			break
		}
	}
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

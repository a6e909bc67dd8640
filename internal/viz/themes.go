package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the chrome colors of the views. Series colors come from the
// record styles and do not change with the theme.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Axis   lipgloss.Color
	Grid   lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
}

var (
	ThemePaper = Theme{
		Name:   "paper",
		Title:  lipgloss.Color("#e0e0e0"),
		Axis:   lipgloss.Color("#9e9e9e"),
		Grid:   lipgloss.Color("#4a4a4a"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#777777"),
		Accent: lipgloss.Color("#1f77b4"),
		Error:  lipgloss.Color("#d62728"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Title:  lipgloss.Color("#00ffff"),
		Axis:   lipgloss.Color("#ff00ff"),
		Grid:   lipgloss.Color("#3a003a"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
		Accent: lipgloss.Color("#ffff00"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Title:  lipgloss.Color("#00ff00"),
		Axis:   lipgloss.Color("#00cc00"),
		Grid:   lipgloss.Color("#003300"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Error:  lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Axis:   lipgloss.Color("#4488aa"),
		Grid:   lipgloss.Color("#0d2e4a"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
		Error:  lipgloss.Color("#ff4444"),
	}

	// Themes in cycle order.
	Themes = []Theme{
		ThemePaper,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to paper.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePaper
}

// NextTheme returns the theme after name in cycle order.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

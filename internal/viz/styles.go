package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dragsim/internal/store"
)

var ansiColors = map[store.Color]asciigraph.AnsiColor{
	store.Blue:   asciigraph.Blue,
	store.Red:    asciigraph.Red,
	store.Green:  asciigraph.Green,
	store.Orange: asciigraph.Orange,
	store.Purple: asciigraph.Purple,
	store.Cyan:   asciigraph.Cyan,
}

func ansiColor(c store.Color) asciigraph.AnsiColor {
	if a, ok := ansiColors[c]; ok {
		return a
	}
	return asciigraph.Default
}

// dashMask is the on/off sub-pixel cycle for a line pattern.
func dashMask(p store.LinePattern) []bool {
	switch p {
	case store.Dashed:
		return []bool{true, true, true, true, false, false}
	case store.Dotted:
		return []bool{true, false, false}
	case store.DashDot:
		return []bool{true, true, true, true, false, false, true, false, false}
	default:
		return nil
	}
}

// swatch is the legend sample for a line pattern.
func swatch(p store.LinePattern) string {
	switch p {
	case store.Dashed:
		return "╌╌╌"
	case store.Dotted:
		return "┈┈┈"
	case store.DashDot:
		return "─·─"
	default:
		return "───"
	}
}

func seriesStyle(s store.Style) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color.Hex()))
}

type styles struct {
	title, axis, grid, muted, text, accent, errText lipgloss.Style
	key, hint                                       lipgloss.Style
	panel                                           lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		axis:    lipgloss.NewStyle().Foreground(t.Axis),
		grid:    lipgloss.NewStyle().Foreground(t.Grid),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		text:    lipgloss.NewStyle().Foreground(t.Text),
		accent:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		errText: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		key:     lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		hint:    lipgloss.NewStyle().Foreground(t.Muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Grid).
			Padding(0, 1),
	}
}

// sliderBar renders a filled bar for a control's position in its domain.
func sliderBar(frac float64, width int) string {
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

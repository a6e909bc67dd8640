package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/experiment"
)

type slider struct {
	name, unit string
	min, max   float64
}

const (
	sliderAngle = iota
	sliderSpeed
	sliderDrag
	sliderMass
)

var sliders = []slider{
	{"angle", "°", config.MinAngleDeg, config.MaxAngleDeg},
	{"speed", "m/s", config.MinSpeed, config.MaxSpeed},
	{"drag", "kg/s", config.MinDrag, config.MaxDrag},
	{"mass", "kg", config.MinMass, config.MaxMass},
}

type model struct {
	session  *experiment.Session
	renderer *Renderer
	cursor   int
	status   string
	failed   bool
	width    int
	height   int
}

// NewInteractiveApp builds the control surface over one session.
func NewInteractiveApp(s *experiment.Session, theme Theme) *model {
	r := NewRenderer(theme)
	r.Span = s.Grid().Span()
	return &model{
		session:  s,
		renderer: r,
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.renderer.Width = msg.Width - labelCols - 4
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(sliders)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "a", "enter":
		m.add()
	case "c":
		m.session.Clear()
		m.status, m.failed = "cleared", false
	case "t":
		m.renderer.Theme = NextTheme(m.renderer.Theme.Name)
		m.status, m.failed = "theme "+m.renderer.Theme.Name, false
	}
	return m, nil
}

func (m *model) adjust(dir int) {
	l := m.session.Controls
	switch m.cursor {
	case sliderAngle:
		l.AngleDeg += dir
	case sliderSpeed:
		l.Speed += dir
	case sliderDrag:
		l.Drag = math.Round((l.Drag+0.01*float64(dir))*100) / 100
	case sliderMass:
		l.Mass = math.Round((l.Mass+0.1*float64(dir))*10) / 10
	}
	m.session.Controls = l.Clamp()
}

func (m *model) add() {
	sum, err := m.session.Add()
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	if sum.Grounded {
		m.status = fmt.Sprintf("added %s  flight %.2fs  range %.1fm  apex %.1fm",
			m.session.Controls.Label(), sum.FlightTime, sum.Range, sum.Apex)
	} else {
		m.status = fmt.Sprintf("added %s  still airborne at %.1fs", m.session.Controls.Label(), sum.FlightTime)
	}
	m.failed = false
}

func (m model) value(i int) (float64, string) {
	l := m.session.Controls
	switch i {
	case sliderAngle:
		return float64(l.AngleDeg), fmt.Sprintf("%d", l.AngleDeg)
	case sliderSpeed:
		return float64(l.Speed), fmt.Sprintf("%d", l.Speed)
	case sliderDrag:
		return l.Drag, fmt.Sprintf("%.2f", l.Drag)
	default:
		return l.Mass, fmt.Sprintf("%.1f", l.Mass)
	}
}

func (m model) View() string {
	st := newStyles(m.renderer.Theme)

	var b strings.Builder
	b.WriteString("\n  " + st.title.Render("DRAGSIM") + "  " + st.muted.Render("projectile motion with linear drag") + "\n\n")

	for i, s := range sliders {
		v, text := m.value(i)
		frac := (v - s.min) / (s.max - s.min)
		cursor, name := "  ", st.muted.Render(fmt.Sprintf("%-6s", s.name))
		if i == m.cursor {
			cursor, name = st.accent.Render("▸ "), st.text.Render(fmt.Sprintf("%-6s", s.name))
		}
		b.WriteString(fmt.Sprintf("  %s%s %s %s %s\n", cursor, name, st.grid.Render(sliderBar(frac, 24)), st.text.Render(text), st.muted.Render(s.unit)))
	}

	b.WriteString("\n  " + st.muted.Render(fmt.Sprintf("%d trajectories", m.session.Store().Len())))
	if m.status != "" {
		style := st.muted
		if m.failed {
			style = st.errText
		}
		b.WriteString("  " + style.Render(m.status))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Render(m.session.Records()))
	b.WriteString("\n\n  " + keyHints(st))
	return b.String()
}

func keyHints(st styles) string {
	hints := []struct{ key, desc string }{
		{"j/k", "select"},
		{"h/l", "adjust"},
		{"a", "add"},
		{"c", "clear"},
		{"t", "theme"},
		{"q", "quit"},
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = st.key.Render(h.key) + st.hint.Render(" "+h.desc)
	}
	return strings.Join(parts, "  ")
}

func RunInteractive(s *experiment.Session, theme Theme) error {
	_, err := tea.NewProgram(NewInteractiveApp(s, theme), tea.WithAltScreen()).Run()
	return err
}

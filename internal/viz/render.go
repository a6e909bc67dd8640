package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/sim"
	"github.com/san-kum/dragsim/internal/store"
)

const (
	DefaultWidth  = 72
	DefaultHeight = 12

	minWidth  = 16
	minHeight = 4
	labelCols = 9
)

// Renderer draws the three comparison views from a snapshot of the store.
// It keeps no state between calls.
type Renderer struct {
	Width, Height int
	Theme         Theme
	// Span is the time axis shown while the store is empty.
	Span float64
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Theme:  theme,
		Span:   sim.DefaultSpan,
	}
}

type view struct {
	title, xLabel, yLabel string
}

var (
	velocityView     = view{"Velocity", "t [s]", "|v| [m/s]"}
	accelerationView = view{"Acceleration", "t [s]", "|a| [m/s²]"}
	trajectoryView   = view{"Trajectory", "x [m]", "y [m]"}
)

// Render returns all three views, top to bottom.
func (r *Renderer) Render(records []store.Record) string {
	return strings.Join([]string{
		r.Velocity(records),
		r.Acceleration(records),
		r.Trajectory(records),
	}, "\n\n")
}

func (r *Renderer) Velocity(records []store.Record) string {
	return r.timePlot(velocityView, records, func(s dynamo.Series) []float64 { return s.Speed })
}

func (r *Renderer) Acceleration(records []store.Record) string {
	return r.timePlot(accelerationView, records, func(s dynamo.Series) []float64 { return s.Accel })
}

func (r *Renderer) timePlot(v view, records []store.Record, field func(dynamo.Series) []float64) string {
	st := newStyles(r.Theme)
	w, h := r.size()
	header := r.header(st, v)
	if len(records) == 0 {
		return header + "\n" + r.emptyAxes(st, v, r.Span, 1)
	}

	tmax := 0.0
	for _, rec := range records {
		if n := rec.Series.Len(); n > 0 {
			tmax = math.Max(tmax, rec.Series.T[n-1])
		}
	}
	if tmax <= 0 {
		tmax = r.Span
	}

	data := make([][]float64, len(records))
	colors := make([]asciigraph.AnsiColor, len(records))
	legends := make([]string, len(records))
	for i, rec := range records {
		data[i] = resample(rec.Series.T, field(rec.Series), tmax, w)
		colors[i] = ansiColor(rec.Style.Color)
		legends[i] = rec.Label
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(h),
		asciigraph.LowerBound(0),
		asciigraph.Offset(3),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("%s: 0 to %.1f", v.xLabel, tmax)),
	)
	return header + "\n" + graph
}

// Trajectory draws height against distance with one metre per sub-pixel on
// both axes and the ground at the bottom edge.
func (r *Renderer) Trajectory(records []store.Record) string {
	st := newStyles(r.Theme)
	w, h := r.size()
	v := trajectoryView
	header := r.header(st, v)
	if len(records) == 0 {
		return header + "\n" + r.emptyAxes(st, v, 1, 1)
	}

	xmin, xmax, ymax := 0.0, 0.0, 0.0
	for _, rec := range records {
		for k := range rec.Series.X {
			xmin = math.Min(xmin, rec.Series.X[k])
			xmax = math.Max(xmax, rec.Series.X[k])
			ymax = math.Max(ymax, rec.Series.Y[k])
		}
	}

	c := NewCanvas(w, h)
	subW, subH := c.SubWidth(), c.SubHeight()
	per := math.Max((xmax-xmin)/float64(subW-1), ymax/float64(subH-1))
	if per <= 0 {
		per = 1
	}

	for i, rec := range records {
		c.SetPen(i, dashMask(rec.Style.Line))
		px, py := 0, 0
		for k := range rec.Series.X {
			x := int(math.Round((rec.Series.X[k] - xmin) / per))
			y := subH - 1 - int(math.Round(math.Max(rec.Series.Y[k], 0)/per))
			if k == 0 {
				px, py = x, y
			}
			c.DrawLine(px, py, x, y)
			px, py = x, y
		}
	}

	body := c.Paint(func(owner int, cell string) string {
		if owner < 0 || owner >= len(records) {
			return cell
		}
		return seriesStyle(records[owner].Style).Render(cell)
	})

	yTop := per * float64(subH-1)
	xRight := xmin + per*float64(subW-1)
	rows := strings.Split(strings.TrimSuffix(body, "\n"), "\n")

	var b strings.Builder
	b.WriteString(header + "\n")
	for i, row := range rows {
		label := ""
		switch i {
		case 0:
			label = fmt.Sprintf("%.1f", yTop)
		case len(rows) - 1:
			label = "0"
		}
		b.WriteString(st.axis.Render(fmt.Sprintf("%*s ┤", labelCols-2, label)) + row + "\n")
	}
	b.WriteString(r.xAxis(st, v, xmin, xRight, w))
	b.WriteString("\n\n" + legend(records))
	return b.String()
}

func (r *Renderer) header(st styles, v view) string {
	return st.title.Render(v.title) + "  " + st.muted.Render(v.yLabel+" vs "+v.xLabel)
}

func (r *Renderer) size() (int, int) {
	w, h := r.Width, r.Height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}
	return w, h
}

// emptyAxes draws a framed, gridded plot area with tick labels and no
// curves.
func (r *Renderer) emptyAxes(st styles, v view, xmax, ymax float64) string {
	w, h := r.size()

	var b strings.Builder
	for i := 0; i <= h; i++ {
		label := ""
		switch i {
		case 0:
			label = fmt.Sprintf("%.1f", ymax)
		case h:
			label = "0"
		}
		var row string
		if i%3 == 0 {
			row = gridRow(w)
		} else {
			row = strings.Repeat(" ", w)
		}
		b.WriteString(st.axis.Render(fmt.Sprintf("%*s ┤", labelCols-2, label)) + st.grid.Render(row) + "\n")
	}
	b.WriteString(r.xAxis(st, v, 0, xmax, w))
	return b.String()
}

func gridRow(w int) string {
	cells := make([]rune, w)
	for j := range cells {
		cells[j] = ' '
		if j%6 == 0 {
			cells[j] = '·'
		}
	}
	return string(cells)
}

func (r *Renderer) xAxis(st styles, v view, lo, hi float64, w int) string {
	pad := strings.Repeat(" ", labelCols-1)
	line := pad + "└" + strings.Repeat("─", w)

	left := fmt.Sprintf("%.1f", lo)
	right := fmt.Sprintf("%.1f", hi)
	gap := w + 1 - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	ticks := pad + left + strings.Repeat(" ", gap) + right

	title := v.xLabel
	center := labelCols + (w-len(title))/2
	if center < 0 {
		center = 0
	}
	return st.axis.Render(line) + "\n" + st.muted.Render(ticks) + "\n" + strings.Repeat(" ", center) + st.muted.Render(title)
}

func legend(records []store.Record) string {
	entries := make([]string, len(records))
	for i, rec := range records {
		entries[i] = seriesStyle(rec.Style).Render(swatch(rec.Style.Line)) + " " + rec.Label
	}

	var lines []string
	for i := 0; i < len(entries); i += 3 {
		end := i + 3
		if end > len(entries) {
			end = len(entries)
		}
		lines = append(lines, strings.Repeat(" ", labelCols)+strings.Join(entries[i:end], "   "))
	}
	return strings.Join(lines, "\n")
}

// resample maps one series onto w evenly spaced times over [0, tmax] by
// linear interpolation. Columns past the series' last sample are NaN.
func resample(t, v []float64, tmax float64, w int) []float64 {
	out := make([]float64, w)
	j := 0
	for c := range out {
		tc := tmax * float64(c) / float64(w-1)
		if c == w-1 {
			tc = tmax
		}
		for j+1 < len(t) && t[j+1] <= tc {
			j++
		}

		switch {
		case len(t) == 0 || tc > t[len(t)-1]:
			out[c] = math.NaN()
		case j == len(t)-1:
			out[c] = v[j]
		default:
			frac := (tc - t[j]) / (t[j+1] - t[j])
			out[c] = v[j] + frac*(v[j+1]-v[j])
		}
	}
	return out
}

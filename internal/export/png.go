package export

import (
	"bufio"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/dragsim/internal/dynamo"
	"github.com/san-kum/dragsim/internal/store"
)

const (
	figureWidth  = 8 * vg.Inch
	figureHeight = 5 * vg.Inch
	figureDPI    = 150
)

// Figure is one finished plot and the file name it is written under.
type Figure struct {
	Name        string
	Plot        *plot.Plot
	EqualAspect bool
}

var dashes = map[store.LinePattern][]vg.Length{
	store.Dashed:  {vg.Points(6), vg.Points(3)},
	store.Dotted:  {vg.Points(1.5), vg.Points(3)},
	store.DashDot: {vg.Points(6), vg.Points(3), vg.Points(1.5), vg.Points(3)},
}

// Figures builds the speed, acceleration and trajectory plots. span is the
// time axis shown when records is empty.
func Figures(records []store.Record, span float64) ([]Figure, error) {
	speed, err := timeFigure("Velocity", "|v| [m/s]", records, span, func(s dynamo.Series) []float64 { return s.Speed })
	if err != nil {
		return nil, err
	}
	accel, err := timeFigure("Acceleration", "|a| [m/s²]", records, span, func(s dynamo.Series) []float64 { return s.Accel })
	if err != nil {
		return nil, err
	}
	traj, err := trajectoryFigure(records)
	if err != nil {
		return nil, err
	}

	return []Figure{
		{Name: "speed.png", Plot: speed},
		{Name: "accel.png", Plot: accel},
		{Name: "trajectory.png", Plot: traj, EqualAspect: true},
	}, nil
}

func timeFigure(title, ylabel string, records []store.Record, span float64, field func(dynamo.Series) []float64) (*plot.Plot, error) {
	p := newPlot(title, "t [s]", ylabel)
	for _, rec := range records {
		line, err := styledLine(rec, rec.Series.T, field(rec.Series))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Label, err)
		}
		p.Add(line)
		p.Legend.Add(rec.Label, line)
	}
	if len(records) == 0 {
		p.X.Min, p.X.Max = 0, span
		p.Y.Max = 1
	}
	p.Y.Min = 0
	return p, nil
}

func trajectoryFigure(records []store.Record) (*plot.Plot, error) {
	p := newPlot("Trajectory", "x [m]", "y [m]")
	for _, rec := range records {
		y := make([]float64, rec.Series.Len())
		for i, v := range rec.Series.Y {
			y[i] = math.Max(v, 0)
		}
		line, err := styledLine(rec, rec.Series.X, y)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Label, err)
		}
		p.Add(line)
		p.Legend.Add(rec.Label, line)
	}
	if len(records) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
	}
	p.X.Min = math.Min(p.X.Min, 0)
	p.Y.Min = 0
	return p, nil
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func styledLine(rec store.Record, xs, ys []float64) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = hexColor(rec.Style.Color.Hex())
	line.LineStyle.Dashes = dashes[rec.Style.Line]
	return line, nil
}

func hexColor(hex string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// fitEqualAspect widens one axis so a metre spans the same length on both.
func fitEqualAspect(p *plot.Plot, dc draw.Canvas) {
	da := p.DataCanvas(dc)
	dw := float64(da.Max.X - da.Min.X)
	dh := float64(da.Max.Y - da.Min.Y)
	if dw <= 0 || dh <= 0 {
		return
	}
	per := math.Max((p.X.Max-p.X.Min)/dw, (p.Y.Max-p.Y.Min)/dh)
	p.X.Max = p.X.Min + per*dw
	p.Y.Max = p.Y.Min + per*dh
}

// WritePNG renders f into path.
func WritePNG(f Figure, path string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(figureWidth, figureHeight),
		vgimg.UseDPI(figureDPI),
	)
	dc := draw.New(c)
	if f.EqualAspect {
		fitEqualAspect(f.Plot, dc)
	}
	f.Plot.Draw(dc)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return bw.Flush()
}

// WriteAll writes the three PNG figures, trajectory.svg and series.csv
// into dir and returns the written paths.
func WriteAll(dir string, records []store.Record, span float64) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create directory: %w", err)
	}

	figs, err := Figures(records, span)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, f := range figs {
		path := filepath.Join(dir, f.Name)
		if err := WritePNG(f, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	svgPath := filepath.Join(dir, "trajectory.svg")
	if err := os.WriteFile(svgPath, []byte(TrajectorySVG(records, 800, 500)), 0644); err != nil {
		return paths, err
	}
	paths = append(paths, svgPath)

	csvPath := filepath.Join(dir, "series.csv")
	file, err := os.Create(csvPath)
	if err != nil {
		return paths, err
	}
	defer file.Close()
	if err := WriteCSV(file, records); err != nil {
		return paths, err
	}
	return append(paths, csvPath), nil
}

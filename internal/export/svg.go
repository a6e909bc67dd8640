package export

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/san-kum/dragsim/internal/store"
)

const svgMargin = 48

var svgDashes = map[store.LinePattern]string{
	store.Dashed:  "8,4",
	store.Dotted:  "2,4",
	store.DashDot: "8,4,2,4",
}

// TrajectorySVG draws the height-over-distance view of every record as a
// standalone SVG document. Both axes share one scale and the ground sits on
// the bottom edge of the plot area. An empty slice yields the framed,
// gridded axes alone.
func TrajectorySVG(records []store.Record, width, height int) string {
	pw := float64(width - 2*svgMargin)
	ph := float64(height - 2*svgMargin)
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}

	minX, maxX, maxY := 0.0, 0.0, 0.0
	for _, rec := range records {
		for i := range rec.Series.X {
			minX = math.Min(minX, rec.Series.X[i])
			maxX = math.Max(maxX, rec.Series.X[i])
			maxY = math.Max(maxY, rec.Series.Y[i])
		}
	}
	if maxX-minX <= 0 {
		maxX = minX + 1
	}
	if maxY <= 0 {
		maxY = 1
	}
	per := math.Max((maxX-minX)/pw, maxY/ph)

	px := func(x float64) float64 { return svgMargin + (x-minX)/per }
	py := func(y float64) float64 { return svgMargin + ph - math.Max(y, 0)/per }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="%d" font-family="sans-serif" font-size="14" text-anchor="middle">Trajectory</text>
`, width, height, width, height, width/2, svgMargin/2))

	// grid and ticks
	const ticks = 5
	sb.WriteString(`<g stroke="#dddddd" stroke-width="1">` + "\n")
	for i := 0; i <= ticks; i++ {
		gx := svgMargin + pw*float64(i)/ticks
		gy := svgMargin + ph*float64(i)/ticks
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%.1f"/>`+"\n", gx, svgMargin, gx, svgMargin+ph))
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", svgMargin, gy, svgMargin+pw, gy))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g font-family="sans-serif" font-size="10" fill="#444444">` + "\n")
	for i := 0; i <= ticks; i++ {
		xv := minX + per*pw*float64(i)/ticks
		yv := per * ph * float64(i) / ticks
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">%.0f</text>`+"\n",
			svgMargin+pw*float64(i)/ticks, svgMargin+ph+14, xv))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" text-anchor="end">%.0f</text>`+"\n",
			svgMargin-4, svgMargin+ph-ph*float64(i)/ticks+3, yv))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle">x [m]</text>`+"\n", svgMargin+pw/2, svgMargin+ph+30))
	sb.WriteString(fmt.Sprintf(`<text x="12" y="%.1f" text-anchor="middle" transform="rotate(-90 12 %.1f)">y [m]</text>`+"\n",
		svgMargin+ph/2, svgMargin+ph/2))
	sb.WriteString("</g>\n")

	sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%.1f" height="%.1f" fill="none" stroke="#444444"/>`+"\n",
		svgMargin, svgMargin, pw, ph))

	for _, rec := range records {
		if rec.Series.Len() == 0 {
			continue
		}
		dash := ""
		if d, ok := svgDashes[rec.Style.Line]; ok {
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, d)
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5"%s d="M`, rec.Style.Color.Hex(), dash))
		for i := range rec.Series.X {
			x, y := px(rec.Series.X[i]), py(rec.Series.Y[i])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString(`"/>` + "\n")
	}

	if len(records) > 0 {
		sb.WriteString(`<g font-family="sans-serif" font-size="11">` + "\n")
		for i, rec := range records {
			ly := float64(svgMargin + 14 + 16*i)
			lx := svgMargin + pw - 150
			dash := ""
			if d, ok := svgDashes[rec.Style.Line]; ok {
				dash = fmt.Sprintf(` stroke-dasharray="%s"`, d)
			}
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"%s/>`+"\n",
				lx, ly-4, lx+24, ly-4, rec.Style.Color.Hex(), dash))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>`+"\n", lx+30, ly, html.EscapeString(rec.Label)))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

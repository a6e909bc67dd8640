package store

type Color string

const (
	Blue   Color = "blue"
	Red    Color = "red"
	Green  Color = "green"
	Orange Color = "orange"
	Purple Color = "purple"
	Cyan   Color = "cyan"
)

var hexColors = map[Color]string{
	Blue:   "#1f77b4",
	Red:    "#d62728",
	Green:  "#2ca02c",
	Orange: "#ff7f0e",
	Purple: "#9467bd",
	Cyan:   "#17becf",
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	if h, ok := hexColors[c]; ok {
		return h
	}
	return "#888888"
}

type LinePattern string

const (
	Solid   LinePattern = "solid"
	Dashed  LinePattern = "dashed"
	Dotted  LinePattern = "dotted"
	DashDot LinePattern = "dashdot"
)

// Style is the visual identity of one record.
type Style struct {
	Color Color
	Line  LinePattern
}

var palette = [...]Style{
	{Blue, Solid},
	{Red, Dashed},
	{Green, Dotted},
	{Orange, DashDot},
	{Purple, Solid},
	{Cyan, Dashed},
}

// PaletteSize is the number of distinct styles before the cycle repeats.
const PaletteSize = len(palette)

// Palette returns a copy of the style cycle.
func Palette() []Style {
	out := make([]Style, PaletteSize)
	copy(out, palette[:])
	return out
}

// StyleFor returns the style assigned to the i-th record.
func StyleFor(i int) Style {
	i %= PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return palette[i]
}

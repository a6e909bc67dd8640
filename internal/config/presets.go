package config

import "sort"

var Presets = map[string]Launch{
	"default": {AngleDeg: 45, Speed: 100, Drag: 0.1, Mass: 1.0},
	"lob":     {AngleDeg: 70, Speed: 120, Drag: 0.05, Mass: 2.0},
	"flat":    {AngleDeg: 15, Speed: 150, Drag: 0.1, Mass: 1.0},
	"heavy":   {AngleDeg: 45, Speed: 100, Drag: 0.1, Mass: 10.0},
	"feather": {AngleDeg: 45, Speed: 100, Drag: 1.0, Mass: 0.1},
	"zenith":  {AngleDeg: 90, Speed: 200, Drag: 0.01, Mass: 10.0},
	"skim":    {AngleDeg: 5, Speed: 60, Drag: 0.3, Mass: 0.5},
}

// GetPreset returns a copy of the named launch, or nil.
func GetPreset(name string) *Launch {
	l, ok := Presets[name]
	if !ok {
		return nil
	}
	return &l
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/dragsim/internal/config"
	"github.com/san-kum/dragsim/internal/sim"
	"github.com/san-kum/dragsim/internal/store"
)

func populated(t *testing.T, presets ...string) []store.Record {
	t.Helper()
	st := store.New()
	simulator := sim.New(sim.DefaultGrid())
	for _, name := range presets {
		l := config.GetPreset(name)
		if l == nil {
			t.Fatalf("missing preset %s", name)
		}
		p, err := l.Params(9.81)
		if err != nil {
			t.Fatal(err)
		}
		s, err := simulator.Run(p)
		if err != nil {
			t.Fatal(err)
		}
		st.Append(s, l.Label())
	}
	return st.All()
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer(ThemePaper)
	out := r.Render(nil)

	for _, want := range []string{"Velocity", "Acceleration", "Trajectory", "t [s]", "x [m]", "·", "40.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected empty render to contain %q", want)
		}
	}
	for _, swatchText := range []string{"■", "╌╌╌", "┈┈┈", "α="} {
		if strings.Contains(out, swatchText) {
			t.Errorf("empty render must not draw a legend, found %q", swatchText)
		}
	}
}

func TestRenderLegends(t *testing.T) {
	records := populated(t, "default", "lob", "flat")
	r := NewRenderer(ThemePaper)

	for name, out := range map[string]string{
		"velocity":     r.Velocity(records),
		"acceleration": r.Acceleration(records),
		"trajectory":   r.Trajectory(records),
	} {
		for _, rec := range records {
			if !strings.Contains(out, rec.Label) {
				t.Errorf("%s view missing label %q", name, rec.Label)
			}
		}
	}
}

func TestTrajectoryStaysAboveGround(t *testing.T) {
	records := populated(t, "default")
	r := NewRenderer(ThemePaper)
	out := r.Trajectory(records)

	if strings.Contains(out, "-") {
		t.Errorf("trajectory axes should not show negative heights:\n%s", out)
	}
	dots := 0
	for _, r := range out {
		if r > blank && r <= 0x28ff {
			dots++
		}
	}
	if dots == 0 {
		t.Error("expected braille cells in trajectory view")
	}
}

func TestRenderSmallSize(t *testing.T) {
	r := NewRenderer(ThemeOcean)
	r.Width, r.Height = 1, 1

	out := r.Render(populated(t, "default"))
	if out == "" {
		t.Error("expected output at minimum size")
	}
}

func TestResample(t *testing.T) {
	tt := []float64{0, 1, 2}
	v := []float64{0, 10, 20}

	got := resample(tt, v, 4, 5)
	want := []float64{0, 10, 20}
	for i, w := range want {
		if math.Abs(got[i]-w) > 1e-12 {
			t.Errorf("column %d: expected %v, got %v", i, w, got[i])
		}
	}
	for i := 3; i < 5; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("column %d past the series should be NaN, got %v", i, got[i])
		}
	}

	mid := resample(tt, v, 2, 5)
	if math.Abs(mid[1]-5) > 1e-12 {
		t.Errorf("expected interpolated 5, got %v", mid[1])
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "paper" {
		t.Error("unknown theme should fall back to paper")
	}
	seen := map[string]bool{}
	name := ThemeNames()[0]
	for range Themes {
		seen[name] = true
		name = NextTheme(name).Name
	}
	if len(seen) != len(Themes) {
		t.Errorf("expected cycle through %d themes, saw %d", len(Themes), len(seen))
	}
}

func TestDashMasks(t *testing.T) {
	for _, s := range store.Palette() {
		mask := dashMask(s.Line)
		if s.Line == store.Solid && mask != nil {
			t.Errorf("solid should have no mask")
		}
		if s.Line != store.Solid && len(mask) == 0 {
			t.Errorf("%s should have a mask", s.Line)
		}
		if ansiColor(s.Color) == 0 {
			t.Errorf("%s has no terminal color", s.Color)
		}
	}
}

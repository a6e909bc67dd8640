package store

import (
	"testing"

	"github.com/san-kum/dragsim/internal/dynamo"
)

func sampleSeries(n int) dynamo.Series {
	s := dynamo.NewSeries(n)
	for i := 0; i < n; i++ {
		s.T[i] = float64(i)
		s.Y[i] = float64(n - i)
	}
	return s
}

func TestAppendThenClear(t *testing.T) {
	st := New()
	st.Append(sampleSeries(3), "α=45°, v₀=100, h=0.1")
	st.Clear()

	if got := len(st.All()); got != 0 {
		t.Errorf("expected 0 records, got %d", got)
	}
	if st.State() != Empty {
		t.Errorf("expected state empty, got %s", st.State())
	}
}

func TestClearOnEmpty(t *testing.T) {
	st := New()
	st.Clear()
	st.Clear()

	if st.Len() != 0 {
		t.Errorf("expected 0 records, got %d", st.Len())
	}
	if st.State() != Empty {
		t.Errorf("expected state empty, got %s", st.State())
	}
}

func TestPaletteCycles(t *testing.T) {
	st := New()
	const n = 14
	for i := 0; i < n; i++ {
		st.Append(sampleSeries(2), "run")
	}

	records := st.All()
	if len(records) != n {
		t.Fatalf("expected %d records, got %d", n, len(records))
	}
	pal := Palette()
	for i, r := range records {
		if r.Style != pal[i%6] {
			t.Errorf("record %d: expected style %+v, got %+v", i, pal[i%6], r.Style)
		}
	}
}

func TestFirstRecordAfterClear(t *testing.T) {
	st := New()
	st.Append(sampleSeries(2), "a")
	st.Append(sampleSeries(2), "b")
	st.Clear()
	st.Append(sampleSeries(2), "c")

	if got := st.All()[0].Style; got != StyleFor(0) {
		t.Errorf("expected first style %+v after clear, got %+v", StyleFor(0), got)
	}
}

func TestAllPreservesOrderAndIsCopy(t *testing.T) {
	st := New()
	labels := []string{"first", "second", "third"}
	for _, l := range labels {
		st.Append(sampleSeries(2), l)
	}

	records := st.All()
	for i, r := range records {
		if r.Label != labels[i] {
			t.Errorf("record %d: expected label %q, got %q", i, labels[i], r.Label)
		}
	}

	records[0].Label = "mutated"
	records = append(records[:1], records[2:]...)
	if st.All()[0].Label != "first" || st.Len() != 3 {
		t.Error("mutating All() result changed the store")
	}
}

func TestAppendCopiesSeries(t *testing.T) {
	st := New()
	s := sampleSeries(3)
	st.Append(s, "run")
	s.Y[0] = -1

	if got := st.All()[0].Series.Y[0]; got != 3 {
		t.Errorf("expected stored y 3, got %f", got)
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		index int
		want  Style
	}{
		{0, Style{Blue, Solid}},
		{1, Style{Red, Dashed}},
		{2, Style{Green, Dotted}},
		{3, Style{Orange, DashDot}},
		{4, Style{Purple, Solid}},
		{5, Style{Cyan, Dashed}},
		{6, Style{Blue, Solid}},
		{-1, Style{Cyan, Dashed}},
	}

	for _, tt := range tests {
		if got := StyleFor(tt.index); got != tt.want {
			t.Errorf("StyleFor(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestPaletteDistinct(t *testing.T) {
	seen := map[Style]bool{}
	for _, s := range Palette() {
		if seen[s] {
			t.Errorf("duplicate palette entry %+v", s)
		}
		seen[s] = true
		if s.Color.Hex() == "#888888" {
			t.Errorf("palette color %s has no hex value", s.Color)
		}
	}
	if len(seen) != PaletteSize {
		t.Errorf("expected %d styles, got %d", PaletteSize, len(seen))
	}
}

package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}

	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasOwner(t *testing.T) {
	c := NewCanvas(4, 1)
	c.SetPen(3, nil)
	c.DrawLine(0, 0, 7, 0)

	for j := 0; j < 4; j++ {
		if c.Owner[0][j] != 3 {
			t.Errorf("cell %d: expected owner 3, got %d", j, c.Owner[0][j])
		}
	}

	c.Clear()
	if c.Owner[0][0] != -1 || c.Grid[0][0] != blank {
		t.Error("clear should reset cells and owners")
	}
}

func TestCanvasDash(t *testing.T) {
	solid := NewCanvas(10, 1)
	solid.DrawLine(0, 0, 19, 0)

	dotted := NewCanvas(10, 1)
	dotted.SetPen(0, []bool{true, false})
	dotted.DrawLine(0, 0, 19, 0)

	if got := countDots(solid); got != 20 {
		t.Errorf("expected 20 solid dots, got %d", got)
	}
	if got := countDots(dotted); got != 10 {
		t.Errorf("expected 10 dotted dots, got %d", got)
	}
}

func TestCanvasPaint(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetPen(1, nil)
	c.Set(0, 0)

	out := c.Paint(func(owner int, cell string) string {
		return "[" + cell + "]"
	})
	if strings.Count(out, "[") != 1 {
		t.Errorf("expected one painted cell, got %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func countDots(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			for bits := r - blank; bits > 0; bits >>= 1 {
				n += int(bits & 1)
			}
		}
	}
	return n
}

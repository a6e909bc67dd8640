// Package viz draws trajectory comparisons in the terminal.
//
// [Renderer] turns a store snapshot into three text views: speed and
// acceleration magnitude against time (asciigraph line charts) and height
// against distance on a braille [Canvas] with equal axis scaling. Each
// record keeps its palette color and line pattern in every view.
//
// The interactive surface is a Bubble Tea program over one session:
//
//	j/k  select a control
//	h/l  adjust the selected control
//	a    add a trajectory with the current controls
//	c    clear all trajectories
//	t    cycle color themes
//	q    quit
package viz

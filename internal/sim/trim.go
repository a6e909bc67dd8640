package sim

import "github.com/san-kum/dragsim/internal/dynamo"

// GroundIndex returns the first index with negative height, or len(y) when
// the height never goes negative.
func GroundIndex(y []float64) int {
	for i, v := range y {
		if v < 0 {
			return i
		}
	}
	return len(y)
}

// Trim cuts every field of s at the first negative height. The negative
// sample itself is dropped. A flight that never crosses zero is returned
// whole.
func Trim(s dynamo.Series) dynamo.Series {
	return s.Head(GroundIndex(s.Y))
}

// Summarize reads flight statistics off a trimmed series sampled on g.
func Summarize(s dynamo.Series, g Grid) Summary {
	n := s.Len()
	sum := Summary{Samples: n, Grounded: n < g.Len()}
	if n == 0 {
		return sum
	}
	last := n - 1
	sum.FlightTime = s.T[last]
	sum.Range = s.X[last]
	sum.ImpactSpeed = s.Speed[last]
	for _, y := range s.Y {
		if y > sum.Apex {
			sum.Apex = y
		}
	}
	return sum
}

// Landing interpolates the ground crossing of an untrimmed series between
// the last sample at or above ground and the first below it. ok is false
// when the flight never crosses.
func Landing(s dynamo.Series) (t, x float64, ok bool) {
	k := GroundIndex(s.Y)
	if k == s.Len() {
		return 0, 0, false
	}
	if k == 0 {
		return s.T[0], s.X[0], true
	}
	frac := s.Y[k-1] / (s.Y[k-1] - s.Y[k])
	t = s.T[k-1] + frac*(s.T[k]-s.T[k-1])
	x = s.X[k-1] + frac*(s.X[k]-s.X[k-1])
	return t, x, true
}

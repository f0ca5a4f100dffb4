// SPDX-License-Identifier: MIT
// Package: leftstim/geom
//
// clip.go - stretching a line to the borders of an axis-aligned box.
//
// The infinite line through the segment is clipped against the rectangle:
//   • horizontal → left/right borders at the segment's y;
//   • vertical   → bottom/top borders at the segment's x;
//   • diagonal   → from the leftmost endpoint, the rightward ray hits the right
//     border or (top if k>0, bottom if k<0), whichever comes first, and the
//     leftward ray hits the left border or (bottom if k>0, top if k<0).

package geom

import "math"

// clipToBox returns the extended start/end of l on b and the borders they hit.
// The start always lies on the left-hand side of the extension.
func clipToBox(l Line, b Box) (start, end Point, startSide, endSide Side) {
	top, right, bottom, left := boxEdges(b)

	if l.IsHorizontal() {
		return Point{X: left, Y: l.Start.Y}, Point{X: right, Y: l.End.Y}, Left, Right
	}
	if l.IsVertical() {
		return Point{X: l.Start.X, Y: bottom}, Point{X: l.End.X, Y: top}, Bottom, Top
	}

	lo, hi := l.Start, l.End
	if lo.X > hi.X {
		lo, hi = hi, lo
	}
	k := (hi.Y - lo.Y) / (hi.X - lo.X)

	// Rightward ray.
	riseToRight := math.Abs((right - lo.X) * k)
	switch {
	case k < 0 && riseToRight < math.Abs(lo.Y-bottom):
		end, endSide = Point{X: right, Y: (right-lo.X)*k + lo.Y}, Right
	case k < 0:
		end, endSide = Point{X: (bottom-lo.Y)/k + lo.X, Y: bottom}, Bottom
	case riseToRight < math.Abs(top-lo.Y):
		end, endSide = Point{X: right, Y: (right-lo.X)*k + lo.Y}, Right
	default:
		end, endSide = Point{X: (top-lo.Y)/k + lo.X, Y: top}, Top
	}

	// Leftward ray.
	riseToLeft := math.Abs((left - lo.X) * k)
	switch {
	case k < 0 && riseToLeft < math.Abs(top-lo.Y):
		start, startSide = Point{X: left, Y: (left-lo.X)*k + lo.Y}, Left
	case k < 0:
		start, startSide = Point{X: (top-lo.Y)/k + lo.X, Y: top}, Top
	case riseToLeft < math.Abs(lo.Y-bottom):
		start, startSide = Point{X: left, Y: (left-lo.X)*k + lo.Y}, Left
	default:
		start, startSide = Point{X: (bottom-lo.Y)/k + lo.X, Y: bottom}, Bottom
	}

	return start, end, startSide, endSide
}

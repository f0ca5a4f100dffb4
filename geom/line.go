// SPDX-License-Identifier: MIT
// Package: leftstim/geom
//
// line.go - the Line segment and its derived properties.
//
// Contract:
//   • Orientation tests are exact coordinate comparisons (no tolerance).
//   • Slope fails with ErrUndefinedSlope for axis-aligned lines.
//   • RandomPoint never divides by zero: axis-aligned lines sample one axis.

package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Line is a straight segment from Start to End.
type Line struct {
	Start Point
	End   Point
}

// NewLine returns a pointer to the segment start→end.
func NewLine(start, end Point) *Line { return &Line{Start: start, End: end} }

// String renders l as "(x1, y1)->(x2, y2)".
func (l Line) String() string { return fmt.Sprintf("%s->%s", l.Start, l.End) }

// IsHorizontal reports whether Start and End share the same y.
func (l Line) IsHorizontal() bool { return l.Start.Y == l.End.Y }

// IsVertical reports whether Start and End share the same x.
func (l Line) IsVertical() bool { return l.Start.X == l.End.X }

// Orientation classifies l. A degenerate (single point) line reports Vertical.
func (l Line) Orientation() Orientation {
	if l.IsVertical() {
		return Vertical
	}
	if l.IsHorizontal() {
		return Horizontal
	}

	return Diagonal
}

// Slope returns k in y = kx + m.
func (l Line) Slope() (float64, error) {
	if l.IsVertical() || l.IsHorizontal() {
		return 0, geomErrorf(methodSlope, "line %s", ErrUndefinedSlope, l)
	}

	return (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X), nil
}

// Length returns the Euclidean length of l.
func (l Line) Length() float64 { return l.Start.Dist(l.End) }

// Dir returns the direction vector End-Start.
func (l Line) Dir() Vector { return l.End.Sub(l.Start) }

// RandomPoint samples a point uniformly along the segment.
func (l Line) RandomPoint(rng *rand.Rand) Point {
	if l.IsHorizontal() {
		return Point{X: uniform(rng, l.Start.X, l.End.X), Y: l.Start.Y}
	}
	if l.IsVertical() {
		return Point{X: l.Start.X, Y: uniform(rng, l.Start.Y, l.End.Y)}
	}
	x := uniform(rng, l.Start.X, l.End.X)
	k := (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X)

	return Point{X: x, Y: (x-l.Start.X)*k + l.Start.Y}
}

// PointAtX returns the point of the (infinite) line with the given x.
func (l Line) PointAtX(x float64) (Point, error) {
	k, err := l.Slope()
	if err != nil {
		return Point{}, err
	}

	return Point{X: x, Y: l.Start.Y + (x-l.Start.X)*k}, nil
}

// PointAtY returns the point of the (infinite) line with the given y.
func (l Line) PointAtY(y float64) (Point, error) {
	k, err := l.Slope()
	if err != nil {
		return Point{}, err
	}

	return Point{X: l.Start.X + (y-l.Start.Y)/k, Y: y}, nil
}

// Shift translates both endpoints by dx, dy.
func (l *Line) Shift(dx, dy float64) error {
	l.Start = l.Start.Shift(dx, dy)
	l.End = l.End.Shift(dx, dy)

	return nil
}

// MaxDist is the closest-corner separation between l and other: for each
// endpoint of l take the distance to the nearer endpoint of other, then
// return the larger of the two. It is a conservative approximation of
// segment distance and is used as is for separation checks.
//
// Complexity: O(1).
func (l Line) MaxDist(other Line) float64 {
	minStart := math.Min(l.Start.Dist(other.Start), l.Start.Dist(other.End))
	minEnd := math.Min(l.End.Dist(other.Start), l.End.Dist(other.End))

	return math.Max(minStart, minEnd)
}

// FlingTo returns an AttachedLine starting at a random point of l and ending
// at a random point of other, at least MinFlingLength long. It gives up with
// ErrTooClose after MaxFlingAttempts draws.
//
// Complexity: O(MaxFlingAttempts) worst case.
func (l *Line) FlingTo(other *Line, rng *rand.Rand) (*AttachedLine, error) {
	for attempt := 0; attempt < MaxFlingAttempts; attempt++ {
		start := l.RandomPoint(rng)
		end := other.RandomPoint(rng)
		if start.Dist(end) > MinFlingLength {
			return NewAttachedLine(start, end, l, other), nil
		}
	}

	return nil, geomErrorf(methodFlingTo, "%s to %s after %d attempts", ErrTooClose, *l, *other, MaxFlingAttempts)
}

// ExtendedVersion returns a new AttachedLine on the same infinite line as l,
// stretched to and anchored on the borders of b. l itself is not modified.
//
// Complexity: O(1).
func (l Line) ExtendedVersion(b Box) *AttachedLine {
	start, end, startSide, endSide := clipToBox(l, b)

	return NewAttachedLine(start, end, b.Border(startSide), b.Border(endSide))
}

// uniform draws from [a, b) regardless of argument order.
func uniform(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}

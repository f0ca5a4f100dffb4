// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. Equality is exact on (X, Y), so Points may be
// compared with == and used as map keys.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// String renders p as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Add returns p translated by v.
func (p Point) Add(v Vector) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector { return Vector{X: p.X - q.X, Y: p.Y - q.Y} }

// Shift returns p moved by dx, dy.
func (p Point) Shift(dx, dy float64) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point { return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2} }

// IsOnLine reports whether p lies on the infinite line through l,
// within OnLineTolerance. Axis-aligned lines compare a single coordinate;
// diagonal lines compare p.Y against the line's y at p.X.
func (p Point) IsOnLine(l Line) bool {
	if l.IsHorizontal() {
		return math.Abs(l.Start.Y-p.Y) < OnLineTolerance
	}
	if l.IsVertical() {
		return math.Abs(l.Start.X-p.X) < OnLineTolerance
	}
	k := (l.End.Y - l.Start.Y) / (l.End.X - l.Start.X)
	yhat := l.Start.Y + (p.X-l.Start.X)*k

	return math.Abs(yhat-p.Y) < OnLineTolerance
}

// InBox reports whether p lies inside b or on its border (exact comparison).
func (p Point) InBox(b Box) bool {
	top, right, bottom, left := boxEdges(b)

	return p.X >= left && p.X <= right && p.Y >= bottom && p.Y <= top
}

// snapOnto pins p exactly onto every axis-aligned line in ls, removing the
// rounding left behind by a numeric intersection.
func snapOnto(p Point, ls ...Line) Point {
	for _, l := range ls {
		switch {
		case l.IsHorizontal() && !l.IsVertical():
			p.Y = l.Start.Y
		case l.IsVertical() && !l.IsHorizontal():
			p.X = l.Start.X
		}
	}

	return p
}

// SPDX-License-Identifier: MIT
// Package: leftstim/geom
//
// intersect.go - intersection of the infinite lines through two segments.
//
// The two line equations are solved as a 2x2 system with gonum's mat.Dense.
// Near-parallel inputs (cross product below ParallelTolerance) fail with
// ErrParallelLines before any solve is attempted.

package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Intersection returns the point where the infinite lines through l and other
// meet. It solves t·d1 + s·d2 = other.Start − l.Start for the direction vectors
// d1, d2 and evaluates l at t. Lines whose direction cross product is below
// ParallelTolerance fail with ErrParallelLines.
//
// Complexity: O(1).
func (l Line) Intersection(other Line) (Point, error) {
	d1, d2 := l.Dir(), other.Dir()
	if math.Abs(d1.Cross(d2)) < ParallelTolerance {
		return Point{}, geomErrorf(methodIntersection, "%s and %s", ErrParallelLines, l, other)
	}

	diff := other.Start.Sub(l.Start)
	a := mat.NewDense(2, 2, []float64{
		d1.X, d2.X,
		d1.Y, d2.Y,
	})
	b := mat.NewVecDense(2, []float64{diff.X, diff.Y})

	// A mat.Condition error still leaves a usable solution in ts.
	var (
		ts   mat.VecDense
		cond mat.Condition
	)
	if err := ts.SolveVec(a, b); err != nil && !errors.As(err, &cond) {
		return Point{}, geomErrorf(methodIntersection, "solve: %v", ErrParallelLines, err)
	}

	return l.Start.Add(d1.Scale(ts.AtVec(0))), nil
}

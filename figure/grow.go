// SPDX-License-Identifier: MIT
// Package: leftstim/figure
//
// grow.go - embedding the figure: extending its edges and growing
// frame-spanning lines through its vertices.

package figure

import (
	"fmt"

	"github.com/katalvlaran/leftstim/geom"
)

// freePointRadius is the distance within which another vertex closes a loose end.
const freePointRadius = 3.0

// ExtendLine extends a random unextended edge to the frame and returns true,
// or returns false when every edge is already extended.
//
// Complexity: O(E).
func (f *Figure) ExtendLine() bool {
	for _, i := range f.rng.Perm(len(f.edges)) {
		if f.edges[i].line.Extend(f.frame) {
			return true
		}
	}

	return false
}

// GrowLine grows a frame-to-frame line of orientation o through a random
// vertex that has not been grown from yet, and consumes that vertex.
// It returns ErrAllGrown when no such vertex remains.
func (f *Figure) GrowLine(o geom.Orientation) (*geom.AttachedLine, error) {
	for _, i := range f.rng.Perm(len(f.vertices)) {
		if f.vertices[i].grown.Engaged() {
			continue
		}

		return f.growFrom(i, o)
	}

	return nil, fmt.Errorf("GrowLine: %w", ErrAllGrown)
}

// growFrom builds the grown line through vertex i and engages its latch.
// Diagonals run through the vertex and the midpoint between it and a random
// frame point; axis-aligned lines run through the vertex directly.
func (f *Figure) growFrom(i int, o geom.Orientation) (*geom.AttachedLine, error) {
	p := f.vertices[i].p
	var guide geom.Line
	switch o {
	case geom.Horizontal:
		guide = geom.Line{Start: p, End: p.Shift(1, 0)}
	case geom.Vertical:
		guide = geom.Line{Start: p, End: p.Shift(0, 1)}
	case geom.Diagonal:
		guide = geom.Line{Start: p, End: p.Midpoint(f.frame.RandomPoint(f.rng))}
	default:
		return nil, fmt.Errorf("GrowLine: %v: %w", o, geom.ErrUnknownOrientation)
	}

	grown := guide.ExtendedVersion(f.frame)
	f.vertices[i].grown.Engage()

	return grown, nil
}

// FindFreePoints returns the loose ends of the figure: vertices that have not
// been grown from, are not on the frame's border lines, belong to exactly one
// edge which is not extended, and have no other vertex within 3 units.
//
// Complexity: O(V·(V+E)).
func (f *Figure) FindFreePoints() []geom.Point {
	idx := f.freeVertices()
	out := make([]geom.Point, len(idx))
	for k, i := range idx {
		out[k] = f.vertices[i].p
	}

	return out
}

func (f *Figure) freeVertices() []int {
	var out []int
	for i, v := range f.vertices {
		if v.grown.Engaged() || f.frame.OnBorder(v.p) || f.degree(i) != 1 {
			continue
		}
		if f.edgeOf(i).line.Extended() {
			continue
		}
		if f.hasNeighbour(i) {
			continue
		}
		out = append(out, i)
	}

	return out
}

// edgeOf returns the first edge touching vertex i.
func (f *Figure) edgeOf(i int) edge {
	for _, e := range f.edges {
		if e.a == i || e.b == i {
			return e
		}
	}

	return edge{}
}

func (f *Figure) hasNeighbour(i int) bool {
	for j, v := range f.vertices {
		if j != i && v.p.Dist(f.vertices[i].p) < freePointRadius {
			return true
		}
	}

	return false
}

// CloseUpFreePoints grows one line of random orientation through every free
// point and marks the figure as closed. A figure that is already closed,
// topologically or by an earlier call, grows nothing and returns an empty
// slice.
//
// Complexity: O(V²) for the free-point scan plus one clip per free point.
func (f *Figure) CloseUpFreePoints() ([]*geom.AttachedLine, error) {
	closed := f.Closed()
	f.closedUp.Engage()
	if closed {
		return nil, nil
	}

	var out []*geom.AttachedLine
	for _, i := range f.freeVertices() {
		l, err := f.growFrom(i, geom.RandomOrientation(f.rng))
		if err != nil {
			return out, fmt.Errorf("CloseUpFreePoints: %w", err)
		}
		out = append(out, l)
	}

	return out, nil
}

// ClosedUp reports whether CloseUpFreePoints has run.
func (f *Figure) ClosedUp() bool { return f.closedUp.Engaged() }

// SPDX-License-Identifier: MIT
// Package: leftstim/figure
//
// position.go - rigid moves of the whole figure inside its frame.
//
// Contract:
//   • AlignWithFrame engages the lock of the axis it moved along, at most once
//     per axis; RandomlyPosition refuses to move a figure once either lock is
//     engaged.
//   • ShiftToFrame runs at most once per axis on its own latches, skips
//     aligned axes and never engages the alignment locks.
//   • Every move is rigid: all vertices shift by the same offset.

package figure

import "github.com/katalvlaran/leftstim/geom"

// PositionMargin is the minimum gap RandomlyPosition keeps between any figure
// vertex and any frame border.
const PositionMargin = 15.0

// shift moves every vertex by (dx, dy) and re-syncs edge endpoints.
// Extended endpoints that were already clipped stay on the border.
func (f *Figure) shift(dx, dy float64) {
	for i := range f.vertices {
		f.vertices[i].p = f.vertices[i].p.Shift(dx, dy)
	}
	for _, e := range f.edges {
		e.line.Start = f.vertices[e.a].p
		e.line.End = f.vertices[e.b].p
	}
}

// RandomlyPosition moves the figure to a uniformly random offset that keeps
// every vertex at least PositionMargin away from every border.
// It returns false, leaving the figure in place, when either axis is locked or
// the figure does not fit inside the margins.
//
// Complexity: O(V + E).
func (f *Figure) RandomlyPosition() bool {
	if f.lockedX.Engaged() || f.lockedY.Engaged() {
		return false
	}
	minX, minY, maxX, maxY := f.BoundingBox()
	loX := f.frame.LeftX() - minX + PositionMargin
	hiX := f.frame.RightX() - maxX - PositionMargin
	loY := f.frame.BottomY() - minY + PositionMargin
	hiY := f.frame.TopY() - maxY - PositionMargin
	if loX > hiX || loY > hiY {
		return false
	}

	f.shift(loX+(hiX-loX)*f.rng.Float64(), loY+(hiY-loY)*f.rng.Float64())

	return true
}

// extremeEdges returns the edges parallel to side s that lie on the figure's
// extreme coordinate towards s.
func (f *Figure) extremeEdges(s geom.Side) []*geom.FigureLine {
	minX, minY, maxX, maxY := f.BoundingBox()
	var out []*geom.FigureLine
	for _, e := range f.edges {
		l := e.line
		switch s {
		case geom.Top:
			if l.IsHorizontal() && l.Start.Y == maxY {
				out = append(out, l)
			}
		case geom.Bottom:
			if l.IsHorizontal() && l.Start.Y == minY {
				out = append(out, l)
			}
		case geom.Right:
			if l.IsVertical() && l.Start.X == maxX {
				out = append(out, l)
			}
		case geom.Left:
			if l.IsVertical() && l.Start.X == minX {
				out = append(out, l)
			}
		}
	}

	return out
}

// extremePoints returns the vertices lying on the figure's extreme coordinate
// towards s.
func (f *Figure) extremePoints(s geom.Side) []geom.Point {
	minX, minY, maxX, maxY := f.BoundingBox()
	var out []geom.Point
	for _, v := range f.vertices {
		var hit bool
		switch s {
		case geom.Top:
			hit = v.p.Y == maxY
		case geom.Bottom:
			hit = v.p.Y == minY
		case geom.Right:
			hit = v.p.X == maxX
		case geom.Left:
			hit = v.p.X == minX
		}
		if hit {
			out = append(out, v.p)
		}
	}

	return out
}

// offsetTo returns the shift that brings the figure's extreme towards s onto
// the corresponding border.
func (f *Figure) offsetTo(s geom.Side) (dx, dy float64) {
	minX, minY, maxX, maxY := f.BoundingBox()
	switch s {
	case geom.Top:
		return 0, f.frame.TopY() - maxY
	case geom.Bottom:
		return 0, f.frame.BottomY() - minY
	case geom.Right:
		return f.frame.RightX() - maxX, 0
	default:
		return f.frame.LeftX() - minX, 0
	}
}

// latches returns the alignment lock and the shift latch of the axis a move
// towards s runs along.
func (f *Figure) latches(s geom.Side) (lock, shifted *geom.Latch) {
	if s == geom.Top || s == geom.Bottom {
		return &f.lockedY, &f.shiftedY
	}

	return &f.lockedX, &f.shiftedX
}

// shuffledSides returns the four sides in random order.
func (f *Figure) shuffledSides() [4]geom.Side {
	sides := geom.Sides
	f.rng.Shuffle(len(sides), func(i, j int) { sides[i], sides[j] = sides[j], sides[i] })

	return sides
}

// AlignWithFrame tries the four sides in random order and, for the first side
// where the figure has an outermost edge parallel to it and the matching axis
// is unlocked, moves the figure so those edges lie on the border. The axis is
// locked and the aligned edges are marked extended.
//
// Complexity: O(V + E) per side tried.
func (f *Figure) AlignWithFrame() bool {
	for _, s := range f.shuffledSides() {
		lines := f.extremeEdges(s)
		lock, _ := f.latches(s)
		if len(lines) == 0 || lock.Engaged() {
			continue
		}
		dx, dy := f.offsetTo(s)
		f.shift(dx, dy)
		lock.Engage()
		for _, l := range lines {
			l.MarkExtended()
		}

		return true
	}

	return false
}

// ShiftToFrame tries the four sides in random order and, for the first side
// where the figure has a single outermost vertex and the matching axis is
// neither aligned nor shifted yet, moves the figure so that vertex touches the
// border. The alignment locks are read but never engaged.
//
// Complexity: O(V) per side tried.
func (f *Figure) ShiftToFrame() bool {
	for _, s := range f.shuffledSides() {
		lock, shifted := f.latches(s)
		if lock.Engaged() || shifted.Engaged() || len(f.extremePoints(s)) != 1 {
			continue
		}
		f.shift(f.offsetTo(s))
		shifted.Engage()

		return true
	}

	return false
}

// SPDX-License-Identifier: MIT
// Package: leftstim/frame
//
// fling.go - random border-anchored line generators.

package frame

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/leftstim/geom"
)

// FlingSideToSide returns a line spanning the frame from one border to another.
// Vertical lines run top→bottom and horizontal lines right→left at a shared
// random coordinate; diagonal requests join two distinct random borders.
//
// Complexity: O(1).
func (f *Frame) FlingSideToSide(o geom.Orientation, rng *rand.Rand) (*geom.AttachedLine, error) {
	switch o {
	case geom.Vertical:
		top, bottom := f.borders[geom.Top], f.borders[geom.Bottom]
		start := top.RandomPoint(rng)
		return geom.NewAttachedLine(start, geom.Pt(start.X, bottom.Start.Y), top, bottom), nil
	case geom.Horizontal:
		right, left := f.borders[geom.Right], f.borders[geom.Left]
		start := right.RandomPoint(rng)
		return geom.NewAttachedLine(start, geom.Pt(left.Start.X, start.Y), right, left), nil
	}

	i := rng.Intn(len(f.borders))
	j := rng.Intn(len(f.borders) - 1)
	if j >= i {
		j++
	}
	l, err := f.borders[i].FlingTo(f.borders[j], rng)
	if err != nil {
		return nil, fmt.Errorf("FlingSideToSide: %w", err)
	}

	return l, nil
}

// FlingSideToLine returns a line from a random point of start to a border.
// Vertical requests end straight above or below on the top/bottom border,
// horizontal requests straight across on the left/right border, and diagonal
// requests at a random point of a random border. Draws are repeated until the
// line is longer than geom.MinFlingLength; after geom.MaxFlingAttempts the
// call fails with geom.ErrTooClose.
//
// Complexity: O(geom.MaxFlingAttempts) worst case.
func (f *Frame) FlingSideToLine(start *geom.Line, o geom.Orientation, rng *rand.Rand) (*geom.AttachedLine, error) {
	if start == nil {
		return nil, fmt.Errorf("FlingSideToLine: nil start line: %w", geom.ErrInvalidOperation)
	}

	for attempt := 0; attempt < geom.MaxFlingAttempts; attempt++ {
		from := start.RandomPoint(rng)

		var (
			owner *geom.Line
			to    geom.Point
		)
		switch o {
		case geom.Vertical:
			owner = f.borders[[2]geom.Side{geom.Top, geom.Bottom}[rng.Intn(2)]]
			to = geom.Pt(from.X, owner.Start.Y)
		case geom.Horizontal:
			owner = f.borders[[2]geom.Side{geom.Right, geom.Left}[rng.Intn(2)]]
			to = geom.Pt(owner.Start.X, from.Y)
		default:
			owner = f.borders[rng.Intn(len(f.borders))]
			to = owner.RandomPoint(rng)
		}

		if from.Dist(to) > geom.MinFlingLength {
			return geom.NewAttachedLine(from, to, start, owner), nil
		}
	}

	return nil, fmt.Errorf("FlingSideToLine: from %s after %d attempts: %w", *start, geom.MaxFlingAttempts, geom.ErrTooClose)
}

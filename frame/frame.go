// SPDX-License-Identifier: MIT
// Package: leftstim/frame
//
// frame.go - the rectangular frame and its queries.
//
// Contract:
//   • Borders are stored in geom.Side order and never move after New.
//   • Adjacent borders share their corner points exactly.
//   • Contains and OnBorder use exact comparisons; BorderAt uses
//     geom.OnLineTolerance.

package frame

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/leftstim/geom"
)

// Frame is an axis-aligned rectangle given by its four border lines.
type Frame struct {
	borders [4]*geom.Line // indexed by geom.Side
	width   float64
	height  float64
}

var _ geom.Box = (*Frame)(nil)

// New builds a frame from its top and right borders.
// The top border must be horizontal and the right border vertical, and the
// right border's upper end must be the top border's right end. The bottom and
// left borders are the top/right borders moved by -height/-width, so all four
// corners are shared.
//
// Errors: ErrNotAxisAligned, ErrBadSize, ErrNoSharedCorner.
// Complexity: O(1).
func New(top, right geom.Line) (*Frame, error) {
	if !top.IsHorizontal() || !right.IsVertical() {
		return nil, fmt.Errorf("New: top %s, right %s: %w", top, right, ErrNotAxisAligned)
	}
	width := math.Abs(top.End.X - top.Start.X)
	height := math.Abs(right.End.Y - right.Start.Y)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New: %gx%g: %w", width, height, ErrBadSize)
	}
	corner := geom.Pt(math.Max(top.Start.X, top.End.X), top.Start.Y)
	if corner != geom.Pt(right.Start.X, math.Max(right.Start.Y, right.End.Y)) {
		return nil, fmt.Errorf("New: top %s, right %s: %w", top, right, ErrNoSharedCorner)
	}

	bottom := top
	_ = bottom.Shift(0, -height)
	left := right
	_ = left.Shift(-width, 0)

	f := &Frame{width: width, height: height}
	f.borders[geom.Top] = &top
	f.borders[geom.Right] = &right
	f.borders[geom.Bottom] = &bottom
	f.borders[geom.Left] = &left

	return f, nil
}

// NewCentered builds a width×height frame centred on the origin.
func NewCentered(width, height float64) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewCentered: %gx%g: %w", width, height, ErrBadSize)
	}
	w, h := width/2, height/2

	return New(
		geom.Line{Start: geom.Pt(-w, h), End: geom.Pt(w, h)},
		geom.Line{Start: geom.Pt(w, h), End: geom.Pt(w, -h)},
	)
}

// Border returns the border line on side s.
func (f *Frame) Border(s geom.Side) *geom.Line { return f.borders[s] }

// Lines returns the borders in top, right, bottom, left order.
func (f *Frame) Lines() []*geom.Line {
	return []*geom.Line{f.borders[geom.Top], f.borders[geom.Right], f.borders[geom.Bottom], f.borders[geom.Left]}
}

// Width is the horizontal extent of the frame.
func (f *Frame) Width() float64 { return f.width }

// Height is the vertical extent of the frame.
func (f *Frame) Height() float64 { return f.height }

// TopY is the y of the top border.
func (f *Frame) TopY() float64 { return f.borders[geom.Top].Start.Y }

// RightX is the x of the right border.
func (f *Frame) RightX() float64 { return f.borders[geom.Right].Start.X }

// BottomY is the y of the bottom border.
func (f *Frame) BottomY() float64 { return f.borders[geom.Bottom].Start.Y }

// LeftX is the x of the left border.
func (f *Frame) LeftX() float64 { return f.borders[geom.Left].Start.X }

// Contains reports whether p is inside the frame or on its border.
func (f *Frame) Contains(p geom.Point) bool { return p.InBox(f) }

// OnBorder reports whether p shares an exact x with the left/right border or an
// exact y with the top/bottom border.
func (f *Frame) OnBorder(p geom.Point) bool {
	return p.X == f.LeftX() || p.X == f.RightX() || p.Y == f.TopY() || p.Y == f.BottomY()
}

// Coincides reports whether l runs exactly along one of the borders' lines.
func (f *Frame) Coincides(l geom.Line) bool {
	if l.IsHorizontal() && (l.Start.Y == f.TopY() || l.Start.Y == f.BottomY()) {
		return true
	}

	return l.IsVertical() && (l.Start.X == f.LeftX() || l.Start.X == f.RightX())
}

// IsBorder reports whether l is one of the frame's own border lines.
func (f *Frame) IsBorder(l *geom.Line) bool {
	for _, b := range f.borders {
		if b == l {
			return true
		}
	}

	return false
}

// BorderAt returns the border p lies on within geom.OnLineTolerance. When p is
// a corner the last matching border in top, right, bottom, left order wins.
//
// Complexity: O(1).
func (f *Frame) BorderAt(p geom.Point) (*geom.Line, error) {
	var hit *geom.Line
	for _, s := range geom.Sides {
		if p.IsOnLine(*f.borders[s]) {
			hit = f.borders[s]
		}
	}
	if hit == nil {
		return nil, fmt.Errorf("BorderAt: %s: %w", p, geom.ErrNoBorder)
	}

	return hit, nil
}

// RandomPoint returns a random point on a random border.
func (f *Frame) RandomPoint(rng *rand.Rand) geom.Point {
	return f.borders[rng.Intn(len(f.borders))].RandomPoint(rng)
}

// SPDX-License-Identifier: MIT

package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leftstim/geom"
)

// TestLine_Orientation covers the exact orientation tests and their precedence.
func TestLine_Orientation(t *testing.T) {
	cases := []struct {
		name string
		line geom.Line
		want geom.Orientation
	}{
		{"Horizontal", geom.Line{Start: geom.Pt(0, 5), End: geom.Pt(10, 5)}, geom.Horizontal},
		{"Vertical", geom.Line{Start: geom.Pt(3, 0), End: geom.Pt(3, 9)}, geom.Vertical},
		{"Diagonal", geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(1, 2)}, geom.Diagonal},
		{"AlmostHorizontalIsDiagonal", geom.Line{Start: geom.Pt(0, 5), End: geom.Pt(10, 5.0000001)}, geom.Diagonal},
		{"DegenerateIsVertical", geom.Line{Start: geom.Pt(1, 1), End: geom.Pt(1, 1)}, geom.Vertical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.line.Orientation())
		})
	}
}

// TestLine_Slope checks the undefined-slope error class.
func TestLine_Slope(t *testing.T) {
	k, err := geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(2, 4)}.Slope()
	require.NoError(t, err)
	require.Equal(t, 2.0, k)

	_, err = geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(2, 0)}.Slope()
	require.True(t, errors.Is(err, geom.ErrUndefinedSlope))

	_, err = geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(0, 2)}.PointAtX(1)
	require.ErrorIs(t, err, geom.ErrUndefinedSlope)
}

// TestLine_PointAt checks evaluation of a diagonal line at x and y.
func TestLine_PointAt(t *testing.T) {
	l := geom.Line{Start: geom.Pt(0, 1), End: geom.Pt(2, 5)}
	p, err := l.PointAtX(3)
	require.NoError(t, err)
	require.Equal(t, geom.Pt(3, 7), p)

	p, err = l.PointAtY(3)
	require.NoError(t, err)
	require.Equal(t, geom.Pt(1, 3), p)
}

// TestLine_RandomPointWithinBounds samples many points and checks the closed
// bounding interval of the segment on both axes.
func TestLine_RandomPointWithinBounds(t *testing.T) {
	rng := newRand()
	lines := []geom.Line{
		{Start: geom.Pt(-20, 7), End: geom.Pt(40, 7)},
		{Start: geom.Pt(3, 50), End: geom.Pt(3, -50)},
		{Start: geom.Pt(10, -10), End: geom.Pt(-30, 70)},
		{Start: geom.Pt(4, 4), End: geom.Pt(4, 4)},
	}
	for _, l := range lines {
		for i := 0; i < 500; i++ {
			p := l.RandomPoint(rng)
			require.GreaterOrEqual(t, p.X, math.Min(l.Start.X, l.End.X)-1e-9)
			require.LessOrEqual(t, p.X, math.Max(l.Start.X, l.End.X)+1e-9)
			require.GreaterOrEqual(t, p.Y, math.Min(l.Start.Y, l.End.Y)-1e-9)
			require.LessOrEqual(t, p.Y, math.Max(l.Start.Y, l.End.Y)+1e-9)
			require.True(t, p.IsOnLine(l) || l.Length() == 0)
		}
	}
}

// TestLine_Intersection verifies the solved point lies on both lines and that
// parallel or coincident lines are rejected.
func TestLine_Intersection(t *testing.T) {
	rng := newRand()
	for i := 0; i < 200; i++ {
		a := geom.Line{Start: geom.Pt(rng.Float64()*200-100, rng.Float64()*200-100), End: geom.Pt(rng.Float64()*200-100, rng.Float64()*200-100)}
		b := geom.Line{Start: geom.Pt(rng.Float64()*200-100, rng.Float64()*200-100), End: geom.Pt(rng.Float64()*200-100, rng.Float64()*200-100)}
		p, err := a.Intersection(b)
		if err != nil {
			require.ErrorIs(t, err, geom.ErrParallelLines)
			continue
		}
		require.True(t, p.IsOnLine(a), "%s not on %s", p, a)
		require.True(t, p.IsOnLine(b), "%s not on %s", p, b)
	}

	h := geom.Line{Start: geom.Pt(-10, 3), End: geom.Pt(10, 3)}
	v := geom.Line{Start: geom.Pt(4, -10), End: geom.Pt(4, 10)}
	p, err := h.Intersection(v)
	require.NoError(t, err)
	require.InDelta(t, 4, p.X, 1e-9)
	require.InDelta(t, 3, p.Y, 1e-9)

	_, err = h.Intersection(geom.Line{Start: geom.Pt(0, 8), End: geom.Pt(5, 8)})
	require.ErrorIs(t, err, geom.ErrParallelLines)
	_, err = h.Intersection(h)
	require.ErrorIs(t, err, geom.ErrParallelLines)
}

// TestLine_MaxDist checks the closest-corner metric on crossing lines, where
// it differs from the true segment distance.
func TestLine_MaxDist(t *testing.T) {
	a := geom.Line{Start: geom.Pt(-50, 0), End: geom.Pt(50, 0)}
	b := geom.Line{Start: geom.Pt(0, -50), End: geom.Pt(0, 50)}
	require.InDelta(t, math.Hypot(50, 50), a.MaxDist(b), 1e-9)

	c := geom.Line{Start: geom.Pt(-50, 10), End: geom.Pt(50, 0)}
	require.InDelta(t, 10, a.MaxDist(c), 1e-9)
}

// TestLine_FlingTo checks length and anchoring, and the give-up condition.
func TestLine_FlingTo(t *testing.T) {
	rng := newRand()
	a := geom.NewLine(geom.Pt(-100, 100), geom.Pt(100, 100))
	b := geom.NewLine(geom.Pt(-100, -100), geom.Pt(100, -100))
	for i := 0; i < 50; i++ {
		fl, err := a.FlingTo(b, rng)
		require.NoError(t, err)
		require.Greater(t, fl.Length(), geom.MinFlingLength)
		require.True(t, fl.Attached())
		require.True(t, fl.TouchesLine(a))
		require.True(t, fl.TouchesLine(b))
	}

	tiny := geom.NewLine(geom.Pt(0, 0), geom.Pt(1, 1))
	_, err := tiny.FlingTo(geom.NewLine(geom.Pt(2, 2), geom.Pt(3, 1)), rng)
	require.ErrorIs(t, err, geom.ErrTooClose)
}

// TestLine_ExtendedVersion checks anchoring on the matching borders and that the
// receiver is left unchanged.
func TestLine_ExtendedVersion(t *testing.T) {
	box := newSquareBox(boxHalf)
	cases := []struct {
		name           string
		line           geom.Line
		startOn, endOn geom.Side
		startPt, endPt geom.Point
	}{
		{"Horizontal", geom.Line{Start: geom.Pt(-10, 20), End: geom.Pt(30, 20)}, geom.Left, geom.Right, geom.Pt(-150, 20), geom.Pt(150, 20)},
		{"Vertical", geom.Line{Start: geom.Pt(5, -10), End: geom.Pt(5, 40)}, geom.Bottom, geom.Top, geom.Pt(5, -150), geom.Pt(5, 150)},
		{"RisingShallow", geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(10, 5)}, geom.Left, geom.Right, geom.Pt(-150, -75), geom.Pt(150, 75)},
		{"RisingSteep", geom.Line{Start: geom.Pt(10, 20), End: geom.Pt(0, 0)}, geom.Bottom, geom.Top, geom.Pt(-75, -150), geom.Pt(75, 150)},
		{"FallingShallow", geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(10, -5)}, geom.Left, geom.Right, geom.Pt(-150, 75), geom.Pt(150, -75)},
		{"FallingSteep", geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(10, -20)}, geom.Top, geom.Bottom, geom.Pt(-75, 150), geom.Pt(75, -150)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orig := tc.line
			ext := tc.line.ExtendedVersion(box)
			require.Equal(t, orig, tc.line)
			require.Same(t, box.Border(tc.startOn), ext.StartOwner)
			require.Same(t, box.Border(tc.endOn), ext.EndOwner)
			require.InDelta(t, tc.startPt.X, ext.Start.X, 1e-9)
			require.InDelta(t, tc.startPt.Y, ext.Start.Y, 1e-9)
			require.InDelta(t, tc.endPt.X, ext.End.X, 1e-9)
			require.InDelta(t, tc.endPt.Y, ext.End.Y, 1e-9)
			require.True(t, ext.Attached())
		})
	}
}

// TestParseOrientation covers the three tokens and the error path.
func TestParseOrientation(t *testing.T) {
	for _, o := range []geom.Orientation{geom.Horizontal, geom.Vertical, geom.Diagonal} {
		got, err := geom.ParseOrientation(o.String())
		require.NoError(t, err)
		require.Equal(t, o, got)
	}
	_, err := geom.ParseOrientation("sideways")
	require.ErrorIs(t, err, geom.ErrUnknownOrientation)
}

// TestLatch checks the single allowed transition.
func TestLatch(t *testing.T) {
	var l geom.Latch
	require.False(t, l.Engaged())
	require.True(t, l.Engage())
	require.True(t, l.Engaged())
	require.False(t, l.Engage())
	require.True(t, l.Engaged())
}

// SPDX-License-Identifier: MIT

package scene_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leftstim/figure"
	"github.com/katalvlaran/leftstim/geom"
	"github.com/katalvlaran/leftstim/scene"
)

const seed = 42

func newScene(t *testing.T, opts ...scene.Option) *scene.Scene {
	t.Helper()
	s, err := scene.New(append([]scene.Option{scene.WithSeed(seed)}, opts...)...)
	require.NoError(t, err)

	return s
}

func TestNew_Defaults(t *testing.T) {
	s := newScene(t)
	require.Equal(t, 300.0, s.Frame().Width())
	require.Equal(t, 300.0, s.Frame().Height())
	w, h := s.CanvasSize()
	require.Equal(t, 500, w)
	require.Equal(t, 500, h)
	require.Nil(t, s.Figure())
	require.Nil(t, s.FigureOnly())
	require.Empty(t, s.AllLines())

	s = newScene(t, scene.WithFrameSize(200, 100), scene.WithCanvasSize(320, 240))
	require.Equal(t, 200.0, s.Frame().Width())
	require.Equal(t, 50.0, s.Frame().TopY())
	w, h = s.CanvasSize()
	require.Equal(t, 320, w)
	require.Equal(t, 240, h)
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { scene.WithRand(nil) })
	require.Panics(t, func() { scene.WithLogger(nil) })
	require.Panics(t, func() { scene.WithFrameSize(0, 10) })
	require.Panics(t, func() { scene.WithCanvasSize(10, -1) })
	require.Panics(t, func() { scene.WithSeparation(-1) })
	require.NotPanics(t, func() { scene.WithSeparation(0) })
}

func TestNoFigure(t *testing.T) {
	s := newScene(t)
	require.False(t, s.RandomlyPositionFigure())
	require.False(t, s.AlignFigureWithFrame())
	require.False(t, s.ShiftFigureToFrame())
	require.False(t, s.ExtendFigureLine())
	require.False(t, s.ExtendAllFigureLines())
	require.False(t, s.ExtendTwoThirdsFigureLines())
	require.False(t, s.GrowFigureLine())

	_, err := s.CloseFigureFreePoints()
	require.ErrorIs(t, err, scene.ErrNoFigure)
	_, err = s.ReplaceFigureWithLines()
	require.ErrorIs(t, err, scene.ErrNoFigure)
	require.ErrorIs(t, s.AddFigure(nil), scene.ErrNoFigure)
	require.ErrorIs(t, s.AddFigureByName("E5"), figure.ErrUnknownFigure)
}

func TestAddFigure_RebindsFrame(t *testing.T) {
	s := newScene(t)
	other := newScene(t, scene.WithFrameSize(100, 100))
	fig, err := figure.NewFromTemplate("A1", other.Frame())
	require.NoError(t, err)

	require.NoError(t, s.AddFigure(fig))
	require.Same(t, s.Frame(), fig.Frame())
	require.NotNil(t, s.FigureOnly())
	require.NotSame(t, fig, s.FigureOnly())

	name, err := s.AddRandomFigure()
	require.NoError(t, err)
	require.Contains(t, figure.TemplateNames(), name)
	require.Equal(t, name, s.Figure().Name())
}

func TestFigureOnly_Snapshot(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.AddFigureByName("A2"))
	require.True(t, s.RandomlyPositionFigure())
	require.Equal(t, s.Figure().Points(), s.FigureOnly().Points())

	require.True(t, s.ExtendAllFigureLines())
	require.False(t, s.ExtendAllFigureLines())
	require.Equal(t, 6, s.Figure().ExtendedCount())
	require.Equal(t, 0, s.FigureOnly().ExtendedCount())
}

func TestExtendTwoThirds(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.AddFigureByName("A1"))
	require.True(t, s.ExtendTwoThirdsFigureLines())
	require.Equal(t, 2, s.Figure().ExtendedCount())
	require.False(t, s.ExtendTwoThirdsFigureLines())
	require.Equal(t, 2, s.Figure().ExtendedCount())
}

func TestGrowFigureLine(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.AddFigureByName("A1"))
	for i := 0; i < 3; i++ {
		require.True(t, s.GrowFigureLine())
	}
	require.False(t, s.GrowFigureLine())
	require.Len(t, s.ExtraLines(), 3)
	for _, l := range s.ExtraLines() {
		require.True(t, l.Attached())
		require.True(t, s.Frame().IsBorder(l.StartOwner))
		require.True(t, s.Frame().IsBorder(l.EndOwner))
	}
}

func TestCloseFigureFreePoints(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.AddFigureByName("C3"))
	n, err := s.CloseFigureFreePoints()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Len(t, s.ExtraLines(), 3)

	n, err = s.CloseFigureFreePoints()
	require.NoError(t, err)
	require.Zero(t, n)
	require.Len(t, s.ExtraLines(), 3)
}

func TestAnchors_Required(t *testing.T) {
	s := newScene(t)
	require.ErrorIs(t, s.AddSideToLineLine(geom.Diagonal), scene.ErrNoAnchor)
	require.ErrorIs(t, s.AddLineToLineLine(), scene.ErrNoAnchor)

	require.NoError(t, s.AddSideToSideLine(geom.Vertical))
	require.ErrorIs(t, s.AddLineToLineLine(), scene.ErrNoAnchor)
	require.NoError(t, s.AddSideToLineLine(geom.Horizontal))
	require.NoError(t, s.AddLineToLineLine())
	require.Len(t, s.ExtraLines(), 3)
	require.Empty(t, s.FigureLinkedLines())
}

func TestRouting_FigureLinked(t *testing.T) {
	s := newScene(t, scene.WithSeparation(0))
	require.NoError(t, s.AddFigureByName("A2"))
	require.True(t, s.RandomlyPositionFigure())

	// Only figure edges are available as anchors.
	require.NoError(t, s.AddSideToLineLine(geom.Diagonal))
	require.Len(t, s.FigureLinkedLines(), 1)
	require.Empty(t, s.ExtraLines())

	// A line-to-line line always ends on an extra line; it is linked only
	// when it starts on a figure edge.
	require.NoError(t, s.AddSideToSideLine(geom.Horizontal))
	require.NoError(t, s.AddLineToLineLine())
	require.Equal(t, 3, len(s.ExtraLines())+len(s.FigureLinkedLines()))

	for _, l := range s.FigureLinkedLines() {
		require.True(t, l.Attached())
		touches := false
		for _, fl := range s.Figure().Lines() {
			touches = touches || l.TouchesLine(&fl.Line)
		}
		require.True(t, touches)
	}
}

func TestAddRandomLine_ConstructFailed(t *testing.T) {
	s := newScene(t, scene.WithFrameSize(30, 30), scene.WithSeparation(1000))
	// The first line has nothing to keep away from.
	require.NoError(t, s.AddRandomLine(geom.Horizontal))
	require.ErrorIs(t, s.AddRandomLine(geom.Horizontal), scene.ErrConstructFailed)
	require.Len(t, s.ExtraLines(), 1)
}

func TestAddSideToSideLine_TooClose(t *testing.T) {
	s := newScene(t, scene.WithSeparation(1000))
	require.NoError(t, s.AddSideToSideLine(geom.Horizontal))
	require.ErrorIs(t, s.AddSideToSideLine(geom.Horizontal), geom.ErrTooClose)
}

func TestJiggleExtraLines(t *testing.T) {
	s := newScene(t)
	for _, o := range []geom.Orientation{geom.Horizontal, geom.Vertical, geom.Diagonal} {
		require.NoError(t, s.AddSideToSideLine(o))
	}
	require.Equal(t, 3, s.JiggleExtraLines())

	for i, l := range s.ExtraLines() {
		require.True(t, l.Attached())
		if i < 2 {
			require.Equal(t, []geom.Orientation{geom.Horizontal, geom.Vertical}[i], l.Orientation())
		}
	}
}

func TestReplaceFigureWithLines_TooFewLines(t *testing.T) {
	s := newScene(t)
	require.NoError(t, s.AddFigureByName("A1"))
	require.NoError(t, s.AddSideToSideLine(geom.Horizontal))
	require.NoError(t, s.AddSideToSideLine(geom.Vertical))

	_, err := s.ReplaceFigureWithLines()
	require.ErrorIs(t, err, scene.ErrTooFewLines)
	require.NotNil(t, s.Figure())
	require.Len(t, s.ExtraLines(), 2)
}

// TestReplaceFigureWithLines_RollsBack forces every replacement to fail and
// checks the scene is left exactly as it was.
func TestReplaceFigureWithLines_RollsBack(t *testing.T) {
	for s := int64(1); s <= 5; s++ {
		sc, err := scene.New(scene.WithSeed(s), scene.WithSeparation(1e6))
		require.NoError(t, err)
		require.NoError(t, sc.AddFigureByName("A2"))
		require.True(t, sc.GrowFigureLine())

		fig, only := sc.Figure(), sc.FigureOnly()
		points := fig.Points()
		extra := sc.ExtraLines()
		grown := *extra[0]
		all := sc.AllLines()
		require.Len(t, all, 7)

		_, err = sc.ReplaceFigureWithLines()
		require.ErrorIs(t, err, scene.ErrConstructFailed)
		require.Same(t, fig, sc.Figure())
		require.Same(t, only, sc.FigureOnly())
		require.Equal(t, points, sc.Figure().Points())
		require.Equal(t, extra, sc.ExtraLines())
		require.Equal(t, grown, *sc.ExtraLines()[0])
		require.Empty(t, sc.FigureLinkedLines())
		require.Equal(t, all, sc.AllLines())
	}
}

// SPDX-License-Identifier: MIT

package scene_test

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/leftstim/geom"
	"github.com/katalvlaran/leftstim/scene"
)

// PipelineSuite builds the reference stimulus: a 300×300 frame in a 500×500
// canvas, figure A2 positioned and two-thirds extended, and one line of each
// orientation.
type PipelineSuite struct {
	suite.Suite
	seed  int64
	s     *scene.Scene
	logs  bytes.Buffer
	added []*geom.Line
}

func (ps *PipelineSuite) SetupTest() {
	ps.logs.Reset()
	s, err := scene.New(
		scene.WithSeed(ps.seed),
		scene.WithFrameSize(300, 300),
		scene.WithCanvasSize(500, 500),
		scene.WithLogger(log.New(&ps.logs, "", 0)),
	)
	ps.Require().NoError(err)
	ps.s = s
	ps.added = nil

	ps.Require().NoError(s.AddFigureByName("A2"))
	ps.Require().True(s.RandomlyPositionFigure())
	ps.Require().True(s.ExtendTwoThirdsFigureLines())

	for _, o := range []geom.Orientation{geom.Horizontal, geom.Vertical, geom.Diagonal} {
		before := s.AllLines()
		ps.Require().NoError(s.AddRandomLine(o))
		after := s.AllLines()
		ps.Require().Len(after, len(before)+1)
		added := newLine(before, after)
		ps.Require().NotNil(added)
		for _, l := range before {
			ps.Require().GreaterOrEqual(l.MaxDist(*added), 40.0, "%s vs %s", *l, *added)
		}
		ps.added = append(ps.added, added)
	}
}

// newLine returns the line in after that is not in before.
func newLine(before, after []*geom.Line) *geom.Line {
	seen := make(map[*geom.Line]bool, len(before))
	for _, l := range before {
		seen[l] = true
	}
	for _, l := range after {
		if !seen[l] {
			return l
		}
	}

	return nil
}

func (ps *PipelineSuite) TestEmbedded() {
	fig := ps.s.Figure()
	ps.Require().NotNil(fig)
	k := len(fig.Lines())
	ps.Require().Equal(6, k)
	ps.Require().GreaterOrEqual(fig.ExtendedCount(), int(math.Ceil(float64(k)*2/3)))
	ps.Require().Len(ps.added, 3)
	ps.Require().Equal(3, len(ps.s.ExtraLines())+len(ps.s.FigureLinkedLines()))

	for _, l := range append(ps.s.ExtraLines(), ps.s.FigureLinkedLines()...) {
		ps.Require().True(l.Attached())
	}
}

func (ps *PipelineSuite) TestReplaceFigure() {
	derived := len(ps.s.Figure().Lines()) + len(ps.s.FigureLinkedLines())
	extraBefore := len(ps.s.ExtraLines())
	ps.s.JiggleExtraLines()

	part, err := ps.s.ReplaceFigureWithLines()
	ps.Require().NoError(err)

	ps.Require().Nil(ps.s.Figure())
	ps.Require().Nil(ps.s.FigureOnly())
	ps.Require().Empty(ps.s.FigureLinkedLines())
	ps.Require().Equal(derived, part.Total())
	ps.Require().GreaterOrEqual(part.Jiggled, derived/3)
	ps.Require().LessOrEqual(part.Jiggled, derived/3*2)
	rest := derived - part.Jiggled
	ps.Require().GreaterOrEqual(part.LeftAlone, rest/3)
	ps.Require().LessOrEqual(part.LeftAlone, rest/3*2)
	ps.Require().Len(ps.s.ExtraLines(), extraBefore+derived)

	for _, l := range ps.s.ExtraLines() {
		ps.Require().NotNil(l.StartOwner)
		ps.Require().NotNil(l.EndOwner)
		ps.Require().True(l.Start.IsOnLine(*l.StartOwner), "%s start off %s", l.Line, *l.StartOwner)
		ps.Require().True(l.End.IsOnLine(*l.EndOwner), "%s end off %s", l.Line, *l.EndOwner)
	}

	_, err = ps.s.ReplaceFigureWithLines()
	ps.Require().ErrorIs(err, scene.ErrNoFigure)
}

func TestPipelineSuite(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 11, 2024} {
		suite.Run(t, &PipelineSuite{seed: seed})
	}
}

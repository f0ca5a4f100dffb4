// SPDX-License-Identifier: MIT
// Package: leftstim/scene
//
// scene.go - Scene state, figure management and accessors.

package scene

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/katalvlaran/leftstim/figure"
	"github.com/katalvlaran/leftstim/frame"
	"github.com/katalvlaran/leftstim/geom"
)

// Scene is one stimulus under construction.
type Scene struct {
	cfg    config
	frame  *frame.Frame
	fig    *figure.Figure
	only   *figure.Figure // snapshot for the figure-only view
	extra  []*geom.AttachedLine
	linked []*geom.AttachedLine
	rng    *rand.Rand
	log    *log.Logger
}

// New returns an empty scene with a frame centred on the origin.
func New(opts ...Option) (*Scene, error) {
	cfg := newConfig(opts...)
	fr, err := frame.NewCentered(cfg.frameW, cfg.frameH)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Scene{cfg: cfg, frame: fr, rng: cfg.rng, log: cfg.logger}, nil
}

// Frame returns the scene's frame.
func (s *Scene) Frame() *frame.Frame { return s.frame }

// CanvasSize returns the configured canvas dimensions.
func (s *Scene) CanvasSize() (w, h int) { return s.cfg.canvasW, s.cfg.canvasH }

// Figure returns the embedded figure, or nil.
func (s *Scene) Figure() *figure.Figure { return s.fig }

// FigureOnly returns the snapshot taken at the last positioning step, or nil.
func (s *Scene) FigureOnly() *figure.Figure { return s.only }

// ExtraLines returns the free-standing lines in creation order.
func (s *Scene) ExtraLines() []*geom.AttachedLine {
	return append([]*geom.AttachedLine(nil), s.extra...)
}

// FigureLinkedLines returns the lines attached to figure edges in creation order.
func (s *Scene) FigureLinkedLines() []*geom.AttachedLine {
	return append([]*geom.AttachedLine(nil), s.linked...)
}

// AllLines returns figure edges, extra lines and figure-linked lines, in
// that order, as the segments used for separation checks.
func (s *Scene) AllLines() []*geom.Line {
	var out []*geom.Line
	if s.fig != nil {
		for _, fl := range s.fig.Lines() {
			out = append(out, &fl.Line)
		}
	}
	for _, a := range s.extra {
		out = append(out, &a.Line)
	}
	for _, a := range s.linked {
		out = append(out, &a.Line)
	}

	return out
}

// AddFigure embeds fig, rebinding it to the scene's frame. Any previous
// figure is replaced.
func (s *Scene) AddFigure(fig *figure.Figure) error {
	if fig == nil {
		return fmt.Errorf("AddFigure: %w", ErrNoFigure)
	}
	fig.SetFrame(s.frame)
	s.fig = fig
	s.snapshot()

	return nil
}

// AddFigureByName embeds the named template figure.
func (s *Scene) AddFigureByName(name string) error {
	fig, err := figure.NewFromTemplate(name, s.frame, figure.WithRand(s.rng))
	if err != nil {
		return fmt.Errorf("AddFigureByName: %w", err)
	}

	return s.AddFigure(fig)
}

// AddRandomFigure embeds a uniformly chosen template figure and returns its name.
func (s *Scene) AddRandomFigure() (string, error) {
	name := figure.RandomTemplateName(s.rng)

	return name, s.AddFigureByName(name)
}

func (s *Scene) snapshot() { s.only = s.fig.Clone() }

// RandomlyPositionFigure moves the figure to a random place inside the frame.
// It returns false when there is no figure or the figure refuses to move.
func (s *Scene) RandomlyPositionFigure() bool {
	if s.fig == nil {
		return false
	}
	ok := s.fig.RandomlyPosition()
	s.snapshot()

	return ok
}

// AlignFigureWithFrame moves an outermost figure edge onto a border.
func (s *Scene) AlignFigureWithFrame() bool {
	if s.fig == nil {
		return false
	}
	ok := s.fig.AlignWithFrame()
	s.snapshot()

	return ok
}

// ShiftFigureToFrame moves a lone outermost figure vertex onto a border.
func (s *Scene) ShiftFigureToFrame() bool {
	if s.fig == nil {
		return false
	}
	ok := s.fig.ShiftToFrame()
	s.snapshot()

	return ok
}

// ExtendFigureLine extends one random unextended figure line.
func (s *Scene) ExtendFigureLine() bool {
	if s.fig == nil {
		return false
	}

	return s.fig.ExtendLine()
}

// ExtendAllFigureLines extends every remaining figure line and reports
// whether at least one was extended.
func (s *Scene) ExtendAllFigureLines() bool {
	n := 0
	for s.ExtendFigureLine() {
		n++
	}

	return n > 0
}

// ExtendTwoThirdsFigureLines extends figure lines until ⌈2k/3⌉ of the k lines
// are extended. It returns false when nothing had to be extended.
func (s *Scene) ExtendTwoThirdsFigureLines() bool {
	if s.fig == nil {
		return false
	}
	want := int(math.Ceil(float64(len(s.fig.Lines())) * 2 / 3))
	n := 0
	for i := s.fig.ExtendedCount(); i < want; i++ {
		if !s.fig.ExtendLine() {
			break
		}
		n++
	}

	return n > 0
}

// GrowFigureLine grows a line of random orientation through an unused figure
// vertex and adds it to the extra lines. It returns false when there is no
// figure or every vertex has been grown from.
func (s *Scene) GrowFigureLine() bool {
	if s.fig == nil {
		return false
	}
	l, err := s.fig.GrowLine(geom.RandomOrientation(s.rng))
	if err != nil {
		if !errors.Is(err, figure.ErrAllGrown) {
			s.log.Printf("[scene] grow figure line: %v", err)
		}
		return false
	}
	s.extra = append(s.extra, l)

	return true
}

// CloseFigureFreePoints strikes a grown line through every loose end of the
// figure and returns how many lines were added.
func (s *Scene) CloseFigureFreePoints() (int, error) {
	if s.fig == nil {
		return 0, fmt.Errorf("CloseFigureFreePoints: %w", ErrNoFigure)
	}
	grown, err := s.fig.CloseUpFreePoints()
	s.extra = append(s.extra, grown...)
	if err != nil {
		return len(grown), fmt.Errorf("CloseFigureFreePoints: %w", err)
	}

	return len(grown), nil
}

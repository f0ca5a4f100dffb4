// SPDX-License-Identifier: MIT
// Package: leftstim/scene
//
// lines.go - distractor line strategies under the separation constraint.
//
// Strategies:
//   • side-to-side : frame border to frame border (frame.FlingSideToSide)
//   • side-to-line : scene line to frame border (frame.FlingSideToLine)
//   • line-to-line : scene line to extra line (geom.Line.FlingTo)
//
// Anchors are figure edges and extra lines; figure-linked lines are never
// anchors. A new line that touches a figure edge is routed to the
// figure-linked collection, otherwise to the extra lines.

package scene

import (
	"fmt"

	"github.com/katalvlaran/leftstim/geom"
)

type strategy int

const (
	sideToSide strategy = iota
	lineToLine
	sideToLine
)

func (st strategy) String() string {
	switch st {
	case sideToSide:
		return "side-to-side"
	case lineToLine:
		return "line-to-line"
	default:
		return "side-to-line"
	}
}

// farEnough reports whether candidate keeps the separation to every line.
func (s *Scene) farEnough(candidate geom.Line) bool {
	for _, l := range s.AllLines() {
		if l.MaxDist(candidate) < s.cfg.separation {
			return false
		}
	}

	return true
}

// place draws candidates from gen until one is far enough from every line.
// Errors from gen abort immediately.
func (s *Scene) place(method string, gen func() (*geom.AttachedLine, error)) (*geom.AttachedLine, error) {
	for attempt := 0; attempt < maxSeparationAttempts; attempt++ {
		l, err := gen()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if s.farEnough(l.Line) {
			return l, nil
		}
	}

	return nil, fmt.Errorf("%s: separation %g after %d attempts: %w",
		method, s.cfg.separation, maxSeparationAttempts, geom.ErrTooClose)
}

// anchors returns the lines new lines may start on: figure edges first, then
// extra lines, with the number of figure edges.
func (s *Scene) anchors() (lines []*geom.Line, figureCount int) {
	if s.fig != nil {
		for _, fl := range s.fig.Lines() {
			lines = append(lines, &fl.Line)
		}
		figureCount = len(lines)
	}
	for _, a := range s.extra {
		lines = append(lines, &a.Line)
	}

	return lines, figureCount
}

// route appends l to the figure-linked lines when it touches a figure edge.
func (s *Scene) route(l *geom.AttachedLine) {
	if s.fig != nil {
		for _, fl := range s.fig.Lines() {
			if l.TouchesLine(&fl.Line) {
				s.linked = append(s.linked, l)
				return
			}
		}
	}
	s.extra = append(s.extra, l)
}

// AddSideToSideLine adds a border-to-border line of orientation o.
//
// Complexity: O(A·L) for A placement attempts and L scene lines.
func (s *Scene) AddSideToSideLine(o geom.Orientation) error {
	l, err := s.place("AddSideToSideLine", func() (*geom.AttachedLine, error) {
		return s.frame.FlingSideToSide(o, s.rng)
	})
	if err != nil {
		return err
	}
	s.extra = append(s.extra, l)

	return nil
}

// AddSideToLineLine adds a line of orientation o from a random figure edge or
// extra line to the frame. It fails with ErrNoAnchor on an empty scene.
func (s *Scene) AddSideToLineLine(o geom.Orientation) error {
	anchors, _ := s.anchors()
	if len(anchors) == 0 {
		return fmt.Errorf("AddSideToLineLine: %w", ErrNoAnchor)
	}
	l, err := s.place("AddSideToLineLine", func() (*geom.AttachedLine, error) {
		return s.frame.FlingSideToLine(anchors[s.rng.Intn(len(anchors))], o, s.rng)
	})
	if err != nil {
		return err
	}
	s.route(l)

	return nil
}

// AddLineToLineLine adds a line from a random figure edge or extra line to a
// different extra line. It needs two extra lines, or one extra line and a
// figure, and fails with ErrNoAnchor otherwise.
func (s *Scene) AddLineToLineLine() error {
	anchors, nFig := s.anchors()
	nExtra := len(anchors) - nFig
	if nExtra < 1 || len(anchors) < 2 {
		return fmt.Errorf("AddLineToLineLine: %w", ErrNoAnchor)
	}
	l, err := s.place("AddLineToLineLine", func() (*geom.AttachedLine, error) {
		end := anchors[nFig+s.rng.Intn(nExtra)]
		start := anchors[s.rng.Intn(len(anchors))]
		for start == end {
			start = anchors[s.rng.Intn(len(anchors))]
		}
		return start.FlingTo(end, s.rng)
	})
	if err != nil {
		return err
	}
	s.route(l)

	return nil
}

// AddRandomLine adds a line using a weighted random strategy (side-to-side 5,
// line-to-line 1, side-to-line 2), retrying failed strategies. Line-to-line
// lines ignore o. It fails with ErrConstructFailed after 1000 failures.
//
// Complexity: O(S·A·L) for S strategy attempts, A placement attempts and L scene lines.
func (s *Scene) AddRandomLine(o geom.Orientation) error {
	var last error
	for attempt := 0; attempt < maxStrategyAttempts; attempt++ {
		st := strategyWeights[s.rng.Intn(len(strategyWeights))]
		switch st {
		case sideToSide:
			last = s.AddSideToSideLine(o)
		case lineToLine:
			last = s.AddLineToLineLine()
		default:
			last = s.AddSideToLineLine(o)
		}
		if last == nil {
			return nil
		}
		s.log.Printf("[scene] %s %s line: %v, retrying", st, o, last)
	}

	return fmt.Errorf("AddRandomLine: %s after %d attempts: %w (last: %v)",
		o, maxStrategyAttempts, ErrConstructFailed, last)
}

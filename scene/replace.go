// SPDX-License-Identifier: MIT
// Package: leftstim/scene
//
// replace.go - the figure-removal transformation and extra-line jiggling.

package scene

import (
	"fmt"

	"github.com/katalvlaran/leftstim/figure"
	"github.com/katalvlaran/leftstim/geom"
)

// Partition reports how ReplaceFigureWithLines split the figure-derived lines.
// The three counts sum to the number of figure and figure-linked lines.
type Partition struct {
	Jiggled   int
	LeftAlone int
	Replaced  int
}

// Total is Jiggled + LeftAlone + Replaced.
func (p Partition) Total() int { return p.Jiggled + p.LeftAlone + p.Replaced }

// JiggleExtraLines perturbs every extra line along its owners. Lines that
// cannot be jiggled are logged and left as they are. It returns the number of
// lines that moved.
func (s *Scene) JiggleExtraLines() int {
	n := 0
	for _, l := range s.extra {
		if err := l.JiggleAll(s.rng); err != nil {
			s.log.Printf("[scene] jiggle %s: %v", l.Line, err)
			continue
		}
		n++
	}

	return n
}

// randBetween draws uniformly from [lo, hi].
func (s *Scene) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.rng.Intn(hi-lo+1)
}

// ReplaceFigureWithLines removes the figure and rebuilds a distractor-only
// scene of comparable difficulty.
//
// Every figure line and figure-linked line becomes its frame-spanning
// version. Of those n lines, a group of size in [n/3, 2·(n/3)] is jiggled
// and kept; of the remaining m, a group of size in [m/3, 2·(m/3)] is kept
// verbatim; the rest are replaced by new lines of the same orientation.
// While figure lines that were never extended remain to be accounted for,
// replacements use the line-to-line or side-to-side strategy; afterwards
// AddRandomLine. Finally every extra line is re-anchored on its owners.
//
// Fails with ErrNoFigure or ErrTooFewLines (fewer than 6 lines in the scene)
// without modifying the scene. When a replacement line cannot be placed the
// scene is restored to its state before the call and the error is returned.
//
// Complexity: O(R·A·L) for R replacements, A placement attempts and L scene lines.
func (s *Scene) ReplaceFigureWithLines() (Partition, error) {
	const method = "ReplaceFigureWithLines"
	if s.fig == nil {
		return Partition{}, fmt.Errorf("%s: %w", method, ErrNoFigure)
	}
	if total := len(s.AllLines()); total < minReplaceLines {
		return Partition{}, fmt.Errorf("%s: %d lines: %w", method, total, ErrTooFewLines)
	}

	var derived []*geom.AttachedLine
	unextended := 0
	for _, fl := range s.fig.Lines() {
		derived = append(derived, fl.Line.ExtendedVersion(s.frame))
		if !fl.Extended() {
			unextended++
		}
	}
	for _, l := range s.linked {
		derived = append(derived, l.Line.ExtendedVersion(s.frame))
	}
	saved := s.stage()
	s.fig, s.only, s.linked = nil, nil, nil

	n := len(derived)
	var part Partition
	part.Jiggled = s.randBetween(n/3, n/3*2)
	m := n - part.Jiggled
	part.LeftAlone = s.randBetween(m/3, m/3*2)
	part.Replaced = m - part.LeftAlone

	order := s.rng.Perm(n)
	for _, i := range order[:part.Jiggled] {
		l := derived[i]
		if err := l.JiggleAll(s.rng); err != nil {
			s.log.Printf("[scene] %s: jiggle %s: %v", method, l.Line, err)
		}
		s.extra = append(s.extra, l)
	}
	for _, i := range order[part.Jiggled : part.Jiggled+part.LeftAlone] {
		s.extra = append(s.extra, derived[i])
	}
	for _, i := range order[part.Jiggled+part.LeftAlone:] {
		o := derived[i].Orientation()
		if err := s.replaceLine(o, unextended > 0); err != nil {
			s.restore(saved)
			return Partition{}, fmt.Errorf("%s: %w", method, err)
		}
		if unextended > 0 {
			unextended--
		}
	}

	substituted := 0
	for _, l := range s.extra {
		if l.ExtendToParents(s.frame, s.rng) {
			substituted++
		}
	}
	if substituted > 0 {
		s.log.Printf("[scene] %s: %d lines substituted while re-anchoring", method, substituted)
	}

	return part, nil
}

// replaceLine adds one replacement line of orientation o. Constrained
// replacements try line-to-line or side-to-side first and fall back to
// AddRandomLine.
func (s *Scene) replaceLine(o geom.Orientation, constrained bool) error {
	if constrained {
		var err error
		if s.rng.Intn(2) == 0 {
			err = s.AddLineToLineLine()
		} else {
			err = s.AddSideToSideLine(o)
		}
		if err == nil {
			return nil
		}
		s.log.Printf("[scene] replace %s line: %v, falling back to random", o, err)
	}

	return s.AddRandomLine(o)
}

// staged holds the scene collections a multi-step transformation may need to
// roll back to.
type staged struct {
	fig, only     *figure.Figure
	extra, linked []*geom.AttachedLine
}

// stage records the current collections. Later appends never reach the
// recorded slices.
func (s *Scene) stage() staged {
	return staged{
		fig:    s.fig,
		only:   s.only,
		extra:  s.extra[:len(s.extra):len(s.extra)],
		linked: s.linked,
	}
}

func (s *Scene) restore(st staged) {
	s.fig, s.only, s.extra, s.linked = st.fig, st.only, st.extra, st.linked
}

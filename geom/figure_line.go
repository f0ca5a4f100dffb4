// SPDX-License-Identifier: MIT
// Package: leftstim/geom
//
// figure_line.go - figure edges with a one-shot frame extension.
//
// Contract:
//   • Line always holds the drawn segment of the figure.
//   • Extend and MarkExtended share one latch; whichever runs first wins.
//   • Ends reports the clipped endpoints only after Extend.

package geom

// FigureLine is a Line belonging to a figure. It can be extended once to the
// borders of a Box; the extension is kept in a separate endpoint pair so the
// original segment stays available for the figure-only view.
type FigureLine struct {
	Line

	extended Latch
	clipped  bool
	extStart Point
	extEnd   Point
}

// NewFigureLine returns an unextended FigureLine start→end.
func NewFigureLine(start, end Point) *FigureLine {
	return &FigureLine{Line: Line{Start: start, End: end}}
}

// Extend stretches the line to the borders of b and reports true, or reports
// false if the line was already extended (by Extend or MarkExtended).
func (f *FigureLine) Extend(b Box) bool {
	if f.extended.Engaged() {
		return false
	}
	f.extStart, f.extEnd, _, _ = clipToBox(f.Line, b)
	f.clipped = true
	f.extended.Engage()

	return true
}

// MarkExtended latches the line as extended without moving its drawn ends.
// Used for edges that already coincide with a border.
func (f *FigureLine) MarkExtended() bool { return f.extended.Engage() }

// Extended reports whether the line has been extended or marked extended.
func (f *FigureLine) Extended() bool { return f.extended.Engaged() }

// Ends returns the endpoints to draw: the extension once Extend has run,
// otherwise the original endpoints.
func (f *FigureLine) Ends() (Point, Point) {
	if f.clipped {
		return f.extStart, f.extEnd
	}

	return f.Start, f.End
}

// Drawn returns Ends as a Line.
func (f *FigureLine) Drawn() Line {
	s, e := f.Ends()

	return Line{Start: s, End: e}
}

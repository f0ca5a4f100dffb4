// SPDX-License-Identifier: MIT
// Package: leftstim/render
//
// draw.go - mapping scene coordinates onto a drawing surface.
//
// Scene coordinates are centred with y up; surfaces are top-left with y down.
// A point (x, y) is drawn at (w/2 + x, h/2 - y) for a w×h surface.

package render

import (
	"github.com/katalvlaran/leftstim/figure"
	"github.com/katalvlaran/leftstim/frame"
	"github.com/katalvlaran/leftstim/geom"
)

// Surface accepts line strokes in canvas pixel coordinates.
type Surface interface {
	// Size returns the canvas dimensions in pixels.
	Size() (w, h int)
	// Line strokes the segment (x1, y1)-(x2, y2).
	Line(x1, y1, x2, y2 float64)
}

// Stimulus is the read side of a scene.
type Stimulus interface {
	Frame() *frame.Frame
	Figure() *figure.Figure
	FigureOnly() *figure.Figure
	ExtraLines() []*geom.AttachedLine
	FigureLinkedLines() []*geom.AttachedLine
}

// stroke maps a centred, y-up segment onto surf.
func stroke(surf Surface, a, b geom.Point) {
	w, h := surf.Size()
	cx, cy := float64(w)/2, float64(h)/2
	surf.Line(cx+a.X, cy-a.Y, cx+b.X, cy-b.Y)
}

func drawFrame(fr *frame.Frame, surf Surface) {
	for _, b := range fr.Lines() {
		stroke(surf, b.Start, b.End)
	}
}

// Draw strokes the frame, the figure with its extensions, the extra lines and
// the figure-linked lines. Figure and extra lines lying on a border are skipped.
//
// Complexity: O(L) surface calls for L scene lines.
func Draw(st Stimulus, surf Surface) {
	fr := st.Frame()
	drawFrame(fr, surf)
	if fig := st.Figure(); fig != nil {
		for _, fl := range fig.Lines() {
			if fr.Coincides(fl.Line) {
				continue
			}
			s, e := fl.Ends()
			stroke(surf, s, e)
		}
	}
	for _, l := range st.ExtraLines() {
		if fr.Coincides(l.Line) {
			continue
		}
		stroke(surf, l.Start, l.End)
	}
	for _, l := range st.FigureLinkedLines() {
		stroke(surf, l.Start, l.End)
	}
}

// DrawFigureOnly strokes the frame and the unextended figure snapshot.
func DrawFigureOnly(st Stimulus, surf Surface) {
	fr := st.Frame()
	drawFrame(fr, surf)
	fig := st.FigureOnly()
	if fig == nil {
		return
	}
	for _, fl := range fig.Lines() {
		if fr.Coincides(fl.Line) {
			continue
		}
		stroke(surf, fl.Start, fl.End)
	}
}

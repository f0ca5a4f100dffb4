// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// SVG is a Surface writing an SVG document. Call Close to finish it.
type SVG struct {
	canvas *svg.SVG
	w, h   int
	pen    string
}

// NewSVG starts a w×h SVG document on out and paints the background.
func NewSVG(out io.Writer, w, h int, opts ...Option) *SVG {
	st := newStyle(opts...)
	canvas := svg.New(out)
	canvas.Start(w, h)
	canvas.Rect(0, 0, w, h, "fill:"+rgb(st.background))

	return &SVG{
		canvas: canvas,
		w:      w,
		h:      h,
		pen:    fmt.Sprintf("stroke:%s; stroke-width:%.2f; stroke-linecap:round; fill:none", rgb(st.stroke), st.strokeWidth),
	}
}

// Size returns the document dimensions.
func (s *SVG) Size() (int, int) { return s.w, s.h }

// Line strokes a segment, rounded to whole pixels.
func (s *SVG) Line(x1, y1, x2, y2 float64) {
	s.canvas.Line(iround(x1), iround(y1), iround(x2), iround(y2), s.pen)
}

// Close ends the document.
func (s *SVG) Close() { s.canvas.End() }

func iround(v float64) int { return int(math.Round(v)) }

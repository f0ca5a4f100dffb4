// SPDX-License-Identifier: MIT
// Package: leftstim/figure
//
// templates.go - the sixteen named figures A1..D4.
//
// Coordinates are centred on the origin, y pointing up, and fit comfortably
// inside a 300×300 frame. Points shared between lines are written with
// identical literals so the vertex arena merges them.

package figure

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/leftstim/frame"
	"github.com/katalvlaran/leftstim/geom"
)

// poly joins consecutive points into lines.
func poly(pts ...geom.Point) []geom.Line {
	out := make([]geom.Line, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		out = append(out, geom.Line{Start: pts[i-1], End: pts[i]})
	}

	return out
}

func seg(x1, y1, x2, y2 float64) geom.Line {
	return geom.Line{Start: geom.Pt(x1, y1), End: geom.Pt(x2, y2)}
}

func join(parts ...[]geom.Line) []geom.Line {
	var out []geom.Line
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

var pt = geom.Pt

var templates = map[string][]geom.Line{
	// triangle
	"A1": poly(pt(-40, -30), pt(40, -30), pt(0, 40), pt(-40, -30)),
	// house with a ceiling
	"A2": join(
		poly(pt(-40, -40), pt(40, -40), pt(40, 20), pt(0, 55), pt(-40, 20), pt(-40, -40)),
		[]geom.Line{seg(-40, 20, 40, 20)},
	),
	// arrow with a tail post
	"A3": {seg(-50, 0, 30, 0), seg(30, 0, 10, 20), seg(30, 0, 10, -20), seg(-50, 0, -50, 30)},
	// zig-zag
	"A4": poly(pt(-40, 40), pt(40, 40), pt(-40, -40), pt(40, -40)),

	// square with a diagonal
	"B1": join(
		poly(pt(-35, -35), pt(35, -35), pt(35, 35), pt(-35, 35), pt(-35, -35)),
		[]geom.Line{seg(35, 35, -35, -35)},
	),
	// trapezoid
	"B2": poly(pt(-50, -30), pt(50, -30), pt(25, 30), pt(-25, 30), pt(-50, -30)),
	// hooked T
	"B3": {seg(-45, 40, 0, 40), seg(0, 40, 45, 40), seg(0, 40, 0, -45), seg(0, -45, -20, -45)},
	// parallelogram with a spur
	"B4": join(
		[]geom.Line{seg(20, -55, 20, -25)},
		poly(pt(20, -25), pt(50, 25), pt(-20, 25), pt(-50, -25), pt(20, -25)),
	),

	// kite with a cross bar
	"C1": join(
		poly(pt(0, 50), pt(30, 0), pt(0, -50), pt(-30, 0), pt(0, 50)),
		[]geom.Line{seg(-30, 0, 30, 0)},
	),
	// pentagon
	"C2": poly(pt(-40, -30), pt(40, -30), pt(50, 20), pt(0, 50), pt(-50, 20), pt(-40, -30)),
	// bridge with loose ends
	"C3": {
		seg(-50, -40, -30, -40), seg(-30, -40, 30, -40), seg(30, -40, 50, -40),
		seg(-30, -40, -30, 40), seg(-30, 40, 30, 10), seg(30, 10, 30, -40), seg(30, 10, 55, 30),
	},
	// staircase
	"C4": poly(pt(-45, -45), pt(-45, -15), pt(-15, -15), pt(-15, 15), pt(15, 15), pt(15, 45), pt(45, 45)),

	// hexagon
	"D1": poly(pt(-30, -50), pt(30, -50), pt(55, 0), pt(30, 50), pt(-30, 50), pt(-55, 0), pt(-30, -50)),
	// envelope
	"D2": join(
		poly(pt(-50, -30), pt(50, -30), pt(50, 30), pt(-50, 30), pt(-50, -30)),
		poly(pt(-50, 30), pt(0, -5), pt(50, 30)),
	),
	// bow tie
	"D3": poly(pt(-45, -35), pt(45, 35), pt(45, -35), pt(-45, 35), pt(-45, -35)),
	// letter E
	"D4": {
		seg(-35, -45, -35, 0), seg(-35, 0, -35, 45), seg(-35, 45, 35, 45),
		seg(-35, 0, 20, 0), seg(-35, -45, 35, -45),
	},
}

// TemplateNames returns the template names in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for n := range templates {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Template returns a copy of the lines of the named template.
func Template(name string) ([]geom.Line, error) {
	lines, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("Template: %q: %w", name, ErrUnknownFigure)
	}

	return append([]geom.Line(nil), lines...), nil
}

// RandomTemplateName picks a template name uniformly at random.
func RandomTemplateName(rng *rand.Rand) string {
	names := TemplateNames()

	return names[rng.Intn(len(names))]
}

// NewFromTemplate builds the named template figure inside fr.
// The figure is named after the template unless WithName overrides it.
func NewFromTemplate(name string, fr *frame.Frame, opts ...Option) (*Figure, error) {
	lines, err := Template(name)
	if err != nil {
		return nil, fmt.Errorf("NewFromTemplate: %w", err)
	}

	return New(lines, fr, append([]Option{WithName(name)}, opts...)...)
}

// SPDX-License-Identifier: MIT
// Package: leftstim/figure
//
// figure.go - Figure type, construction and read-only accessors.
//
// Vertices live in an arena deduplicated by exact coordinates; each edge holds
// two vertex indices plus the *geom.FigureLine that other lines may anchor on.
// Every rigid move updates the arena and then re-syncs the edge endpoints, so
// anchors (which point at &edge.line.Line) observe the move.

package figure

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/leftstim/frame"
	"github.com/katalvlaran/leftstim/geom"
)

type vertex struct {
	p     geom.Point
	grown geom.Latch
}

type edge struct {
	a, b int
	line *geom.FigureLine
}

// Figure is the target polyline embedded into a stimulus.
type Figure struct {
	name     string
	frame    *frame.Frame
	rng      *rand.Rand
	vertices []vertex
	edges    []edge

	lockedX  geom.Latch
	lockedY  geom.Latch
	shiftedX geom.Latch
	shiftedY geom.Latch
	closedUp geom.Latch
}

// New builds a figure from lines inside fr.
//
// Complexity: O(n²) in the number of lines (vertex deduplication).
func New(lines []geom.Line, fr *frame.Frame, opts ...Option) (*Figure, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyFigure)
	}
	if fr == nil {
		return nil, fmt.Errorf("New: %w", ErrNoFrame)
	}
	cfg := newConfig(opts...)

	f := &Figure{
		name:     cfg.name,
		frame:    fr,
		rng:      cfg.rng,
		vertices: make([]vertex, 0, len(lines)+1),
		edges:    make([]edge, 0, len(lines)),
	}
	for _, l := range lines {
		a, b := f.vertexAt(l.Start), f.vertexAt(l.End)
		f.edges = append(f.edges, edge{a: a, b: b, line: geom.NewFigureLine(l.Start, l.End)})
	}

	return f, nil
}

// vertexAt returns the arena index of p, appending it when new.
func (f *Figure) vertexAt(p geom.Point) int {
	for i := range f.vertices {
		if f.vertices[i].p == p {
			return i
		}
	}
	f.vertices = append(f.vertices, vertex{p: p})

	return len(f.vertices) - 1
}

// degree counts edge endpoints referencing vertex i.
func (f *Figure) degree(i int) int {
	d := 0
	for _, e := range f.edges {
		if e.a == i {
			d++
		}
		if e.b == i {
			d++
		}
	}

	return d
}

// Name returns the figure's label.
func (f *Figure) Name() string { return f.name }

// Frame returns the frame the figure lives in.
func (f *Figure) Frame() *frame.Frame { return f.frame }

// SetFrame rebinds the figure to fr. A nil frame is ignored.
func (f *Figure) SetFrame(fr *frame.Frame) {
	if fr != nil {
		f.frame = fr
	}
}

// Lines returns the figure's edges in their original order. The pointers are
// live: extending or shifting the figure is visible through them.
func (f *Figure) Lines() []*geom.FigureLine {
	out := make([]*geom.FigureLine, len(f.edges))
	for i, e := range f.edges {
		out[i] = e.line
	}

	return out
}

// Points returns the distinct vertices of the figure.
func (f *Figure) Points() []geom.Point {
	out := make([]geom.Point, len(f.vertices))
	for i, v := range f.vertices {
		out[i] = v.p
	}

	return out
}

// Closed reports whether the first line starts where the last line ends, or
// whether CloseUpFreePoints has run. Once true it stays true.
func (f *Figure) Closed() bool {
	return f.edges[0].a == f.edges[len(f.edges)-1].b || f.closedUp.Engaged()
}

// LockedX reports whether the figure has been aligned to the left or right
// border.
func (f *Figure) LockedX() bool { return f.lockedX.Engaged() }

// LockedY reports whether the figure has been aligned to the top or bottom
// border.
func (f *Figure) LockedY() bool { return f.lockedY.Engaged() }

// BoundingBox returns the minimum and maximum vertex coordinates.
func (f *Figure) BoundingBox() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range f.vertices {
		minX, maxX = math.Min(minX, v.p.X), math.Max(maxX, v.p.X)
		minY, maxY = math.Min(minY, v.p.Y), math.Max(maxY, v.p.Y)
	}

	return minX, minY, maxX, maxY
}

// Width is the horizontal extent of the figure.
func (f *Figure) Width() float64 {
	minX, _, maxX, _ := f.BoundingBox()

	return maxX - minX
}

// Height is the vertical extent of the figure.
func (f *Figure) Height() float64 {
	_, minY, _, maxY := f.BoundingBox()

	return maxY - minY
}

// ExtendedCount returns how many edges are extended or marked extended.
func (f *Figure) ExtendedCount() int {
	n := 0
	for _, e := range f.edges {
		if e.line.Extended() {
			n++
		}
	}

	return n
}

// RandomPoint returns a random point on a random figure line.
func (f *Figure) RandomPoint() geom.Point {
	return f.edges[f.rng.Intn(len(f.edges))].line.RandomPoint(f.rng)
}

// Clone returns an independent copy sharing the frame and random source.
// Lines, vertices and latches are copied; anchors on the original's lines do
// not follow the clone.
//
// Complexity: O(V + E).
func (f *Figure) Clone() *Figure {
	c := &Figure{
		name:     f.name,
		frame:    f.frame,
		rng:      f.rng,
		vertices: append([]vertex(nil), f.vertices...),
		edges:    make([]edge, len(f.edges)),
		lockedX:  f.lockedX,
		lockedY:  f.lockedY,
		shiftedX: f.shiftedX,
		shiftedY: f.shiftedY,
		closedUp: f.closedUp,
	}
	for i, e := range f.edges {
		fl := *e.line
		c.edges[i] = edge{a: e.a, b: e.b, line: &fl}
	}

	return c
}

// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
)

// Option customizes a surface.
type Option func(*style)

type style struct {
	stroke      color.Color
	background  color.Color
	strokeWidth float64
}

const defaultStrokeWidth = 1.8

func newStyle(opts ...Option) style {
	st := style{stroke: color.Black, background: color.White, strokeWidth: defaultStrokeWidth}
	for _, opt := range opts {
		opt(&st)
	}

	return st
}

// WithStroke sets the line colour. Panics on nil.
func WithStroke(c color.Color) Option {
	if c == nil {
		panic("render: WithStroke(nil)")
	}
	return func(s *style) { s.stroke = c }
}

// WithBackground sets the canvas colour. Panics on nil.
func WithBackground(c color.Color) Option {
	if c == nil {
		panic("render: WithBackground(nil)")
	}
	return func(s *style) { s.background = c }
}

// WithStrokeWidth sets the line width in pixels. Panics unless positive.
func WithStrokeWidth(w float64) Option {
	if w <= 0 {
		panic("render: WithStrokeWidth requires w > 0")
	}
	return func(s *style) { s.strokeWidth = w }
}

// rgb formats c as an SVG rgb() value.
func rgb(c color.Color) string {
	r, g, b, _ := c.RGBA()

	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

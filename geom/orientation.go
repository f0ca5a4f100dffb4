// SPDX-License-Identifier: MIT

package geom

import "math/rand"

// Orientation classifies a line as horizontal, vertical or diagonal.
type Orientation int

const (
	// Horizontal lines have equal start/end y.
	Horizontal Orientation = iota
	// Vertical lines have equal start/end x.
	Vertical
	// Diagonal is everything else.
	Diagonal
)

// String returns the lowercase token of o.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "diagonal"
	}
}

// ParseOrientation maps "horizontal", "vertical" or "diagonal" to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	case "diagonal":
		return Diagonal, nil
	}

	return Diagonal, geomErrorf(methodParseOrientation, "%q", ErrUnknownOrientation, s)
}

// weightedOrientations favors diagonal 2:1 over each axis-aligned option.
var weightedOrientations = [...]Orientation{Horizontal, Vertical, Diagonal, Diagonal}

// RandomOrientation draws an orientation with diagonal weighted twice as heavily
// as horizontal or vertical.
func RandomOrientation(rng *rand.Rand) Orientation {
	return weightedOrientations[rng.Intn(len(weightedOrientations))]
}

// Side names one border of an axis-aligned rectangle.
type Side int

const (
	// Top is the border with the greatest y.
	Top Side = iota
	// Right is the border with the greatest x.
	Right
	// Bottom is the border with the least y.
	Bottom
	// Left is the border with the least x.
	Left
)

// Sides lists every Side in top, right, bottom, left order.
var Sides = [...]Side{Top, Right, Bottom, Left}

// String returns the lowercase name of s.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	default:
		return "left"
	}
}

// Box is an axis-aligned rectangle exposed through its four border lines.
// Top and bottom borders are horizontal, left and right borders vertical.
type Box interface {
	Border(side Side) *Line
}

// boxEdges returns the top y, right x, bottom y and left x of b.
func boxEdges(b Box) (top, right, bottom, left float64) {
	return b.Border(Top).Start.Y, b.Border(Right).Start.X, b.Border(Bottom).Start.Y, b.Border(Left).Start.X
}

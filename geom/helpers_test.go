// SPDX-License-Identifier: MIT

package geom_test

import (
	"math/rand"

	"github.com/katalvlaran/leftstim/geom"
)

// Frame used across geom tests: 300×300 centered on the origin, y up.
const (
	boxHalf = 150.0
	seed    = 20240611
)

// squareBox is a minimal geom.Box for tests that must not depend on package frame.
type squareBox [4]*geom.Line

func (b squareBox) Border(s geom.Side) *geom.Line { return b[s] }

// newSquareBox returns the box [-half, half]² with borders in top, right, bottom, left order.
func newSquareBox(half float64) squareBox {
	return squareBox{
		geom.NewLine(geom.Pt(-half, half), geom.Pt(half, half)),
		geom.NewLine(geom.Pt(half, half), geom.Pt(half, -half)),
		geom.NewLine(geom.Pt(-half, -half), geom.Pt(half, -half)),
		geom.NewLine(geom.Pt(-half, half), geom.Pt(-half, -half)),
	}
}

// onBorder reports which border of b p lies on, or -1.
func onBorder(b squareBox, p geom.Point) geom.Side {
	for _, s := range geom.Sides {
		if p.IsOnLine(*b[s]) && p.InBox(b) {
			return s
		}
	}

	return -1
}

func newRand() *rand.Rand { return rand.New(rand.NewSource(seed)) }

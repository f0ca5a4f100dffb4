// SPDX-License-Identifier: MIT

package geom

import "math"

// Vector is a free 2D vector used for direction and intersection math.
type Vector struct {
	X float64
	Y float64
}

// Add returns v+w.
func (v Vector) Add(w Vector) Vector { return Vector{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns v-w.
func (v Vector) Sub(w Vector) Vector { return Vector{X: v.X - w.X, Y: v.Y - w.Y} }

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{X: -v.X, Y: -v.Y} }

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Scale(1 / n)
}

// Cross returns the z component of the 3D cross product v×w.
func (v Vector) Cross(w Vector) float64 { return v.X*w.Y - v.Y*w.X }

// Dot returns the dot product v·w.
func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y }

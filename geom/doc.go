// SPDX-License-Identifier: MIT

// Package geom provides the exact 2D primitives used to build embedded-figure
// stimuli: points, free vectors, line segments, and the two topological line
// variants layered on top of them.
//
// What:
//
//   - Point and Vector are plain value types. Point equality is exact and a
//     Point can be used as a map key.
//   - Line is an ordered (Start, End) pair with orientation, slope, length,
//     random sampling, intersection and frame-extension helpers.
//   - FigureLine is a Line that can be extended once to the borders of a Box,
//     keeping its original endpoints untouched.
//   - AttachedLine is a Line whose endpoints are anchored on two owner lines.
//     It may only move by re-attachment, jiggling, or re-extension.
//   - Latch is the one-way {Unset, Engaged} state used for every one-shot flag.
//
// Tolerances:
//
//   - On-line membership uses OnLineTolerance (1e-3).
//   - Parallelism uses ParallelTolerance (1e-4) on the direction cross product.
//   - Orientation and box membership are exact comparisons, no jitter allowed.
//
// Errors:
//
//   - ErrParallelLines: intersection sought between (near-)parallel lines.
//   - ErrUndefinedSlope: slope requested on a horizontal or vertical line.
//   - ErrTooClose: a separation-constrained fling exhausted its attempts.
//   - ErrInvalidOperation: rigid translation of an AttachedLine, missing owner.
//   - ErrNoBorder: an extended endpoint touches no border of the box.
//
// Randomness is always drawn from a caller-supplied *rand.Rand; the package
// holds no global source.
package geom

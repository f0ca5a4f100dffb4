// SPDX-License-Identifier: MIT
// Package: leftstim/geom
//
// errors.go - sentinel errors for the geom package.
//
// Callers branch with errors.Is; implementations add context with %w.

package geom

import (
	"errors"
	"fmt"
)

// ErrParallelLines indicates an intersection was sought between two lines whose
// direction vectors are (nearly) parallel or coincident.
// Callers recover by substituting another geometry, never by aborting.
var ErrParallelLines = errors.New("geom: lines are parallel")

// ErrUndefinedSlope indicates Slope was called on a horizontal or vertical line.
// Programmer error: branch on Orientation first.
var ErrUndefinedSlope = errors.New("geom: slope undefined for axis-aligned line")

// ErrTooClose indicates a separation-constrained generator ran out of attempts.
var ErrTooClose = errors.New("geom: could not place line far enough apart")

// ErrInvalidOperation indicates a structural operation that the receiver forbids,
// e.g. rigid translation of an AttachedLine.
var ErrInvalidOperation = errors.New("geom: invalid operation")

// ErrNoBorder indicates an endpoint expected on a box border touches none of them.
var ErrNoBorder = errors.New("geom: point is not on any border")

// ErrUnknownOrientation indicates an orientation token other than
// "horizontal", "vertical" or "diagonal".
var ErrUnknownOrientation = errors.New("geom: unknown orientation")

// geomErrorf prefixes err with the method name, keeping it matchable by errors.Is.
func geomErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// SPDX-License-Identifier: MIT

// Package frame defines the rectangular frame every stimulus is confined to.
//
// A Frame is seeded with its top and right border lines; bottom and left are
// derived from the width and height. It is immutable after construction and
// implements geom.Box, so lines can be extended to it.
//
// Generators ("flings") produce geom.AttachedLine values spanning the frame:
//
//   - FlingSideToSide: between two borders (parallel borders for axis-aligned
//     requests, two distinct random borders for diagonal ones).
//   - FlingSideToLine: from a random point of an arbitrary line to a border,
//     retried until the line is longer than geom.MinFlingLength; gives up with
//     geom.ErrTooClose after geom.MaxFlingAttempts.
//
// Coordinates are y-up: Top has the greatest y.
package frame

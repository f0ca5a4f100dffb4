// SPDX-License-Identifier: MIT

package frame

import "errors"

// Sentinel errors for frame construction.
var (
	// ErrNotAxisAligned indicates the top seed is not horizontal or the right seed is not vertical.
	ErrNotAxisAligned = errors.New("frame: seed lines are not axis-aligned")
	// ErrBadSize indicates a zero or negative width/height.
	ErrBadSize = errors.New("frame: width and height must be positive")
	// ErrNoSharedCorner indicates the right seed does not hang from the top seed's right end.
	ErrNoSharedCorner = errors.New("frame: top and right seeds do not share a corner")
)

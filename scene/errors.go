// SPDX-License-Identifier: MIT

package scene

import "errors"

// Sentinel errors for scene operations.
var (
	// ErrNoFigure indicates an operation that needs a figure on a scene without one.
	ErrNoFigure = errors.New("scene: no figure")
	// ErrTooFewLines indicates figure removal on a scene with fewer than 6 lines.
	ErrTooFewLines = errors.New("scene: at least 6 lines are required")
	// ErrNoAnchor indicates there are not enough lines to attach a new line to.
	ErrNoAnchor = errors.New("scene: not enough lines to attach to")
	// ErrConstructFailed indicates AddRandomLine exhausted its strategy retries.
	ErrConstructFailed = errors.New("scene: could not construct a line")
)

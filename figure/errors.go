// SPDX-License-Identifier: MIT

package figure

import "errors"

// Sentinel errors for figure operations.
var (
	// ErrEmptyFigure indicates a figure was requested with no lines.
	ErrEmptyFigure = errors.New("figure: at least one line is required")
	// ErrNoFrame indicates a nil frame.
	ErrNoFrame = errors.New("figure: frame is required")
	// ErrUnknownFigure indicates a template name outside A1..D4.
	ErrUnknownFigure = errors.New("figure: unknown figure name")
	// ErrAllGrown indicates every vertex has already been grown from.
	ErrAllGrown = errors.New("figure: every point has already been grown from")
)

// SPDX-License-Identifier: MIT

// Package figure models the target polyline of an embedded-figure stimulus.
//
// What:
//
//   - A Figure is an ordered list of geom.FigureLine edges over a vertex arena.
//     Every edge references two vertex indices; vertices are deduplicated by
//     exact coordinates, so "loose end" detection is a degree query.
//   - Positioning: RandomlyPosition, AlignWithFrame and ShiftToFrame move the
//     whole figure rigidly. Alignment and shifting each run at most once
//     per axis.
//   - Embedding: ExtendLine stretches a random unextended edge to the frame;
//     GrowLine and CloseUpFreePoints emit geom.AttachedLine values running
//     through figure vertices, consuming each vertex's one-time growth.
//   - Templates: the sixteen named figures A1..D4.
//
// One-shot state (per-vertex grown, per-edge extended, the alignment locks,
// the shift latches and closed-up) is held in geom.Latch values owned by the Figure instance.
//
// Errors:
//
//   - ErrEmptyFigure: no lines were supplied.
//   - ErrNoFrame: the figure has no frame to work against.
//   - ErrUnknownFigure: template name not in A1..D4.
//   - ErrAllGrown: every vertex has already had a line grown from it.
package figure

// SPDX-License-Identifier: MIT

// Package scene composes embedded-figure stimuli.
//
// A Scene owns one frame, at most one figure, and two collections of
// geom.AttachedLine: extra lines (free-standing distractors) and
// figure-linked lines (lines that start or end on a figure edge).
//
// Typical flow:
//
//	s, _ := scene.New(scene.WithSeed(1))
//	_ = s.AddFigureByName("A2")
//	s.RandomlyPositionFigure()
//	s.ExtendTwoThirdsFigureLines()
//	_ = s.AddRandomLine(geom.Horizontal)
//	_ = s.AddRandomLine(geom.Diagonal)
//	part, _ := s.ReplaceFigureWithLines() // context variant
//
// Separation:
//
// Every free-standing line added by a strategy keeps a closest-corner
// distance (geom.Line.MaxDist) of at least the configured separation (40 by
// default) to every line already present. Candidates that violate it are
// regenerated, up to 100 times, before failing with geom.ErrTooClose.
//
// Random line strategies are weighted side-to-side 5, line-to-line 1,
// side-to-line 2; AddRandomLine retries failing strategies up to 1000 times.
//
// Figure removal (ReplaceFigureWithLines) turns every figure line and
// figure-linked line into its frame-spanning version, drops the figure, and
// partitions those lines into jiggled, left-alone and replaced groups.
// Replacements prefer line-to-line or side-to-side strategies while figure
// lines that were never extended remain to be accounted for. Every attached
// line is finally re-anchored on its owners.
//
// Recovered geometry failures are reported to the logger set by WithLogger
// (discarded by default). Scene is not safe for concurrent use.
package scene

// SPDX-License-Identifier: MIT

// Package leftstim generates embedded-figure test stimuli: a target figure is
// placed inside a rectangular frame, partially stretched to the frame's
// borders and surrounded by distractor lines, and a matched context image is
// derived by removing the figure.
//
// Everything is organized under these packages:
//
//	geom/    - points, vectors, lines, figure lines, attached lines, latches
//	frame/   - the rectangular frame and border-anchored line generators
//	figure/  - the target polyline, its vertex arena and the A1..D4 templates
//	scene/   - the stimulus composer: distractors, separation, figure removal
//	render/  - SVG and raster surfaces
//
// Binaries:
//
//	cmd/leftstim   - batch generation of image sets
//	cmd/leftstimd  - HTTP service rendering stimuli as SVG
//
// Coordinates are centred on the frame with y pointing up.
package leftstim

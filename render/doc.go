// SPDX-License-Identifier: MIT

// Package render draws stimuli onto 2-D surfaces.
//
// Scene geometry is centred on the origin with y pointing up; a Surface works
// in canvas pixels with the origin at the top-left corner and y pointing down.
// Draw and DrawFigureOnly perform that mapping and the border filter: figure
// lines and extra lines that run exactly along a frame border are skipped so
// the border is not stroked twice. Figure-linked lines are never filtered.
//
// Two surfaces are provided:
//
//   - SVG writes an SVG document through github.com/ajstarks/svgo.
//   - Raster fills an *image.RGBA with golang.org/x/image/vector and can
//     encode it as PNG.
package render

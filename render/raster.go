// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/katalvlaran/leftstim/geom"
)

// Raster is a Surface backed by an RGBA image. Each line is rasterized as a
// quad of the stroke width and composited over the image.
type Raster struct {
	img   *image.RGBA
	r     *vector.Rasterizer
	pen   image.Image
	width float64
}

// NewRaster returns a w×h raster filled with the background colour.
func NewRaster(w, h int, opts ...Option) *Raster {
	st := newStyle(opts...)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(st.background), image.Point{}, draw.Src)

	return &Raster{
		img:   img,
		r:     vector.NewRasterizer(w, h),
		pen:   image.NewUniform(st.stroke),
		width: st.strokeWidth,
	}
}

// Size returns the image dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()

	return b.Dx(), b.Dy()
}

// Line strokes a segment. Zero-length segments are ignored.
func (r *Raster) Line(x1, y1, x2, y2 float64) {
	d := geom.Vector{X: x2 - x1, Y: y2 - y1}
	if d.Norm() == 0 {
		return
	}
	n := geom.Vector{X: -d.Y, Y: d.X}.Normalized().Scale(r.width / 2)

	w, h := r.Size()
	r.r.Reset(w, h)
	r.r.MoveTo(float32(x1+n.X), float32(y1+n.Y))
	r.r.LineTo(float32(x2+n.X), float32(y2+n.Y))
	r.r.LineTo(float32(x2-n.X), float32(y2-n.Y))
	r.r.LineTo(float32(x1-n.X), float32(y1-n.Y))
	r.r.ClosePath()
	r.r.Draw(r.img, r.img.Bounds(), r.pen, image.Point{})
}

// Image returns the underlying image.
func (r *Raster) Image() *image.RGBA { return r.img }

// At returns the colour of pixel (x, y).
func (r *Raster) At(x, y int) color.Color { return r.img.At(x, y) }

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(out io.Writer) error {
	return png.Encode(out, r.img)
}

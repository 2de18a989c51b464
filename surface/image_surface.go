// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/pathkit"
	"github.com/gogpu/pathkit/internal/flatten"
	"github.com/gogpu/pathkit/internal/outline"
)

// ErrClosed is returned when a closed surface is asked for output.
var ErrClosed = errors.New("surface: closed")

// Option configures an ImageSurface.
type Option func(*options)

type options struct {
	tolerance float64
	img       *image.RGBA
}

// WithTolerance sets the curve flattening tolerance in device pixels.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithImage renders into an existing image instead of allocating one.
// The surface takes the image's size.
func WithImage(img *image.RGBA) Option {
	return func(o *options) {
		o.img = img
	}
}

// ImageSurface is a CPU surface rendering to an *image.RGBA.
type ImageSurface struct {
	width     int
	height    int
	img       *image.RGBA
	ras       *vector.Rasterizer
	tolerance float64
	closed    bool
}

var _ Surface = (*ImageSurface)(nil)

// NewImageSurface creates a transparent surface. Non-positive sizes are
// clamped to 1.
func NewImageSurface(width, height int, opts ...Option) *ImageSurface {
	o := options{tolerance: flatten.DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	img := o.img
	if img != nil {
		width, height = img.Bounds().Dx(), img.Bounds().Dy()
	}
	width = max(width, 1)
	height = max(height, 1)
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, width, height))
	}

	return &ImageSurface{
		width:     width,
		height:    height,
		img:       img,
		ras:       vector.NewRasterizer(width, height),
		tolerance: o.tolerance,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.width }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.height }

// Clear fills the entire surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Fill fills np with c using the non-zero rule. Empty paths and transparent
// colors draw nothing, nor do subpaths with NaN, infinite or out-of-range
// coordinates.
func (s *ImageSurface) Fill(np pathkit.NativePath, device pathkit.Matrix, c pathkit.Color) {
	if s.closed || np == nil || np.IsEmpty() || c.IsTransparent() {
		return
	}
	lines := s.polylines(np, device)
	polys := make([]outline.Polygon, 0, len(lines))
	for _, l := range lines {
		polys = append(polys, l.Points)
	}
	s.fillPolygons(polys, c)
}

// Stroke strokes np with style and c. Empty paths, transparent colors and
// non-positive widths draw nothing. Malformed geometry is skipped as in Fill.
func (s *ImageSurface) Stroke(np pathkit.NativePath, device pathkit.Matrix, style pathkit.StrokeStyle, c pathkit.Color) {
	if s.closed || np == nil || np.IsEmpty() || c.IsTransparent() || style.Width <= 0 {
		return
	}
	lines := s.polylines(np, device)
	stroker := outline.New(style)
	stroker.SetTolerance(s.tolerance)
	s.fillPolygons(stroker.Outline(lines), c)
}

// polylines returns the device-space polylines of np, without the subpaths
// that fail drawable.
func (s *ImageSurface) polylines(np pathkit.NativePath, device pathkit.Matrix) []flatten.Polyline {
	lines := flatten.Elements(np.Elements(), device, s.tolerance)
	out := lines[:0]
	for _, l := range lines {
		if drawable(l.Points) {
			out = append(out, l)
		}
	}
	return out
}

func (s *ImageSurface) fillPolygons(polys []outline.Polygon, c pathkit.Color) {
	s.ras.Reset(s.width, s.height)
	s.ras.DrawOp = draw.Over

	drawn := false
	for _, poly := range polys {
		if len(poly) < 3 || !drawable(poly) {
			continue
		}
		s.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			s.ras.LineTo(float32(p.X), float32(p.Y))
		}
		s.ras.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// maxCoord bounds the device coordinates handed to the vector rasterizer;
// its fixed-point math cannot represent much larger values.
const maxCoord = 1 << 21

// drawable reports whether every point is finite and within maxCoord.
// Geometry failing it is dropped, the way native toolkits silently skip
// malformed input.
func drawable(pts []pathkit.Point) bool {
	for _, p := range pts {
		if !(math.Abs(p.X) <= maxCoord && math.Abs(p.Y) <= maxCoord) {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the surface contents, or nil after Close.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	b := s.img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), s.img, b.Min, draw.Src)
	return out
}

// Image returns the backing image without copying.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the surface contents as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	return png.Encode(w, s.img)
}

// Close releases the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.ras = nil
	return nil
}

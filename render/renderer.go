// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"log/slog"

	"github.com/gogpu/pathkit"
	"github.com/gogpu/pathkit/surface"
)

// Drawable is a native path ready to paint, with its resolved style.
type Drawable struct {
	Path pathkit.NativePath

	// Device maps Path's native coordinates to surface pixels; see
	// pathkit.Backend.DeviceMatrix.
	Device pathkit.Matrix

	Fill        pathkit.Color
	Stroke      pathkit.Color
	StrokeStyle pathkit.StrokeStyle
}

// Paint fills, then strokes, the drawable on s.
func (d Drawable) Paint(s surface.Surface) {
	if d.Path == nil || d.Path.IsEmpty() {
		return
	}
	s.Fill(d.Path, d.Device, d.Fill)
	s.Stroke(d.Path, d.Device, d.StrokeStyle, d.Stroke)
}

// ShapeRenderer caches the native geometry of one shape.
type ShapeRenderer struct {
	backend pathkit.Backend
	shape   pathkit.Shape
	style   Style

	native     pathkit.NativePath
	bounds     pathkit.Rect
	pathStroke *pathkit.StrokeStyle

	rebuilds int
}

// NewShapeRenderer returns a renderer for shape on backend b.
func NewShapeRenderer(b pathkit.Backend, shape pathkit.Shape, opts ...Option) *ShapeRenderer {
	st := DefaultStyle()
	for _, opt := range opts {
		opt(&st)
	}
	return &ShapeRenderer{backend: b, shape: shape, style: st}
}

// Backend returns the renderer's backend.
func (r *ShapeRenderer) Backend() pathkit.Backend { return r.backend }

// Style returns the current style.
func (r *ShapeRenderer) Style() Style { return r.style }

// SetStyle replaces the style. Cached geometry is kept.
func (r *ShapeRenderer) SetStyle(st Style) {
	r.style = st
}

// SetShape replaces the shape and drops cached geometry.
func (r *ShapeRenderer) SetShape(shape pathkit.Shape) {
	r.shape = shape
	r.Invalidate()
}

// Invalidate drops cached geometry; the next Update rebuilds it.
func (r *ShapeRenderer) Invalidate() {
	r.native = nil
	r.pathStroke = nil
}

// Rebuilds returns how many times native geometry has been built.
func (r *ShapeRenderer) Rebuilds() int { return r.rebuilds }

// Update returns the drawable for bounds. The shape's path is rasterized
// again when pointsChanged is set, nothing is cached yet or bounds differ
// from the cached frame. Otherwise only the style is re-resolved.
//
// A bounds change rebuilds even with pointsChanged false: the cached native
// path and its coordinate correction are tied to the frame it was built
// for, and reusing it would draw the shape at the old frame.
func (r *ShapeRenderer) Update(bounds pathkit.Rect, pointsChanged bool) Drawable {
	rebuild := pointsChanged || r.native == nil || bounds != r.bounds
	if rebuild {
		r.rebuild(bounds)
	}

	l := pathkit.Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("render: update",
			slog.String("backend", r.backend.Name()),
			slog.Bool("rebuild", rebuild),
			slog.Bool("pointsChanged", pointsChanged),
			slog.Int("rebuilds", r.rebuilds))
	}

	ss := r.style.StrokeStyle
	if r.pathStroke != nil {
		ss = *r.pathStroke
	}
	return Drawable{
		Path:        r.native,
		Device:      r.backend.DeviceMatrix(r.bounds),
		Fill:        r.style.Fill,
		Stroke:      r.style.Stroke,
		StrokeStyle: ss,
	}
}

func (r *ShapeRenderer) rebuild(bounds pathkit.Rect) {
	var p pathkit.Path
	if r.shape != nil {
		p = r.shape.Path(bounds)
	}
	r.native = pathkit.Rasterize(r.backend, p, bounds)
	r.bounds = bounds
	r.pathStroke = nil
	if ss, ok := p.StrokeStyle(); ok {
		r.pathStroke = &ss
	}
	r.rebuilds++
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gtk

import (
	"math"

	"github.com/gogpu/pathkit"
)

// DataType mirrors cairo_path_data_type_t.
type DataType uint8

// Path data types, in cairo_path_data_type_t order.
const (
	PathMoveTo DataType = iota
	PathLineTo
	PathCurveTo
	PathClosePath
)

type pathData struct {
	typ DataType
	pts [3]pathkit.Point
}

// CairoPath is a cairo-style path in user space (top-left origin, Y down).
//
// A CairoPath is not safe for concurrent use.
type CairoPath struct {
	data []pathData

	current      pathkit.Point
	hasCurrent   bool
	subpathStart pathkit.Point
}

var _ pathkit.NativePath = (*CairoPath)(nil)

// NewCairoPath returns an empty path.
func NewCairoPath() *CairoPath {
	return &CairoPath{data: make([]pathData, 0, 16)}
}

// MoveTo implements pathkit.NativePath (cairo_move_to).
func (p *CairoPath) MoveTo(pt pathkit.Point) {
	p.data = append(p.data, pathData{typ: PathMoveTo, pts: [3]pathkit.Point{pt}})
	p.current = pt
	p.subpathStart = pt
	p.hasCurrent = true
}

// NewSubPath clears the current point without adding geometry
// (cairo_new_sub_path).
func (p *CairoPath) NewSubPath() {
	p.hasCurrent = false
}

// LineTo implements pathkit.NativePath (cairo_line_to). Without a current
// point it behaves like MoveTo, as cairo does.
func (p *CairoPath) LineTo(pt pathkit.Point) {
	if !p.hasCurrent {
		p.MoveTo(pt)
		return
	}
	p.data = append(p.data, pathData{typ: PathLineTo, pts: [3]pathkit.Point{pt}})
	p.current = pt
}

// RelLineTo adds a line relative to the current point (cairo_rel_line_to).
func (p *CairoPath) RelLineTo(d pathkit.Point) {
	p.LineTo(p.current.Add(d))
}

// QuadTo implements pathkit.NativePath. Cairo has no quadratic curves; the
// rasterizer never calls this because Capabilities.QuadCurves is false.
func (p *CairoPath) QuadTo(pathkit.Point, pathkit.Point) {
	panic("gtk: cairo has no quadratic curves")
}

// CubicTo implements pathkit.NativePath (cairo_curve_to). Without a current
// point cairo first moves to the first control point.
func (p *CairoPath) CubicTo(c1, c2, end pathkit.Point) {
	if !p.hasCurrent {
		p.MoveTo(c1)
	}
	p.data = append(p.data, pathData{typ: PathCurveTo, pts: [3]pathkit.Point{c1, c2, end}})
	p.current = end
}

// ClosePath closes the current subpath (cairo_close_path) and returns the
// current point to the subpath start.
func (p *CairoPath) ClosePath() {
	if !p.hasCurrent {
		return
	}
	p.data = append(p.data, pathData{typ: PathClosePath})
	p.current = p.subpathStart
}

// AddRect implements pathkit.NativePath (cairo_rectangle).
func (p *CairoPath) AddRect(r pathkit.Rect) {
	p.MoveTo(r.Origin())
	p.RelLineTo(pathkit.Pt(r.Width, 0))
	p.RelLineTo(pathkit.Pt(0, r.Height))
	p.RelLineTo(pathkit.Pt(-r.Width, 0))
	p.ClosePath()
}

// AddCircle implements pathkit.NativePath with the usual cairo idiom:
// cairo_new_sub_path, a full cairo_arc, cairo_close_path.
func (p *CairoPath) AddCircle(center pathkit.Point, radius float64) {
	p.NewSubPath()
	p.Arc(center, radius, 0, 2*math.Pi)
	p.ClosePath()
}

// AddArc implements pathkit.NativePath. Angles are radians; clockwise
// selects cairo_arc, otherwise cairo_arc_negative.
func (p *CairoPath) AddArc(center pathkit.Point, radius, start, end float64, clockwise bool) {
	if clockwise {
		p.Arc(center, radius, start, end)
		return
	}
	p.ArcNegative(center, radius, start, end)
}

// Arc adds an arc towards increasing angles (cairo_arc). If end is less
// than start it is advanced by whole turns until it is not.
func (p *CairoPath) Arc(center pathkit.Point, radius, start, end float64) {
	sweep := end - start
	if sweep < 0 {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	p.arc(center, radius, start, sweep)
}

// ArcNegative adds an arc towards decreasing angles (cairo_arc_negative).
func (p *CairoPath) ArcNegative(center pathkit.Point, radius, start, end float64) {
	sweep := end - start
	if sweep > 0 {
		d := math.Mod(start-end, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		sweep = -d
	}
	p.arc(center, radius, start, sweep)
}

// maxFullCircles bounds the number of turns an arc may sweep, as cairo's
// MAX_FULL_CIRCLES does; the excess whole turns are dropped.
const maxFullCircles = 65536

func (p *CairoPath) arc(center pathkit.Point, radius, start, sweep float64) {
	if limit := 2 * math.Pi * maxFullCircles; math.Abs(sweep) > limit {
		sweep = math.Copysign(math.Mod(math.Abs(sweep), 2*math.Pi)+limit, sweep)
	}
	// cairo connects the current point to the arc start with a line, or
	// starts a new subpath there.
	p.LineTo(pathkit.PointOnCircle(center, radius, start))
	for _, s := range pathkit.ArcCubics(center, radius, start, sweep) {
		p.CubicTo(s.P1, s.P2, s.P3)
	}
}

// Apply implements pathkit.NativePath by transforming every stored point.
func (p *CairoPath) Apply(m pathkit.Matrix) {
	for i := range p.data {
		d := &p.data[i]
		for j := 0; j < pointCount(d.typ); j++ {
			d.pts[j] = m.Apply(d.pts[j])
		}
	}
	p.current = m.Apply(p.current)
	p.subpathStart = m.Apply(p.subpathStart)
}

// Append implements pathkit.NativePath (cairo_append_path).
// other must be a *CairoPath.
func (p *CairoPath) Append(other pathkit.NativePath) {
	o, ok := other.(*CairoPath)
	if !ok {
		panic("gtk: Append requires a *CairoPath")
	}
	if len(o.data) == 0 {
		return
	}
	p.data = append(p.data, o.data...)
	p.current = o.current
	p.subpathStart = o.subpathStart
	p.hasCurrent = o.hasCurrent
}

// CurrentPoint implements pathkit.NativePath (cairo_get_current_point).
func (p *CairoPath) CurrentPoint() (pathkit.Point, bool) {
	return p.current, p.hasCurrent
}

// Elements implements pathkit.NativePath.
func (p *CairoPath) Elements() []pathkit.Element {
	out := make([]pathkit.Element, len(p.data))
	for i, d := range p.data {
		var op pathkit.ElementOp
		switch d.typ {
		case PathMoveTo:
			op = pathkit.OpMoveTo
		case PathLineTo:
			op = pathkit.OpLineTo
		case PathCurveTo:
			op = pathkit.OpCubicTo
		case PathClosePath:
			op = pathkit.OpClose
		}
		out[i] = pathkit.Element{Op: op, Points: d.pts}
	}
	return out
}

// Data returns the type of every stored path data entry, in order.
func (p *CairoPath) Data() []DataType {
	out := make([]DataType, len(p.data))
	for i, d := range p.data {
		out[i] = d.typ
	}
	return out
}

// IsEmpty implements pathkit.NativePath.
func (p *CairoPath) IsEmpty() bool {
	return len(p.data) == 0
}

// Extents returns the bounding box of all stored points, and false for an
// empty path.
func (p *CairoPath) Extents() (pathkit.Rect, bool) {
	var pts []pathkit.Point
	for _, d := range p.data {
		pts = append(pts, d.pts[:pointCount(d.typ)]...)
	}
	return pathkit.BoundsOf(pts)
}

func pointCount(t DataType) int {
	switch t {
	case PathMoveTo, PathLineTo:
		return 1
	case PathCurveTo:
		return 3
	default:
		return 0
	}
}

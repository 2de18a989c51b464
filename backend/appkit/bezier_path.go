// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package appkit

import (
	"math"

	"github.com/gogpu/pathkit"
)

// ElementType mirrors NSBezierPathElement.
type ElementType uint8

// Element types, in NSBezierPathElement order.
const (
	MoveToElement ElementType = iota
	LineToElement
	CurveToElement
	ClosePathElement
	QuadraticCurveToElement
)

var elementOps = [...]pathkit.ElementOp{
	MoveToElement:           pathkit.OpMoveTo,
	LineToElement:           pathkit.OpLineTo,
	CurveToElement:          pathkit.OpCubicTo,
	ClosePathElement:        pathkit.OpClose,
	QuadraticCurveToElement: pathkit.OpQuadTo,
}

type element struct {
	typ ElementType
	pts [3]pathkit.Point
}

// BezierPath is an NSBezierPath-style path. Coordinates are in the native
// Y-up frame once the path has been corrected.
//
// A BezierPath is not safe for concurrent use.
type BezierPath struct {
	elems []element

	quadCurves bool

	// current and subpathStart track the pen the way NSBezierPath does: a
	// path has a current point once any element exists, and closing a
	// subpath returns the pen to the subpath's first point.
	current      pathkit.Point
	subpathStart pathkit.Point
}

var _ pathkit.NativePath = (*BezierPath)(nil)

// NewBezierPath returns an empty path. quadCurves selects whether QuadTo is
// available.
func NewBezierPath(quadCurves bool) *BezierPath {
	return &BezierPath{
		elems:      make([]element, 0, 16),
		quadCurves: quadCurves,
	}
}

// MoveTo implements pathkit.NativePath (moveToPoint:).
func (p *BezierPath) MoveTo(pt pathkit.Point) {
	p.elems = append(p.elems, element{typ: MoveToElement, pts: [3]pathkit.Point{pt}})
	p.current = pt
	p.subpathStart = pt
}

// LineTo implements pathkit.NativePath (lineToPoint:).
func (p *BezierPath) LineTo(pt pathkit.Point) {
	p.mustHaveCurrentPoint("lineToPoint:")
	p.elems = append(p.elems, element{typ: LineToElement, pts: [3]pathkit.Point{pt}})
	p.current = pt
}

// QuadTo implements pathkit.NativePath (curveToPoint:controlPoint:).
// It panics when the backend was created without quadratic curve support,
// as sending the selector to an older AppKit would.
func (p *BezierPath) QuadTo(ctrl, end pathkit.Point) {
	if !p.quadCurves {
		panic("appkit: quadratic curves are not available on this system")
	}
	p.mustHaveCurrentPoint("curveToPoint:controlPoint:")
	p.elems = append(p.elems, element{typ: QuadraticCurveToElement, pts: [3]pathkit.Point{ctrl, end}})
	p.current = end
}

// CubicTo implements pathkit.NativePath (curveToPoint:controlPoint1:controlPoint2:).
func (p *BezierPath) CubicTo(c1, c2, end pathkit.Point) {
	p.mustHaveCurrentPoint("curveToPoint:controlPoint1:controlPoint2:")
	p.elems = append(p.elems, element{typ: CurveToElement, pts: [3]pathkit.Point{c1, c2, end}})
	p.current = end
}

// Close closes the current subpath (closePath).
func (p *BezierPath) Close() {
	if len(p.elems) == 0 {
		return
	}
	p.elems = append(p.elems, element{typ: ClosePathElement})
	p.current = p.subpathStart
}

// AddRect implements pathkit.NativePath (appendBezierPathWithRect:).
func (p *BezierPath) AddRect(r pathkit.Rect) {
	c := r.Corners()
	p.MoveTo(c[0])
	p.LineTo(c[1])
	p.LineTo(c[2])
	p.LineTo(c[3])
	p.Close()
}

// AddCircle implements pathkit.NativePath by appending the oval inscribed
// in the circle's bounding square (appendBezierPathWithOvalInRect:).
func (p *BezierPath) AddCircle(center pathkit.Point, radius float64) {
	segs := pathkit.ArcCubics(center, radius, 0, 2*math.Pi)
	if len(segs) == 0 {
		return
	}
	p.MoveTo(segs[0].P0)
	for _, s := range segs {
		p.CubicTo(s.P1, s.P2, s.P3)
	}
	p.Close()
}

// AddArc implements pathkit.NativePath
// (appendBezierPathWithArcWithCenter:radius:startAngle:endAngle:clockwise:).
// Angles are in degrees. With clockwise false the arc sweeps towards
// increasing angles, which is counter-clockwise in the Y-up frame. When the
// path has a current point a line is drawn to the start of the arc first.
func (p *BezierPath) AddArc(center pathkit.Point, radius, startDeg, endDeg float64, clockwise bool) {
	sweep := arcSweepDegrees(startDeg, endDeg, clockwise)

	start := pathkit.PointOnCircle(center, radius, pathkit.DegreesToRadians(startDeg))
	if p.hasCurrentPoint() {
		p.LineTo(start)
	} else {
		p.MoveTo(start)
	}
	for _, s := range pathkit.ArcCubics(center, radius,
		pathkit.DegreesToRadians(startDeg), pathkit.DegreesToRadians(sweep)) {
		p.CubicTo(s.P1, s.P2, s.P3)
	}
}

// arcSweepDegrees returns the signed sweep NSBezierPath draws between two
// angles: at most one full turn, positive for counter-clockwise. A
// non-finite sweep is returned as is and produces no curve segments.
func arcSweepDegrees(start, end float64, clockwise bool) float64 {
	sweep := end - start
	if math.IsNaN(sweep) || math.IsInf(sweep, 0) {
		return sweep
	}
	if clockwise {
		if sweep <= -360 {
			return -360
		}
		sweep = math.Mod(sweep, 360)
		if sweep > 0 {
			sweep -= 360
		}
		return sweep
	}
	if sweep >= 360 {
		return 360
	}
	sweep = math.Mod(sweep, 360)
	if sweep < 0 {
		sweep += 360
	}
	return sweep
}

// Apply implements pathkit.NativePath (transformUsingAffineTransform:).
func (p *BezierPath) Apply(m pathkit.Matrix) {
	for i := range p.elems {
		e := &p.elems[i]
		for j := 0; j < pointCount(e.typ); j++ {
			e.pts[j] = m.Apply(e.pts[j])
		}
	}
	p.current = m.Apply(p.current)
	p.subpathStart = m.Apply(p.subpathStart)
}

// Append implements pathkit.NativePath (appendBezierPath:).
// other must be a *BezierPath.
func (p *BezierPath) Append(other pathkit.NativePath) {
	o, ok := other.(*BezierPath)
	if !ok {
		panic("appkit: Append requires a *BezierPath")
	}
	if len(o.elems) == 0 {
		return
	}
	p.elems = append(p.elems, o.elems...)
	p.current = o.current
	p.subpathStart = o.subpathStart
}

// CurrentPoint implements pathkit.NativePath.
func (p *BezierPath) CurrentPoint() (pathkit.Point, bool) {
	if !p.hasCurrentPoint() {
		return pathkit.Point{}, false
	}
	return p.current, true
}

// Elements implements pathkit.NativePath.
func (p *BezierPath) Elements() []pathkit.Element {
	out := make([]pathkit.Element, len(p.elems))
	for i, e := range p.elems {
		out[i] = pathkit.Element{Op: elementOps[e.typ], Points: e.pts}
	}
	return out
}

// ElementCount returns the number of stored elements (elementCount).
func (p *BezierPath) ElementCount() int {
	return len(p.elems)
}

// ElementAt returns the type and points of element i (elementAtIndex:associatedPoints:).
func (p *BezierPath) ElementAt(i int) (ElementType, []pathkit.Point) {
	e := p.elems[i]
	pts := make([]pathkit.Point, pointCount(e.typ))
	copy(pts, e.pts[:])
	return e.typ, pts
}

// IsEmpty implements pathkit.NativePath.
func (p *BezierPath) IsEmpty() bool {
	return len(p.elems) == 0
}

// ControlPointBounds returns the bounding box of all stored points, and
// false for an empty path.
func (p *BezierPath) ControlPointBounds() (pathkit.Rect, bool) {
	var pts []pathkit.Point
	for _, e := range p.elems {
		pts = append(pts, e.pts[:pointCount(e.typ)]...)
	}
	return pathkit.BoundsOf(pts)
}

func (p *BezierPath) hasCurrentPoint() bool {
	return len(p.elems) > 0
}

func (p *BezierPath) mustHaveCurrentPoint(selector string) {
	if !p.hasCurrentPoint() {
		panic("appkit: " + selector + " requires a current point")
	}
}

func pointCount(t ElementType) int {
	switch t {
	case MoveToElement, LineToElement:
		return 1
	case QuadraticCurveToElement:
		return 2
	case CurveToElement:
		return 3
	default:
		return 0
	}
}

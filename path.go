// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

// Path is a backend-agnostic vector path: an ordered list of actions plus an
// optional stroke style.
//
// Path has value semantics. Builder methods return a new Path and never
// modify the receiver, so a Path handed to a rasterizer cannot change
// underneath it:
//
//	p := pathkit.NewPath().
//		Move(pathkit.Pt(0, 0)).
//		Line(pathkit.Pt(10, 0)).
//		AddArc(pathkit.Pt(10, 10), 10, -math.Pi/2, 0, true)
type Path struct {
	actions []Action
	stroke  *StrokeStyle
}

// NewPath returns an empty path.
func NewPath() Path {
	return Path{}
}

// PathOf returns a path replaying actions in order.
func PathOf(actions ...Action) Path {
	return Path{actions: cloneActions(actions)}
}

// Actions returns a copy of the path's actions.
func (p Path) Actions() []Action {
	return cloneActions(p.actions)
}

// Len returns the number of top-level actions.
func (p Path) Len() int {
	return len(p.actions)
}

// IsEmpty reports whether p has no actions.
func (p Path) IsEmpty() bool {
	return len(p.actions) == 0
}

// StrokeStyle returns the path's stroke style, if one was set.
func (p Path) StrokeStyle() (StrokeStyle, bool) {
	if p.stroke == nil {
		return StrokeStyle{}, false
	}
	return *p.stroke, true
}

// WithStroke returns a copy of p carrying the given stroke style.
func (p Path) WithStroke(s StrokeStyle) Path {
	p.stroke = &s
	return p
}

// Append returns a copy of p with actions added at the end.
func (p Path) Append(actions ...Action) Path {
	next := make([]Action, 0, len(p.actions)+len(actions))
	next = append(next, p.actions...)
	next = append(next, cloneActions(actions)...)
	p.actions = next
	return p
}

// Move appends a MoveTo.
func (p Path) Move(to Point) Path {
	return p.Append(MoveTo{Point: to})
}

// Line appends a LineTo.
func (p Path) Line(to Point) Path {
	return p.Append(LineTo{Point: to})
}

// QuadCurve appends a quadratic curve.
func (p Path) QuadCurve(control, end Point) Path {
	return p.Append(QuadCurve{Control: control, End: end})
}

// CubicCurve appends a cubic curve.
func (p Path) CubicCurve(c1, c2, end Point) Path {
	return p.Append(CubicCurve{Control1: c1, Control2: c2, End: end})
}

// AddRectangle appends a rectangle.
func (p Path) AddRectangle(r Rect) Path {
	return p.Append(Rectangle{Rect: r})
}

// AddCircle appends a circle.
func (p Path) AddCircle(center Point, radius float64) Path {
	return p.Append(Circle{Center: center, Radius: radius})
}

// AddArc appends an arc. See Arc for the angle convention.
func (p Path) AddArc(center Point, radius, start, end float64, clockwise bool) Path {
	return p.Append(Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: start,
		EndAngle:   end,
		Clockwise:  clockwise,
	})
}

// Transform appends a Transform action.
func (p Path) Transform(m Matrix) Path {
	return p.Append(Transform{Matrix: m})
}

// AddSubpath appends sub's actions as a nested Subpath. The stroke style of
// sub is ignored.
func (p Path) AddSubpath(sub Path) Path {
	return p.Append(Subpath{Actions: sub.actions})
}

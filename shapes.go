// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

import "math"

// Shape describes geometry that adapts to the frame it is laid out in.
// Shapes are the shape-description layer: they build a fresh Path for each
// layout pass and are responsible for the validity of its geometry.
type Shape interface {
	Path(bounds Rect) Path
}

// ShapeFunc adapts a function to the Shape interface.
type ShapeFunc func(bounds Rect) Path

// Path calls f(bounds).
func (f ShapeFunc) Path(bounds Rect) Path {
	return f(bounds)
}

// RectShape fills its bounds.
type RectShape struct{}

// Path implements Shape.
func (RectShape) Path(bounds Rect) Path {
	return NewPath().AddRectangle(bounds)
}

// RoundedRectShape is a rectangle with circular corners. CornerRadius is
// clamped to half the shorter side.
type RoundedRectShape struct {
	CornerRadius float64
}

// Path implements Shape.
func (s RoundedRectShape) Path(bounds Rect) Path {
	return roundedRect(bounds, s.CornerRadius)
}

// CapsuleShape is a rounded rectangle whose short sides are semicircles.
type CapsuleShape struct{}

// Path implements Shape.
func (CapsuleShape) Path(bounds Rect) Path {
	return roundedRect(bounds, math.Min(bounds.Width, bounds.Height)/2)
}

func roundedRect(b Rect, r float64) Path {
	r = math.Min(r, math.Min(b.Width, b.Height)/2)
	if r <= 0 {
		return NewPath().AddRectangle(b)
	}
	start := Pt(b.MinX()+r, b.MinY())
	return NewPath().
		Move(start).
		Line(Pt(b.MaxX()-r, b.MinY())).
		AddArc(Pt(b.MaxX()-r, b.MinY()+r), r, -math.Pi/2, 0, true).
		Line(Pt(b.MaxX(), b.MaxY()-r)).
		AddArc(Pt(b.MaxX()-r, b.MaxY()-r), r, 0, math.Pi/2, true).
		Line(Pt(b.MinX()+r, b.MaxY())).
		AddArc(Pt(b.MinX()+r, b.MaxY()-r), r, math.Pi/2, math.Pi, true).
		Line(Pt(b.MinX(), b.MinY()+r)).
		AddArc(Pt(b.MinX()+r, b.MinY()+r), r, math.Pi, 3*math.Pi/2, true).
		Line(start)
}

// CircleShape is the largest circle centred in its bounds.
type CircleShape struct{}

// Path implements Shape.
func (CircleShape) Path(bounds Rect) Path {
	return NewPath().AddCircle(bounds.Center(), math.Min(bounds.Width, bounds.Height)/2)
}

// EllipseShape is the ellipse inscribed in its bounds. It is built as a unit
// circle scaled inside a subpath, so the scale does not touch sibling
// geometry.
type EllipseShape struct{}

// Path implements Shape.
func (EllipseShape) Path(bounds Rect) Path {
	c := bounds.Center()
	unit := NewPath().
		AddCircle(Point{}, 1).
		Transform(Translate(c.X, c.Y).Multiply(Scale(bounds.Width/2, bounds.Height/2)))
	return NewPath().AddSubpath(unit)
}

// PolygonShape joins Points with straight lines. Points are in unit
// coordinates: (0, 0) is the top-left and (1, 1) the bottom-right of the
// bounds.
type PolygonShape struct {
	Points []Point
	Closed bool
}

// Path implements Shape.
func (s PolygonShape) Path(bounds Rect) Path {
	p := NewPath()
	if len(s.Points) == 0 {
		return p
	}
	toBounds := Translate(bounds.X, bounds.Y).Multiply(Scale(bounds.Width, bounds.Height))
	first := toBounds.Apply(s.Points[0])
	p = p.Move(first)
	for _, pt := range s.Points[1:] {
		p = p.Line(toBounds.Apply(pt))
	}
	if s.Closed {
		p = p.Line(first)
	}
	return p
}

// ArcShape is a pie slice of the largest circle centred in its bounds,
// sweeping from StartAngle to EndAngle (radians, Y down).
type ArcShape struct {
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// Path implements Shape.
func (s ArcShape) Path(bounds Rect) Path {
	c := bounds.Center()
	r := math.Min(bounds.Width, bounds.Height) / 2
	return NewPath().
		Move(c).
		AddArc(c, r, s.StartAngle, s.EndAngle, s.Clockwise).
		Line(c)
}

// PathShape draws a fixed path, translated so its origin sits at the
// top-left of the bounds.
type PathShape struct {
	Fixed Path
}

// Path implements Shape.
func (s PathShape) Path(bounds Rect) Path {
	sub := s.Fixed.Transform(Translate(bounds.X, bounds.Y))
	out := NewPath().AddSubpath(sub)
	if st, ok := s.Fixed.StrokeStyle(); ok {
		out = out.WithStroke(st)
	}
	return out
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

import "math"

// QuadBez is a quadratic Bezier curve: start P0, control P1, end P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval returns the point at parameter t in [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Elevate returns the cubic curve tracing exactly the same points as q.
func (q QuadBez) Elevate() CubicBez {
	c1, c2 := ElevateQuad(q.P0, q.P1, q.P2)
	return CubicBez{P0: q.P0, P1: c1, P2: c2, P3: q.P2}
}

// CubicBez is a cubic Bezier curve: start P0, controls P1 and P2, end P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// ElevateQuad degree-elevates the quadratic Bezier (current, control, end)
// and returns the two control points of the identical cubic:
//
//	C1 = (current + 2*control) / 3
//	C2 = (2*control + end) / 3
//
// The conversion is exact; it is how native APIs without quadratic curves
// draw them.
func ElevateQuad(current, control, end Point) (c1, c2 Point) {
	c1 = current.Add(control.Mul(2)).Div(3)
	c2 = control.Mul(2).Add(end).Div(3)
	return c1, c2
}

// maxArcSegment is the largest sweep approximated by a single cubic.
const maxArcSegment = math.Pi / 2

// ArcCubics approximates the circular arc of the given radius around center,
// starting at angle start (radians) and sweeping by sweep radians, with
// cubic segments of at most 90 degrees each. The sign of sweep selects the
// direction: positive sweeps move from the X axis towards the Y axis. A zero
// or non-finite sweep yields no segments.
func ArcCubics(center Point, radius, start, sweep float64) []CubicBez {
	if sweep == 0 || math.IsNaN(sweep) || math.IsInf(sweep, 0) {
		return nil
	}
	// Sweeps within rounding error of a multiple of 90° get no extra segment.
	n := int(math.Ceil(math.Abs(sweep)/maxArcSegment - 1e-9))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	// Tangent length for a segment of angle step, from "Drawing an elliptical
	// arc using polylines, quadratic or cubic Bezier curves" (L. Maisonobe).
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]CubicBez, 0, n)
	a0 := start
	for i := 0; i < n; i++ {
		a1 := a0 + step
		sin0, cos0 := math.Sincos(a0)
		sin1, cos1 := math.Sincos(a1)
		p0 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
		p3 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}
		segs = append(segs, CubicBez{
			P0: p0,
			P1: Point{X: p0.X - k*radius*sin0, Y: p0.Y + k*radius*cos0},
			P2: Point{X: p3.X + k*radius*sin1, Y: p3.Y - k*radius*cos1},
			P3: p3,
		})
		a0 = a1
	}
	return segs
}

// PointOnCircle returns the point at angle radians on the circle.
func PointOnCircle(center Point, radius, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

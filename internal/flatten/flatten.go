// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package flatten converts native path elements into polylines.
package flatten

import (
	"math"

	"github.com/gogpu/pathkit"
)

// DefaultTolerance is the maximum distance, in device pixels, between a
// curve and its flattened approximation.
const DefaultTolerance = 0.1

// maxDepth bounds curve subdivision so degenerate input (NaN, huge values)
// cannot recurse without end.
const maxDepth = 10

// Polyline is one flattened subpath.
type Polyline struct {
	Points []pathkit.Point
	Closed bool
}

// Elements maps elems through m and flattens them into polylines.
// Curves are subdivided until every control point is within tolerance of
// the chord. Subpaths with a single point are kept so that stroking can
// draw caps for them.
//
// A subpath is Closed when it ends in a close element, or when it has more
// than two points and its last point equals its first. The path model has
// no close action, so shapes close outlines by returning to their start;
// stroking those with a join instead of two caps matches what they mean.
func Elements(elems []pathkit.Element, m pathkit.Matrix, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var (
		out     []Polyline
		cur     []pathkit.Point
		start   pathkit.Point
		current pathkit.Point
	)
	flush := func(closed bool) {
		if len(cur) > 2 && cur[0] == cur[len(cur)-1] {
			closed = true
		}
		if len(cur) > 0 {
			out = append(out, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}
	begin := func() {
		if cur == nil {
			cur = []pathkit.Point{current}
		}
	}

	for _, e := range elems {
		switch e.Op {
		case pathkit.OpMoveTo:
			flush(false)
			current = m.Apply(e.Points[0])
			start = current
			cur = []pathkit.Point{current}

		case pathkit.OpLineTo:
			begin()
			current = m.Apply(e.Points[0])
			cur = append(cur, current)

		case pathkit.OpQuadTo:
			begin()
			c := m.Apply(e.Points[0])
			end := m.Apply(e.Points[1])
			cur = quadratic(cur, current, c, end, tolerance, 0)
			current = end

		case pathkit.OpCubicTo:
			begin()
			c1 := m.Apply(e.Points[0])
			c2 := m.Apply(e.Points[1])
			end := m.Apply(e.Points[2])
			cur = cubic(cur, current, c1, c2, end, tolerance, 0)
			current = end

		case pathkit.OpClose:
			flush(true)
			current = start
		}
	}
	flush(false)
	return out
}

func quadratic(pts []pathkit.Point, p0, p1, p2 pathkit.Point, tol float64, depth int) []pathkit.Point {
	if depth >= maxDepth || distanceToSegment(p1, p0, p2) < tol {
		return append(pts, p2)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)
	pts = quadratic(pts, p0, q0, mid, tol, depth+1)
	return quadratic(pts, mid, q1, p2, tol, depth+1)
}

func cubic(pts []pathkit.Point, p0, p1, p2, p3 pathkit.Point, tol float64, depth int) []pathkit.Point {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxDepth || d < tol {
		return append(pts, p3)
	}
	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)
	pts = cubic(pts, p0, q0, r0, mid, tol, depth+1)
	return cubic(pts, mid, r1, q2, p3, tol, depth+1)
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b pathkit.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

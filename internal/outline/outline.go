// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package outline expands stroked polylines into polygons that can be
// filled with the non-zero rule.
//
// A stroke is emitted as a union of simple pieces: one quadrilateral per
// segment, one wedge per join on the outer side of the turn, and the caps.
// Every piece is wound the same way, so overlaps add up under the non-zero
// rule instead of cancelling.
//
// Line caps:
//   - LineCapButt: nothing past the endpoint
//   - LineCapRound: a disc of radius Width/2 at the endpoint
//   - LineCapSquare: a half square extending Width/2 past the endpoint
//
// Line joins:
//   - LineJoinMiter: the outer edges extended to their intersection, or a
//     bevel when the miter ratio exceeds MiterLimit
//   - LineJoinRound: a circular wedge
//   - LineJoinBevel: a triangle across the corner
package outline

import (
	"math"

	"github.com/gogpu/pathkit"
	"github.com/gogpu/pathkit/internal/flatten"
)

// Polygon is a closed outline.
type Polygon []pathkit.Point

// Stroker expands polylines according to a stroke style.
type Stroker struct {
	style     pathkit.StrokeStyle
	tolerance float64
}

// New returns a stroker for style.
func New(style pathkit.StrokeStyle) *Stroker {
	return &Stroker{style: style, tolerance: flatten.DefaultTolerance}
}

// SetTolerance sets the maximum deviation of round joins and caps from a
// true circle.
func (s *Stroker) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		s.tolerance = tolerance
	}
}

// Outline returns the polygons covering the stroke of lines. A non-positive
// width strokes nothing.
func (s *Stroker) Outline(lines []flatten.Polyline) []Polygon {
	if s.style.Width <= 0 {
		return nil
	}
	var out []Polygon
	for _, l := range lines {
		out = s.polyline(out, l)
	}
	for i := range out {
		if signedArea(out[i]) < 0 {
			reverse(out[i])
		}
	}
	return out
}

func (s *Stroker) polyline(out []Polygon, l flatten.Polyline) []Polygon {
	pts := dedupe(l.Points)
	closed := l.Closed
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	hw := s.style.Width / 2
	if len(pts) == 0 {
		return out
	}
	if len(pts) == 1 {
		return s.dot(out, pts[0], hw)
	}
	if len(pts) == 2 {
		closed = false
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		nm := normal(b.Sub(a), hw)
		out = append(out, Polygon{a.Add(nm), b.Add(nm), b.Sub(nm), a.Sub(nm)})
	}

	first, last := 1, n-2
	if closed {
		first, last = 0, n-1
	}
	for i := first; i <= last; i++ {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		out = s.join(out, pts[i], pts[i].Sub(prev), next.Sub(pts[i]), hw)
	}

	if !closed {
		out = s.cap(out, pts[0], pts[0].Sub(pts[1]), hw)
		out = s.cap(out, pts[n-1], pts[n-1].Sub(pts[n-2]), hw)
	}
	return out
}

// join adds the wedge on the outer side of the turn at p from direction d0
// to direction d1.
func (s *Stroker) join(out []Polygon, p, d0, d1 pathkit.Point, hw float64) []Polygon {
	u0 := unit(d0)
	u1 := unit(d1)
	cross := u0.Cross(u1)
	dot := u0.Dot(u1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return out
	}

	n0 := normal(d0, hw)
	n1 := normal(d1, hw)
	// Turning towards +normal puts the outer edge on the -normal side.
	if cross > 0 {
		n0, n1 = n0.Mul(-1), n1.Mul(-1)
	}
	o0, o1 := p.Add(n0), p.Add(n1)

	switch s.style.Join {
	case pathkit.LineJoinRound:
		return append(out, s.fan(p, n0, n1, hw))

	case pathkit.LineJoinMiter:
		// ratio of miter length to half width is 1/cos(turn/2)
		cosHalf := math.Sqrt((1 + dot) / 2)
		if cosHalf > 1e-9 {
			ratio := 1 / cosHalf
			if ratio <= s.style.MiterLimit {
				bis := unit(n0.Add(n1))
				tip := p.Add(bis.Mul(hw * ratio))
				return append(out, Polygon{p, o0, tip, o1})
			}
		}
	}
	return append(out, Polygon{p, o0, o1})
}

// cap adds the cap at endpoint p; dir points out of the stroke.
func (s *Stroker) cap(out []Polygon, p, dir pathkit.Point, hw float64) []Polygon {
	switch s.style.Cap {
	case pathkit.LineCapRound:
		return append(out, s.circle(p, hw))
	case pathkit.LineCapSquare:
		ext := unit(dir).Mul(hw)
		nm := normal(dir, hw)
		return append(out, Polygon{p.Add(nm), p.Add(nm).Add(ext), p.Sub(nm).Add(ext), p.Sub(nm)})
	}
	return out
}

// dot strokes a zero-length subpath: only round and square caps show.
func (s *Stroker) dot(out []Polygon, p pathkit.Point, hw float64) []Polygon {
	switch s.style.Cap {
	case pathkit.LineCapRound:
		return append(out, s.circle(p, hw))
	case pathkit.LineCapSquare:
		return append(out, Polygon{
			p.Add(pathkit.Pt(-hw, -hw)),
			p.Add(pathkit.Pt(hw, -hw)),
			p.Add(pathkit.Pt(hw, hw)),
			p.Add(pathkit.Pt(-hw, hw)),
		})
	}
	return out
}

// fan returns the circular wedge at center between offsets n0 and n1,
// taking the short way round.
func (s *Stroker) fan(center, n0, n1 pathkit.Point, r float64) Polygon {
	a0 := math.Atan2(n0.Y, n0.X)
	sweep := math.Atan2(n0.Cross(n1), n0.Dot(n1))
	steps := s.arcSteps(r, math.Abs(sweep))
	poly := make(Polygon, 0, steps+2)
	poly = append(poly, center)
	for i := 0; i <= steps; i++ {
		poly = append(poly, pathkit.PointOnCircle(center, r, a0+sweep*float64(i)/float64(steps)))
	}
	return poly
}

func (s *Stroker) circle(center pathkit.Point, r float64) Polygon {
	steps := s.arcSteps(r, 2*math.Pi)
	poly := make(Polygon, steps)
	for i := range poly {
		poly[i] = pathkit.PointOnCircle(center, r, 2*math.Pi*float64(i)/float64(steps))
	}
	return poly
}

// maxArcSteps caps the chords of one round join or cap.
const maxArcSteps = 1024

// arcSteps returns how many chords approximate an arc of radius r and the
// given sweep within the stroker tolerance, at most maxArcSteps.
func (s *Stroker) arcSteps(r, sweep float64) int {
	var steps float64
	if r <= s.tolerance {
		steps = math.Max(1, math.Ceil(sweep/(math.Pi/2)))
	} else {
		step := 2 * math.Acos(1-s.tolerance/r)
		steps = math.Max(2, math.Ceil(sweep/step))
	}
	// NaN and Inf fail the comparison too.
	if !(steps <= maxArcSteps) {
		return maxArcSteps
	}
	return int(steps)
}

func normal(d pathkit.Point, length float64) pathkit.Point {
	u := unit(d)
	return pathkit.Pt(-u.Y*length, u.X*length)
}

func unit(d pathkit.Point) pathkit.Point {
	l := d.Length()
	if l == 0 {
		return pathkit.Point{}
	}
	return d.Div(l)
}

func dedupe(pts []pathkit.Point) []pathkit.Point {
	out := make([]pathkit.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func signedArea(p Polygon) float64 {
	var a float64
	for i := range p {
		a += p[i].Cross(p[(i+1)%len(p)])
	}
	return a / 2
}

func reverse(p Polygon) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

// LineCap is the shape drawn at the open ends of a stroked subpath.
type LineCap uint8

const (
	// LineCapButt ends the stroke flush with the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a semicircle of diameter Width.
	LineCapRound
	// LineCapSquare extends the stroke by Width/2 past the endpoint.
	LineCapSquare
)

// String returns the cap name used in scene documents.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin is the shape drawn where two stroked segments meet.
type LineJoin uint8

const (
	// LineJoinMiter extends the outer edges until they meet, falling back
	// to a bevel past the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound joins with a circular arc.
	LineJoinRound
	// LineJoinBevel joins with a straight edge across the corner.
	LineJoinBevel
)

// String returns the join name used in scene documents.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// StrokeStyle describes how a path outline is stroked.
type StrokeStyle struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStrokeStyle returns a 1-unit stroke with butt caps, miter joins and
// a miter limit of 10, the defaults shared by both native toolkits.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// WithWidth returns a copy of s with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy of s with the given cap.
func (s StrokeStyle) WithCap(c LineCap) StrokeStyle {
	s.Cap = c
	return s
}

// WithJoin returns a copy of s with the given join.
func (s StrokeStyle) WithJoin(j LineJoin) StrokeStyle {
	s.Join = j
	return s
}

// WithMiterLimit returns a copy of s with the given miter limit.
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle {
	s.MiterLimit = limit
	return s
}

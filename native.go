// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

// ElementOp identifies the kind of a native path Element.
type ElementOp uint8

const (
	// OpMoveTo starts a new subpath at Points[0].
	OpMoveTo ElementOp = iota
	// OpLineTo draws a line to Points[0].
	OpLineTo
	// OpQuadTo draws a quadratic curve with control Points[0] to Points[1].
	OpQuadTo
	// OpCubicTo draws a cubic curve with controls Points[0], Points[1] to Points[2].
	OpCubicTo
	// OpClose closes the current subpath.
	OpClose
)

// String returns the op name.
func (op ElementOp) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubicTo:
		return "CubicTo"
	case OpClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Element is a backend-neutral view of one stored native path element, in
// the native path's own coordinate space.
type Element struct {
	Op     ElementOp
	Points [3]Point
}

// End returns the point the element finishes at. Close has no end point of
// its own and returns the zero Point.
func (e Element) End() Point {
	switch e.Op {
	case OpMoveTo, OpLineTo:
		return e.Points[0]
	case OpQuadTo:
		return e.Points[1]
	case OpCubicTo:
		return e.Points[2]
	default:
		return Point{}
	}
}

// AngleUnit is the unit a native arc primitive takes its angles in.
type AngleUnit uint8

const (
	// Radians is used by cairo and the path model.
	Radians AngleUnit = iota
	// Degrees is used by AppKit's NSBezierPath.
	Degrees
)

// Convert converts an angle in radians to u.
func (u AngleUnit) Convert(rad float64) float64 {
	if u == Degrees {
		return RadiansToDegrees(rad)
	}
	return rad
}

// Capabilities describes how a native path API differs from the model.
// It is resolved once when a backend is created.
type Capabilities struct {
	// QuadCurves reports native quadratic Bezier support. Without it
	// quadratic curves are degree-elevated to cubics.
	QuadCurves bool

	// FlippedY reports a bottom-left origin with Y growing upward. Paths
	// for such backends get a single coordinate correction after replay,
	// and arc directions are inverted during replay.
	FlippedY bool

	// ArcUnit is the angle unit of NativePath.AddArc.
	ArcUnit AngleUnit
}

// NativePath is a mutable, backend-specific path object.
//
// Implementations mirror the semantics of the native API they stand for.
// They perform no validation: degenerate geometry is stored as given.
type NativePath interface {
	// MoveTo starts a new subpath.
	MoveTo(p Point)

	// LineTo adds a line from the current point.
	LineTo(p Point)

	// QuadTo adds a quadratic curve from the current point. It is only
	// called when the backend reports Capabilities.QuadCurves.
	QuadTo(ctrl, end Point)

	// CubicTo adds a cubic curve from the current point.
	CubicTo(c1, c2, end Point)

	// AddRect adds a closed rectangle subpath.
	AddRect(r Rect)

	// AddCircle adds a closed circle subpath.
	AddCircle(center Point, radius float64)

	// AddArc adds an arc with angles in the backend's ArcUnit. The
	// direction flag is interpreted in the native coordinate space.
	AddArc(center Point, radius, start, end float64, clockwise bool)

	// Apply transforms all geometry accumulated so far.
	Apply(m Matrix)

	// Append adds the geometry of other, which must come from the same
	// backend, after the existing geometry.
	Append(other NativePath)

	// CurrentPoint returns the current point, if there is one.
	CurrentPoint() (Point, bool)

	// Elements returns a copy of the stored geometry.
	Elements() []Element

	// IsEmpty reports whether no geometry has been added.
	IsEmpty() bool
}

// Backend creates native paths for one UI toolkit.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string

	// Capabilities returns the backend's native path capabilities.
	Capabilities() Capabilities

	// NewPath returns an empty native path.
	NewPath() NativePath

	// DeviceMatrix maps the coordinates of a native path rasterized for
	// bounds to device pixels with a top-left origin. The hosting view is
	// assumed to share the path's bounds.
	DeviceMatrix(bounds Rect) Matrix
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

import (
	"context"
	"log/slog"
)

// CorrectionMatrix returns the transform that maps model coordinates (top-left
// origin, Y down) laid out in bounds onto a bottom-left origin, Y-up frame:
// a vertical flip followed by a translation by (0, bounds.MaxY() + bounds.Y).
func CorrectionMatrix(bounds Rect) Matrix {
	return Translate(0, bounds.MaxY()+bounds.Y).Multiply(Scale(1, -1))
}

// Correct applies the coordinate correction for bounds to a fully composed
// native path. Backends that share the model's Y-down convention are left
// untouched. Correct must run exactly once per top-level path; Rasterize
// already does so.
func Correct(np NativePath, bounds Rect, caps Capabilities) {
	if !caps.FlippedY {
		return
	}
	np.Apply(CorrectionMatrix(bounds))
}

// Rasterize replays p into a new native path of backend b. bounds is the
// layout frame p was built for; it only drives the coordinate correction and
// never clips. p is not modified.
func Rasterize(b Backend, p Path, bounds Rect) NativePath {
	r := rasterizer{backend: b, caps: b.Capabilities()}
	np := r.replay(p.actions, bounds, true)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("pathkit: rasterized path",
			"backend", b.Name(),
			"actions", countActions(p.actions),
			"elements", len(np.Elements()),
			"elevatedQuads", r.elevated,
			"corrected", r.caps.FlippedY)
	}
	return np
}

// rasterizer holds the per-call replay state.
type rasterizer struct {
	backend  Backend
	caps     Capabilities
	elevated int
}

// replay builds a native path from actions. correct is true only for the
// outermost list: nested subpaths are composed uncorrected and the whole
// result is corrected once at the end.
func (r *rasterizer) replay(actions []Action, bounds Rect, correct bool) NativePath {
	np := r.backend.NewPath()

	for _, action := range actions {
		switch a := action.(type) {
		case MoveTo:
			np.MoveTo(a.Point)

		case LineTo:
			ensureCurrentPoint(np)
			np.LineTo(a.Point)

		case QuadCurve:
			cur := ensureCurrentPoint(np)
			if r.caps.QuadCurves {
				np.QuadTo(a.Control, a.End)
				continue
			}
			c1, c2 := ElevateQuad(cur, a.Control, a.End)
			np.CubicTo(c1, c2, a.End)
			r.elevated++

		case CubicCurve:
			ensureCurrentPoint(np)
			np.CubicTo(a.Control1, a.Control2, a.End)

		case Rectangle:
			np.AddRect(a.Rect)

		case Circle:
			np.AddCircle(a.Center, a.Radius)

		case Arc:
			// The geometry is still in model space here. A Y-up backend
			// interprets direction in its own frame, which is mirrored
			// relative to the model, so the flag flips now and the final
			// correction brings the sweep back to the intended orientation.
			clockwise := a.Clockwise
			if r.caps.FlippedY {
				clockwise = !clockwise
			}
			np.AddArc(a.Center, a.Radius,
				r.caps.ArcUnit.Convert(a.StartAngle),
				r.caps.ArcUnit.Convert(a.EndAngle),
				clockwise)

		case Transform:
			np.Apply(a.Matrix)

		case Subpath:
			np.Append(r.replay(a.Actions, bounds, false))
		}
	}

	if correct {
		Correct(np, bounds, r.caps)
	}
	return np
}

// ensureCurrentPoint moves to the origin when np has no current point, since
// native APIs refuse to draw without one. It returns the current point.
func ensureCurrentPoint(np NativePath) Point {
	if p, ok := np.CurrentPoint(); ok {
		return p
	}
	np.MoveTo(Point{})
	return Point{}
}

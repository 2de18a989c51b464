// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"

	"github.com/gogpu/pathkit"
)

// Path operation names.
const (
	OpMove   = "move"
	OpLine   = "line"
	OpQuad   = "quad"
	OpCubic  = "cubic"
	OpRect   = "rect"
	OpCircle = "circle"
	OpArc    = "arc"
	OpClose  = "close"
)

// PathOp is one drawing action of a free-form path.
//
// Points hold, per op: move and line the target; quad the control point and
// end; cubic both control points and end; rect the origin and the size;
// circle and arc the center. Radius, StartAngle, EndAngle and Clockwise
// apply to circle and arc.
type PathOp struct {
	Op         string       `yaml:"op" toml:"op"`
	Points     [][2]float64 `yaml:"points,omitempty" toml:"points,omitempty"`
	Radius     float64      `yaml:"radius,omitempty" toml:"radius,omitempty"`
	StartAngle float64      `yaml:"startAngle,omitempty" toml:"startAngle,omitempty"`
	EndAngle   float64      `yaml:"endAngle,omitempty" toml:"endAngle,omitempty"`
	Clockwise  bool         `yaml:"clockwise,omitempty" toml:"clockwise,omitempty"`
}

var opPoints = map[string]int{
	OpMove:   1,
	OpLine:   1,
	OpQuad:   2,
	OpCubic:  3,
	OpRect:   2,
	OpCircle: 1,
	OpArc:    1,
	OpClose:  0,
}

// buildPath replays ops into a Path. close draws a line back to the start
// of the current subpath: the last move, the origin of a rect, the rightmost
// point of a circle, or the start of an arc or implicit move that opened it.
func buildPath(ops []PathOp) (pathkit.Path, error) {
	p := pathkit.NewPath()
	var (
		start pathkit.Point
		open  bool
	)
	for i, op := range ops {
		want, ok := opPoints[op.Op]
		if !ok {
			return p, fmt.Errorf("%w: path op %d: unknown op %q", ErrInvalidShape, i, op.Op)
		}
		if len(op.Points) != want {
			return p, fmt.Errorf("%w: path op %d (%s): got %d points, want %d",
				ErrInvalidShape, i, op.Op, len(op.Points), want)
		}
		pts := points(op.Points)
		switch op.Op {
		case OpMove:
			start, open = pts[0], true
			p = p.Move(pts[0])
		case OpLine, OpQuad, OpCubic:
			if !open {
				// The rasterizer moves to the origin first.
				start, open = pathkit.Point{}, true
			}
			switch op.Op {
			case OpLine:
				p = p.Line(pts[0])
			case OpQuad:
				p = p.QuadCurve(pts[0], pts[1])
			default:
				p = p.CubicCurve(pts[0], pts[1], pts[2])
			}
		case OpRect:
			start, open = pts[0], true
			p = p.AddRectangle(pathkit.R(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y))
		case OpCircle:
			start, open = pts[0].Add(pathkit.Pt(op.Radius, 0)), true
			p = p.AddCircle(pts[0], op.Radius)
		case OpArc:
			from := pathkit.DegreesToRadians(op.StartAngle)
			if !open {
				start, open = pathkit.PointOnCircle(pts[0], op.Radius, from), true
			}
			p = p.AddArc(pts[0], op.Radius, from,
				pathkit.DegreesToRadians(op.EndAngle),
				op.Clockwise)
		case OpClose:
			if !open {
				return p, fmt.Errorf("%w: path op %d: close without an open subpath", ErrInvalidShape, i)
			}
			p = p.Line(start)
		}
	}
	return p, nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

// Action is one drawing instruction in a Path. The set of actions is closed:
// only the types in this file implement it.
type Action interface {
	isAction()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

// LineTo draws a straight line from the current point to Point.
// When no current point exists the replay first moves to the origin.
type LineTo struct {
	Point Point
}

// QuadCurve draws a quadratic Bezier from the current point through Control
// to End.
type QuadCurve struct {
	Control Point
	End     Point
}

// CubicCurve draws a cubic Bezier from the current point to End.
type CubicCurve struct {
	Control1 Point
	Control2 Point
	End      Point
}

// Rectangle adds a closed rectangle subpath.
type Rectangle struct {
	Rect Rect
}

// Circle adds a closed circle subpath.
type Circle struct {
	Center Point
	Radius float64
}

// Arc adds a circular arc. Angles are radians measured in the model frame
// (Y down), so increasing angles turn clockwise on screen. Clockwise selects
// the sweep direction from StartAngle to EndAngle as seen on screen.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// Transform applies Matrix to all geometry accumulated so far in the
// enclosing path or subpath. Later actions are not affected.
type Transform struct {
	Matrix Matrix
}

// Subpath replays Actions into isolated geometry that is then appended to
// the enclosing path.
type Subpath struct {
	Actions []Action
}

func (MoveTo) isAction()     {}
func (LineTo) isAction()     {}
func (QuadCurve) isAction()  {}
func (CubicCurve) isAction() {}
func (Rectangle) isAction()  {}
func (Circle) isAction()     {}
func (Arc) isAction()        {}
func (Transform) isAction()  {}
func (Subpath) isAction()    {}

// cloneActions deep-copies a list so nested Subpath slices are not shared.
func cloneActions(actions []Action) []Action {
	if actions == nil {
		return nil
	}
	out := make([]Action, len(actions))
	for i, a := range actions {
		if sp, ok := a.(Subpath); ok {
			a = Subpath{Actions: cloneActions(sp.Actions)}
		}
		out[i] = a
	}
	return out
}

// countActions returns the number of actions including nested ones.
func countActions(actions []Action) int {
	n := 0
	for _, a := range actions {
		n++
		if sp, ok := a.(Subpath); ok {
			n += countActions(sp.Actions)
		}
	}
	return n
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pathkit is the path-rendering core of a declarative UI toolkit.
//
// # Overview
//
// A [Path] is a backend-agnostic list of drawing actions (move, line,
// quadratic and cubic curves, rectangles, circles, arcs, affine transforms
// and nested subpaths) plus an optional [StrokeStyle]. [Rasterize] replays a
// Path into a [NativePath] of a specific [Backend], ready to be filled and
// stroked by the host toolkit.
//
//	b := pathkit.MustBackend("appkit")
//	p := pathkit.RoundedRectShape{CornerRadius: 8}.Path(bounds)
//	np := pathkit.Rasterize(b, p, bounds)
//
// # Coordinate System
//
// Paths use the model convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; increasing angles turn clockwise on screen
//
// Backends whose native origin is bottom-left with Y up report
// [Capabilities].FlippedY. Their paths are built in model space and receive
// one [CorrectionMatrix] after the whole action list, nested subpaths
// included, has been replayed. Arc directions are inverted during replay so
// that they come out right after the flip.
//
// # Curve Compatibility
//
// Native APIs without quadratic curves receive the exact cubic equivalent
// computed by [ElevateQuad].
//
// # Backends
//
// Backends register themselves by name, like database/sql drivers:
//
//	import _ "github.com/gogpu/pathkit/backend/appkit"
//	import _ "github.com/gogpu/pathkit/backend/gtk"
//
// # Concurrency
//
// Paths are values and may be shared freely. Native paths are not
// synchronized and belong to the UI loop goroutine that built them; see
// package uiloop.
package pathkit

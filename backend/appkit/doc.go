// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package appkit provides the AppKit path backend.
//
// [BezierPath] reproduces the behaviour of NSBezierPath that matters to path
// replay: a bottom-left origin with Y growing upward, arc angles in degrees
// with a direction flag interpreted in that Y-up frame, ovals and rectangles
// appended as closed subpaths, and quadratic curves that only exist on
// newer systems. Whether quadratic curves are available is a capability
// chosen when the backend is created, never an OS version check.
//
// The package registers itself as "appkit":
//
//	import _ "github.com/gogpu/pathkit/backend/appkit"
//
//	b := pathkit.MustBackend("appkit", pathkit.WithQuadCurves(false))
//	np := pathkit.Rasterize(b, path, bounds)
package appkit

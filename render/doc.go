// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns shape descriptions into painted pixels.
//
// A [ShapeRenderer] owns one shape and a backend. On every layout pass the
// host calls [ShapeRenderer.Update] with the shape's frame. Native geometry
// is rebuilt only when the points changed or the frame moved; a style-only
// update reuses the cached native path and just resolves new colors.
//
//	b := pathkit.MustBackend("gtk")
//	r := render.NewShapeRenderer(b, pathkit.CircleShape{},
//	    render.WithFill(pathkit.Orange),
//	    render.WithStroke(pathkit.Black),
//	)
//	r.Update(frame, true).Paint(s)
//
// # Thread Safety
//
// Renderers are NOT thread-safe. They belong to the UI loop goroutine.
package render

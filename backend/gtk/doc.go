// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gtk provides the GTK3 path backend.
//
// GTK3 widgets draw through cairo, so [CairoPath] reproduces cairo's path
// semantics: a top-left origin with Y growing downward (the model's own
// convention, so no coordinate correction is needed), arc angles in radians
// with cairo_arc sweeping towards increasing angles and cairo_arc_negative
// towards decreasing ones, and no quadratic curves at all.
//
// The package registers itself as "gtk":
//
//	import _ "github.com/gogpu/pathkit/backend/gtk"
package gtk

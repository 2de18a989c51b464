// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/pathkit"
)

// Surface is a paint target for native paths.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the whole surface with c.
	Clear(c color.Color)

	// Fill fills np, mapped through device, with c. The path is not
	// modified.
	Fill(np pathkit.NativePath, device pathkit.Matrix, c pathkit.Color)

	// Stroke strokes np, mapped through device, with the given style and
	// color. The path is not modified.
	Stroke(np pathkit.NativePath, device pathkit.Matrix, style pathkit.StrokeStyle, c pathkit.Color)

	// Snapshot returns a copy of the current contents.
	Snapshot() *image.RGBA

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the CPU paint target for native paths.
//
// A host widget's paint callback receives a finished native path together
// with resolved fill and stroke colors. ImageSurface plays the part of the
// toolkit's drawing context: it fills and then strokes such paths into an
// *image.RGBA, using the backend's device matrix to get from native path
// coordinates to top-left device pixels.
//
// # Usage
//
//	s := surface.NewImageSurface(200, 100)
//	defer s.Close()
//
//	s.Clear(color.White)
//	device := b.DeviceMatrix(bounds)
//	s.Fill(np, device, pathkit.Blue)
//	s.Stroke(np, device, pathkit.DefaultStrokeStyle().WithWidth(2), pathkit.Black)
//
// Fills use the non-zero rule through golang.org/x/image/vector. Strokes are
// expanded into polygons in device space, so stroke widths are in device
// pixels regardless of the device matrix.
//
// Surfaces are not safe for concurrent use; paint from the UI loop.
package surface

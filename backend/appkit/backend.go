// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package appkit

import "github.com/gogpu/pathkit"

// Name is the registry name of the backend.
const Name = "appkit"

func init() {
	pathkit.Register(Name, func(cfg pathkit.BackendConfig) pathkit.Backend {
		return New(cfg)
	})
}

// Backend creates NSBezierPath-style native paths.
type Backend struct {
	caps pathkit.Capabilities
}

var _ pathkit.Backend = (*Backend)(nil)

// New returns an AppKit backend. cfg.QuadCurves stands for the
// addQuadCurveToPoint: selector being available at runtime.
func New(cfg pathkit.BackendConfig) *Backend {
	return &Backend{
		caps: pathkit.Capabilities{
			QuadCurves: cfg.QuadCurves,
			FlippedY:   true,
			ArcUnit:    pathkit.Degrees,
		},
	}
}

// Name implements pathkit.Backend.
func (b *Backend) Name() string { return Name }

// Capabilities implements pathkit.Backend.
func (b *Backend) Capabilities() pathkit.Capabilities { return b.caps }

// NewPath implements pathkit.Backend.
func (b *Backend) NewPath() pathkit.NativePath {
	return NewBezierPath(b.caps.QuadCurves)
}

// DeviceMatrix maps the Y-up coordinates of a path rasterized for bounds to
// top-left device pixels. The correction is a reflection about the middle
// of bounds, so it is its own inverse.
func (b *Backend) DeviceMatrix(bounds pathkit.Rect) pathkit.Matrix {
	return pathkit.CorrectionMatrix(bounds)
}

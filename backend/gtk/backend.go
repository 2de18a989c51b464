// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gtk

import "github.com/gogpu/pathkit"

// Name is the registry name of the backend.
const Name = "gtk"

func init() {
	pathkit.Register(Name, func(pathkit.BackendConfig) pathkit.Backend {
		return New()
	})
}

// Backend creates cairo-style native paths. Cairo has no quadratic curves,
// so BackendConfig.QuadCurves is ignored.
type Backend struct{}

var _ pathkit.Backend = (*Backend)(nil)

// New returns a GTK backend.
func New() *Backend {
	return &Backend{}
}

// Name implements pathkit.Backend.
func (*Backend) Name() string { return Name }

// Capabilities implements pathkit.Backend.
func (*Backend) Capabilities() pathkit.Capabilities {
	return pathkit.Capabilities{
		QuadCurves: false,
		FlippedY:   false,
		ArcUnit:    pathkit.Radians,
	}
}

// NewPath implements pathkit.Backend.
func (*Backend) NewPath() pathkit.NativePath {
	return NewCairoPath()
}

// DeviceMatrix is the identity: cairo user space already matches device
// space for an untransformed widget.
func (*Backend) DeviceMatrix(pathkit.Rect) pathkit.Matrix {
	return pathkit.Identity()
}

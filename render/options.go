// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/pathkit"

// Style is the resolved paint state of a shape.
type Style struct {
	// Fill is the fill color. Transparent disables filling.
	Fill pathkit.Color

	// Stroke is the stroke color. Transparent disables stroking.
	Stroke pathkit.Color

	// StrokeStyle is used unless the shape's path carries its own.
	StrokeStyle pathkit.StrokeStyle
}

// DefaultStyle fills with the foreground color (black) and does not stroke.
func DefaultStyle() Style {
	return Style{
		Fill:        pathkit.Black,
		Stroke:      pathkit.Transparent,
		StrokeStyle: pathkit.DefaultStrokeStyle(),
	}
}

// Option configures a ShapeRenderer.
type Option func(*Style)

// WithFill sets the fill color.
func WithFill(c pathkit.Color) Option {
	return func(s *Style) {
		s.Fill = c
	}
}

// WithStroke sets the stroke color.
func WithStroke(c pathkit.Color) Option {
	return func(s *Style) {
		s.Stroke = c
	}
}

// WithStrokeStyle sets the default stroke style.
func WithStrokeStyle(st pathkit.StrokeStyle) Option {
	return func(s *Style) {
		s.StrokeStyle = st
	}
}

// WithStyle replaces the whole style.
func WithStyle(st Style) Option {
	return func(s *Style) {
		*s = st
	}
}

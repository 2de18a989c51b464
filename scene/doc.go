// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene loads shape-description documents.
//
// A document lists shapes, each with a frame and a paint style. Documents
// are written in YAML or TOML:
//
//	width: 320
//	height: 200
//	background: "#ffffff"
//	shapes:
//	  - type: roundedRect
//	    frame: [10, 10, 140, 80]
//	    cornerRadius: 16
//	    fill: "#ff8800"
//	    stroke: "#000"
//	    strokeWidth: 2
//
// The same document in TOML:
//
//	width = 320
//	height = 200
//
//	[[shapes]]
//	type = "roundedRect"
//	frame = [10.0, 10.0, 140.0, 80.0]
//	cornerRadius = 16.0
//	fill = "#ff8800"
//
// Angles in documents are degrees. [Document.Items] resolves every entry
// into a pathkit.Shape plus a render.Style.
package scene

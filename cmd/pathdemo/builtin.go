// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

const builtinScene = `
width: 320
height: 240
background: "#f4f4f4"
shapes:
  - name: card
    type: roundedRect
    frame: [16, 16, 130, 90]
    cornerRadius: 14
    fill: "#4a90d9"
    stroke: "#1d3f66"
    strokeWidth: 3
  - name: badge
    type: circle
    frame: [170, 16, 90, 90]
    fill: "#f5a623"
  - name: pill
    type: capsule
    frame: [16, 124, 130, 40]
    fill: "#7ed321"
  - name: gauge
    type: arc
    frame: [170, 120, 90, 90]
    startAngle: -90
    endAngle: 45
    clockwise: true
    fill: "#d0021b"
  - name: triangle
    type: polygon
    frame: [16, 176, 60, 50]
    points: [[0.5, 0], [1, 1], [0, 1]]
    closed: true
    fill: none
    stroke: "#000000"
    strokeWidth: 2
    join: round
  - name: wave
    type: path
    frame: [90, 176, 80, 50]
    fill: none
    stroke: "#9013fe"
    strokeWidth: 3
    cap: round
    path:
      - op: move
        points: [[0, 25]]
      - op: quad
        points: [[20, -10], [40, 25]]
      - op: quad
        points: [[60, 60], [80, 25]]
  - name: oval
    type: ellipse
    frame: [270, 130, 40, 90]
    fill: "#50e3c2"
`

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/pathkit"
	"github.com/gogpu/pathkit/render"
)

// Errors returned while resolving a document.
var (
	// ErrUnknownShape is returned for an unrecognized shape type.
	ErrUnknownShape = errors.New("scene: unknown shape type")

	// ErrInvalidShape is returned for a shape entry with malformed fields.
	ErrInvalidShape = errors.New("scene: invalid shape")
)

// Shape type names.
const (
	TypeRect        = "rect"
	TypeRoundedRect = "roundedRect"
	TypeCapsule     = "capsule"
	TypeCircle      = "circle"
	TypeEllipse     = "ellipse"
	TypePolygon     = "polygon"
	TypeArc         = "arc"
	TypePath        = "path"
)

// Document is a decoded scene file.
type Document struct {
	Width      int         `yaml:"width,omitempty" toml:"width,omitempty"`
	Height     int         `yaml:"height,omitempty" toml:"height,omitempty"`
	Background string      `yaml:"background,omitempty" toml:"background,omitempty"`
	Shapes     []ShapeSpec `yaml:"shapes" toml:"shapes"`
}

// ShapeSpec is one shape entry. Which fields apply depends on Type.
type ShapeSpec struct {
	Name  string     `yaml:"name,omitempty" toml:"name,omitempty"`
	Type  string     `yaml:"type" toml:"type"`
	Frame [4]float64 `yaml:"frame" toml:"frame"`

	// Fill defaults to black; "none" disables it.
	Fill string `yaml:"fill,omitempty" toml:"fill,omitempty"`
	// Stroke defaults to no stroke.
	Stroke      string  `yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"strokeWidth,omitempty" toml:"strokeWidth,omitempty"`
	Cap         string  `yaml:"cap,omitempty" toml:"cap,omitempty"`
	Join        string  `yaml:"join,omitempty" toml:"join,omitempty"`
	MiterLimit  float64 `yaml:"miterLimit,omitempty" toml:"miterLimit,omitempty"`

	// roundedRect
	CornerRadius float64 `yaml:"cornerRadius,omitempty" toml:"cornerRadius,omitempty"`

	// polygon, in unit coordinates of the frame
	Points [][2]float64 `yaml:"points,omitempty" toml:"points,omitempty"`
	Closed bool         `yaml:"closed,omitempty" toml:"closed,omitempty"`

	// arc
	StartAngle float64 `yaml:"startAngle,omitempty" toml:"startAngle,omitempty"`
	EndAngle   float64 `yaml:"endAngle,omitempty" toml:"endAngle,omitempty"`
	Clockwise  bool    `yaml:"clockwise,omitempty" toml:"clockwise,omitempty"`

	// path, relative to the frame origin
	Path []PathOp `yaml:"path,omitempty" toml:"path,omitempty"`
}

// Item is a resolved shape entry.
type Item struct {
	Name  string
	Shape pathkit.Shape
	Frame pathkit.Rect
	Style render.Style
}

// BackgroundColor returns the parsed background, white when unset.
func (d *Document) BackgroundColor() (pathkit.Color, error) {
	if d.Background == "" {
		return pathkit.White, nil
	}
	c, err := pathkit.ParseHex(d.Background)
	if err != nil {
		return pathkit.Color{}, fmt.Errorf("scene: background: %w", err)
	}
	return c, nil
}

// Items resolves every shape entry in document order.
func (d *Document) Items() ([]Item, error) {
	items := make([]Item, 0, len(d.Shapes))
	for i := range d.Shapes {
		it, err := d.Shapes[i].Item()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// Item resolves the entry into a shape and style.
func (s *ShapeSpec) Item() (Item, error) {
	shape, err := s.shape()
	if err != nil {
		return Item{}, err
	}
	st, err := s.style()
	if err != nil {
		return Item{}, err
	}
	name := s.Name
	if name == "" {
		name = s.Type
	}
	return Item{
		Name:  name,
		Shape: shape,
		Frame: pathkit.R(s.Frame[0], s.Frame[1], s.Frame[2], s.Frame[3]),
		Style: st,
	}, nil
}

func (s *ShapeSpec) shape() (pathkit.Shape, error) {
	switch s.Type {
	case TypeRect:
		return pathkit.RectShape{}, nil
	case TypeRoundedRect:
		return pathkit.RoundedRectShape{CornerRadius: s.CornerRadius}, nil
	case TypeCapsule:
		return pathkit.CapsuleShape{}, nil
	case TypeCircle:
		return pathkit.CircleShape{}, nil
	case TypeEllipse:
		return pathkit.EllipseShape{}, nil
	case TypePolygon:
		if len(s.Points) < 2 {
			return nil, fmt.Errorf("%w: polygon needs at least 2 points", ErrInvalidShape)
		}
		return pathkit.PolygonShape{Points: points(s.Points), Closed: s.Closed}, nil
	case TypeArc:
		return pathkit.ArcShape{
			StartAngle: pathkit.DegreesToRadians(s.StartAngle),
			EndAngle:   pathkit.DegreesToRadians(s.EndAngle),
			Clockwise:  s.Clockwise,
		}, nil
	case TypePath:
		p, err := buildPath(s.Path)
		if err != nil {
			return nil, err
		}
		return pathkit.PathShape{Fixed: p}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownShape, s.Type)
}

func (s *ShapeSpec) style() (render.Style, error) {
	st := render.DefaultStyle()
	switch strings.ToLower(s.Fill) {
	case "":
	case "none":
		st.Fill = pathkit.Transparent
	default:
		c, err := pathkit.ParseHex(s.Fill)
		if err != nil {
			return st, fmt.Errorf("%w: fill: %w", ErrInvalidShape, err)
		}
		st.Fill = c
	}
	switch strings.ToLower(s.Stroke) {
	case "", "none":
	default:
		c, err := pathkit.ParseHex(s.Stroke)
		if err != nil {
			return st, fmt.Errorf("%w: stroke: %w", ErrInvalidShape, err)
		}
		st.Stroke = c
	}

	ss := pathkit.DefaultStrokeStyle()
	if s.StrokeWidth > 0 {
		ss.Width = s.StrokeWidth
	}
	if s.MiterLimit > 0 {
		ss.MiterLimit = s.MiterLimit
	}
	var ok bool
	if ss.Cap, ok = parseCap(s.Cap); !ok {
		return st, fmt.Errorf("%w: cap %q", ErrInvalidShape, s.Cap)
	}
	if ss.Join, ok = parseJoin(s.Join); !ok {
		return st, fmt.Errorf("%w: join %q", ErrInvalidShape, s.Join)
	}
	st.StrokeStyle = ss
	return st, nil
}

func parseCap(name string) (pathkit.LineCap, bool) {
	if name == "" {
		return pathkit.LineCapButt, true
	}
	for _, c := range []pathkit.LineCap{pathkit.LineCapButt, pathkit.LineCapRound, pathkit.LineCapSquare} {
		if strings.EqualFold(name, c.String()) {
			return c, true
		}
	}
	return pathkit.LineCapButt, false
}

func parseJoin(name string) (pathkit.LineJoin, bool) {
	if name == "" {
		return pathkit.LineJoinMiter, true
	}
	for _, j := range []pathkit.LineJoin{pathkit.LineJoinMiter, pathkit.LineJoinRound, pathkit.LineJoinBevel} {
		if strings.EqualFold(name, j.String()) {
			return j, true
		}
	}
	return pathkit.LineJoinMiter, false
}

func points(in [][2]float64) []pathkit.Point {
	out := make([]pathkit.Point, len(in))
	for i, p := range in {
		out[i] = pathkit.Pt(p[0], p[1])
	}
	return out
}

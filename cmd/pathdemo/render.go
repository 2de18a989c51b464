// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/pathkit"
	"github.com/gogpu/pathkit/render"
	"github.com/gogpu/pathkit/scene"
	"github.com/gogpu/pathkit/surface"
)

const (
	defaultPanelWidth  = 320
	defaultPanelHeight = 240
	captionHeight      = 20
)

func renderFile(cfg config) error {
	doc, err := loadScene(cfg.scene)
	if err != nil {
		return err
	}
	backends, err := selectBackends(cfg.backend, backendOptions(cfg))
	if err != nil {
		return err
	}
	img, err := renderPanels(doc, backends, cfg.width, cfg.height)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", cfg.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("saved", "output", cfg.output, "panels", len(backends),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

func loadScene(path string) (*scene.Document, error) {
	if path == "" {
		return scene.Decode([]byte(builtinScene), scene.YAML)
	}
	return scene.Load(path)
}

func selectBackends(name string, opts []pathkit.BackendOption) ([]pathkit.Backend, error) {
	names := []string{name}
	if name == "all" {
		names = pathkit.Backends()
	}
	out := make([]pathkit.Backend, 0, len(names))
	for _, n := range names {
		b, err := pathkit.NewBackend(n, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// renderPanels paints doc once per backend, left to right, each panel with
// a caption strip underneath.
func renderPanels(doc *scene.Document, backends []pathkit.Backend, width, height int) (*image.RGBA, error) {
	if width <= 0 {
		width = doc.Width
	}
	if height <= 0 {
		height = doc.Height
	}
	if width <= 0 {
		width = defaultPanelWidth
	}
	if height <= 0 {
		height = defaultPanelHeight
	}

	items, err := doc.Items()
	if err != nil {
		return nil, err
	}
	bg, err := doc.BackgroundColor()
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, width*max(len(backends), 1), height+captionHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	title := cases.Title(language.English)
	for i, b := range backends {
		panel := paintPanel(b, items, bg, width, height)
		origin := image.Pt(i*width, 0)
		draw.Draw(out, panel.Bounds().Add(origin), panel, image.Point{}, draw.Src)
		drawCaption(out, origin.Add(image.Pt(4, height+captionHeight-6)), describe(title, b))
	}
	return out, nil
}

func paintPanel(b pathkit.Backend, items []scene.Item, bg pathkit.Color, width, height int) *image.RGBA {
	s := surface.NewImageSurface(width, height)
	defer s.Close()

	s.Clear(bg)
	for _, it := range items {
		r := render.NewShapeRenderer(b, it.Shape, render.WithStyle(it.Style))
		r.Update(it.Frame, true).Paint(s)
	}
	return s.Snapshot()
}

func drawCaption(dst draw.Image, at image.Point, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command pathdemo renders a shape scene through the registered path
// backends and writes the panels side by side to a PNG file.
//
// Usage:
//
//	pathdemo [-scene shapes.yaml] [-backend all|appkit|gtk] [-output out.png]
//	         [-width 320] [-height 240] [-noquad] [-watch] [-list] [-v]
//
// Without -scene a built-in scene is used. With -watch the scene file is
// re-rendered whenever it changes, until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/pathkit"
	_ "github.com/gogpu/pathkit/backend/appkit"
	_ "github.com/gogpu/pathkit/backend/gtk"
	"github.com/gogpu/pathkit/uiloop"
)

type config struct {
	scene   string
	backend string
	output  string
	width   int
	height  int
	noQuad  bool
	watch   bool
}

func main() {
	var (
		cfg     config
		list    = flag.Bool("list", false, "list registered backends and exit")
		verbose = flag.Bool("v", false, "verbose (debug) logging")
	)
	flag.StringVar(&cfg.scene, "scene", "", "scene file (.yaml, .yml or .toml); built-in scene if empty")
	flag.StringVar(&cfg.backend, "backend", "all", "backend name, or all")
	flag.StringVar(&cfg.output, "output", "pathdemo.png", "output PNG file")
	flag.IntVar(&cfg.width, "width", 0, "panel width (default from scene)")
	flag.IntVar(&cfg.height, "height", 0, "panel height (default from scene)")
	flag.BoolVar(&cfg.noQuad, "noquad", false, "disable native quadratic curves")
	flag.BoolVar(&cfg.watch, "watch", false, "re-render when the scene file changes")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pathkit.SetLogger(logger)

	if *list {
		listBackends(os.Stdout, backendOptions(cfg))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("pathdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	loop := uiloop.New()

	var renderErr error
	redraw := func() {
		renderErr = renderFile(cfg)
		if renderErr != nil {
			slog.Error("render failed", "err", renderErr)
		}
	}
	loop.Post(redraw)

	if !cfg.watch {
		loop.RunPending()
		return renderErr
	}
	if cfg.scene == "" {
		return fmt.Errorf("-watch requires -scene")
	}

	w, err := watchScene(cfg.scene, func() { loop.Post(redraw) })
	if err != nil {
		return err
	}
	defer w.Close()

	slog.Info("watching", "scene", cfg.scene)
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func backendOptions(cfg config) []pathkit.BackendOption {
	if cfg.noQuad {
		return []pathkit.BackendOption{pathkit.WithQuadCurves(false)}
	}
	return nil
}

func listBackends(w io.Writer, opts []pathkit.BackendOption) {
	title := cases.Title(language.English)
	for _, name := range pathkit.Backends() {
		b, err := pathkit.NewBackend(name, opts...)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-8s %s\n", name, describe(title, b))
	}
}

// describe returns a one-line summary such as "Appkit: y-up, degrees, quad".
func describe(title cases.Caser, b pathkit.Backend) string {
	caps := b.Capabilities()
	axis := "y-down"
	if caps.FlippedY {
		axis = "y-up"
	}
	unit := "radians"
	if caps.ArcUnit == pathkit.Degrees {
		unit = "degrees"
	}
	curves := "cubic only"
	if caps.QuadCurves {
		curves = "quad"
	}
	return fmt.Sprintf("%s: %s, %s, %s", title.String(b.Name()), axis, unit, curves)
}

package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/pathkit"
	"github.com/gogpu/pathkit/scene"
)

func TestDescribe(t *testing.T) {
	title := cases.Title(language.English)
	tests := []struct {
		backend string
		opts    []pathkit.BackendOption
		want    string
	}{
		{"appkit", nil, "Appkit: y-up, degrees, quad"},
		{"appkit", []pathkit.BackendOption{pathkit.WithQuadCurves(false)}, "Appkit: y-up, degrees, cubic only"},
		{"gtk", nil, "Gtk: y-down, radians, cubic only"},
	}
	for _, tt := range tests {
		b := pathkit.MustBackend(tt.backend, tt.opts...)
		if got := describe(title, b); got != tt.want {
			t.Errorf("describe(%s) = %q, want %q", tt.backend, got, tt.want)
		}
	}
}

func TestListBackends(t *testing.T) {
	var buf bytes.Buffer
	listBackends(&buf, nil)
	out := buf.String()
	for _, name := range []string{"appkit", "gtk"} {
		if !strings.Contains(out, name) {
			t.Errorf("listing %q does not mention %s", out, name)
		}
	}
}

func TestSelectBackends(t *testing.T) {
	all, err := selectBackends("all", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) < 2 {
		t.Errorf("all selected %d backends, want at least 2", len(all))
	}

	one, err := selectBackends("gtk", nil)
	if err != nil || len(one) != 1 || one[0].Name() != "gtk" {
		t.Errorf("selectBackends(gtk) = %v, %v", one, err)
	}

	if _, err := selectBackends("quartz", nil); !errors.Is(err, pathkit.ErrUnknownBackend) {
		t.Errorf("unknown backend error = %v, want ErrUnknownBackend", err)
	}
}

func TestRenderPanels(t *testing.T) {
	doc, err := loadScene("")
	if err != nil {
		t.Fatalf("builtin scene: %v", err)
	}
	backends, err := selectBackends("all", nil)
	if err != nil {
		t.Fatal(err)
	}

	img, err := renderPanels(doc, backends, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantW, wantH := doc.Width*len(backends), doc.Height+captionHeight
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("image = %v, want %dx%d", img.Bounds(), wantW, wantH)
	}

	img, err = renderPanels(&scene.Document{}, backends[:1], 50, 40)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 40+captionHeight {
		t.Errorf("flag sized image = %v, want 50x%d", img.Bounds(), 40+captionHeight)
	}

	bad := &scene.Document{Shapes: []scene.ShapeSpec{{Type: "blob"}}}
	if _, err := renderPanels(bad, backends, 0, 0); !errors.Is(err, scene.ErrUnknownShape) {
		t.Errorf("bad scene error = %v, want ErrUnknownShape", err)
	}
}

func TestRenderPanelsInfiniteFrame(t *testing.T) {
	doc, err := scene.Decode([]byte(`
shapes:
  - type: rect
    frame: [0, 0, .inf, 10]
    stroke: "#000"
  - type: circle
    frame: [.nan, 0, 10, 10]
`), scene.YAML)
	if err != nil {
		t.Fatal(err)
	}
	backends, err := selectBackends("all", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := renderPanels(doc, backends, 40, 30); err != nil {
		t.Errorf("renderPanels: %v", err)
	}
}

func TestPanelsAgreeAcrossBackends(t *testing.T) {
	doc, err := loadScene("")
	if err != nil {
		t.Fatal(err)
	}
	items, err := doc.Items()
	if err != nil {
		t.Fatal(err)
	}
	bg, _ := doc.BackgroundColor()

	// Native quads flatten differently from their cubic equivalents, so
	// both backends get cubics only.
	a := paintPanel(pathkit.MustBackend("appkit", pathkit.WithQuadCurves(false)), items, bg, doc.Width, doc.Height)
	g := paintPanel(pathkit.MustBackend("gtk"), items, bg, doc.Width, doc.Height)
	differ := 0
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(g.Pix[i])
		if d < -2 || d > 2 {
			differ++
		}
	}
	if differ > 0 {
		t.Errorf("appkit and gtk panels differ in %d bytes", differ)
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	cfg := config{backend: "all", output: out, width: 64, height: 48}
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dy() != 48+captionHeight {
		t.Errorf("output height = %d, want %d", img.Bounds().Dy(), 48+captionHeight)
	}
}

func TestRunWatchNeedsScene(t *testing.T) {
	cfg := config{backend: "gtk", output: filepath.Join(t.TempDir(), "out.png"), watch: true}
	if err := run(context.Background(), cfg); err == nil {
		t.Error("run with -watch and no scene succeeded")
	}
}

func TestWatchScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("shapes: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 16)
	w, err := watchScene(path, func() { changed <- struct{}{} })
	if err != nil {
		t.Fatalf("watchScene: %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("shapes:\n  - type: rect\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

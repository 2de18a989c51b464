package surface_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/pathkit"
	"github.com/gogpu/pathkit/backend/appkit"
	"github.com/gogpu/pathkit/backend/gtk"
	"github.com/gogpu/pathkit/surface"
)

func rasterize(b pathkit.Backend, p pathkit.Path, bounds pathkit.Rect) (pathkit.NativePath, pathkit.Matrix) {
	return pathkit.Rasterize(b, p, bounds), b.DeviceMatrix(bounds)
}

func TestNewImageSurface(t *testing.T) {
	tests := []struct {
		name          string
		w, h          int
		wantW, wantH int
	}{
		{"normal", 40, 30, 40, 30},
		{"zero", 0, 0, 1, 1},
		{"negative", -5, 3, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := surface.NewImageSurface(tt.w, tt.h)
			defer s.Close()
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestWithImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 7))
	s := surface.NewImageSurface(100, 100, surface.WithImage(img))
	if s.Width() != 12 || s.Height() != 7 {
		t.Errorf("size = %dx%d, want 12x7", s.Width(), s.Height())
	}
	s.Clear(color.White)
	if img.RGBAAt(3, 3) != (color.RGBA{255, 255, 255, 255}) {
		t.Error("surface did not draw into the provided image")
	}
}

func TestFillRectangle(t *testing.T) {
	s := surface.NewImageSurface(10, 10)
	defer s.Close()

	np, dev := rasterize(gtk.New(), pathkit.NewPath().AddRectangle(pathkit.R(2, 2, 6, 6)), pathkit.R(0, 0, 10, 10))
	s.Fill(np, dev, pathkit.Red)

	img := s.Snapshot()
	if got := img.RGBAAt(4, 4); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inside pixel = %v, want opaque red", got)
	}
	for _, p := range []image.Point{{0, 0}, {1, 5}, {8, 8}, {9, 0}} {
		if got := img.RGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("outside pixel %v = %v, want transparent", p, got)
		}
	}
}

func TestFillAppKitMatchesGTK(t *testing.T) {
	bounds := pathkit.R(4, 10, 40, 24)
	shapes := map[string]pathkit.Shape{
		"rounded": pathkit.RoundedRectShape{CornerRadius: 6},
		"ellipse": pathkit.EllipseShape{},
		"arc":     pathkit.ArcShape{StartAngle: 0, EndAngle: 2, Clockwise: true},
		"polygon": pathkit.PolygonShape{Points: []pathkit.Point{{X: 0, Y: 0}, {X: 1, Y: 0.3}, {X: 0.2, Y: 1}}, Closed: true},
	}
	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			p := shape.Path(bounds)
			var imgs [2]*image.RGBA
			for i, b := range []pathkit.Backend{appkit.New(pathkit.BackendConfig{}), gtk.New()} {
				s := surface.NewImageSurface(48, 40)
				np, dev := rasterize(b, p, bounds)
				s.Fill(np, dev, pathkit.Blue)
				imgs[i] = s.Snapshot()
				s.Close()
			}
			if n := diffPixels(imgs[0], imgs[1], 2); n > 0 {
				t.Errorf("appkit and gtk differ in %d pixels", n)
			}
			if covered(imgs[0]) == 0 {
				t.Error("nothing was painted")
			}
		})
	}
}

func TestPolylineSquarePaintsLikeRectangle(t *testing.T) {
	bounds := pathkit.R(0, 0, 10, 10)
	poly := pathkit.NewPath().
		Move(pathkit.Pt(0, 0)).
		Line(pathkit.Pt(10, 0)).
		Line(pathkit.Pt(10, 10)).
		Line(pathkit.Pt(0, 10)).
		Line(pathkit.Pt(0, 0))
	rect := pathkit.NewPath().AddRectangle(bounds)

	b := appkit.New(pathkit.BackendConfig{})
	paint := func(p pathkit.Path) *image.RGBA {
		s := surface.NewImageSurface(20, 20)
		defer s.Close()
		np, dev := rasterize(b, p, bounds)
		s.Fill(np, dev, pathkit.Black)
		return s.Snapshot()
	}
	a, r := paint(poly), paint(rect)
	if n := diffPixels(a, r, 0); n > 0 {
		t.Errorf("polyline and rectangle differ in %d pixels", n)
	}
	if got := covered(a); got != 100 {
		t.Errorf("covered pixels = %d, want 100 (top-left quadrant)", got)
	}
	if a.RGBAAt(5, 5).A != 255 || a.RGBAAt(15, 15).A != 0 {
		t.Error("square is not in the top-left quadrant")
	}
}

func TestStroke(t *testing.T) {
	s := surface.NewImageSurface(20, 20)
	defer s.Close()

	np, dev := rasterize(gtk.New(), pathkit.NewPath().Move(pathkit.Pt(2, 10)).Line(pathkit.Pt(18, 10)), pathkit.R(0, 0, 20, 20))
	s.Stroke(np, dev, pathkit.DefaultStrokeStyle().WithWidth(4), pathkit.Green)

	img := s.Snapshot()
	if got := img.RGBAAt(10, 9); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("pixel on the stroke = %v, want opaque green", got)
	}
	if got := img.RGBAAt(10, 3); got.A != 0 {
		t.Errorf("pixel off the stroke = %v, want transparent", got)
	}
	if got := img.RGBAAt(0, 10); got.A != 0 {
		t.Errorf("pixel past the butt cap = %v, want transparent", got)
	}
}

func TestNothingToPaint(t *testing.T) {
	s := surface.NewImageSurface(10, 10)
	defer s.Close()

	full := pathkit.NewPath().AddRectangle(pathkit.R(0, 0, 10, 10))
	np, dev := rasterize(gtk.New(), full, pathkit.R(0, 0, 10, 10))
	s.Fill(np, dev, pathkit.Transparent)
	s.Stroke(np, dev, pathkit.DefaultStrokeStyle().WithWidth(0), pathkit.Black)
	s.Fill(nil, dev, pathkit.Black)
	empty, _ := rasterize(gtk.New(), pathkit.NewPath(), pathkit.R(0, 0, 10, 10))
	s.Fill(empty, dev, pathkit.Black)

	if n := covered(s.Snapshot()); n != 0 {
		t.Errorf("%d pixels painted, want none", n)
	}
}

func TestMalformedGeometryDrawsNothing(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	paths := map[string]pathkit.Path{
		"nan move": pathkit.NewPath().Move(pathkit.Pt(nan, 1)).Line(pathkit.Pt(40, 40)).Line(pathkit.Pt(0, 40)),
		"inf line": pathkit.NewPath().Move(pathkit.Pt(0, 0)).Line(pathkit.Pt(inf, 40)).Line(pathkit.Pt(0, 40)),
		"huge":     pathkit.NewPath().Move(pathkit.Pt(0, 0)).Line(pathkit.Pt(1e30, 40)).Line(pathkit.Pt(0, 40)),
		"nan rect": pathkit.NewPath().AddRectangle(pathkit.R(0, 0, nan, 10)),
		"inf rect": pathkit.NewPath().AddRectangle(pathkit.R(0, 0, inf, 10)),
	}
	bounds := pathkit.R(0, 0, 48, 48)
	for name, p := range paths {
		for _, b := range []pathkit.Backend{appkit.New(pathkit.BackendConfig{}), gtk.New()} {
			t.Run(name+"/"+b.Name(), func(t *testing.T) {
				s := surface.NewImageSurface(48, 48)
				defer s.Close()

				np, dev := rasterize(b, p, bounds)
				s.Fill(np, dev, pathkit.Black)
				s.Stroke(np, dev, pathkit.DefaultStrokeStyle().WithWidth(3).WithCap(pathkit.LineCapRound), pathkit.Black)
				s.Stroke(np, dev, pathkit.DefaultStrokeStyle().WithWidth(inf), pathkit.Black)

				if n := covered(s.Snapshot()); n != 0 {
					t.Errorf("%d pixels painted, want none", n)
				}
			})
		}
	}
}

func TestMalformedSubpathSkipsOnlyItself(t *testing.T) {
	p := pathkit.NewPath().
		AddRectangle(pathkit.R(0, 0, 10, 10)).
		Move(pathkit.Pt(math.NaN(), 0)).
		Line(pathkit.Pt(20, 20)).
		Line(pathkit.Pt(0, 20))
	s := surface.NewImageSurface(20, 20)
	defer s.Close()

	np, dev := rasterize(gtk.New(), p, pathkit.R(0, 0, 20, 20))
	s.Fill(np, dev, pathkit.Black)
	if n := covered(s.Snapshot()); n != 100 {
		t.Errorf("covered pixels = %d, want the 100 of the valid rectangle", n)
	}
}

func TestWritePNGAndClose(t *testing.T) {
	s := surface.NewImageSurface(8, 8)
	s.Clear(color.Black)

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("decoded width = %d, want 8", img.Bounds().Dx())
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
	if s.Snapshot() != nil {
		t.Error("Snapshot after Close should be nil")
	}
	if err := s.WritePNG(&buf); !errors.Is(err, surface.ErrClosed) {
		t.Errorf("WritePNG after Close = %v, want ErrClosed", err)
	}
}

func covered(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func diffPixels(a, b *image.RGBA, tol uint8) int {
	n := 0
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < -int(tol) || d > int(tol) {
			n++
		}
	}
	return n
}

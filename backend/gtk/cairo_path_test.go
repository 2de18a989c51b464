package gtk

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/pathkit"
)

func TestBackend(t *testing.T) {
	b := New()
	want := pathkit.Capabilities{ArcUnit: pathkit.Radians}
	if got := b.Capabilities(); got != want {
		t.Errorf("Capabilities() = %+v, want %+v", got, want)
	}
	if !b.DeviceMatrix(pathkit.R(0, 10, 20, 30)).IsIdentity() {
		t.Error("DeviceMatrix should be the identity")
	}
	if !pathkit.IsRegistered(Name) {
		t.Errorf("%q is not registered", Name)
	}
	nb, err := pathkit.NewBackend(Name, pathkit.WithQuadCurves(true))
	if err != nil {
		t.Fatal(err)
	}
	if nb.Capabilities().QuadCurves {
		t.Error("gtk must never report quad curves")
	}
}

func TestCairoPathLineToWithoutCurrentPoint(t *testing.T) {
	p := NewCairoPath()
	p.LineTo(pathkit.Pt(3, 4))
	if got := p.Data(); !slices.Equal(got, []DataType{PathMoveTo}) {
		t.Errorf("Data() = %v, want [MoveTo]", got)
	}
	if cur, ok := p.CurrentPoint(); !ok || cur != pathkit.Pt(3, 4) {
		t.Errorf("CurrentPoint = %v, %v, want (3, 4), true", cur, ok)
	}
}

func TestCairoPathCurveToWithoutCurrentPoint(t *testing.T) {
	p := NewCairoPath()
	p.CubicTo(pathkit.Pt(1, 1), pathkit.Pt(2, 2), pathkit.Pt(3, 3))
	if got := p.Data(); !slices.Equal(got, []DataType{PathMoveTo, PathCurveTo}) {
		t.Errorf("Data() = %v, want [MoveTo CurveTo]", got)
	}
	if e := p.Elements()[0]; e.Points[0] != pathkit.Pt(1, 1) {
		t.Errorf("implicit move to %v, want first control point (1, 1)", e.Points[0])
	}
}

func TestCairoPathQuadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("QuadTo did not panic")
		}
	}()
	p := NewCairoPath()
	p.MoveTo(pathkit.Pt(0, 0))
	p.QuadTo(pathkit.Pt(1, 1), pathkit.Pt(2, 0))
}

func TestCairoPathRectangle(t *testing.T) {
	p := NewCairoPath()
	p.AddRect(pathkit.R(1, 2, 3, 4))

	want := []DataType{PathMoveTo, PathLineTo, PathLineTo, PathLineTo, PathClosePath}
	if got := p.Data(); !slices.Equal(got, want) {
		t.Fatalf("Data() = %v, want %v", got, want)
	}
	wantPts := []pathkit.Point{pathkit.Pt(1, 2), pathkit.Pt(4, 2), pathkit.Pt(4, 6), pathkit.Pt(1, 6)}
	for i, e := range p.Elements()[:4] {
		if e.Points[0] != wantPts[i] {
			t.Errorf("point %d = %v, want %v", i, e.Points[0], wantPts[i])
		}
	}
	ext, _ := p.Extents()
	if ext != pathkit.R(1, 2, 3, 4) {
		t.Errorf("Extents() = %v, want (1, 2, 3, 4)", ext)
	}
	if cur, _ := p.CurrentPoint(); cur != pathkit.Pt(1, 2) {
		t.Errorf("CurrentPoint after close = %v, want (1, 2)", cur)
	}
}

func TestCairoPathCircleStartsNewSubpath(t *testing.T) {
	p := NewCairoPath()
	p.MoveTo(pathkit.Pt(0, 0))
	p.LineTo(pathkit.Pt(5, 0))
	p.AddCircle(pathkit.Pt(20, 20), 5)

	// new_sub_path drops the current point, so no line joins the circle.
	want := []DataType{
		PathMoveTo, PathLineTo,
		PathMoveTo, PathCurveTo, PathCurveTo, PathCurveTo, PathCurveTo, PathClosePath,
	}
	if got := p.Data(); !slices.Equal(got, want) {
		t.Errorf("Data() = %v, want %v", got, want)
	}
}

func TestCairoArcNormalization(t *testing.T) {
	tests := []struct {
		name       string
		negative   bool
		start, end float64
		wantSweep  float64
	}{
		{"arc forward", false, 0, math.Pi / 2, math.Pi / 2},
		{"arc wraps", false, math.Pi / 2, 0, 3 * math.Pi / 2},
		{"arc multiple turns kept", false, 0, 3 * math.Pi, 3 * math.Pi},
		{"arc negative forward", true, math.Pi / 2, 0, -math.Pi / 2},
		{"arc negative wraps", true, 0, math.Pi / 2, -3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewCairoPath()
			c := pathkit.Pt(0, 0)
			if tt.negative {
				p.ArcNegative(c, 10, tt.start, tt.end)
			} else {
				p.Arc(c, 10, tt.start, tt.end)
			}
			elems := p.Elements()
			end := elems[len(elems)-1].End()
			want := pathkit.PointOnCircle(c, 10, tt.start+tt.wantSweep)
			if !end.Near(want, 1e-9) {
				t.Errorf("arc end = %v, want %v", end, want)
			}
			wantSegs := int(math.Ceil(math.Abs(tt.wantSweep)/(math.Pi/2) - 1e-9))
			if got := len(elems) - 1; got != wantSegs {
				t.Errorf("%d segments, want %d", got, wantSegs)
			}
		})
	}
}

func TestCairoArcHugeSweepIsBounded(t *testing.T) {
	const maxSegs = 4*maxFullCircles + 4
	tests := []struct {
		name     string
		negative bool
		end      float64
	}{
		{"arc", false, 1e13},
		{"arc negative", true, -1e13},
		{"arc negative wraps huge", true, 1e13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewCairoPath()
			if tt.negative {
				p.ArcNegative(pathkit.Pt(0, 0), 10, 0, tt.end)
			} else {
				p.Arc(pathkit.Pt(0, 0), 10, 0, tt.end)
			}
			if n := len(p.Data()) - 1; n < 1 || n > maxSegs {
				t.Errorf("%d segments, want between 1 and %d", n, maxSegs)
			}
		})
	}
}

func TestCairoArcNonFinite(t *testing.T) {
	for _, end := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		for _, clockwise := range []bool{false, true} {
			p := NewCairoPath()
			p.AddArc(pathkit.Pt(0, 0), 10, 0, end, clockwise)
			if got, want := p.Data(), []DataType{PathMoveTo}; !slices.Equal(got, want) {
				t.Errorf("AddArc(end=%v, clockwise=%v) data = %v, want %v", end, clockwise, got, want)
			}
		}
	}
}

func TestCairoAddArcDirection(t *testing.T) {
	c := pathkit.Pt(0, 0)

	cw := NewCairoPath()
	cw.AddArc(c, 10, 0, math.Pi/2, true)
	if got := len(cw.Elements()); got != 2 {
		t.Errorf("clockwise quarter: %d elements, want 2", got)
	}
	if mid := cw.Elements()[1].Points[0]; mid.Y <= 0 {
		t.Errorf("clockwise arc control %v, want y > 0 (towards screen bottom)", mid)
	}

	ccw := NewCairoPath()
	ccw.AddArc(c, 10, 0, math.Pi/2, false)
	if got := len(ccw.Elements()); got != 4 {
		t.Errorf("counter-clockwise three quarters: %d elements, want 4", got)
	}
	if mid := ccw.Elements()[1].Points[0]; mid.Y >= 0 {
		t.Errorf("counter-clockwise arc control %v, want y < 0", mid)
	}
}

func TestCairoArcConnectsToCurrentPoint(t *testing.T) {
	p := NewCairoPath()
	p.MoveTo(pathkit.Pt(-20, 0))
	p.Arc(pathkit.Pt(0, 0), 10, math.Pi, 2*math.Pi)
	data := p.Data()
	if data[1] != PathLineTo {
		t.Fatalf("Data() = %v, want a line to the arc start", data)
	}
	if pt := p.Elements()[1].Points[0]; !pt.Near(pathkit.Pt(-10, 0), 1e-9) {
		t.Errorf("line to %v, want (-10, 0)", pt)
	}
}

func TestCairoPathApplyAndAppend(t *testing.T) {
	a := NewCairoPath()
	a.MoveTo(pathkit.Pt(1, 1))

	b := NewCairoPath()
	b.MoveTo(pathkit.Pt(2, 2))
	b.RelLineTo(pathkit.Pt(1, 0))
	b.Apply(pathkit.Translate(10, 10))

	a.Append(b)
	if n := len(a.Data()); n != 3 {
		t.Fatalf("len(Data()) = %d, want 3", n)
	}
	if cur, _ := a.CurrentPoint(); cur != pathkit.Pt(13, 12) {
		t.Errorf("CurrentPoint = %v, want (13, 12)", cur)
	}
	if a.Elements()[0].Points[0] != pathkit.Pt(1, 1) {
		t.Error("Append changed existing geometry")
	}
}

func TestCairoPathEmpty(t *testing.T) {
	p := NewCairoPath()
	if !p.IsEmpty() {
		t.Error("new path not empty")
	}
	if _, ok := p.Extents(); ok {
		t.Error("empty path has extents")
	}
	p.ClosePath()
	if !p.IsEmpty() {
		t.Error("ClosePath without a current point added data")
	}
}

package bounds

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestArcBounds_QuarterCircle(t *testing.T) {
	start, end := Pt(1, 0), Pt(0, 1)
	tests := []struct {
		name            string
		largeArc, sweep bool
		want            BoundingBox
	}{
		{"small positive", false, true, BoundingBox{Left: 0, Right: 1, Bottom: 0, Top: 1}},
		{"small negative", false, false, BoundingBox{Left: 0, Right: 1, Bottom: 0, Top: 1}},
		{"large positive", true, true, BoundingBox{Left: 0, Right: 2, Bottom: 0, Top: 2}},
		{"large negative", true, false, BoundingBox{Left: -1, Right: 1, Bottom: -1, Top: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ArcBounds(start, 1, 1, 0, tt.largeArc, tt.sweep, end)
			if !ok {
				t.Fatal("ArcBounds() ok = false, want true")
			}
			if !boxesEqual(got, tt.want, epsilon10) {
				t.Errorf("ArcBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArcBounds_HalfCircle(t *testing.T) {
	up, _ := ArcBounds(Pt(1, 0), 1, 1, 0, false, true, Pt(-1, 0))
	if want := (BoundingBox{Left: -1, Right: 1, Bottom: 0, Top: 1}); !boxesEqual(up, want, epsilon10) {
		t.Errorf("sweep=true: got %v, want %v", up, want)
	}
	down, _ := ArcBounds(Pt(1, 0), 1, 1, 0, false, false, Pt(-1, 0))
	if want := (BoundingBox{Left: -1, Right: 1, Bottom: -1, Top: 0}); !boxesEqual(down, want, epsilon10) {
		t.Errorf("sweep=false: got %v, want %v", down, want)
	}
}

func TestArcBounds_CoincidentEndpoints(t *testing.T) {
	existing := BoundingBox{Left: -3.5, Right: 7.25, Bottom: 1, Top: 9}
	p := Pt(100, -100)

	if got := existing.ExtendArc(p, 5, 5, 30, true, true, p); got != existing {
		t.Errorf("ExtendArc() = %v, want unchanged %v", got, existing)
	}
	if _, ok := ArcBounds(p, 5, 5, 30, true, true, p); ok {
		t.Error("ArcBounds() ok = true for coincident endpoints, want false")
	}
	if _, ok := (Arc{Start: p, End: p, RX: 1, RY: 1}).Center(); ok {
		t.Error("Center() ok = true for coincident endpoints, want false")
	}
}

func TestArcBounds_ZeroRadiusIsLine(t *testing.T) {
	for _, r := range [][2]float64{{0, 1}, {1, 0}, {0, 0}} {
		got, ok := ArcBounds(Pt(0, 0), r[0], r[1], 0, false, true, Pt(3, 4))
		want := BoundingBox{Left: 0, Right: 3, Bottom: 0, Top: 4}
		if !ok || got != want {
			t.Errorf("rx=%v ry=%v: got %v (ok=%v), want %v", r[0], r[1], got, ok, want)
		}
	}
}

func TestArcBounds_NegativeRadii(t *testing.T) {
	pos, _ := ArcBounds(Pt(1, 0), 1, 1, 0, true, true, Pt(0, 1))
	neg, _ := ArcBounds(Pt(1, 0), -1, -1, 0, true, true, Pt(0, 1))
	if !boxesEqual(pos, neg, epsilon10) {
		t.Errorf("negative radii: got %v, want %v", neg, pos)
	}
}

func TestArcBounds_RadiiScaledUp(t *testing.T) {
	// Radius 1 cannot span a chord of 4; it becomes a half circle of radius 2.
	got, ok := ArcBounds(Pt(0, 0), 1, 1, 0, false, true, Pt(4, 0))
	if !ok {
		t.Fatal("ArcBounds() ok = false")
	}
	want := BoundingBox{Left: 0, Right: 4, Bottom: -2, Top: 0}
	if !boxesEqual(got, want, epsilon10) {
		t.Errorf("ArcBounds() = %v, want %v", got, want)
	}

	c, _ := Arc{Start: Pt(0, 0), End: Pt(4, 0), RX: 1, RY: 1, Sweep: true}.Center()
	if !almostEqual(c.RX, 2, epsilon10) || !almostEqual(c.RY, 2, epsilon10) {
		t.Errorf("scaled radii = (%v, %v), want (2, 2)", c.RX, c.RY)
	}
	if !pointsEqual(c.Center, Pt(2, 0), epsilon10) {
		t.Errorf("Center = %v, want (2, 0)", c.Center)
	}
}

func TestArcBounds_RotatedEllipse(t *testing.T) {
	// Ellipse rx=2, ry=1 rotated 45 degrees about the origin, drawn as
	// two half arcs between the ends of its major axis.
	s := math.Sqrt2
	segs := []Segment{
		MoveTo{Point: Pt(s, s)},
		ArcTo{RX: 2, RY: 1, Rotation: 45, Sweep: true, Point: Pt(-s, -s)},
		ArcTo{RX: 2, RY: 1, Rotation: 45, Sweep: true, Point: Pt(s, s)},
		Close{},
	}
	got, err := ComputeBounds(segs)
	if err != nil {
		t.Fatalf("ComputeBounds() error = %v", err)
	}
	// Half-extent of a rotated ellipse: sqrt(rx^2 cos^2 + ry^2 sin^2).
	h := math.Sqrt(2.5)
	want := BoundingBox{Left: -h, Right: h, Bottom: -h, Top: h}
	if !boxesEqual(got, want, 1e-9) {
		t.Errorf("ComputeBounds() = %v, want %v", got, want)
	}
}

func TestArcCenter_Contains(t *testing.T) {
	// Positive sweep from pi to 0 through -pi/2: the range wraps through -pi.
	c, ok := Arc{Start: Pt(0, 0), End: Pt(4, 0), RX: 2, RY: 2, Sweep: true}.Center()
	if !ok {
		t.Fatal("Center() ok = false")
	}
	tests := []struct {
		angle float64
		want  bool
	}{
		{-math.Pi / 2, true},
		{-math.Pi / 4, true},
		{math.Pi, true},
		{0, true},
		{math.Pi / 2, false},
		{math.Pi / 4, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.angle); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestArcCenter_EndpointsOnEllipse(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 200; i++ {
		a := randomArc(r)
		c, ok := a.Center()
		if !ok {
			continue
		}
		if p := c.Eval(c.Theta1); !pointsEqual(p, a.Start, 1e-6) {
			t.Fatalf("arc %+v: Eval(Theta1) = %v, want start %v", a, p, a.Start)
		}
		if p := c.Eval(c.Theta1 + c.Delta); !pointsEqual(p, a.End, 1e-6) {
			t.Fatalf("arc %+v: Eval(Theta1+Delta) = %v, want end %v", a, p, a.End)
		}
		if a.Sweep != (c.Delta > 0) {
			t.Fatalf("arc %+v: Delta = %v has the wrong sign", a, c.Delta)
		}
	}
}

func TestArcBounds_SampledContainment(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 200; i++ {
		a := randomArc(r)
		box, ok := a.BoundingBox()
		if !ok {
			t.Fatalf("arc %+v: BoundingBox() ok = false", a)
		}
		if !box.IsFinite() || !normalized(box) {
			t.Fatalf("arc %+v: box %v is not finite and normalized", a, box)
		}
		c, ok := a.Center()
		if !ok {
			continue
		}

		minX, maxX := math.Inf(1), math.Inf(-1)
		minY, maxY := math.Inf(1), math.Inf(-1)
		const samples = 20000
		for s := 0; s <= samples; s++ {
			p := c.Eval(c.Theta1 + c.Delta*float64(s)/samples)
			if !containsApprox(box, p, 1e-7) {
				t.Fatalf("arc %+v: sample %v outside %v", a, p, box)
			}
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
		sampled := BoundingBox{Left: minX, Right: maxX, Bottom: minY, Top: maxY}
		if !boxesEqual(box, sampled, 1e-3) {
			t.Fatalf("arc %+v: box %v is not tight, sampled %v", a, box, sampled)
		}
	}
}

func randomArc(r *rand.Rand) Arc {
	return Arc{
		Start:    Pt(r.Float64()*20-10, r.Float64()*20-10),
		End:      Pt(r.Float64()*20-10, r.Float64()*20-10),
		RX:       0.1 + r.Float64()*10,
		RY:       0.1 + r.Float64()*10,
		Rotation: r.Float64()*360 - 180,
		LargeArc: r.IntN(2) == 1,
		Sweep:    r.IntN(2) == 1,
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := normalizeAngle(tt.in); !almostEqual(got, tt.want, epsilon10) {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

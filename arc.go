package bounds

import (
	"log/slog"
	"math"
)

// Arc is an SVG elliptical arc in endpoint parameterization.
// Rotation is the x-axis rotation of the ellipse in degrees.
//
// Out-of-range parameters follow the SVG implementation notes: a zero
// radius turns the arc into a straight line, negative radii are used by
// absolute value, and radii too small to span the chord are scaled up.
type Arc struct {
	Start, End Point
	RX, RY     float64
	Rotation   float64
	LargeArc   bool
	Sweep      bool
}

// ArcCenter is the center parameterization of an Arc.
//
// A point on the ellipse at parametric angle t is
//
//	x = cx + rx*cos(t)*cos(phi) - ry*sin(t)*sin(phi)
//	y = cy + rx*cos(t)*sin(phi) + ry*sin(t)*cos(phi)
//
// The swept range runs from Theta1 by Delta radians; Delta is positive
// for a positive-angle sweep and negative otherwise.
type ArcCenter struct {
	Center Point
	RX, RY float64
	Phi    float64
	Theta1 float64
	Delta  float64

	sinPhi, cosPhi float64
	from, to       float64
	positive       bool
}

// Center converts the arc to center parameterization. It returns false
// when the arc has no elliptical part: coincident endpoints or a zero radius.
func (a Arc) Center() (ArcCenter, bool) {
	if a.Start == a.End || a.RX == 0 || a.RY == 0 {
		return ArcCenter{}, false
	}
	rx, ry := math.Abs(a.RX), math.Abs(a.RY)
	phi := a.Rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	// Midpoint-relative start point in the ellipse's unrotated frame.
	dx := (a.Start.X - a.End.X) / 2
	dy := (a.Start.Y - a.End.Y) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Radii that cannot span the chord are scaled up uniformly until the
	// center equation has exactly one solution.
	if lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
		Logger().Debug("bounds: arc radii scaled to span chord", slog.Float64("factor", s))
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	sq := 0.0
	if den > 0 {
		sq = math.Max(num/den, 0)
	}
	coef := math.Sqrt(sq)
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	c := ArcCenter{
		Center: Point{
			X: cosPhi*cxp - sinPhi*cyp + (a.Start.X+a.End.X)/2,
			Y: sinPhi*cxp + cosPhi*cyp + (a.Start.Y+a.End.Y)/2,
		},
		RX:       rx,
		RY:       ry,
		Phi:      phi,
		sinPhi:   sinPhi,
		cosPhi:   cosPhi,
		positive: a.Sweep,
	}

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	c.Theta1 = math.Atan2(uy, ux)
	delta := math.Mod(math.Atan2(vy, vx)-c.Theta1, 2*math.Pi)
	if delta < 0 {
		delta += 2 * math.Pi
	}
	if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	c.Delta = delta

	c.from = normalizeAngle(c.Theta1)
	c.to = normalizeAngle(c.Theta1 + c.Delta)
	return c, true
}

// Eval returns the point on the ellipse at parametric angle t.
func (c ArcCenter) Eval(t float64) Point {
	sin, cos := math.Sincos(t)
	return Point{
		X: c.xAt(sin, cos),
		Y: c.yAt(sin, cos),
	}
}

func (c ArcCenter) xAt(sin, cos float64) float64 {
	return c.Center.X + c.RX*cos*c.cosPhi - c.RY*sin*c.sinPhi
}

func (c ArcCenter) yAt(sin, cos float64) float64 {
	return c.Center.Y + c.RX*cos*c.sinPhi + c.RY*sin*c.cosPhi
}

// Contains reports whether the parametric angle t, taken in (-pi, pi],
// lies within the swept range. The range may wrap through +-pi; which
// side counts as inside depends on the sweep direction.
func (c ArcCenter) Contains(t float64) bool {
	from, to := c.from, c.to
	if c.positive {
		if from < to {
			return from <= t && t <= to
		}
		return !(t < from && t > to)
	}
	if from > to {
		return to <= t && t <= from
	}
	return !(t > from && t < to)
}

// extremumAngles returns the parametric angles, in (-pi, pi], at which the
// x and y coordinates of the full ellipse reach their extremes.
func (c ArcCenter) extremumAngles() (xs, ys [2]float64) {
	tx := math.Atan2(-c.RY*c.sinPhi, c.RX*c.cosPhi)
	ty := math.Atan2(c.RY*c.cosPhi, c.RX*c.sinPhi)
	return [2]float64{tx, companion(tx)}, [2]float64{ty, companion(ty)}
}

// BoundingBox returns the tight bounding box of the swept arc.
// It returns false when the endpoints coincide and nothing is drawn.
func (a Arc) BoundingBox() (BoundingBox, bool) {
	if a.Start == a.End {
		return BoundingBox{}, false
	}
	return BoxOf(a.Start, a.End).ExtendArc(a.Start, a.RX, a.RY, a.Rotation, a.LargeArc, a.Sweep, a.End), true
}

// ArcBounds returns the bounding box of the elliptical arc from start to
// end. See Arc for the parameters. It returns false when start equals end:
// such an arc is not drawn and has no box.
func ArcBounds(start Point, rx, ry, rotation float64, largeArc, sweep bool, end Point) (BoundingBox, bool) {
	return Arc{
		Start: start, End: end,
		RX: rx, RY: ry, Rotation: rotation,
		LargeArc: largeArc, Sweep: sweep,
	}.BoundingBox()
}

// ExtendArc returns b grown to contain the elliptical arc from start to
// end. An arc with coincident endpoints is not drawn and leaves b as is.
func (b BoundingBox) ExtendArc(start Point, rx, ry, rotation float64, largeArc, sweep bool, end Point) BoundingBox {
	if start == end {
		return b
	}
	b = b.Extend(start).Extend(end)

	arc := Arc{
		Start: start, End: end,
		RX: rx, RY: ry, Rotation: rotation,
		LargeArc: largeArc, Sweep: sweep,
	}
	c, ok := arc.Center()
	if !ok {
		return b
	}

	xs, ys := c.extremumAngles()
	for _, t := range xs {
		if c.Contains(t) {
			sin, cos := math.Sincos(t)
			if x := c.xAt(sin, cos); isFinite(x) {
				b = b.ExtendX(x)
			}
		}
	}
	for _, t := range ys {
		if c.Contains(t) {
			sin, cos := math.Sincos(t)
			if y := c.yAt(sin, cos); isFinite(y) {
				b = b.ExtendY(y)
			}
		}
	}
	return b
}

// normalizeAngle maps a to the half-open interval (-pi, pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// companion returns the angle half a turn away from a, in (-pi, pi].
func companion(a float64) float64 {
	if a < 0 {
		return a + math.Pi
	}
	return normalizeAngle(a - math.Pi)
}

package squircle

import "math"

// solveQuadraticFormula solves a*x^2 + b*x + c = 0 and returns the real roots, or NaN when they do not exist.
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if Equal(a, 0.0) {
		if Equal(b, 0.0) {
			return math.NaN(), math.NaN()
		}
		return -c / b, math.NaN()
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error
	// this can be the case when 4*a*c is small so that sqrt(discriminant) -> b, and the sign of b and in front of the radical are the same
	// instead, we calculate x where b and the radical have different signs, and then use this result in the analytical equivalent
	// of the formula, called the Citardauq Formula.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

////////////////////////////////////////////////////////////////

// arcToCenter changes between the SVG arc format to the center and angles format. Only circular arcs are supported, the radius is scaled up when it is too small to span both end points. It returns the center, radius and start and end angle in radians.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, r float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, r, 0.0, 0.0
	}

	x1p := (x1 - x2) / 2.0
	y1p := (y1 - y2) / 2.0

	// reduce rouding errors
	raddiCheck := (x1p*x1p + y1p*y1p) / r / r
	if raddiCheck > 1.0 {
		r *= math.Sqrt(raddiCheck)
	}

	sq := (r*r - y1p*y1p - x1p*x1p) / (y1p*y1p + x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * y1p
	cyp := coef * -x1p
	cx := cxp + (x1+x2)/2.0
	cy := cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / r
	uy := (y1p - cyp) / r
	vx := -(x1p + cxp) / r
	vy := -(y1p + cyp) / r

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, ux/math.Sqrt(ux*ux+uy*uy))))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos(math.Max(-1.0, math.Min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, r, theta, theta + delta
}

// arcFlags returns the SVG large-arc and sweep flags of an arc from theta0 to theta1.
func arcFlags(theta0, theta1 float64) (bool, bool) {
	large := math.Pi < math.Abs(theta1-theta0)
	sweep := theta0 < theta1
	return large, sweep
}

// ArcToCubics approximates the circular arc with center (cx,cy) and radius r from theta0 to theta1 by cubic Béziers of at most 90 degrees each. It returns the control points and end point of every Bézier.
func ArcToCubics(cx, cy, r, theta0, theta1 float64) [][3]Point {
	sweep := theta1 - theta0
	if Equal(sweep, 0.0) || r <= 0.0 {
		return nil
	}

	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2.0) - Epsilon))
	if n < 1 {
		n = 1
	}
	dtheta := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(dtheta/4.0)

	c := Point{cx, cy}
	beziers := make([][3]Point, 0, n)
	for i := 0; i < n; i++ {
		t0 := theta0 + float64(i)*dtheta
		t1 := t0 + dtheta
		n0 := angleToNormal(t0)
		n1 := angleToNormal(t1)
		p0 := c.Add(n0.Mul(r))
		p1 := c.Add(n1.Mul(r))
		cp1 := p0.Add(Point{-n0.Y, n0.X}.Mul(k * r))
		cp2 := p1.Sub(Point{-n1.Y, n1.X}.Mul(k * r))
		beziers = append(beziers, [3]Point{cp1, cp2, p1})
	}
	return beziers
}

////////////////////////////////////////////////////////////////

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.Mul(3.0*t*t - 3.0*t*t*t)
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// cubicBezierExtrema returns the parameters in (0,1) where the cubic Bézier has a horizontal or vertical tangent.
func cubicBezierExtrema(p0, p1, p2, p3 Point) []float64 {
	ts := []float64{}
	for _, f := range [2]func(Point) float64{
		func(p Point) float64 { return p.X },
		func(p Point) float64 { return p.Y },
	} {
		// derivative of the cubic Bézier is a quadratic polynomial
		a := -3.0*f(p0) + 9.0*f(p1) - 9.0*f(p2) + 3.0*f(p3)
		b := 6.0*f(p0) - 12.0*f(p1) + 6.0*f(p2)
		c := -3.0*f(p0) + 3.0*f(p1)
		t1, t2 := solveQuadraticFormula(a, b, c)
		for _, t := range [2]float64{t1, t2} {
			if 0.0 < t && t < 1.0 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// split the curve and replace it by lines as long as maximum deviation = flatness is maintained
func flattenSmoothCubicBezier(p *Path, p0, p1, p2, p3 Point, flatness float64) {
	t := 0.0
	for t < 1.0 {
		s2nom := (p2.X-p0.X)*(p1.Y-p0.Y) - (p2.Y-p0.Y)*(p1.X-p0.X)
		s2denom := math.Hypot(p1.X-p0.X, p1.Y-p0.Y)
		if s2nom*s2denom == 0.0 {
			break
		}
		t = 2.0 * math.Sqrt(flatness/3.0*math.Abs(s2denom/s2nom))
		if t >= 1.0 {
			break
		}
		_, _, _, _, p0, p1, p2, p3 = splitCubicBezier(p0, p1, p2, p3, t)
		p.LineTo(p0.X, p0.Y)
	}
	p.LineTo(p3.X, p3.Y)
}

func findInflectionPointsCubicBezier(p0, p1, p2, p3 Point) (float64, float64) {
	ax := -p0.X + 3.0*p1.X - 3.0*p2.X + p3.X
	ay := -p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y
	bx := 3.0*p0.X - 6.0*p1.X + 3.0*p2.X
	by := 3.0*p0.Y - 6.0*p1.Y + 3.0*p2.Y
	cx := -3.0*p0.X + 3.0*p1.X
	cy := -3.0*p0.Y + 3.0*p1.Y

	tcusp := -0.5 * ((ay*cx - ax*cy) / (ay*bx - ax*by))
	if !(tcusp >= 0.0 && tcusp <= 1.0) { // handles NaN and Infs too
		return math.NaN(), math.NaN()
	}

	discriminant := tcusp*tcusp - ((by*cx-bx*cy)/(ay*bx-ax*by))/3.0
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return tcusp, math.NaN()
	} else {
		q := math.Sqrt(discriminant)
		return tcusp - q, tcusp + q
	}
}

func findInflectionPointRange(p0, p1, p2, p3 Point, t, flatness float64) (float64, float64) {
	if math.IsNaN(t) {
		return math.Inf(1), math.Inf(1)
	}

	// we state that s(t) = 3*s2*t^2 + (s3 - 3*s2)*t^3 (see paper on the r-s coordinate system)
	// with s(t) aligned perpendicular to the curve at t = 0
	// then we impose that s(tf) = flatness and find tf
	// at inflection points however, s2 = 0, so that s(t) = s3*t^3

	_, _, _, _, p0, p1, p2, p3 = splitCubicBezier(p0, p1, p2, p3, t)
	nr := p1.Sub(p0)
	ns := p3.Sub(p0)
	if nr.X == 0.0 && nr.Y == 0.0 {
		// if p0=p1, then rn (the velocity at t=0) needs adjustment
		// nr = lim[t->0](B'(t)) = 3*(p1-p0) + 6*t*((p1-p0)+(p2-p1)) + second order terms of t
		// if (p1-p0)->0, we use (p2-p1)
		nr = p2.Sub(p1)
	}

	if nr.X == 0.0 && nr.Y == 0.0 {
		// if rn is still zero, this curve has p0=p1=p2, so it is straight
		return 0.0, 1.0
	}

	s3 := math.Abs(ns.X*nr.Y-ns.Y*nr.X) / math.Hypot(nr.X, nr.Y)
	if s3 == 0.0 {
		return 0.0, 1.0 // can approximate whole curve linearly
	}

	tf := math.Cbrt(flatness / s3)
	return t - tf*(1-t), t + tf*(1-t)
}

// see Flat, precise flattening of cubic Bezier path and offset curves, by T.F. Hain et al., 2005
// https://www.sciencedirect.com/science/article/pii/S0097849305001287
// see https://github.com/Manishearth/stylo-flat/blob/master/gfx/2d/Path.cpp for an example implementation
// or https://docs.rs/crate/lyon_bezier/0.4.1/source/src/flatten_cubic.rs
func flattenCubicBezier(p *Path, p0, p1, p2, p3 Point, flatness float64) {
	// 0 <= t1 <= 1 if t1 exists
	// 0 <= t2 <= 1 and t1 < t2 if t2 exists
	t1, t2 := findInflectionPointsCubicBezier(p0, p1, p2, p3)
	if math.IsNaN(t1) && math.IsNaN(t2) {
		// There are no inflection points or cusps, approximate linearly by subdivision.
		flattenSmoothCubicBezier(p, p0, p1, p2, p3, flatness)
		return
	}

	// t1min <= t1max; with t1min <= 1 and t2max >= 0
	// t2min <= t2max; with t2min <= 1 and t2max >= 0
	t1min, t1max := findInflectionPointRange(p0, p1, p2, p3, t1, flatness)
	t2min, t2max := findInflectionPointRange(p0, p1, p2, p3, t2, flatness)

	if math.IsNaN(t2) && t1min <= 0.0 && 1.0 <= t1max {
		// There is no second inflection point, and the first inflection point can be entirely approximated linearly.
		p.LineTo(p3.X, p3.Y)
		return
	}

	if 0.0 < t1min {
		// Flatten up to t1min
		q0, q1, q2, q3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t1min)
		flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
	}

	if 0.0 < t1max && t1max < 1.0 && t1max < t2min {
		// t1 and t2 ranges do not overlap, approximate t1 linearly
		_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t1max)
		p.LineTo(q0.X, q0.Y)
		if 1.0 <= t2min {
			// No t2 present, approximate the rest linearly by subdivision
			flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
			return
		}
	} else if 1.0 <= t2min {
		// t1 and t2 overlap but past the curve, approximate linearly
		p.LineTo(p3.X, p3.Y)
		return
	}

	// t1 and t2 exist and ranges might overlap
	if 0.0 < t2min {
		if t2min < t1max {
			// t2 range starts inside t1 range, approximate t1 range linearly
			_, _, _, _, q0, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t1max)
			p.LineTo(q0.X, q0.Y)
		} else if 0.0 < t1max {
			// no overlap
			_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t1max)
			t2minq := (t2min - t1max) / (1 - t1max)
			q0, q1, q2, q3, _, _, _, _ = splitCubicBezier(q0, q1, q2, q3, t2minq)
			flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
		} else {
			// no t1, approximate up to t2min linearly by subdivision
			q0, q1, q2, q3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, t2min)
			flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
		}
	}

	// handle (the rest of) t2
	if t2max < 1.0 {
		_, _, _, _, q0, q1, q2, q3 := splitCubicBezier(p0, p1, p2, p3, t2max)
		p.LineTo(q0.X, q0.Y)
		flattenSmoothCubicBezier(p, q0, q1, q2, q3, flatness)
	} else {
		// t2max extends beyond 1
		p.LineTo(p3.X, p3.Y)
	}
}

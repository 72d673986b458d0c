package squircle

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSolveQuadraticFormula(t *testing.T) {
	x1, x2 := solveQuadraticFormula(0.0, 0.0, 0.0)
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 0.0, 1.0)
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 1.0, 1.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, 0.0)

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 1.0) // discriminant negative
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.25) // discriminant zero
	test.Float(t, x1, -0.5)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(2.0, -5.0, 2.0) // negative b, flip x1 and x2
	test.Float(t, x1, 0.5)
	test.Float(t, x2, 2.0)
}

func TestArcToCenter(t *testing.T) {
	cx, cy, r, theta0, theta1 := arcToCenter(0.0, 0.0, 2.0, false, false, 2.0, 2.0)
	test.Float(t, cx, 2.0)
	test.Float(t, cy, 0.0)
	test.Float(t, r, 2.0)
	test.Float(t, theta0, math.Pi)
	test.Float(t, theta1, math.Pi/2.0)

	cx, cy, _, theta0, theta1 = arcToCenter(0.0, 0.0, 2.0, true, false, 2.0, 2.0)
	test.Float(t, cx, 0.0)
	test.Float(t, cy, 2.0)
	test.Float(t, theta0, -math.Pi/2.0)
	test.Float(t, theta1, -2.0*math.Pi)

	cx, cy, _, theta0, theta1 = arcToCenter(0.0, 0.0, 2.0, true, true, 2.0, 2.0)
	test.Float(t, cx, 2.0)
	test.Float(t, cy, 0.0)
	test.Float(t, theta0, math.Pi)
	test.Float(t, theta1, math.Pi*5.0/2.0)

	// radius too small
	cx, cy, r, theta0, theta1 = arcToCenter(0.0, 0.0, 0.1, false, false, 1.0, 0.0)
	test.Float(t, cx, 0.5)
	test.Float(t, cy, 0.0)
	test.Float(t, r, 0.5)
	test.Float(t, theta0, math.Pi)
	test.Float(t, theta1, 0.0)

	cx, cy, _, theta0, theta1 = arcToCenter(0.0, 0.0, 1.0, false, false, 0.0, 0.0)
	test.Float(t, cx, 0.0)
	test.Float(t, cy, 0.0)
	test.Float(t, theta0, 0.0)
	test.Float(t, theta1, 0.0)
}

func TestArcFlags(t *testing.T) {
	var tts = []struct {
		theta0, theta1 float64
		large, sweep   bool
	}{
		{0.0, 0.5 * math.Pi, false, true},
		{0.0, -0.5 * math.Pi, false, false},
		{0.0, 1.5 * math.Pi, true, true},
		{math.Pi, -0.75 * math.Pi, true, false},
	}
	for _, tt := range tts {
		large, sweep := arcFlags(tt.theta0, tt.theta1)
		test.T(t, large, tt.large)
		test.T(t, sweep, tt.sweep)
	}
}

func TestCubicBezier(t *testing.T) {
	defer setEpsilon(1e-6)()
	test.T(t, cubicBezierPos(Point{0.0, 0.0}, Point{0.666667, 0.0}, Point{1.0, 0.333333}, Point{1.0, 1.0}, 0.0), Point{0.0, 0.0})
	test.T(t, cubicBezierPos(Point{0.0, 0.0}, Point{0.666667, 0.0}, Point{1.0, 0.333333}, Point{1.0, 1.0}, 0.5), Point{0.75, 0.25})
	test.T(t, cubicBezierPos(Point{0.0, 0.0}, Point{0.666667, 0.0}, Point{1.0, 0.333333}, Point{1.0, 1.0}, 1.0), Point{1.0, 1.0})

	p0, p1, p2, p3, q0, q1, q2, q3 := splitCubicBezier(Point{0.0, 0.0}, Point{0.666667, 0.0}, Point{1.0, 0.333333}, Point{1.0, 1.0}, 0.5)
	test.T(t, p0, Point{0.0, 0.0})
	test.T(t, p1, Point{0.333333, 0.0})
	test.T(t, p2, Point{0.583333, 0.083333})
	test.T(t, p3, Point{0.75, 0.25})
	test.T(t, q0, Point{0.75, 0.25})
	test.T(t, q1, Point{0.916667, 0.416667})
	test.T(t, q2, Point{1.0, 0.666667})
	test.T(t, q3, Point{1.0, 1.0})
}

func TestCubicBezierExtrema(t *testing.T) {
	test.T(t, cubicBezierExtrema(Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0}), []float64{0.5})
	test.T(t, cubicBezierExtrema(Point{0.0, 0.0}, Point{5.0, 0.0}, Point{10.0, 0.0}, Point{15.0, 0.0}), []float64{})
}

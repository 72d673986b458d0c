package squircle

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestResolveCorner(t *testing.T) {
	params := ResolveCorner(20.0, 0.6, 50.0)
	test.Float(t, params.A, 11.201050121)
	test.Float(t, params.B, 5.600525061)
	test.Float(t, params.C, 4.278234813)
	test.Float(t, params.D, 2.179869516)
	test.Float(t, params.P, 32.0)
	test.Float(t, params.Radius, 20.0)
	test.Float(t, params.ArcChordLength, 8.740320489)
	test.Float(t, params.EffectiveSmoothing(), 0.6)
	test.Float(t, params.ArcMeasure(), 36.0)

	params = ResolveCorner(20.0, 1.0, 50.0)
	test.Float(t, params.A, 18.856180832)
	test.Float(t, params.B, 9.428090416)
	test.Float(t, params.C, 5.857864376)
	test.Float(t, params.D, 5.857864376)
	test.Float(t, params.P, 40.0)
	test.Float(t, params.ArcChordLength, 0.0)
	test.Float(t, params.ArcMeasure(), 0.0)

	// plain rounded corner
	params = ResolveCorner(20.0, 0.0, 50.0)
	test.Float(t, params.A, 0.0)
	test.Float(t, params.B, 0.0)
	test.Float(t, params.C, 0.0)
	test.Float(t, params.D, 0.0)
	test.Float(t, params.P, 20.0)
	test.Float(t, params.ArcChordLength, 20.0)
	test.Float(t, params.ArcMeasure(), 90.0)

	test.T(t, CornerParams{20.0, 0.6, 50.0}.Resolve(), ResolveCorner(20.0, 0.6, 50.0))
}

func TestResolveCornerReducedSmoothing(t *testing.T) {
	// smoothing is reduced to budget/radius-1
	params := ResolveCorner(40.0, 0.6, 50.0)
	test.Float(t, params.P, 50.0)
	test.Float(t, params.EffectiveSmoothing(), 0.25)
	test.Float(t, params.ArcMeasure(), 67.5)
	test.T(t, params, ResolveCorner(40.0, 0.25, 50.0))

	params = ResolveCorner(50.0, 1.0, 50.0)
	test.Float(t, params.P, 50.0)
	test.Float(t, params.EffectiveSmoothing(), 0.0)
	test.Float(t, params.ArcChordLength, 50.0)
	test.Float(t, params.ArcMeasure(), 90.0)
}

func TestResolveCornerDegenerate(t *testing.T) {
	test.T(t, ResolveCorner(0.0, 0.6, 50.0), CornerPathParams{})
	test.T(t, ResolveCorner(-10.0, 0.6, 50.0), CornerPathParams{})
	test.T(t, ResolveCorner(math.NaN(), 0.6, 50.0), CornerPathParams{})
	test.T(t, ResolveCorner(10.0, 0.6, 0.0), CornerPathParams{})
	test.T(t, ResolveCorner(10.0, 0.6, -5.0), CornerPathParams{})
	test.That(t, ResolveCorner(0.0, 0.6, 50.0).IsZero())
	test.Float(t, ResolveCorner(0.0, 0.6, 50.0).ArcMeasure(), 0.0)
}

func TestResolveCornerSmoothingOutOfRange(t *testing.T) {
	test.T(t, ResolveCorner(20.0, -0.5, 50.0), ResolveCorner(20.0, 0.0, 50.0))
	test.T(t, ResolveCorner(20.0, 1.5, 50.0), ResolveCorner(20.0, 1.0, 50.0))
	test.T(t, ResolveCorner(20.0, math.NaN(), 50.0), ResolveCorner(20.0, 0.0, 50.0))
	test.T(t, ResolveCorner(80.0, 0.6, 50.0), ResolveCorner(50.0, 0.6, 50.0))
}

func TestResolveCornerMonotonic(t *testing.T) {
	for _, radius := range []float64{1.0, 10.0, 20.0, 25.0, 33.0, 50.0} {
		budget := 50.0
		prev := math.Inf(1)
		for i := 0; i <= 20; i++ {
			smoothing := float64(i) / 20.0
			params := ResolveCorner(radius, smoothing, budget)
			test.That(t, -1e-9 <= params.A, "a >= 0", radius, smoothing)
			test.That(t, -1e-9 <= params.B, "b >= 0", radius, smoothing)
			test.That(t, 0.0 <= params.C, "c >= 0", radius, smoothing)
			test.That(t, 0.0 <= params.D, "d >= 0", radius, smoothing)
			test.That(t, 0.0 <= params.P && params.P <= budget, "0 <= p <= budget", radius, smoothing)

			if smoothing <= budget/radius-1.0 {
				// arc shrinks as long as smoothing is not reduced
				test.That(t, params.ArcChordLength < prev, "chord decreases", radius, smoothing)
			} else {
				test.That(t, params.ArcChordLength <= prev+1e-9, "chord does not increase", radius, smoothing)
			}
			prev = params.ArcChordLength
		}
	}
}

func TestCornerString(t *testing.T) {
	test.String(t, TopRight.String(), "TopRight")
	test.String(t, TopLeft.String(), "TopLeft")
	test.String(t, Corner(7).String(), "Corner(7)")
	test.String(t, CornerPathParams{A: 2, B: 1, P: 10, Radius: 5, ArcChordLength: 7}.String(), "a=2 b=1 c=0 d=0 p=10 r=5 chord=7")
}

package squircle

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPolyline(t *testing.T) {
	p := &Polyline{}
	p.Add(10, 0)
	p.Add(20, 10)
	test.T(t, len(p.Coords()), 2)
	test.T(t, p.Coords()[0], Point{10, 0})
	test.T(t, p.Coords()[1], Point{20, 10})

	test.That(t, (&Polyline{}).Empty())
	test.That(t, (&Polyline{}).Add(10, 0).Empty())
	test.That(t, !p.Empty())

	test.T(t, (&Polyline{}).ToPath(), MustParseSVG(""))
	test.T(t, (&Polyline{}).Add(10, 0).ToPath(), MustParseSVG(""))
	test.T(t, (&Polyline{}).Add(10, 0).Add(20, 10).ToPath(), MustParseSVG("M10 0L20 10"))
	test.T(t, (&Polyline{}).Add(10, 0).Add(20, 10).Add(10, 0).ToPath(), MustParseSVG("M10 0L20 10z"))
}

func TestPolylineInterior(t *testing.T) {
	triangle := (&Polyline{}).Add(10, 0).Add(20, 10).Add(10, 10).Add(10, 0)
	test.T(t, triangle.FillCount(12, 5), -1)
	test.That(t, triangle.Interior(12, 5, NonZero))
	test.That(t, !triangle.Interior(5, 5, NonZero))
	test.That(t, triangle.Interior(12, 5, EvenOdd))
	test.That(t, !triangle.Interior(5, 5, EvenOdd))

	// winds twice around the square
	twice := &Polyline{}
	for i := 0; i < 2; i++ {
		twice.Add(0, 0).Add(10, 0).Add(10, 10).Add(0, 10)
	}
	twice.Add(0, 0)
	test.T(t, twice.FillCount(5, 5), -2)
	test.That(t, twice.Interior(5, 5, NonZero))
	test.That(t, !twice.Interior(5, 5, EvenOdd))

	test.String(t, NonZero.String(), "NonZero")
	test.String(t, EvenOdd.String(), "EvenOdd")
}

func TestPolylineArea(t *testing.T) {
	test.Float(t, (&Polyline{}).Area(), 0.0)
	test.Float(t, (&Polyline{}).Add(10, 0).Add(20, 10).Add(10, 10).Add(10, 0).Area(), 50.0)
	test.Float(t, (&Polyline{}).Add(10, 0).Add(10, 10).Add(20, 10).Area(), -50.0)

	polyline := PolylineFromPath(Squircle(100, 60, 0, 0.6))
	test.That(t, polyline.Closed())
	test.Float(t, polyline.Area(), 6000.0)
	test.T(t, polyline.Coords(), []Point{{100, 0}, {100, 60}, {0, 60}, {0, 0}, {100, 0}})
}

package curvepath

import (
	"math"
	"testing"

	"github.com/tdewolff/squircle"
	"github.com/tdewolff/test"
	"honnef.co/go/curve"
)

func TestBezPath(t *testing.T) {
	p := squircle.MustParseSVG("M0 0L10 0C10 5 5 10 0 10z")
	bp := ToBezPath(p, 0.01)
	test.T(t, len(bp), 4)
	test.T(t, bp[2], curve.CubicTo(curve.Pt(10, 5), curve.Pt(5, 10), curve.Pt(0, 10)))

	q, err := FromBezPath(bp)
	test.Error(t, err)
	test.T(t, q, p)

	bp = curve.BezPath{curve.MoveTo(curve.Pt(0, 0)), curve.QuadTo(curve.Pt(15, 15), curve.Pt(30, 0))}
	q, err = FromBezPath(bp)
	test.Error(t, err)
	test.T(t, q, squircle.MustParseSVG("M0 0C10 10 20 10 30 0"))

	_, err = FromBezPath(curve.BezPath{{}})
	test.That(t, err != nil)
}

func TestBezPathArcs(t *testing.T) {
	p := squircle.Squircle(100, 100, 20, 0.6)
	bp := ToBezPath(p, 1e-3)
	for _, el := range bp {
		test.That(t, el.Kind != curve.QuadToKind)
	}

	// ends of the arcs are kept
	last := bp[len(bp)-2]
	test.T(t, last.Kind, curve.CubicToKind)
	test.FloatDiff(t, last.P2.X, 32, 1e-9)
	test.FloatDiff(t, last.P2.Y, 0, 1e-9)

	// zero sweep arcs vanish
	bp = ToBezPath(squircle.Squircle(100, 100, 20, 1), 1e-3)
	for _, el := range bp {
		test.That(t, el.Kind != curve.QuadToKind)
	}
	test.T(t, len(bp), 1+4*2+3+1)
}

func TestArea(t *testing.T) {
	test.FloatDiff(t, Area(squircle.Squircle(100, 100, 50, 0), 1e-6), math.Pi*50*50, 0.01)
	test.FloatDiff(t, Area(squircle.Squircle(100, 60, 0, 0), 1e-6), 6000, 1e-9)
	test.FloatDiff(t, Perimeter(squircle.Squircle(100, 100, 50, 0), 1e-6), 2*math.Pi*50, 0.01)

	p := squircle.Squircle(100, 100, 20, 0.6)
	test.FloatDiff(t, Area(p, 1e-6), squircle.PolylineFromPath(p).Area(), 2)
	test.That(t, Winding(p, 50, 50, 1e-3) != 0)
	test.T(t, Winding(p, 1, 1, 1e-3), 0)
	test.T(t, Winding(p, 150, 50, 1e-3), 0)
}

func TestStroke(t *testing.T) {
	p := squircle.Squircle(100, 100, 20, 0.6)
	stroke, err := Stroke(p, 4, 1e-3)
	test.Error(t, err)
	test.That(t, stroke.Closed())

	test.That(t, Winding(stroke, 50, 1, 1e-3) != 0, "inside of the border")
	test.That(t, Winding(stroke, 50, -1, 1e-3) != 0, "outside of the border")
	test.T(t, Winding(stroke, 50, 50, 1e-3), 0)
	test.T(t, Winding(stroke, 50, -3, 1e-3), 0)
	test.T(t, Winding(stroke, 50, 3, 1e-3), 0)

	perimeter := Perimeter(p, 1e-6)
	test.FloatDiff(t, math.Abs(Area(stroke, 1e-3)), 4*perimeter, 0.02*4*perimeter)
}

package squircle

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAssembleSharp(t *testing.T) {
	zero := CornerPathParams{}
	test.T(t, Assemble(10.0, 20.0, zero, zero, zero, zero), MustParseSVG("M10 0L10 20L0 20L0 0z"))
}

func TestAssembleTopLeft(t *testing.T) {
	zero := CornerPathParams{}
	tl := ResolveCorner(10.0, 0.0, 25.0)

	p := &Path{}
	p.MoveTo(100.0, 0.0)
	p.LineTo(100.0, 50.0)
	p.LineTo(0.0, 50.0)
	p.LineTo(0.0, 10.0)
	p.CubeTo(0.0, 10.0, 0.0, 10.0, 0.0, 10.0)
	p.ArcTo(10.0, 10.0, 10.0, math.Pi, 1.5*math.Pi, 10.0, 0.0)
	p.CubeTo(10.0, 0.0, 10.0, 0.0, 10.0, 0.0)
	p.Close()
	test.T(t, Assemble(100.0, 50.0, zero, zero, zero, tl), p)
}

func TestAssembleTopRight(t *testing.T) {
	defer setEpsilon(1e-6)()
	zero := CornerPathParams{}
	tr := ResolveCorner(20.0, 0.6, 50.0)
	p := Assemble(100.0, 100.0, tr, zero, zero, zero)

	segs := p.Segments()
	test.T(t, len(segs), 8)
	test.T(t, segs[0].End, Point{68.0, 0.0})

	test.T(t, segs[1].Cmd, CubeToCmd)
	test.T(t, segs[1].CP1, Point{79.201050121, 0.0})
	test.T(t, segs[1].CP2, Point{84.801575182, 0.0})
	test.T(t, segs[1].End, Point{89.079809995, 2.179869516})

	test.T(t, segs[2].Cmd, ArcToCmd)
	test.T(t, segs[2].Center, Point{80.0, 20.0})
	test.Float(t, segs[2].Radius, 20.0)
	test.Float(t, segs[2].Theta0, -math.Atan2(17.820130484, 9.079809995))
	test.Float(t, segs[2].Theta1, -math.Atan2(9.079809995, 17.820130484))
	test.Float(t, segs[2].Sweep(), 36.0*math.Pi/180.0)
	test.T(t, segs[2].End, Point{97.820130484, 10.920190005})

	test.T(t, segs[3].Cmd, CubeToCmd)
	test.T(t, segs[3].CP1, Point{100.0, 15.198424818})
	test.T(t, segs[3].CP2, Point{100.0, 20.798949879})
	test.T(t, segs[3].End, Point{100.0, 32.0})
	test.T(t, segs[4].End, Point{100.0, 100.0})
}

func TestAssembleArcsOnCircle(t *testing.T) {
	defer setEpsilon(1e-9)()
	for _, smoothing := range []float64{0.0, 0.3, 0.6, 1.0} {
		params := ResolveCorner(30.0, smoothing, 60.0)
		p := Assemble(120.0, 140.0, params, params, params, params)
		for _, seg := range p.Segments() {
			if seg.Cmd == ArcToCmd {
				test.That(t, 0.0 <= seg.Sweep(), "clockwise", smoothing)
				test.Float(t, seg.Sweep(), params.ArcMeasure()*math.Pi/180.0, smoothing)
				test.Float(t, seg.Start.Sub(seg.Center).Length(), seg.Radius, "start on circle", smoothing)
				test.Float(t, seg.End.Sub(seg.Center).Length(), seg.Radius, "end on circle", smoothing)
				test.T(t, seg.Center.Add(angleToNormal(seg.Theta0).Mul(seg.Radius)), seg.Start, smoothing)
				test.T(t, seg.Center.Add(angleToNormal(seg.Theta1).Mul(seg.Radius)), seg.End, smoothing)
			}
		}
	}
}

type recordPather struct {
	cmds []string
}

func (r *recordPather) MoveTo(x, y float64)                         { r.cmds = append(r.cmds, "M") }
func (r *recordPather) LineTo(x, y float64)                         { r.cmds = append(r.cmds, "L") }
func (r *recordPather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) { r.cmds = append(r.cmds, "C") }
func (r *recordPather) ArcTo(cx, cy, r0, theta0, theta1, x, y float64) {
	r.cmds = append(r.cmds, "A")
}
func (r *recordPather) Close() { r.cmds = append(r.cmds, "z") }

func TestAssembleTo(t *testing.T) {
	params := ResolveCorner(10.0, 0.6, 25.0)
	zero := CornerPathParams{}

	pather := &recordPather{}
	AssembleTo(pather, 50.0, 60.0, params, zero, params, zero)
	test.T(t, pather.cmds, []string{"M", "C", "A", "C", "L", "L", "C", "A", "C", "L", "z"})

	pather = &recordPather{}
	Assemble(50.0, 60.0, params, zero, params, zero).Emit(pather)
	test.T(t, pather.cmds, []string{"M", "C", "A", "C", "L", "L", "C", "A", "C", "L", "z"})
}

// Package curvepath converts squircles to and from honnef.co/go/curve Bézier paths, which provide stroking, area and winding computations.
package curvepath

import (
	"fmt"

	"github.com/tdewolff/squircle"
	"honnef.co/go/curve"
)

func pt(p squircle.Point) curve.Point {
	return curve.Pt(p.X, p.Y)
}

// ToBezPath converts the path to a Bézier path. Arcs are approximated by cubic Béziers within tolerance.
func ToBezPath(p *squircle.Path, tolerance float64) curve.BezPath {
	var bp curve.BezPath
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case squircle.MoveToCmd:
			bp.MoveTo(pt(seg.End))
		case squircle.LineToCmd:
			bp.LineTo(pt(seg.End))
		case squircle.CubeToCmd:
			bp.CubicTo(pt(seg.CP1), pt(seg.CP2), pt(seg.End))
		case squircle.ArcToCmd:
			if squircle.Equal(seg.Sweep(), 0.0) || seg.Radius <= 0.0 {
				if !seg.Start.Equals(seg.End) {
					bp.LineTo(pt(seg.End))
				}
				break
			}
			arc := curve.Arc{
				Center:     pt(seg.Center),
				Radii:      curve.Vec(seg.Radius, seg.Radius),
				StartAngle: seg.Theta0,
				SweepAngle: seg.Sweep(),
			}
			first := true
			for el := range arc.PathElements(tolerance) {
				if first {
					first = false // MoveTo to the start of the arc
					continue
				}
				bp.Push(el)
			}
		case squircle.CloseCmd:
			bp.ClosePath()
		}
	}
	return bp
}

// FromBezPath converts a Bézier path to a path. Quadratic Béziers are raised to cubic Béziers.
func FromBezPath(bp curve.BezPath) (*squircle.Path, error) {
	p := &squircle.Path{}
	var pos curve.Point
	for i, el := range bp {
		switch el.Kind {
		case curve.MoveToKind:
			p.MoveTo(el.P0.X, el.P0.Y)
			pos = el.P0
		case curve.LineToKind:
			p.LineTo(el.P0.X, el.P0.Y)
			pos = el.P0
		case curve.QuadToKind:
			cp1 := squircle.Point{X: pos.X, Y: pos.Y}.Interpolate(squircle.Point{X: el.P0.X, Y: el.P0.Y}, 2.0/3.0)
			cp2 := squircle.Point{X: el.P1.X, Y: el.P1.Y}.Interpolate(squircle.Point{X: el.P0.X, Y: el.P0.Y}, 2.0/3.0)
			p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, el.P1.X, el.P1.Y)
			pos = el.P1
		case curve.CubicToKind:
			p.CubeTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
			pos = el.P2
		case curve.ClosePathKind:
			p.Close()
			start := p.StartPos()
			pos = curve.Pt(start.X, start.Y)
		default:
			return nil, fmt.Errorf("invalid path element %d: %v", i, el)
		}
	}
	return p, nil
}

// Stroke returns the outline of a stroke of the given width along the path. For a closed path the outline consists of an outer and an inner ring of opposite winding, so that filling it with the non-zero rule paints the border.
func Stroke(p *squircle.Path, width, tolerance float64) (*squircle.Path, error) {
	bp := ToBezPath(p, tolerance)
	var stroke curve.BezPath
	for el := range curve.StrokePath(bp.Elements(), curve.DefaultStroke.WithWidth(width), curve.StrokeOpts{}, tolerance) {
		stroke.Push(el)
	}
	return FromBezPath(stroke)
}

// Area returns the signed area enclosed by the path, positive when it runs clockwise on screen.
func Area(p *squircle.Path, tolerance float64) float64 {
	return ToBezPath(p, tolerance).SignedArea()
}

// Winding returns the winding number of the point (x,y) with respect to the path.
func Winding(p *squircle.Path, x, y, tolerance float64) int {
	return ToBezPath(p, tolerance).Winding(curve.Pt(x, y))
}

// Perimeter returns the arc length of the path.
func Perimeter(p *squircle.Path, tolerance float64) float64 {
	return ToBezPath(p, tolerance).Arclen(tolerance)
}

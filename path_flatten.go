package squircle

import "math"

// ReplaceArcs returns a copy of the path where all arcs are replaced by cubic Béziers of at most 90 degrees each. Arcs that sweep no angle are dropped when they end where they start, and become lines otherwise.
func (p *Path) ReplaceArcs() *Path {
	q := &Path{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			q.MoveTo(p.d[i+1], p.d[i+2])
		case LineToCmd:
			q.LineTo(p.d[i+1], p.d[i+2])
		case CubeToCmd:
			q.CubeTo(p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4], p.d[i+5], p.d[i+6])
		case ArcToCmd:
			end := Point{p.d[i+6], p.d[i+7]}
			beziers := ArcToCubics(p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4], p.d[i+5])
			if len(beziers) == 0 {
				if !end.Equals(q.Pos()) {
					q.LineTo(end.X, end.Y)
				}
				break
			}
			beziers[len(beziers)-1][2] = end
			for _, bezier := range beziers {
				q.CubeTo(bezier[0].X, bezier[0].Y, bezier[1].X, bezier[1].Y, bezier[2].X, bezier[2].Y)
			}
		case CloseCmd:
			q.Close()
		}
		i += cmdLen(cmd)
	}
	return q
}

// Flatten returns a copy of the path where all curves are replaced by lines, deviating at most tolerance from the original curves. Cubic Béziers are flattened following Hain et al. A non-positive tolerance is replaced by Tolerance.
func (p *Path) Flatten(tolerance float64) *Path {
	if !(0.0 < tolerance) {
		tolerance = Tolerance
	}
	q := &Path{}
	var start Point
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			q.MoveTo(p.d[i+1], p.d[i+2])
		case LineToCmd:
			q.LineTo(p.d[i+1], p.d[i+2])
		case CubeToCmd:
			cp1 := Point{p.d[i+1], p.d[i+2]}
			cp2 := Point{p.d[i+3], p.d[i+4]}
			end := Point{p.d[i+5], p.d[i+6]}
			flattenCubicBezier(q, start, cp1, cp2, end, tolerance)
		case ArcToCmd:
			flattenArc(q, Point{p.d[i+1], p.d[i+2]}, p.d[i+3], p.d[i+4], p.d[i+5], Point{p.d[i+6], p.d[i+7]}, tolerance)
		case CloseCmd:
			q.Close()
		}
		i += cmdLen(cmd)
		start = Point{p.d[i-3], p.d[i-2]}
	}
	return q
}

// flattenArc adds lines along the arc so that the sagitta of each line is at most tolerance.
func flattenArc(p *Path, c Point, r, theta0, theta1 float64, end Point, tolerance float64) {
	sweep := theta1 - theta0
	if Equal(sweep, 0.0) || r <= 0.0 {
		if !end.Equals(p.Pos()) {
			p.LineTo(end.X, end.Y)
		}
		return
	}

	n := 1
	if tolerance < r {
		dtheta := 2.0 * math.Acos(1.0-tolerance/r)
		n = int(math.Ceil(math.Abs(sweep) / dtheta))
	}
	for i := 1; i < n; i++ {
		pos := c.Add(angleToNormal(theta0 + sweep*float64(i)/float64(n)).Mul(r))
		p.LineTo(pos.X, pos.Y)
	}
	p.LineTo(end.X, end.Y)
}

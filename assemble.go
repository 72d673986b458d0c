package squircle

import "math"

// cornerFrame describes a corner in terms of the incoming edge direction u and the inward normal v, so that all four corners are drawn by the same code rotated by 90 degrees each.
type cornerFrame struct {
	u, v   Point
	corner Point
	base   float64 // angle offset of the arc in radians
	sign   float64
}

func cornerFrames(width, height float64) [4]cornerFrame {
	return [4]cornerFrame{
		TopRight:    {Point{1.0, 0.0}, Point{0.0, 1.0}, Point{width, 0.0}, 0.0, -1.0},
		BottomRight: {Point{0.0, 1.0}, Point{-1.0, 0.0}, Point{width, height}, 0.0, 1.0},
		BottomLeft:  {Point{-1.0, 0.0}, Point{0.0, -1.0}, Point{0.0, height}, math.Pi, -1.0},
		TopLeft:     {Point{0.0, -1.0}, Point{1.0, 0.0}, Point{0.0, 0.0}, math.Pi, 1.0},
	}
}

// start returns the point on the incoming edge where the corner begins.
func (f cornerFrame) start(params CornerPathParams) Point {
	return f.corner.Sub(f.u.Mul(params.P))
}

// end returns the point on the outgoing edge where the corner ends.
func (f cornerFrame) end(params CornerPathParams) Point {
	return f.corner.Add(f.v.Mul(params.P))
}

func (f cornerFrame) angle(d Point) float64 {
	return f.base + f.sign*Point{math.Abs(d.X), math.Abs(d.Y)}.Angle()
}

// emit draws the corner as a cubic Bézier, a circular arc and the mirrored cubic Bézier. Sharp corners draw nothing.
func (f cornerFrame) emit(pather Pather, params CornerPathParams) {
	if params.IsZero() {
		return
	}
	a, b, c, d := params.A, params.B, params.C, params.D
	r, chord := params.Radius, params.ArcChordLength

	start := f.start(params)
	cp1 := start.Add(f.u.Mul(a))
	cp2 := start.Add(f.u.Mul(a + b))
	arcStart := start.Add(f.u.Mul(a + b + c)).Add(f.v.Mul(d))
	pather.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, arcStart.X, arcStart.Y)

	center := f.corner.Sub(f.u.Mul(r)).Add(f.v.Mul(r))
	arcEnd := arcStart.Add(f.u.Add(f.v).Mul(chord))
	theta0 := f.angle(arcStart.Sub(center))
	theta1 := f.angle(arcEnd.Sub(center))
	pather.ArcTo(center.X, center.Y, r, theta0, theta1, arcEnd.X, arcEnd.Y)

	cp1 = arcEnd.Add(f.u.Mul(d)).Add(f.v.Mul(c))
	cp2 = arcEnd.Add(f.u.Mul(d)).Add(f.v.Mul(b + c))
	end := f.end(params)
	pather.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
}

// Assemble returns the closed path of a squircle of the given size, with the resolved parameters of its top-right, bottom-right, bottom-left and top-left corners. See AssembleTo.
func Assemble(width, height float64, tr, br, bl, tl CornerPathParams) *Path {
	p := &Path{}
	AssembleTo(p, width, height, tr, br, bl, tl)
	return p
}

// AssembleTo draws a squircle onto pather. The origin is the top-left corner of the rectangle with the y-axis pointing down. The path starts on the top edge at (width-P_tr, 0) and goes clockwise through the top-right, bottom-right, bottom-left and top-left corners, connected by three straight lines and the final close command. Corners with a non-positive radius are sharp.
func AssembleTo(pather Pather, width, height float64, tr, br, bl, tl CornerPathParams) {
	frames := cornerFrames(width, height)
	params := [4]CornerPathParams{tr, br, bl, tl}

	start := frames[TopRight].start(tr)
	pather.MoveTo(start.X, start.Y)
	for i, frame := range frames {
		if i != 0 {
			start = frame.start(params[i])
			pather.LineTo(start.X, start.Y)
		}
		frame.emit(pather, params[i])
	}
	pather.Close()
}

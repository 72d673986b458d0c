package squircle

import (
	"math"
	"strings"
)

// Path command values. They are stored in the path data at the start and at the end of each segment, so that a path can be traversed in both directions.
const (
	MoveToCmd = 1.0
	LineToCmd = 2.0
	CubeToCmd = 4.0
	ArcToCmd  = 8.0
	CloseCmd  = 16.0
)

// cmdLen returns the number of values used by a segment in the path data, including the two command values.
func cmdLen(cmd float64) int {
	switch cmd {
	case MoveToCmd, LineToCmd, CloseCmd:
		return 4
	case CubeToCmd:
		return 8
	case ArcToCmd:
		return 9
	}
	panic("unknown path command")
}

func cmdName(cmd float64) string {
	switch cmd {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case CubeToCmd:
		return "CubeTo"
	case ArcToCmd:
		return "ArcTo"
	case CloseCmd:
		return "Close"
	}
	return "Unknown"
}

// Pather is the interface that receives the commands of a path. Backends implement it to translate a squircle to their native path types.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	ArcTo(cx, cy, r, theta0, theta1, x, y float64)
	Close()
}

// Path defines a vector path in 2D using a series of commands (MoveTo, LineTo, CubeTo, ArcTo and Close). Each command consists of a number of float64 values (depending on the command) that fully define the action. The first value is the command itself (as a float64). The last value is also the command for reverse traversal. The final two values before the last command are the end point position of the segment.
//
// Arcs are circular and stored by their center, radius, start and end angle in radians, and end point. With the y-axis pointing down, an end angle larger than the start angle sweeps clockwise on screen.
//
// A path records the commands exactly as they were given: zero-length segments are kept.
type Path struct {
	d []float64
}

// Reset clears the path but retains the same memory.
func (p *Path) Reset() {
	p.d = p.d[:0]
}

// Empty returns true if p is an empty path or consists of only a MoveTo.
func (p *Path) Empty() bool {
	return len(p.d) <= cmdLen(MoveToCmd)
}

// Len returns the number of segments.
func (p *Path) Len() int {
	n := 0
	for i := 0; i < len(p.d); {
		i += cmdLen(p.d[i])
		n++
	}
	return n
}

// Closed returns true if the last subpath of p is a closed path.
func (p *Path) Closed() bool {
	return 0 < len(p.d) && p.d[len(p.d)-1] == CloseCmd
}

// Pos returns the current position of the path, which is the end point of the last command.
func (p *Path) Pos() Point {
	if 0 < len(p.d) {
		return Point{p.d[len(p.d)-3], p.d[len(p.d)-2]}
	}
	return Point{}
}

// StartPos returns the start point of the current subpath, ie. it returns the position of the last MoveTo command.
func (p *Path) StartPos() Point {
	for i := len(p.d); 0 < i; {
		cmd := p.d[i-1]
		if cmd == MoveToCmd {
			return Point{p.d[i-3], p.d[i-2]}
		}
		i -= cmdLen(cmd)
	}
	return Point{}
}

// Copy returns a copy of p.
func (p *Path) Copy() *Path {
	q := &Path{d: make([]float64, len(p.d))}
	copy(q.d, p.d)
	return q
}

// Append appends path q to p and returns the extended path p.
func (p *Path) Append(qs ...*Path) *Path {
	for _, q := range qs {
		p.d = append(p.d, q.d...)
	}
	return p
}

// Equals returns true if p and q are equal within tolerance Epsilon. Arc angles are compared modulo 2PI, and arcs that sweep no angle only need to share their end point.
func (p *Path) Equals(q *Path) bool {
	if len(p.d) != len(q.d) {
		return false
	}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		if cmd != q.d[i] {
			return false
		}
		n := cmdLen(cmd)
		if cmd == ArcToCmd {
			if !Equal(p.d[i+6], q.d[i+6]) || !Equal(p.d[i+7], q.d[i+7]) {
				return false
			}
			sweepP, sweepQ := p.d[i+5]-p.d[i+4], q.d[i+5]-q.d[i+4]
			if !Equal(sweepP, 0.0) || !Equal(sweepQ, 0.0) {
				if !Equal(p.d[i+1], q.d[i+1]) || !Equal(p.d[i+2], q.d[i+2]) || !Equal(p.d[i+3], q.d[i+3]) || !angleEqual(p.d[i+4], q.d[i+4]) || !Equal(sweepP, sweepQ) {
					return false
				}
			}
		} else {
			for j := i + 1; j < i+n-1; j++ {
				if !Equal(p.d[j], q.d[j]) {
					return false
				}
			}
		}
		i += n
	}
	return true
}

////////////////////////////////////////////////////////////////

// startSubpath makes sure a drawing command has a start point, starting at the origin for an empty path or at the close point after a Close.
func (p *Path) startSubpath() {
	if len(p.d) == 0 {
		p.MoveTo(0.0, 0.0)
	} else if p.d[len(p.d)-1] == CloseCmd {
		p.MoveTo(p.d[len(p.d)-3], p.d[len(p.d)-2])
	}
}

// MoveTo moves the path to (x,y) without connecting the path. It starts a new independent subpath. Subsequent MoveTo commands replace each other.
func (p *Path) MoveTo(x, y float64) {
	if 0 < len(p.d) && p.d[len(p.d)-1] == MoveToCmd {
		p.d[len(p.d)-3] = x
		p.d[len(p.d)-2] = y
		return
	}
	p.d = append(p.d, MoveToCmd, x, y, MoveToCmd)
}

// LineTo adds a linear path to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.startSubpath()
	p.d = append(p.d, LineToCmd, x, y, LineToCmd)
}

// CubeTo adds a cubic Bézier path with control points (cpx1,cpy1) and (cpx2,cpy2) and end point (x,y).
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.startSubpath()
	p.d = append(p.d, CubeToCmd, cpx1, cpy1, cpx2, cpy2, x, y, CubeToCmd)
}

// ArcTo adds a circular arc with center (cx,cy) and radius r, going from angle theta0 to theta1 in radians and ending in (x,y). The end point should lie on the circle at theta1. The arc goes clockwise on screen when theta1 > theta0.
func (p *Path) ArcTo(cx, cy, r, theta0, theta1, x, y float64) {
	p.startSubpath()
	p.d = append(p.d, ArcToCmd, cx, cy, r, theta0, theta1, x, y, ArcToCmd)
}

// Close closes the current subpath with a straight line back to its start point.
func (p *Path) Close() {
	if len(p.d) == 0 || p.d[len(p.d)-1] == CloseCmd || p.d[len(p.d)-1] == MoveToCmd {
		return
	}
	start := p.StartPos()
	p.d = append(p.d, CloseCmd, start.X, start.Y, CloseCmd)
}

////////////////////////////////////////////////////////////////

// Emit replays the commands of the path onto the given Pather.
func (p *Path) Emit(pather Pather) {
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			pather.MoveTo(p.d[i+1], p.d[i+2])
		case LineToCmd:
			pather.LineTo(p.d[i+1], p.d[i+2])
		case CubeToCmd:
			pather.CubeTo(p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4], p.d[i+5], p.d[i+6])
		case ArcToCmd:
			pather.ArcTo(p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4], p.d[i+5], p.d[i+6], p.d[i+7])
		case CloseCmd:
			pather.Close()
		}
		i += cmdLen(cmd)
	}
}

// Translate returns a copy of the path translated by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	q := p.Copy()
	for i := 0; i < len(q.d); {
		cmd := q.d[i]
		switch cmd {
		case MoveToCmd, LineToCmd, CloseCmd:
			q.d[i+1] += x
			q.d[i+2] += y
		case CubeToCmd:
			q.d[i+1] += x
			q.d[i+2] += y
			q.d[i+3] += x
			q.d[i+4] += y
			q.d[i+5] += x
			q.d[i+6] += y
		case ArcToCmd:
			q.d[i+1] += x
			q.d[i+2] += y
			q.d[i+6] += x
			q.d[i+7] += y
		}
		i += cmdLen(cmd)
	}
	return q
}

// Scale returns a copy of the path scaled uniformly by f around the origin. A negative factor rotates the path by 180 degrees, which keeps the direction of arcs.
func (p *Path) Scale(f float64) *Path {
	q := p.Copy()
	for i := 0; i < len(q.d); {
		cmd := q.d[i]
		switch cmd {
		case MoveToCmd, LineToCmd, CloseCmd:
			q.d[i+1] *= f
			q.d[i+2] *= f
		case CubeToCmd:
			for j := i + 1; j < i+7; j++ {
				q.d[j] *= f
			}
		case ArcToCmd:
			q.d[i+1] *= f
			q.d[i+2] *= f
			q.d[i+3] *= math.Abs(f)
			if f < 0.0 {
				q.d[i+4] += math.Pi
				q.d[i+5] += math.Pi
			}
			q.d[i+6] *= f
			q.d[i+7] *= f
		}
		i += cmdLen(cmd)
	}
	return q
}

// Reverse returns a copy of the path with the direction of every subpath reversed. Closed subpaths start at the same point and remain closed, so that reversing twice returns the original path.
func (p *Path) Reverse() *Path {
	q := &Path{}
	segs := p.Segments()
	for i := 0; i < len(segs); {
		j := i + 1
		for j < len(segs) && segs[j].Cmd != MoveToCmd {
			j++
		}
		reverseSubpath(q, segs[i:j])
		i = j
	}
	return q
}

func reverseSubpath(q *Path, segs []Segment) {
	closed := segs[len(segs)-1].Cmd == CloseCmd
	if closed {
		closeSeg := segs[len(segs)-1]
		segs = segs[:len(segs)-1]
		q.MoveTo(closeSeg.End.X, closeSeg.End.Y)
		if !closeSeg.Start.Equals(closeSeg.End) {
			q.LineTo(closeSeg.Start.X, closeSeg.Start.Y)
		}
	} else {
		end := segs[len(segs)-1].End
		q.MoveTo(end.X, end.Y)
	}

	for k := len(segs) - 1; 0 < k; k-- {
		seg := segs[k]
		if closed && k == 1 && seg.Cmd == LineToCmd {
			break // drawn by Close
		}
		switch seg.Cmd {
		case LineToCmd:
			q.LineTo(seg.Start.X, seg.Start.Y)
		case CubeToCmd:
			q.CubeTo(seg.CP2.X, seg.CP2.Y, seg.CP1.X, seg.CP1.Y, seg.Start.X, seg.Start.Y)
		case ArcToCmd:
			q.ArcTo(seg.Center.X, seg.Center.Y, seg.Radius, seg.Theta1, seg.Theta0, seg.Start.X, seg.Start.Y)
		}
	}
	if closed {
		q.Close()
	}
}

// Coords returns the end points of all segments of the path.
func (p *Path) Coords() []Point {
	coords := []Point{}
	for i := 0; i < len(p.d); {
		i += cmdLen(p.d[i])
		coords = append(coords, Point{p.d[i-3], p.d[i-2]})
	}
	return coords
}

// Bounds returns the exact bounding box rectangle of the path.
func (p *Path) Bounds() Rect {
	if len(p.d) < 4 {
		return Rect{}
	}

	// first command is MoveTo
	start := Point{p.d[1], p.d[2]}
	r := Rect{start.X, start.Y, 0.0, 0.0}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd, LineToCmd, CloseCmd:
			r = r.AddPoint(Point{p.d[i+1], p.d[i+2]})
		case CubeToCmd:
			cp1 := Point{p.d[i+1], p.d[i+2]}
			cp2 := Point{p.d[i+3], p.d[i+4]}
			end := Point{p.d[i+5], p.d[i+6]}
			for _, t := range cubicBezierExtrema(start, cp1, cp2, end) {
				r = r.AddPoint(cubicBezierPos(start, cp1, cp2, end, t))
			}
			r = r.AddPoint(end)
		case ArcToCmd:
			c := Point{p.d[i+1], p.d[i+2]}
			radius, theta0, theta1 := p.d[i+3], p.d[i+4], p.d[i+5]
			lower, upper := math.Min(theta0, theta1), math.Max(theta0, theta1)
			for k := math.Ceil(lower / (math.Pi / 2.0)); k*math.Pi/2.0 <= upper; k++ {
				r = r.AddPoint(c.Add(angleToNormal(k * math.Pi / 2.0).Mul(radius)))
			}
			r = r.AddPoint(Point{p.d[i+6], p.d[i+7]})
		}
		i += cmdLen(cmd)
		start = Point{p.d[i-3], p.d[i-2]}
	}
	return r
}

// Segments returns the segments of the path.
func (p *Path) Segments() []Segment {
	segs := []Segment{}
	scanner := p.Scanner()
	for scanner.Scan() {
		segs = append(segs, scanner.Segment())
	}
	return segs
}

// String returns a string that represents the path similar to the SVG path data format (but not necessarily valid SVG).
func (p *Path) String() string {
	sb := strings.Builder{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M")
			sb.WriteString(num(p.d[i+1]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+2]).String())
		case LineToCmd:
			sb.WriteString("L")
			sb.WriteString(num(p.d[i+1]).String())
			sb.WriteString(" ")
			sb.WriteString(num(p.d[i+2]).String())
		case CubeToCmd:
			sb.WriteString("C")
			for j := i + 1; j < i+7; j++ {
				if j != i+1 {
					sb.WriteString(" ")
				}
				sb.WriteString(num(p.d[j]).String())
			}
		case ArcToCmd:
			sb.WriteString("A")
			for j := i + 1; j < i+8; j++ {
				if j != i+1 {
					sb.WriteString(" ")
				}
				sb.WriteString(num(p.d[j]).String())
			}
		case CloseCmd:
			sb.WriteString("z")
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}

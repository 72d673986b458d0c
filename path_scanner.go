package squircle

import "fmt"

// Segment is a single command of a path. Only the fields relevant to the command are set: control points for cubic Béziers, and center, radius and angles for arcs.
type Segment struct {
	Cmd            float64
	Start, End     Point
	CP1, CP2       Point
	Center         Point
	Radius         float64
	Theta0, Theta1 float64
}

// Sweep returns the angle swept by an arc segment in radians, positive for clockwise on screen.
func (seg Segment) Sweep() float64 {
	return seg.Theta1 - seg.Theta0
}

// Length returns the distance between start and end point, which is the length for straight segments.
func (seg Segment) Length() float64 {
	return seg.End.Sub(seg.Start).Length()
}

func (seg Segment) String() string {
	switch seg.Cmd {
	case CubeToCmd:
		return fmt.Sprintf("%s(%v %v %v %v)", cmdName(seg.Cmd), seg.Start, seg.CP1, seg.CP2, seg.End)
	case ArcToCmd:
		return fmt.Sprintf("%s(%v %v r=%v %v→%v %v)", cmdName(seg.Cmd), seg.Start, seg.Center, num(seg.Radius), num(seg.Theta0), num(seg.Theta1), seg.End)
	}
	return fmt.Sprintf("%s(%v %v)", cmdName(seg.Cmd), seg.Start, seg.End)
}

// PathScanner scans over the segments of a path.
type PathScanner struct {
	p *Path
	i int
}

// Scanner returns a path scanner.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{p, -1}
}

// Scan scans a new path segment and should be called before the other methods.
func (s *PathScanner) Scan() bool {
	if s.i+1 < len(s.p.d) {
		s.i += cmdLen(s.p.d[s.i+1])
		return true
	}
	return false
}

// Cmd returns the current path segment command.
func (s *PathScanner) Cmd() float64 {
	return s.p.d[s.i]
}

// Values returns the current path segment values.
func (s *PathScanner) Values() []float64 {
	return s.p.d[s.i-cmdLen(s.p.d[s.i])+2 : s.i]
}

// Start returns the current path segment start position.
func (s *PathScanner) Start() Point {
	i := s.i - cmdLen(s.p.d[s.i])
	if i == -1 {
		return Point{}
	}
	return Point{s.p.d[i-2], s.p.d[i-1]}
}

// CP1 returns the first control point for cubic Béziers.
func (s *PathScanner) CP1() Point {
	if s.p.d[s.i] != CubeToCmd {
		panic("must be cubic Bézier")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	return Point{s.p.d[i+1], s.p.d[i+2]}
}

// CP2 returns the second control point for cubic Béziers.
func (s *PathScanner) CP2() Point {
	if s.p.d[s.i] != CubeToCmd {
		panic("must be cubic Bézier")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	return Point{s.p.d[i+3], s.p.d[i+4]}
}

// Arc returns the center, radius and start and end angle of arcs.
func (s *PathScanner) Arc() (Point, float64, float64, float64) {
	if s.p.d[s.i] != ArcToCmd {
		panic("must be arc")
	}
	i := s.i - cmdLen(s.p.d[s.i]) + 1
	return Point{s.p.d[i+1], s.p.d[i+2]}, s.p.d[i+3], s.p.d[i+4], s.p.d[i+5]
}

// End returns the current path segment end position.
func (s *PathScanner) End() Point {
	return Point{s.p.d[s.i-2], s.p.d[s.i-1]}
}

// Segment returns the current path segment.
func (s *PathScanner) Segment() Segment {
	seg := Segment{
		Cmd:   s.Cmd(),
		Start: s.Start(),
		End:   s.End(),
	}
	switch seg.Cmd {
	case CubeToCmd:
		seg.CP1, seg.CP2 = s.CP1(), s.CP2()
	case ArcToCmd:
		seg.Center, seg.Radius, seg.Theta0, seg.Theta1 = s.Arc()
	}
	return seg
}

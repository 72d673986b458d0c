package squircle

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"
)

// Tessellate flattens the path with the given tolerance and returns the triangles that fill it. Each subpath is triangulated separately as a simple polygon.
func (p *Path) Tessellate(tolerance float64) (triangles [][3]Point, err error) {
	defer func() {
		if r := recover(); r != nil {
			triangles = nil
			err = fmt.Errorf("tessellation failed: %v", r)
		}
	}()

	contours := [][]Point{}
	var contour []Point
	q := p.Flatten(tolerance)
	for i := 0; i < len(q.d); {
		cmd := q.d[i]
		if cmd == MoveToCmd && 0 < len(contour) {
			contours = append(contours, contour)
			contour = nil
		}
		if cmd != CloseCmd {
			contour = append(contour, Point{q.d[i+1], q.d[i+2]})
		}
		i += cmdLen(cmd)
	}
	if 0 < len(contour) {
		contours = append(contours, contour)
	}

	triangles = [][3]Point{}
	for _, contour := range contours {
		contour = simplifyContour(contour)
		if len(contour) < 3 {
			continue
		}

		points := make([]*poly2tri.Point, 0, len(contour))
		for _, coord := range contour {
			points = append(points, poly2tri.NewPoint(coord.X, coord.Y))
		}
		swctx := poly2tri.NewSweepContext(points, false)
		swctx.Triangulate()

		for _, tr := range swctx.GetTriangles() {
			p0 := Point{tr.Points[0].X, tr.Points[0].Y}
			p1 := Point{tr.Points[1].X, tr.Points[1].Y}
			p2 := Point{tr.Points[2].X, tr.Points[2].Y}
			triangles = append(triangles, [3]Point{p0, p1, p2})
		}
	}
	return triangles, nil
}

// simplifyContour removes repeated points, the closing point equal to the first, and points that are collinear with their neighbours, which the triangulation does not accept.
func simplifyContour(contour []Point) []Point {
	coords := make([]Point, 0, len(contour))
	for _, coord := range contour {
		if len(coords) == 0 || !coord.Equals(coords[len(coords)-1]) {
			coords = append(coords, coord)
		}
	}
	for 1 < len(coords) && coords[0].Equals(coords[len(coords)-1]) {
		coords = coords[:len(coords)-1]
	}

	for changed := true; changed && 3 <= len(coords); {
		changed = false
		for i := 0; i < len(coords) && 3 <= len(coords); i++ {
			prev := coords[(i+len(coords)-1)%len(coords)]
			next := coords[(i+1)%len(coords)]
			if Equal(coords[i].Sub(prev).PerpDot(next.Sub(coords[i])), 0.0) {
				coords = append(coords[:i], coords[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return coords
}

// Package tdcanvas draws squircles with github.com/tdewolff/canvas and writes them to any of its output formats.
package tdcanvas

import (
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/squircle"
)

// Style is the fill and stroke of a squircle. A nil color is not drawn.
type Style struct {
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float64
}

// ToPath converts the path to a canvas path. Circular arcs are kept as arcs, arcs of more than 180 degrees are split in two.
func ToPath(p *squircle.Path) *canvas.Path {
	q := &canvas.Path{}
	for _, seg := range p.Segments() {
		switch seg.Cmd {
		case squircle.MoveToCmd:
			q.MoveTo(seg.End.X, seg.End.Y)
		case squircle.LineToCmd:
			q.LineTo(seg.End.X, seg.End.Y)
		case squircle.CubeToCmd:
			q.CubeTo(seg.CP1.X, seg.CP1.Y, seg.CP2.X, seg.CP2.Y, seg.End.X, seg.End.Y)
		case squircle.ArcToCmd:
			sweep := seg.Sweep()
			if squircle.Equal(sweep, 0.0) {
				if !seg.Start.Equals(seg.End) {
					q.LineTo(seg.End.X, seg.End.Y)
				}
				break
			}
			if math.Pi < math.Abs(sweep) {
				sin, cos := math.Sincos(seg.Theta0 + sweep/2.0)
				mid := seg.Center.Add(squircle.Point{X: cos, Y: sin}.Mul(seg.Radius))
				q.ArcTo(seg.Radius, seg.Radius, 0.0, false, 0.0 < sweep, mid.X, mid.Y)
			}
			q.ArcTo(seg.Radius, seg.Radius, 0.0, false, 0.0 < sweep, seg.End.X, seg.End.Y)
		case squircle.CloseCmd:
			q.Close()
		}
	}
	return q
}

// New returns a canvas of the given size with a context whose y-axis points down, matching the squircle coordinates.
func New(width, height float64) (*canvas.Canvas, *canvas.Context) {
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	return c, ctx
}

// Draw draws the path at (x,y) with the given style.
func Draw(ctx *canvas.Context, x, y float64, p *squircle.Path, style Style) {
	if p.Empty() {
		return
	}
	fill, stroke := color.Color(canvas.Transparent), color.Color(canvas.Transparent)
	if style.Fill != nil {
		fill = style.Fill
	}
	if style.Stroke != nil && 0.0 < style.StrokeWidth {
		stroke = style.Stroke
	}

	ctx.Push()
	ctx.SetFillColor(fill)
	ctx.SetStrokeColor(stroke)
	ctx.SetStrokeWidth(style.StrokeWidth)
	ctx.DrawPath(x, y, ToPath(p))
	ctx.Pop()
}

// Write writes the canvas to filename, with the format determined by its extension. The resolution in dots per unit applies to raster formats only.
func Write(filename string, c *canvas.Canvas, resolution float64) error {
	if isRaster(filename) {
		return renderers.Write(filename, c, canvas.DPMM(resolution))
	}
	return renderers.Write(filename, c)
}

func isRaster(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		return true
	}
	return false
}

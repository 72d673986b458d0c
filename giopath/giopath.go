// Package giopath converts squircles into Gio clip paths.
package giopath

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/tdewolff/squircle"
)

type builder interface {
	MoveTo(f32.Point)
	LineTo(f32.Point)
	CubeTo(f32.Point, f32.Point, f32.Point)
	Close()
}

func point(p squircle.Point, scale float64) f32.Point {
	return f32.Point{X: float32(scale * p.X), Y: float32(scale * p.Y)}
}

func build(b builder, p *squircle.Path, scale float64) {
	for _, seg := range p.ReplaceArcs().Segments() {
		switch seg.Cmd {
		case squircle.MoveToCmd:
			b.MoveTo(point(seg.End, scale))
		case squircle.LineToCmd:
			b.LineTo(point(seg.End, scale))
		case squircle.CubeToCmd:
			b.CubeTo(point(seg.CP1, scale), point(seg.CP2, scale), point(seg.End, scale))
		case squircle.CloseCmd:
			b.Close()
		}
	}
}

// Path records the path into ops, with coordinates multiplied by scale to convert to pixels.
func Path(ops *op.Ops, p *squircle.Path, scale float64) clip.PathSpec {
	path := clip.Path{}
	path.Begin(ops)
	build(&path, p, scale)
	return path.End()
}

// Fill paints the interior of the path with a uniform color.
func Fill(ops *op.Ops, p *squircle.Path, scale float64, col color.NRGBA) {
	paint.FillShape(ops, col, clip.Outline{Path: Path(ops, p, scale)}.Op())
}

// Stroke paints a stroke of the given width in pixels along the path.
func Stroke(ops *op.Ops, p *squircle.Path, scale float64, width float32, col color.NRGBA) {
	paint.FillShape(ops, col, clip.Stroke{Path: Path(ops, p, scale), Width: width}.Op())
}

// NRGBA converts a color to the non-premultiplied color used by Gio.
func NRGBA(col color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(col).(color.NRGBA)
}

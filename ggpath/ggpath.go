// Package ggpath draws squircles onto a github.com/gogpu/gg context.
package ggpath

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/tdewolff/squircle"
)

// Pather adds path commands to the current path of a gg context. Arcs are added as cubic Béziers.
type Pather struct {
	ctx *gg.Context
}

// NewPather returns a pather for ctx.
func NewPather(ctx *gg.Context) Pather {
	return Pather{ctx}
}

func (p Pather) MoveTo(x, y float64) {
	p.ctx.MoveTo(x, y)
}

func (p Pather) LineTo(x, y float64) {
	p.ctx.LineTo(x, y)
}

func (p Pather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.ctx.CubicTo(cpx1, cpy1, cpx2, cpy2, x, y)
}

func (p Pather) ArcTo(cx, cy, r, theta0, theta1, x, y float64) {
	beziers := squircle.ArcToCubics(cx, cy, r, theta0, theta1)
	if len(beziers) == 0 {
		p.ctx.LineTo(x, y)
		return
	}
	beziers[len(beziers)-1][2] = squircle.Point{X: x, Y: y}
	for _, bezier := range beziers {
		p.ctx.CubicTo(bezier[0].X, bezier[0].Y, bezier[1].X, bezier[1].Y, bezier[2].X, bezier[2].Y)
	}
}

func (p Pather) Close() {
	p.ctx.ClosePath()
}

// Draw adds the path to the current path of ctx.
func Draw(ctx *gg.Context, p *squircle.Path) {
	p.Emit(NewPather(ctx))
}

// Fill fills the path with a uniform color.
func Fill(ctx *gg.Context, p *squircle.Path, col color.Color) error {
	ctx.SetColor(col)
	Draw(ctx, p)
	return ctx.Fill()
}

// Stroke strokes the path with a uniform color.
func Stroke(ctx *gg.Context, p *squircle.Path, col color.Color, width float64) error {
	ctx.SetColor(col)
	ctx.SetLineWidth(width)
	Draw(ctx, p)
	return ctx.Stroke()
}

// Render fills the squircle of the request onto a new image of the request's size, rounded up to whole pixels.
func Render(req squircle.Request, col color.Color) (image.Image, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	size := image.Point{int(req.Width + 0.5), int(req.Height + 0.5)}
	ctx := gg.NewContext(max(size.X, 1), max(size.Y, 1))
	defer ctx.Close()

	// drawn directly from the corner parameters, without building a path
	params := req.CornerPathParams()
	ctx.SetColor(col)
	squircle.AssembleTo(NewPather(ctx), req.Width, req.Height, params[squircle.TopRight], params[squircle.BottomRight], params[squircle.BottomLeft], params[squircle.TopLeft])
	if err := ctx.Fill(); err != nil {
		return nil, err
	}
	return ctx.Image(), nil
}

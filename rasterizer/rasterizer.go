package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/tdewolff/squircle"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ToRasterizer adds the path to the rasterizer, scaling all coordinates by resolution in pixels per unit. Arcs are replaced by cubic Béziers.
func ToRasterizer(p *squircle.Path, ras *vector.Rasterizer, resolution float64) {
	f := func(x float64) float32 {
		return float32(x * resolution)
	}
	for _, seg := range p.ReplaceArcs().Segments() {
		switch seg.Cmd {
		case squircle.MoveToCmd:
			ras.MoveTo(f(seg.End.X), f(seg.End.Y))
		case squircle.LineToCmd:
			ras.LineTo(f(seg.End.X), f(seg.End.Y))
		case squircle.CubeToCmd:
			ras.CubeTo(f(seg.CP1.X), f(seg.CP1.Y), f(seg.CP2.X), f(seg.CP2.Y), f(seg.End.X), f(seg.End.Y))
		case squircle.CloseCmd:
			ras.ClosePath()
		}
	}
}

// Size returns the size in pixels of an image that holds a w by h rectangle at the given resolution.
func Size(w, h, resolution float64) image.Point {
	if !(0.0 < w) || !(0.0 < h) || !(0.0 < resolution) {
		return image.Point{}
	}
	return image.Point{int(math.Ceil(w*resolution - squircle.Epsilon)), int(math.Ceil(h*resolution - squircle.Epsilon))}
}

// Mask rasterizes the path into an alpha mask of w by h pixels, with a resolution in pixels per unit. Pixel coverage is anti-aliased.
func Mask(p *squircle.Path, w, h int, resolution float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 {
		return mask
	}
	ras := vector.NewRasterizer(w, h)
	ToRasterizer(p, ras, resolution)
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Draw draws src through the path onto dst, with a resolution in pixels per unit. The origin of the path is at the minimum point of dst.
func Draw(dst draw.Image, p *squircle.Path, src image.Image, resolution float64) {
	bounds := dst.Bounds()
	if bounds.Empty() {
		return
	}
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ToRasterizer(p, ras, resolution)
	ras.Draw(dst, bounds, src, image.Point{})
}

// Fill fills the path with a uniform color onto dst.
func Fill(dst draw.Image, p *squircle.Path, col color.Color, resolution float64) {
	Draw(dst, p, image.NewUniform(col), resolution)
}

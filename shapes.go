package squircle

import "math"

// Insets are distances from the four edges of a rectangle, positive towards the inside.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// UniformInsets returns insets of d on all four edges.
func UniformInsets(d float64) Insets {
	return Insets{d, d, d, d}
}

// Scale returns the insets multiplied by f.
func (insets Insets) Scale(f float64) Insets {
	return Insets{f * insets.Top, f * insets.Right, f * insets.Bottom, f * insets.Left}
}

// IsZero returns true if all insets are zero.
func (insets Insets) IsZero() bool {
	return insets.Top == 0.0 && insets.Right == 0.0 && insets.Bottom == 0.0 && insets.Left == 0.0
}

// Inset returns the request for the squircle inside of the given insets, positioned at the origin. The size shrinks by the insets and every rounded corner shrinks by the larger of its two adjacent insets, down to a sharp corner. Negative insets grow the squircle. Sharp corners stay sharp.
func (req Request) Inset(insets Insets) Request {
	radii := req.effectiveRadii()
	adjacent := [4]float64{
		TopRight:    math.Max(insets.Top, insets.Right),
		BottomRight: math.Max(insets.Bottom, insets.Right),
		BottomLeft:  math.Max(insets.Bottom, insets.Left),
		TopLeft:     math.Max(insets.Top, insets.Left),
	}
	for i, r := range radii {
		if r != 0.0 {
			radii[i] = math.Max(0.0, r-adjacent[i])
		}
	}
	return Request{
		TopRight:    Float(radii[TopRight]),
		BottomRight: Float(radii[BottomRight]),
		BottomLeft:  Float(radii[BottomLeft]),
		TopLeft:     Float(radii[TopLeft]),
		Smoothing:   req.Smoothing,
		Width:       req.Width - insets.Left - insets.Right,
		Height:      req.Height - insets.Top - insets.Bottom,
	}
}

// Squircle returns a squircle of width w and height h with corner radius r and the given smoothing. It is the squircle variant of a rounded rectangle.
func Squircle(w, h, r, smoothing float64) *Path {
	return Request{
		Radius:    Float(r),
		Smoothing: smoothing,
		Width:     w,
		Height:    h,
	}.Path()
}

// BorderPaths returns the paths of a border with the given widths along the edges of the squircle. The area between outer and inner is the border. The center path runs halfway through the border and can be stroked when all widths are equal. The inner path is empty when the border fills the whole squircle.
func BorderPaths(req Request, widths Insets) (*Path, *Path, *Path) {
	outer := req.Path()
	inner := req.Inset(widths).Path().Translate(widths.Left, widths.Top)
	half := widths.Scale(0.5)
	center := req.Inset(half).Path().Translate(half.Left, half.Top)
	return outer, inner, center
}

// ShadowPath returns the outline of an outset box shadow of the squircle, grown by spread on each side and moved by the offset.
func ShadowPath(req Request, offsetX, offsetY, spread float64) *Path {
	return req.Inset(UniformInsets(-spread)).Path().Translate(offsetX-spread, offsetY-spread)
}

// OutlinePath returns the center line of an outline of the given stroke width, drawn at offset outside of the squircle.
func OutlinePath(req Request, width, offset float64) *Path {
	d := offset + width/2.0
	return req.Inset(UniformInsets(-d)).Path().Translate(-d, -d)
}

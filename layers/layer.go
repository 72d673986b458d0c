package layers

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/tdewolff/squircle"
	"golang.org/x/image/draw"
)

// Layer is a rectangular node in a layer tree. The frame is relative to the superlayer. Sublayers are drawn above the background of their layer in order of their z-position.
type Layer struct {
	Frame        squircle.Rect
	Background   color.Color
	CornerRadius float64
	ZPosition    float64

	// Mask is the alpha mask applied to the background, with its origin at the top-left corner of the frame. A nil mask shows the whole frame.
	Mask *image.Alpha

	superlayer *Layer
	sublayers  []*Layer
}

// NewLayer returns a layer with the given frame and background color.
func NewLayer(frame squircle.Rect, background color.Color) *Layer {
	return &Layer{
		Frame:      frame,
		Background: background,
	}
}

// Bounds returns the frame of the layer in its own coordinate space.
func (l *Layer) Bounds() squircle.Rect {
	return squircle.Rect{X: 0.0, Y: 0.0, W: l.Frame.W, H: l.Frame.H}
}

// Superlayer returns the parent layer, or nil.
func (l *Layer) Superlayer() *Layer {
	return l.superlayer
}

// Sublayers returns the sublayers in the order they were added.
func (l *Layer) Sublayers() []*Layer {
	return l.sublayers
}

// AddSublayer appends sub to the sublayers, removing it from its previous superlayer first.
func (l *Layer) AddSublayer(sub *Layer) {
	sub.RemoveFromSuperlayer()
	sub.superlayer = l
	l.sublayers = append(l.sublayers, sub)
}

// RemoveFromSuperlayer detaches the layer from its superlayer.
func (l *Layer) RemoveFromSuperlayer() {
	if l.superlayer == nil {
		return
	}
	parent := l.superlayer
	if i := slices.Index(parent.sublayers, l); i != -1 {
		parent.sublayers = slices.Delete(parent.sublayers, i, i+1)
	}
	l.superlayer = nil
}

// Composite draws the layer tree onto dst with a resolution in pixels per unit. The frame of l is positioned relative to the minimum point of dst.
func (l *Layer) Composite(dst draw.Image, resolution float64) {
	l.composite(dst, squircle.Point{}, resolution)
}

func (l *Layer) composite(dst draw.Image, origin squircle.Point, resolution float64) {
	origin = origin.Add(squircle.Point{X: l.Frame.X, Y: l.Frame.Y})
	if l.Background != nil {
		offset := dst.Bounds().Min
		rect := image.Rect(
			int(math.Round(origin.X*resolution)),
			int(math.Round(origin.Y*resolution)),
			int(math.Round((origin.X+l.Frame.W)*resolution)),
			int(math.Round((origin.Y+l.Frame.H)*resolution)),
		).Add(offset)
		src := image.NewUniform(l.Background)
		if l.Mask != nil {
			draw.DrawMask(dst, rect, src, image.Point{}, l.Mask, l.Mask.Bounds().Min, draw.Over)
		} else {
			draw.Draw(dst, rect, src, image.Point{}, draw.Over)
		}
	}

	sublayers := slices.Clone(l.sublayers)
	slices.SortStableFunc(sublayers, func(a, b *Layer) int {
		return cmp.Compare(a.ZPosition, b.ZPosition)
	})
	for _, sub := range sublayers {
		sub.composite(dst, origin, resolution)
	}
}
